package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"path"
	"strconv"
	"strings"

	"github.com/samugi/cal-cu-lator/model"
)

var (
	// ErrEmptyName is returned for a record without a field name.
	ErrEmptyName = errors.New("empty field name")

	// ErrNonFinite is returned for a NaN or infinite value.
	ErrNonFinite = errors.New("value must be a finite number")
)

// ParseError reports a malformed record. Line and Column are 1-based.
type ParseError struct {
	Source string
	Line   int
	Column int
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %v", e.Source, e.Line, e.Column, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse reads a dataset from r. source names the input in errors and
// provides the dataset name.
func Parse(source string, r io.Reader) (model.Dataset, error) {
	ds := model.Dataset{Name: Name(source)}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return model.Dataset{}, &ParseError{Source: source, Line: pe.Line, Column: pe.Column, Err: pe.Err}
			}
			return model.Dataset{}, fmt.Errorf("%s: %w", source, err)
		}
		if len(record) == 1 && strings.TrimSpace(record[0]) == "" {
			continue
		}

		name := strings.TrimSpace(record[0])
		if name == "" {
			line, col := cr.FieldPos(0)
			return model.Dataset{}, &ParseError{Source: source, Line: line, Column: col, Err: ErrEmptyName}
		}

		values := make([]float64, 0, len(record)-1)
		for i, cell := range record[1:] {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err == nil && (math.IsNaN(v) || math.IsInf(v, 0)) {
				err = ErrNonFinite
			}
			if err != nil {
				line, col := cr.FieldPos(i + 1)
				return model.Dataset{}, &ParseError{Source: source, Line: line, Column: col, Err: err}
			}
			values = append(values, v)
		}
		ds.Fields = append(ds.Fields, model.Field{Name: name, Values: values})
	}

	return ds, nil
}

// Name derives a dataset name from a source: the base name without
// compression and .csv extensions.
func Name(source string) string {
	if i := strings.Index(source, "://"); i >= 0 {
		source = source[i+3:]
	}
	base := path.Base(strings.ReplaceAll(source, "\\", "/"))
	for _, ext := range []string{".zst", ".lz4", ".csv"} {
		base = strings.TrimSuffix(base, ext)
	}
	return base
}
