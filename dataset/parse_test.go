package dataset

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samugi/cal-cu-lator/model"
	"github.com/samugi/cal-cu-lator/testutil"
)

func TestParse(t *testing.T) {
	in := "AAAAA,1.50,2\n\n  BBBBB , -3.25 ,4e2\n   \nEMPTY\n"
	ds, err := Parse("q1.csv", strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, "q1", ds.Name)
	assert.Equal(t, []model.Field{
		{Name: "AAAAA", Values: []float64{1.5, 2}},
		{Name: "BBBBB", Values: []float64{-3.25, 400}},
		{Name: "EMPTY", Values: []float64{}},
	}, ds.Fields)
}

func TestParse_Empty(t *testing.T) {
	ds, err := Parse("empty.csv", strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, "empty", ds.Name)
	assert.Empty(t, ds.Fields)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		line   int
		column int
		target error
	}{
		{"bad number", "A,1\nB,2,x\n", 2, 5, strconv.ErrSyntax},
		{"trailing comma", "A,1,\n", 1, 5, strconv.ErrSyntax},
		{"missing name", ",1\n", 1, 1, ErrEmptyName},
		{"nan", "A,1\nB,NaN\n", 2, 3, ErrNonFinite},
		{"inf", "A,+Inf,1\n", 1, 3, ErrNonFinite},
		{"negative inf", "A,1, -inf\n", 1, 6, ErrNonFinite},
		{"overflow", "A,1e400\n", 1, 3, strconv.ErrRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("in.csv", strings.NewReader(tt.in))
			require.Error(t, err)

			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, "in.csv", pe.Source)
			assert.Equal(t, tt.line, pe.Line)
			assert.Equal(t, tt.column, pe.Column)
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestParse_Fixtures(t *testing.T) {
	tests := map[string][]model.Field{
		"testdata/payslip_small.csv":    testutil.PayslipSmall(),
		"testdata/payslip_small_q2.csv": testutil.PayslipSmallQ2(),
		"testdata/payslip_large.csv":    testutil.PayslipLarge(),
		"testdata/payslip_quarter.csv":  testutil.PayslipQuarter(),
	}
	for path, want := range tests {
		t.Run(path, func(t *testing.T) {
			f, err := os.Open(path)
			require.NoError(t, err)
			defer f.Close()

			ds, err := Parse(path, f)
			require.NoError(t, err)
			assert.Equal(t, want, ds.Fields)
		})
	}
}

func TestName(t *testing.T) {
	assert.Equal(t, "q1", Name("q1.csv"))
	assert.Equal(t, "q1", Name("/data/2024/q1.csv.zst"))
	assert.Equal(t, "q1", Name("s3://bucket/payslips/q1.csv.lz4"))
	assert.Equal(t, "payslips", Name("payslips"))
}
