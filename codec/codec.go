// Package codec centralizes machine-readable report encoding.
//
// Reports printed with -output json go through a Codec selected by name, so
// the encoder can be swapped without touching the renderers.
package codec

import (
	"fmt"
	"io"
)

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// Encode writes v to w followed by a newline.
// If c is nil, Default is used.
func Encode(w io.Writer, c Codec, v any) error {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		return fmt.Errorf("codec %s marshal failed: %w", c.Name(), err)
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}
