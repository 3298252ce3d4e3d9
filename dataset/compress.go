package dataset

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression identifies how a dataset file is compressed.
type Compression int

const (
	None Compression = iota
	Zstd
	LZ4
)

func (c Compression) String() string {
	switch c {
	case Zstd:
		return "zstd"
	case LZ4:
		return "lz4"
	default:
		return "none"
	}
}

var (
	zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}
	lz4Magic  = []byte{0x04, 0x22, 0x4D, 0x18}
)

// DetectCompression picks the compression from the file extension, falling
// back to the frame magic at the start of data.
func DetectCompression(name string, data []byte) Compression {
	switch {
	case strings.HasSuffix(name, ".zst"):
		return Zstd
	case strings.HasSuffix(name, ".lz4"):
		return LZ4
	case bytes.HasPrefix(data, zstdMagic):
		return Zstd
	case bytes.HasPrefix(data, lz4Magic):
		return LZ4
	}
	return None
}

// Decompress returns data decoded with c.
func Decompress(data []byte, c Compression) ([]byte, error) {
	switch c {
	case None:
		return data, nil
	case Zstd:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		out, err := dec.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("zstd: %w", err)
		}
		return out, nil
	case LZ4:
		out, err := io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
		if err != nil {
			return nil, fmt.Errorf("lz4: %w", err)
		}
		return out, nil
	}
	return nil, fmt.Errorf("unknown compression %d", c)
}
