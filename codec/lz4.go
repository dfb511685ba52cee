package codec

import (
	"io"

	"github.com/pierrec/lz4/v4"
)

// LZ4 decodes LZ4 frame streams.
type LZ4 struct{}

// NewReader returns an LZ4 frame reader over r.
func (LZ4) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(lz4.NewReader(r)), nil
}

// Name returns "lz4".
func (LZ4) Name() string { return "lz4" }

// Ext returns ".lz4".
func (LZ4) Ext() string { return ".lz4" }
