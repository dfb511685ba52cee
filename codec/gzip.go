package codec

import (
	"io"

	"github.com/klauspost/compress/gzip"
)

// Gzip decodes gzip streams. Concatenated members are read as one stream.
type Gzip struct{}

// NewReader returns a gzip reader over r.
func (Gzip) NewReader(r io.Reader) (io.ReadCloser, error) {
	return gzip.NewReader(r)
}

// Name returns "gzip".
func (Gzip) Name() string { return "gzip" }

// Ext returns ".gz".
func (Gzip) Ext() string { return ".gz" }
