package codec

import (
	"io"
	"sync"

	"github.com/klauspost/compress/zstd"
)

var zstdDecoderPool sync.Pool

func getZstdDecoder(r io.Reader) (*zstd.Decoder, error) {
	if v := zstdDecoderPool.Get(); v != nil {
		dec := v.(*zstd.Decoder)
		if err := dec.Reset(r); err != nil {
			dec.Close()
			return nil, err
		}
		return dec, nil
	}
	// Sources are read front to back once; async block decoding buys nothing.
	return zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
}

// Zstd decodes zstandard streams.
type Zstd struct{}

// NewReader returns a pooled zstd decoder over r.
func (Zstd) NewReader(r io.Reader) (io.ReadCloser, error) {
	dec, err := getZstdDecoder(r)
	if err != nil {
		return nil, err
	}
	return &zstdReader{dec: dec}, nil
}

// Name returns "zstd".
func (Zstd) Name() string { return "zstd" }

// Ext returns ".zst".
func (Zstd) Ext() string { return ".zst" }

type zstdReader struct {
	dec *zstd.Decoder
}

func (z *zstdReader) Read(p []byte) (int, error) {
	if z.dec == nil {
		return 0, io.ErrClosedPipe
	}
	return z.dec.Read(p)
}

// Close returns the decoder to the pool.
func (z *zstdReader) Close() error {
	if z.dec == nil {
		return nil
	}
	dec := z.dec
	z.dec = nil
	if err := dec.Reset(nil); err != nil {
		dec.Close()
		return nil
	}
	zstdDecoderPool.Put(dec)
	return nil
}
