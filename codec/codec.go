// Package codec centralizes decoding of compressed run sources.
//
// A source is decoded according to its name suffix: ".gz" (gzip), ".zst"
// (zstandard) and ".lz4" (LZ4 frame). Any other name is read as plain text.
// The decoded stream is what the run loader splits into lines.
package codec

import (
	"io"
	"path"
	"strings"
)

// Codec decodes a compressed byte stream.
// Implementations must be safe for concurrent use.
type Codec interface {
	// NewReader wraps r. Closing the returned reader releases codec
	// resources; it does not close r.
	NewReader(r io.Reader) (io.ReadCloser, error)
	// Name returns the stable codec name.
	Name() string
	// Ext returns the file name suffix handled by the codec, including the dot.
	Ext() string
}

// Plain is the identity codec for uncompressed sources.
var Plain Codec = plain{}

var builtin = []Codec{Plain, Gzip{}, Zstd{}, LZ4{}}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	for _, c := range builtin {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}

// ForName returns the codec for a source name, based on its suffix.
// Names without a known suffix use Plain.
func ForName(name string) Codec {
	ext := strings.ToLower(path.Ext(name))
	if ext == "" {
		return Plain
	}
	for _, c := range builtin {
		if c.Ext() == ext {
			return c
		}
	}
	return Plain
}

type plain struct{}

func (plain) NewReader(r io.Reader) (io.ReadCloser, error) { return io.NopCloser(r), nil }

func (plain) Name() string { return "plain" }

func (plain) Ext() string { return "" }
