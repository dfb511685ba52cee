package run

import (
	"context"
	"fmt"
	"io"

	"github.com/hupe1980/runmerge/blobstore"
	"github.com/hupe1980/runmerge/codec"
)

// LoadBlob opens name in store and loads it. When decode is set, the source
// is decompressed according to its name suffix (see codec.ForName).
func LoadBlob(ctx context.Context, store blobstore.BlobStore, name string, cfg Config, decode bool) (*Run, error) {
	contents, err := readSource(ctx, store, name, decode)
	if err != nil {
		return nil, &SourceError{Source: name, cause: fmt.Errorf("%w: %w", ErrSourceUnreadable, err)}
	}
	return Parse(name, contents, cfg)
}

func readSource(ctx context.Context, store blobstore.BlobStore, name string, decode bool) (string, error) {
	blob, err := store.Open(ctx, name)
	if err != nil {
		return "", err
	}
	defer blob.Close()

	c := codec.Plain
	if decode {
		c = codec.ForName(name)
	}
	if c == codec.Plain {
		data, err := blobstore.ReadAll(ctx, blob)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	raw, err := blob.ReadRange(ctx, 0, blob.Size())
	if err != nil {
		return "", err
	}
	defer raw.Close()

	dec, err := c.NewReader(raw)
	if err != nil {
		return "", fmt.Errorf("%s: %w", c.Name(), err)
	}
	defer dec.Close()

	data, err := io.ReadAll(dec)
	if err != nil {
		return "", fmt.Errorf("%s: %w", c.Name(), err)
	}
	return string(data), nil
}
