package codec

import (
	"bytes"
	"io"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "0.3 x\n0.1 y\n0.2 z\n"

func gzipBytes(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func zstdBytes(t *testing.T, s string) []byte {
	t.Helper()
	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	defer enc.Close()
	return enc.EncodeAll([]byte(s), nil)
}

func lz4Bytes(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	_, err := w.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func decode(t *testing.T, c Codec, data []byte) string {
	t.Helper()
	r, err := c.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer r.Close()
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func TestForName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"a.txt", "plain"},
		{"run", "plain"},
		{"run.gz", "gzip"},
		{"dir/run.TXT.GZ", "gzip"},
		{"run.zst", "zstd"},
		{"run.lz4", "lz4"},
		{"run.bz2", "plain"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ForName(tt.name).Name(), tt.name)
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{"plain", "gzip", "zstd", "lz4"} {
		c, ok := ByName(name)
		require.True(t, ok, name)
		assert.Equal(t, name, c.Name())
	}
	_, ok := ByName("snappy")
	assert.False(t, ok)
}

func TestRoundTrip(t *testing.T) {
	assert.Equal(t, sample, decode(t, Plain, []byte(sample)))
	assert.Equal(t, sample, decode(t, Gzip{}, gzipBytes(t, sample)))
	assert.Equal(t, sample, decode(t, Zstd{}, zstdBytes(t, sample)))
	assert.Equal(t, sample, decode(t, LZ4{}, lz4Bytes(t, sample)))
}

func TestZstd_DecoderReuse(t *testing.T) {
	data := zstdBytes(t, sample)
	for i := 0; i < 3; i++ {
		assert.Equal(t, sample, decode(t, Zstd{}, data))
	}
}

func TestZstd_ReadAfterClose(t *testing.T) {
	r, err := Zstd{}.NewReader(bytes.NewReader(zstdBytes(t, sample)))
	require.NoError(t, err)
	require.NoError(t, r.Close())
	require.NoError(t, r.Close())
	_, err = r.Read(make([]byte, 4))
	assert.Error(t, err)
}

func TestGzip_Corrupt(t *testing.T) {
	_, err := Gzip{}.NewReader(bytes.NewReader([]byte("not gzip")))
	assert.Error(t, err)
}
