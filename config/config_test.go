package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.False(t, cfg.Header)
	assert.Equal(t, 2, cfg.Column)
	assert.Equal(t, "data", cfg.Directory)
	assert.Equal(t, "foo.txt", cfg.Output)
	assert.Equal(t, 1, cfg.LoadConcurrency)
	assert.Zero(t, cfg.ReadLimitBytes)
	assert.NoError(t, cfg.Validate())
}

func TestParse_AllAttributes(t *testing.T) {
	src := `
header           = true
column           = 0
directory        = "s3://bucket/runs"
output           = "merged.txt"
prefix           = "part-"
load_concurrency = 4
read_limit_bytes = 1048576
`
	cfg, err := Parse([]byte(src), "runmerge.hcl", nil)
	require.NoError(t, err)
	assert.Equal(t, Config{
		Header:          true,
		Column:          0,
		Directory:       "s3://bucket/runs",
		Output:          "merged.txt",
		Prefix:          "part-",
		LoadConcurrency: 4,
		ReadLimitBytes:  1048576,
	}, cfg)
}

func TestParse_PartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`header = true`), "runmerge.hcl", nil)
	require.NoError(t, err)

	want := Default()
	want.Header = true
	assert.Equal(t, want, cfg)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(nil, "runmerge.hcl", nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse_EnvReference(t *testing.T) {
	src := `
output    = env.OUT_FILE
directory = "${env.BASE}/runs"
`
	cfg, err := Parse([]byte(src), "runmerge.hcl", []string{"OUT_FILE=out.txt", "BASE=/srv", "EMPTY="})
	require.NoError(t, err)
	assert.Equal(t, "out.txt", cfg.Output)
	assert.Equal(t, "/srv/runs", cfg.Directory)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		err  error
	}{
		{name: "negative column", src: `column = -1`, err: ErrInvalidColumn},
		{name: "zero concurrency", src: `load_concurrency = 0`, err: ErrInvalidConcurrency},
		{name: "negative read limit", src: `read_limit_bytes = -5`, err: ErrInvalidReadLimit},
		{name: "unknown attribute", src: `colum = 1`},
		{name: "wrong type", src: `header = "maybe"`},
		{name: "syntax", src: `header = `},
		{name: "undefined env", src: `output = env.NOT_SET`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), "runmerge.hcl", []string{"HOME=/root"})
			require.Error(t, err)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runmerge.hcl")
	require.NoError(t, os.WriteFile(path, []byte("column = 1\noutput = \"-\"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Column)
	assert.Equal(t, StdoutOutput, cfg.Output)

	_, err = Load(filepath.Join(t.TempDir(), "missing.hcl"))
	assert.Error(t, err)
}
