package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/runmerge"
	"github.com/hupe1980/runmerge/internal/cli"
)

func writeSources(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
}

func TestRun_MergesIntoFile(t *testing.T) {
	root := t.TempDir()
	data := filepath.Join(root, "data")
	writeSources(t, data, map[string]string{
		"a.txt": "k v\n0.3 x\n0.1 y\n",
		"b.txt": "k v\n0.2 z\n",
		"c.txt": "k v\noops z\n",
	})
	out := filepath.Join(root, "foo.txt")
	require.NoError(t, os.WriteFile(out, []byte("prior\n"), 0o644))

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-header", "-column", "0", "-dir", data, "-o", out, "-log-level", "debug"}, &stdout, &stderr)
	require.NoError(t, err)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "prior\n0.1 y\n0.2 z\n0.3 x\n", string(got))
	assert.Contains(t, stderr.String(), "source skipped")
	assert.Contains(t, stderr.String(), "root="+data)
	assert.Contains(t, stderr.String(), "destination="+out)
	assert.Empty(t, stdout.String())
}

func TestRun_Stdout(t *testing.T) {
	data := filepath.Join(t.TempDir(), "data")
	writeSources(t, data, map[string]string{
		"a": "a b 2\n",
		"b": "c d 1\n",
	})

	var stdout bytes.Buffer
	err := run(context.Background(), []string{"-dir", data, "-o", "-", "-log-level", "error"}, &stdout, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "c d 1\na b 2\n", stdout.String())
}

func TestRun_ConfigFile(t *testing.T) {
	root := t.TempDir()
	data := filepath.Join(root, "in")
	writeSources(t, data, map[string]string{"a": "2\n1\n"})
	out := filepath.Join(root, "out.txt")

	cfg := filepath.Join(root, "runmerge.hcl")
	require.NoError(t, os.WriteFile(cfg, []byte(
		"column = 0\ndirectory = \""+filepath.ToSlash(data)+"\"\noutput = \""+filepath.ToSlash(out)+"\"\n"), 0o644))

	require.NoError(t, run(context.Background(), []string{"-config", cfg}, &bytes.Buffer{}, &bytes.Buffer{}))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n", string(got))
}

func TestRun_UsageError(t *testing.T) {
	err := run(context.Background(), []string{"-column", "x"}, &bytes.Buffer{}, &bytes.Buffer{})
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, cli.ExitUsage, exitErr.Code)
}

func TestRun_Help(t *testing.T) {
	var stdout bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-help"}, &stdout, &bytes.Buffer{}))
	assert.Contains(t, stdout.String(), "runmerge")
}

func TestRun_MissingDirectoryIsFatal(t *testing.T) {
	root := t.TempDir()
	err := run(context.Background(), []string{"-dir", filepath.Join(root, "nope"), "-o", filepath.Join(root, "o")}, &bytes.Buffer{}, &bytes.Buffer{})
	require.Error(t, err)
	assert.ErrorIs(t, err, runmerge.ErrSourceUnreadable)

	_, statErr := os.Stat(filepath.Join(root, "o"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRun_SinkFailure(t *testing.T) {
	root := t.TempDir()
	data := filepath.Join(root, "data")
	writeSources(t, data, map[string]string{"a": "x y 1\n"})

	// A directory cannot be opened for append.
	err := run(context.Background(), []string{"-dir", data, "-o", root}, &bytes.Buffer{}, &bytes.Buffer{})
	require.Error(t, err)
	assert.ErrorIs(t, err, runmerge.ErrSinkWriteFailed)
}
