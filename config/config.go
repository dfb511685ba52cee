// Package config loads merge settings from an HCL file.
//
// Every attribute is optional. Expressions may reference environment
// variables through the env object:
//
//	header    = true
//	column    = 0
//	directory = "s3://bucket/runs"
//	output    = env.OUT_FILE
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// Defaults.
const (
	DefaultColumn    = 2
	DefaultDirectory = "data"
	DefaultOutput    = "foo.txt"
)

// StdoutOutput selects standard output as the destination.
const StdoutOutput = "-"

var (
	// ErrInvalidColumn is returned when column is negative.
	ErrInvalidColumn = errors.New("config: column must be non-negative")

	// ErrInvalidConcurrency is returned when load_concurrency is below one.
	ErrInvalidConcurrency = errors.New("config: load_concurrency must be at least 1")

	// ErrInvalidReadLimit is returned when read_limit_bytes is negative.
	ErrInvalidReadLimit = errors.New("config: read_limit_bytes must be non-negative")
)

// Config holds the settings of one merge invocation.
type Config struct {
	Header          bool
	Column          int
	Directory       string
	Output          string
	Prefix          string
	LoadConcurrency int
	ReadLimitBytes  int64
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Column:          DefaultColumn,
		Directory:       DefaultDirectory,
		Output:          DefaultOutput,
		LoadConcurrency: 1,
	}
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Column < 0 {
		return ErrInvalidColumn
	}
	if c.LoadConcurrency < 1 {
		return ErrInvalidConcurrency
	}
	if c.ReadLimitBytes < 0 {
		return ErrInvalidReadLimit
	}
	return nil
}

// file is the HCL schema. Pointers distinguish absent attributes from zero values.
type file struct {
	Header          *bool   `hcl:"header,optional"`
	Column          *int    `hcl:"column,optional"`
	Directory       *string `hcl:"directory,optional"`
	Output          *string `hcl:"output,optional"`
	Prefix          *string `hcl:"prefix,optional"`
	LoadConcurrency *int    `hcl:"load_concurrency,optional"`
	ReadLimitBytes  *int64  `hcl:"read_limit_bytes,optional"`
}

// Load parses the HCL file at path and applies it over Default.
func Load(path string) (Config, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("failed to parse config file %s: %s", path, diags.Error())
	}
	return decode(path, f.Body, os.Environ())
}

// Parse is Load for in-memory source. filename is used in diagnostics.
func Parse(src []byte, filename string, environ []string) (Config, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("failed to parse config file %s: %s", filename, diags.Error())
	}
	return decode(filename, f.Body, environ)
}

func decode(filename string, body hcl.Body, environ []string) (Config, error) {
	var raw file
	if diags := gohcl.DecodeBody(body, evalContext(environ), &raw); diags.HasErrors() {
		return Config{}, fmt.Errorf("failed to decode config file %s: %s", filename, diags.Error())
	}

	cfg := Default()
	if raw.Header != nil {
		cfg.Header = *raw.Header
	}
	if raw.Column != nil {
		cfg.Column = *raw.Column
	}
	if raw.Directory != nil {
		cfg.Directory = *raw.Directory
	}
	if raw.Output != nil {
		cfg.Output = *raw.Output
	}
	if raw.Prefix != nil {
		cfg.Prefix = *raw.Prefix
	}
	if raw.LoadConcurrency != nil {
		cfg.LoadConcurrency = *raw.LoadConcurrency
	}
	if raw.ReadLimitBytes != nil {
		cfg.ReadLimitBytes = *raw.ReadLimitBytes
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", filename, err)
	}
	return cfg, nil
}

// evalContext exposes environ as the env object.
func evalContext(environ []string) *hcl.EvalContext {
	vars := make(map[string]cty.Value, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		vars[k] = cty.StringVal(v)
	}
	env := cty.EmptyObjectVal
	if len(vars) > 0 {
		env = cty.ObjectVal(vars)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": env},
	}
}
