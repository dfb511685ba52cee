// Package record extracts numeric sort keys from column-delimited text lines.
//
// Lines are split on single literal spaces, so "a  b" has three tokens with an
// empty one in the middle. Columns are zero-based.
package record

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Separator is the token delimiter of a record line.
const Separator = " "

var (
	// ErrMissingColumn is returned when a line has no token at the key column.
	ErrMissingColumn = errors.New("missing key column")

	// ErrInvalidNumber is returned when the key token is not a finite or
	// infinite floating-point literal. NaN is rejected.
	ErrInvalidNumber = errors.New("invalid key number")
)

// Record is one keyed line of a source. Text is kept verbatim and written
// unchanged on emission.
type Record struct {
	Key  float64
	Text string
}

// ParseError describes a line whose key could not be extracted.
//
// It matches ErrMissingColumn or ErrInvalidNumber via errors.Is. The
// strconv error (if any) can be accessed via errors.Unwrap.
type ParseError struct {
	Column int
	Token  string
	Tokens int
	kind   error
	cause  error
}

func (e *ParseError) Error() string {
	if e.kind == ErrMissingColumn {
		return fmt.Sprintf("%v: column %d, line has %d tokens", e.kind, e.Column, e.Tokens)
	}
	return fmt.Sprintf("%v: column %d, token %q", e.kind, e.Column, e.Token)
}

// Is reports whether target is the error kind of e.
func (e *ParseError) Is(target error) bool { return target == e.kind }

func (e *ParseError) Unwrap() error { return e.cause }

// ExtractKey returns the float key at the zero-based column of line.
func ExtractKey(line string, column int) (float64, error) {
	tok, n, ok := token(line, column)
	if !ok {
		return 0, &ParseError{Column: column, Tokens: n, kind: ErrMissingColumn}
	}

	if !decimalLiteral(tok) {
		return 0, &ParseError{Column: column, Token: tok, kind: ErrInvalidNumber}
	}

	key, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		// Out-of-range literals still parse to ±Inf; keep them ordered.
		var numErr *strconv.NumError
		if !errors.As(err, &numErr) || numErr.Err != strconv.ErrRange {
			return 0, &ParseError{Column: column, Token: tok, kind: ErrInvalidNumber, cause: err}
		}
	}
	if math.IsNaN(key) {
		return 0, &ParseError{Column: column, Token: tok, kind: ErrInvalidNumber}
	}
	return key, nil
}

// Parse builds a Record from line, keyed on column.
func Parse(line string, column int) (Record, error) {
	key, err := ExtractKey(line, column)
	if err != nil {
		return Record{}, err
	}
	return Record{Key: key, Text: line}, nil
}

// Compare orders records by key. It is a total order for non-NaN keys.
func Compare(a, b Record) int {
	switch {
	case a.Key < b.Key:
		return -1
	case a.Key > b.Key:
		return 1
	default:
		return 0
	}
}

// token returns the column-th space-separated token of line without
// allocating the full split. n is the number of tokens seen when the column
// is out of range.
func token(line string, column int) (tok string, n int, ok bool) {
	if column < 0 {
		return "", 0, false
	}
	rest := line
	for i := 0; ; i++ {
		head, tail, found := strings.Cut(rest, Separator)
		if i == column {
			return head, 0, true
		}
		if !found {
			return "", i + 1, false
		}
		rest = tail
	}
}

// decimalLiteral rejects the Go-only forms ParseFloat also accepts:
// hexadecimal mantissas and digit-separating underscores.
func decimalLiteral(tok string) bool {
	if strings.Contains(tok, "_") {
		return false
	}
	t := strings.TrimLeft(tok, "+-")
	return !strings.HasPrefix(t, "0x") && !strings.HasPrefix(t, "0X")
}
