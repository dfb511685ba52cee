package record

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractKey(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		column int
		want   float64
	}{
		{"first column", "0.3 x", 0, 0.3},
		{"third column", "a b -12.5 c", 2, -12.5},
		{"last column", "a b 7", 2, 7},
		{"exponent", "1e3", 0, 1000},
		{"integer", "x 42", 1, 42},
		{"infinity", "inf a", 0, math.Inf(1)},
		{"overflow saturates", "1e999", 0, math.Inf(1)},
		{"single token line", "3.5", 0, 3.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractKey(tt.line, tt.column)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractKey_MissingColumn(t *testing.T) {
	tests := []struct {
		line   string
		column int
	}{
		{"0.1 a", 2},
		{"", 1},
		{"0.1", 1},
		{"0.1 a", -1},
	}

	for _, tt := range tests {
		_, err := ExtractKey(tt.line, tt.column)
		require.Error(t, err, "line %q column %d", tt.line, tt.column)
		assert.ErrorIs(t, err, ErrMissingColumn)
		assert.NotErrorIs(t, err, ErrInvalidNumber)
	}
}

func TestExtractKey_InvalidNumber(t *testing.T) {
	tests := []struct {
		line   string
		column int
	}{
		{"h1 h2", 0},
		{"a  b", 1}, // consecutive separators produce an empty token
		{"NaN x", 0},
		{"nan x", 0},
		{"0.1x y", 0},
		{"0x1p-2 a", 0},
		{"0X10P0 a", 0},
		{"-0x1p0 a", 0},
		{"0x1_0p0 a", 0},
		{"1_000 a", 0},
	}

	for _, tt := range tests {
		_, err := ExtractKey(tt.line, tt.column)
		require.Error(t, err, "line %q column %d", tt.line, tt.column)
		assert.ErrorIs(t, err, ErrInvalidNumber)

		var pe *ParseError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, tt.column, pe.Column)
	}
}

func TestExtractKey_UnwrapsStrconv(t *testing.T) {
	_, err := ExtractKey("abc", 0)
	var numErr *strconv.NumError
	require.True(t, errors.As(err, &numErr))
	assert.Equal(t, "abc", numErr.Num)
}

func TestParse_KeepsTextVerbatim(t *testing.T) {
	r, err := Parse("1.0 a  trailing ", 0)
	require.NoError(t, err)
	assert.Equal(t, Record{Key: 1.0, Text: "1.0 a  trailing "}, r)
}

func TestCompare(t *testing.T) {
	a := Record{Key: 1}
	b := Record{Key: 2}
	assert.Equal(t, -1, Compare(a, b))
	assert.Equal(t, 1, Compare(b, a))
	assert.Equal(t, 0, Compare(a, Record{Key: 1, Text: "other"}))
	assert.Equal(t, -1, Compare(Record{Key: math.Inf(-1)}, a))
}
