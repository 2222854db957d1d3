//go:build !integration

package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToFloat64(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected float64
	}{
		{name: "float64", input: 12.5, expected: 12.5},
		{name: "float32", input: float32(2.5), expected: 2.5},
		{name: "int64", input: int64(7), expected: 7},
		{name: "int", input: 3, expected: 3},
		{name: "decimal string", input: "1014.33", expected: 1014.33},
		{name: "bytes", input: []byte("2.25"), expected: 2.25},
		{name: "nil", input: nil, expected: 0},
		{name: "garbage string", input: "abc", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, toFloat64(tt.input))
		})
	}
}

func TestToInt64(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected int64
	}{
		{name: "int64", input: int64(15000), expected: 15000},
		{name: "int32", input: int32(4), expected: 4},
		{name: "float64", input: 9.0, expected: 9},
		{name: "string", input: "42", expected: 42},
		{name: "nil", input: nil, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, toInt64(tt.input))
		})
	}
}

func TestToString(t *testing.T) {
	assert.Equal(t, "GOLD", toString("GOLD"))
	assert.Equal(t, "GOLD", toString([]byte("GOLD")))
	assert.Equal(t, "", toString(nil))
	assert.Equal(t, "", toString(42))
}

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "2024-01", monthLabel(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-02", monthLabel("2024-02-01"))
	assert.Equal(t, "2024-03", monthLabel([]byte("2024-03-01 00:00:00")))
	assert.Equal(t, "", monthLabel("2024"))
	assert.Equal(t, "", monthLabel(nil))
}
