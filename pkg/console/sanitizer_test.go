package console

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeInput_SizeLimit(t *testing.T) {
	limit := DefaultMaxInputSize

	tests := []struct {
		name      string
		inputSize int
		wantErr   bool
	}{
		{"Under Limit", limit - 1, false},
		{"Exact Limit", limit, false},
		{"Over Limit", limit + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SanitizeInput(strings.Repeat("a", tt.inputSize))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInputTooLarge)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSanitizer_CustomLimit(t *testing.T) {
	s := Sanitizer{MaxSize: 5}
	_, err := s.Clean("123456")
	assert.ErrorIs(t, err, ErrInputTooLarge)

	got, err := s.Clean("12345")
	require.NoError(t, err)
	assert.Equal(t, "12345", got)
}

func TestSanitizer_EnvLimit(t *testing.T) {
	t.Setenv(EnvMaxInputSize, "3")
	_, err := SanitizeInput("abcd")
	assert.ErrorIs(t, err, ErrInputTooLarge)

	t.Setenv(EnvMaxInputSize, "not-a-number")
	_, err = SanitizeInput("abcd")
	assert.NoError(t, err)
}

func TestSanitizeInput_ControlChars(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Normal Text", "exit-all", "exit-all"},
		{"Tab Kept", "say\thello", "say\thello"},
		{"ANSI Code", "\x1b[31mhelp\x1b[0m", "[31mhelp[0m"},
		{"Null Byte", "he\x00lp", "help"},
		{"Bell", "help\x07", "help"},
		{"Stray Carriage Return", "he\rlp", "help"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizeInput(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSanitizeInput_InvalidUTF8(t *testing.T) {
	_, err := SanitizeInput("bad \xff byte")
	assert.ErrorIs(t, err, ErrInvalidUTF8)
}
