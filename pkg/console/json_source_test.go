package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/aretw0/clif/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONSource_ReadLine(t *testing.T) {
	input := `"greet Ada"
{"line": "calc"}

add 1 2
{"line": "echo  a\u0007b"}
"exit"`
	src := NewJSONSource(strings.NewReader(input), &bytes.Buffer{}, 0)
	ctx := context.Background()

	var got []string
	for {
		line, err := src.ReadLine(ctx)
		if err != nil {
			assert.ErrorIs(t, err, domain.ErrEndOfInput)
			break
		}
		got = append(got, line)
	}

	assert.Equal(t, []string{"greet Ada", "calc", "add 1 2", "echo  ab", "exit"}, got)
}

func TestJSONSource_SkipsRejectedLines(t *testing.T) {
	tests := []struct {
		name    string
		bad     string
		message string
	}{
		{"Broken Object", `{"line": 1}`, "invalid json input"},
		{"Missing Line", `{"lnie": "greet"}`, `missing "line"`},
		{"Too Large", `"` + strings.Repeat("a", 64) + `"`, "input exceeds maximum allowed size"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			src := NewJSONSource(strings.NewReader(tt.bad+"\n"+`"greet Ada"`+"\n"), &out, 32)

			line, err := src.ReadLine(context.Background())
			require.NoError(t, err)
			assert.Equal(t, "greet Ada", line)
			assert.Contains(t, out.String(), "Error: ")
			assert.Contains(t, out.String(), tt.message)
			assert.Contains(t, out.String(), "Please try again.")

			_, err = src.ReadLine(context.Background())
			assert.ErrorIs(t, err, domain.ErrEndOfInput)
		})
	}
}

func TestJSONSource_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := NewJSONSource(strings.NewReader(`"greet"`+"\n"), &bytes.Buffer{}, 0)
	_, err := src.ReadLine(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
