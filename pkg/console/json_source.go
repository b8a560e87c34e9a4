package console

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/clif/pkg/domain"
	"github.com/aretw0/clif/pkg/ports"
)

// JSONSource reads input lines from JSON-Lines.
//
// Each line is either a JSON string ("greet Ada"), an object with a "line"
// field ({"line": "greet Ada"}) or, as a fallback, raw text. Blank lines are
// skipped. Lines that fail to decode or are rejected by the sanitizer are
// reported to Writer and skipped; only I/O failures and end of input are
// returned as errors.
type JSONSource struct {
	Reader    *bufio.Reader
	Writer    io.Writer
	Sanitizer Sanitizer
}

var _ ports.LineSource = (*JSONSource)(nil)

// NewJSONSource creates a JSON-Lines source.
// A nil reader means os.Stdin, a nil writer means os.Stdout.
func NewJSONSource(r io.Reader, w io.Writer, maxInputSize int) *JSONSource {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &JSONSource{
		Reader:    bufio.NewReader(r),
		Writer:    w,
		Sanitizer: Sanitizer{MaxSize: maxInputSize},
	}
}

type jsonLine struct {
	Line *string `json:"line"`
}

func (s *JSONSource) ReadLine(ctx context.Context) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		text, err := s.Reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && text != "") {
			if errors.Is(err, io.EOF) {
				return "", domain.ErrEndOfInput
			}
			return "", fmt.Errorf("input error: %w", err)
		}

		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		line, err := decodeJSONLine(text)
		if err == nil {
			line, err = s.Sanitizer.Clean(line)
		}
		if err != nil {
			fmt.Fprintf(s.Writer, "Error: %v. Please try again.\n", err)
			continue
		}
		return line, nil
	}
}

func decodeJSONLine(text string) (string, error) {
	var val string
	if err := json.Unmarshal([]byte(text), &val); err == nil {
		return val, nil
	}

	if strings.HasPrefix(text, "{") {
		var obj jsonLine
		if err := json.Unmarshal([]byte(text), &obj); err != nil {
			return "", fmt.Errorf("invalid json input: %w", err)
		}
		if obj.Line == nil {
			return "", errors.New(`invalid json input: missing "line"`)
		}
		return *obj.Line, nil
	}

	// Plain text is accepted as is.
	return text, nil
}
