package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/clif/pkg/domain"
	"github.com/aretw0/clif/pkg/ports"
)

// TextHandler reads user input line by line.
// It reads synchronously on the caller's goroutine.
type TextHandler struct {
	Reader    *bufio.Reader
	Writer    io.Writer
	Prompt    string
	Sanitizer Sanitizer
}

var _ ports.LineSource = (*TextHandler)(nil)

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithPrompt prints prompt before every read.
func WithPrompt(prompt string) TextHandlerOption {
	return func(h *TextHandler) {
		h.Prompt = prompt
	}
}

// WithMaxInputSize sets the maximum accepted line length in bytes.
func WithMaxInputSize(n int) TextHandlerOption {
	return func(h *TextHandler) {
		h.Sanitizer.MaxSize = n
	}
}

// NewTextHandler creates a handler for standard text IO.
// A nil reader means os.Stdin, a nil writer means os.Stdout.
func NewTextHandler(r io.Reader, w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		Reader: bufio.NewReader(r),
		Writer: w,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ReadLine returns the next line without its terminator.
// A last line without a newline is still returned; the read after it reports
// domain.ErrEndOfInput. Lines rejected by the sanitizer are reported to the
// writer and the read is retried.
func (h *TextHandler) ReadLine(ctx context.Context) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if h.Prompt != "" {
			fmt.Fprint(h.Writer, h.Prompt)
		}

		text, err := h.Reader.ReadString('\n')
		if err != nil && text == "" {
			if errors.Is(err, io.EOF) {
				return "", domain.ErrEndOfInput
			}
			return "", fmt.Errorf("input error: %w", err)
		}

		text = strings.TrimRight(text, "\r\n")
		clean, serr := h.Sanitizer.Clean(text)
		if serr != nil {
			fmt.Fprintf(h.Writer, "Error: %v. Please try again.\n", serr)
			continue
		}
		return clean, nil
	}
}
