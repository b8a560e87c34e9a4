package console

import (
	"context"

	"github.com/aretw0/clif/pkg/domain"
	"github.com/aretw0/clif/pkg/ports"
)

// ScriptSource replays fixed lines.
type ScriptSource struct {
	lines []string
	next  int
}

var _ ports.LineSource = (*ScriptSource)(nil)

// NewScriptSource creates a source that yields lines in order.
func NewScriptSource(lines ...string) *ScriptSource {
	return &ScriptSource{lines: lines}
}

func (s *ScriptSource) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.next >= len(s.lines) {
		return "", domain.ErrEndOfInput
	}
	line := s.lines[s.next]
	s.next++
	return line, nil
}

// Remaining returns how many lines have not been read yet.
func (s *ScriptSource) Remaining() int {
	return len(s.lines) - s.next
}
