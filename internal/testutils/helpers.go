package testutils

import (
	"context"
	"fmt"
	"testing"

	"github.com/aretw0/clif/pkg/domain"
	"github.com/stretchr/testify/require"
)

// Recorder collects lifecycle calls from every pool that shares it, in call order.
type Recorder struct {
	Events []string
}

// Pool creates a pool that records its lifecycle calls as "<hook>:<name>".
func (r *Recorder) Pool(name string, cmds ...domain.Command) *RecordingPool {
	return &RecordingPool{name: name, cmds: cmds, rec: r}
}

// Reset forgets recorded events.
func (r *Recorder) Reset() {
	r.Events = nil
}

func (r *Recorder) add(hook, name string) {
	r.Events = append(r.Events, fmt.Sprintf("%s:%s", hook, name))
}

// RecordingPool is a domain.Pool that reports its hooks to a Recorder.
type RecordingPool struct {
	name string
	cmds []domain.Command
	rec  *Recorder
}

func (p *RecordingPool) Name() string                                { return p.name }
func (p *RecordingPool) Commands() []domain.Command                  { return p.cmds }
func (p *RecordingPool) OnStart(context.Context, domain.Controller)  { p.rec.add("start", p.name) }
func (p *RecordingPool) OnResume(context.Context, domain.Controller) { p.rec.add("resume", p.name) }
func (p *RecordingPool) OnExit(context.Context, domain.Controller)   { p.rec.add("exit", p.name) }
func (p *RecordingPool) OnEnd(context.Context)                       { p.rec.add("end", p.name) }

// Print returns a 0-arg command that writes text to the controller output.
func Print(name, text string, opts ...domain.CommandOption) domain.Command {
	return domain.NewCommand(name, func(ctx context.Context, inv domain.Invocation) error {
		_, err := fmt.Fprintln(inv.Controller.Output(), text)
		return err
	}, opts...)
}

// Fail returns a 0-arg command whose handler always fails with err.
func Fail(name string, err error) domain.Command {
	return domain.NewCommand(name, func(context.Context, domain.Invocation) error {
		return err
	})
}

// Push returns a 0-arg command that pushes target.
func Push(name string, target domain.Pool) domain.Command {
	return domain.NewCommand(name, func(ctx context.Context, inv domain.Invocation) error {
		return inv.Controller.Push(ctx, target)
	})
}

// MustPush pushes p and fails the test on error.
func MustPush(t *testing.T, c domain.Controller, p domain.Pool) {
	t.Helper()
	require.NoError(t, c.Push(context.Background(), p), "push %s", p.Name())
}
