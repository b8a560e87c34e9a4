package runtime

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/clif/pkg/domain"
)

// Tokenize splits a line on single spaces.
// Trailing empty tokens are dropped; interior ones are kept, so "a  b" yields
// the arguments ["", "b"]. hasArgs reports a variadic call shape.
func Tokenize(line string) (name string, args []string, hasArgs bool) {
	parts := strings.Split(line, " ")
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	switch len(parts) {
	case 0:
		return "", nil, false
	case 1:
		return parts[0], nil, false
	default:
		return parts[0], parts[1:], true
	}
}

// Dispatch resolves one input line against the current table and runs the
// matching handler.
//
// Errors: domain.ErrNoSuchCommand (wrapped) when nothing matches,
// *domain.CommandExecutionError when the handler fails or panics, and
// *domain.DispatchFault when the machinery itself is inconsistent.
func (e *Engine) Dispatch(ctx context.Context, line string) (err error) {
	start := e.now()
	token, args, hasArgs := Tokenize(line)
	name := e.codec.Internalize(token)
	poolName, _ := e.PoolName()

	defer func() {
		outcome := Outcome(err)
		e.logger.Debug("dispatch", "pool", poolName, "command", token, "args", len(args), "outcome", outcome)
		if e.hooks.OnDispatch != nil {
			e.hooks.OnDispatch(ctx, &domain.DispatchEvent{
				EventBase: e.eventBase(domain.EventDispatch),
				Pool:      poolName,
				Command:   name,
				Args:      args,
				Outcome:   outcome,
				Duration:  e.now().Sub(start),
				Err:       err,
			})
		}
	}()

	if e.table == nil {
		return &domain.DispatchFault{Op: "resolve", Err: errors.New("no command table")}
	}

	cmd, ok := e.table.Resolve(name, hasArgs)
	if !ok {
		return fmt.Errorf("%w: %q", domain.ErrNoSuchCommand, token)
	}
	if cmd.Handler == nil {
		return &domain.DispatchFault{Op: "invoke", Err: fmt.Errorf("command %s has no handler", name)}
	}
	return e.invoke(ctx, cmd, args)
}

func (e *Engine) invoke(ctx context.Context, cmd domain.Command, args []string) (err error) {
	display := e.codec.Externalize(cmd.Name)
	defer func() {
		if r := recover(); r != nil {
			err = &domain.CommandExecutionError{Command: display, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	if herr := cmd.Handler(ctx, domain.Invocation{Controller: e, Args: args}); herr != nil {
		return &domain.CommandExecutionError{Command: display, Err: herr}
	}
	return nil
}

// Outcome classifies a Dispatch result.
// A missing command stays "not_found" even when a handler reports it, and an
// empty stack is always a fault: it means the engine lost track of its pools.
func Outcome(err error) string {
	var execErr *domain.CommandExecutionError
	switch {
	case err == nil:
		return domain.OutcomeOK
	case errors.Is(err, domain.ErrEmptyStack):
		return domain.OutcomeFault
	case errors.Is(err, domain.ErrNoSuchCommand):
		return domain.OutcomeNotFound
	case errors.As(err, &execErr):
		return domain.OutcomeFailed
	default:
		return domain.OutcomeFault
	}
}
