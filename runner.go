package clif

import (
	"context"
	"errors"
	"fmt"

	"github.com/aretw0/clif/internal/runtime"
	"github.com/aretw0/clif/pkg/domain"
)

// Messages written by the loop. Their wording is part of the output contract.
const (
	MsgUnsupportedCommand = "Unsupported command. Type \"help\" for a list of commands."
	MsgCommandException   = "Exception while processing command: "
)

// Run pushes root and processes input until the pool stack is empty.
//
// It returns nil once the last pool has been exited. Unknown commands and
// failing handlers are reported to the output and the loop continues. Any
// other error ends the run and is returned: end of input, context
// cancellation, a pool rejected at push time, or an engine fault (also
// reported to the error output). Pools still on the stack after a fatal
// error are left in place; call Controller().ExitAll to tear them down.
func (c *CLI) Run(ctx context.Context, root domain.Pool) error {
	if err := c.runtime.Push(ctx, root); err != nil {
		return err
	}
	c.logger.Debug("run started", "pool", root.Name())

	for c.runtime.Depth() > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := c.source.ReadLine(ctx)
		if err != nil {
			if errors.Is(err, domain.ErrEndOfInput) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				c.logger.Debug("run aborted", "err", err)
				return err
			}
			return fmt.Errorf("input error: %w", err)
		}

		if err := c.report(c.runtime.Dispatch(ctx, line)); err != nil {
			return err
		}
		fmt.Fprintln(c.out)
	}

	c.logger.Debug("run finished")
	return nil
}

// report writes the user-facing message for a dispatch result and returns
// the error only when it is fatal.
func (c *CLI) report(err error) error {
	switch runtime.Outcome(err) {
	case domain.OutcomeOK:
		return nil
	case domain.OutcomeNotFound:
		fmt.Fprintln(c.out, MsgUnsupportedCommand)
		return nil
	case domain.OutcomeFailed:
		var execErr *domain.CommandExecutionError
		if errors.As(err, &execErr) {
			fmt.Fprintln(c.out, MsgCommandException+execErr.Err.Error())
		}
		return nil
	default:
		fmt.Fprintf(c.errOut, "An unknown error occurred (%v)\n", err)
		c.logger.Error("dispatch fault", "err", err)
		return err
	}
}
