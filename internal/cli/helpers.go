package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/aretw0/clif/internal/logging"
	"github.com/aretw0/clif/pkg/domain"
)

// SignalContext wraps a context and captures the signal that cancelled it.
type SignalContext struct {
	context.Context
	Cancel func()
	start  sync.Once
	stop   sync.Once
	sigCh  chan os.Signal
	sigVal os.Signal
	mu     sync.Mutex
}

// NewSignalContext creates a context that is cancelled on SIGINT or SIGTERM.
// It acts as a drop-in replacement for signal.NotifyContext but allows retrieving the signal.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{
		Context: ctx,
		Cancel:  cancel,
		sigCh:   make(chan os.Signal, 1),
	}

	sc.start.Do(func() {
		signal.Notify(sc.sigCh, os.Interrupt, syscall.SIGTERM)
		go func() {
			select {
			case sig := <-sc.sigCh:
				sc.mu.Lock()
				sc.sigVal = sig
				sc.mu.Unlock()
				sc.Cancel()
			case <-sc.Context.Done():
			}
			sc.stop.Do(func() {
				signal.Stop(sc.sigCh)
			})
		}()
	})

	return sc
}

// Signal returns the signal that caused the context to be cancelled, or nil.
func (sc *SignalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sigVal
}

// createLogger configures the application logger.
// --debug wins over the configured level; logs always go to w (Stderr in
// production) so they stay out of the command output.
func createLogger(w io.Writer, debug bool, level string) (*slog.Logger, error) {
	if debug {
		return logging.NewWithWriter(w, slog.LevelDebug), nil
	}
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return logging.NewWithWriter(w, lvl), nil
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}

func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	pool := func(msg string) func(context.Context, *domain.PoolEvent) {
		return func(ctx context.Context, e *domain.PoolEvent) {
			logger.Debug(msg, "pool", e.Pool, "depth", e.Depth)
		}
	}
	return domain.LifecycleHooks{
		OnPoolStart:  pool("Pool Start"),
		OnPoolResume: pool("Pool Resume"),
		OnPoolExit:   pool("Pool Exit"),
		OnDispatch: func(ctx context.Context, e *domain.DispatchEvent) {
			if e.Err != nil {
				logger.Debug("Dispatch (Error)", "pool", e.Pool, "command", e.Command, "outcome", e.Outcome, "err", e.Err)
			} else {
				logger.Debug("Dispatch (Success)", "pool", e.Pool, "command", e.Command, "duration", e.Duration)
			}
		},
	}
}

func isInterrupted(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, domain.ErrEndOfInput)
}

// handleExecutionError maps a run result to the process result.
// Interruptions and end of input end the demo normally.
func handleExecutionError(err error) error {
	if err == nil || isInterrupted(err) {
		return nil
	}
	return err
}

func logCompletion(w io.Writer, pool string, err error, sig os.Signal) {
	where := ""
	if pool != "" {
		where = fmt.Sprintf(" in '%s' pool", pool)
	}
	switch {
	case err == nil:
		printSystemMessage(w, "All pools exited.")
	case errors.Is(err, domain.ErrEndOfInput):
		fmt.Fprintln(w)
		printSystemMessage(w, "End of input%s.", where)
	case sig == os.Interrupt:
		fmt.Fprintf(w, "[CTRL+C]\n")
		printSystemMessage(w, "Interrupted%s.", where)
	case sig != nil:
		fmt.Fprintln(w)
		printSystemMessage(w, "Terminated%s.", where)
	case isInterrupted(err):
		fmt.Fprintln(w)
		printSystemMessage(w, "Interrupted%s.", where)
	}
}
