package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/clif"
	"github.com/aretw0/clif/internal/config"
	"github.com/aretw0/clif/internal/presentation/tui"
	"github.com/aretw0/clif/pkg/console"
	"github.com/aretw0/clif/pkg/domain"
	"golang.org/x/term"
)

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// createCLI builds the CLI with the binary's conventions: prompt only on a
// terminal, logs on stderr, hooks as given.
func createCLI(opts RunOptions, cfg config.Config, interactive bool, logger *slog.Logger, hooks domain.LifecycleHooks) *clif.CLI {
	cliOpts := []clif.Option{
		clif.WithLogger(logger),
		clif.WithLifecycleHooks(hooks),
		clif.WithInput(opts.Stdin),
		clif.WithOutput(opts.Stdout),
		clif.WithErrorOutput(opts.Stderr),
		clif.WithMaxInputSize(cfg.MaxInputSize),
	}
	if opts.JSON {
		cliOpts = append(cliOpts, clif.WithLineSource(console.NewJSONSource(opts.Stdin, opts.Stdout, cfg.MaxInputSize)))
	} else if interactive {
		cliOpts = append(cliOpts, clif.WithPrompt(cfg.Prompt))
	}
	return clif.New(cliOpts...)
}

// createRenderer picks the markdown renderer for long help pages.
func createRenderer(cfg config.Config, interactive bool, logger *slog.Logger) tui.Renderer {
	if !cfg.Markdown {
		return tui.Plain
	}
	r, err := tui.NewRenderer(interactive, 0)
	if err != nil {
		logger.Warn("Markdown renderer unavailable", "err", err)
		return tui.Plain
	}
	return r
}
