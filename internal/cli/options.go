package cli

import (
	"io"
)

// RunOptions contains all the configuration for the demo command.
type RunOptions struct {
	ConfigPath string
	// ConfigRequired makes a missing config file an error.
	ConfigRequired bool
	Debug          bool
	// JSON reads JSON-Lines input instead of plain text.
	JSON bool
	// Overrides are applied on top of the config file, keyed like it.
	Overrides map[string]any

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}
