package ports

import "context"

// LineSource supplies input lines to the engine.
type LineSource interface {
	// ReadLine blocks until a full line is available and returns it without
	// its line terminator. When no more input will ever arrive it returns
	// domain.ErrEndOfInput (possibly wrapped).
	ReadLine(ctx context.Context) (string, error)
}

// LineSourceFunc adapts a function to LineSource.
type LineSourceFunc func(ctx context.Context) (string, error)

func (f LineSourceFunc) ReadLine(ctx context.Context) (string, error) {
	return f(ctx)
}
