package domain

import (
	"errors"
	"fmt"
)

// ErrNoSuchCommand is returned when no command matches the typed name and call shape.
var ErrNoSuchCommand = errors.New("no such command")

// ErrEmptyStack is returned by stack operations on an empty stack.
// Under correct engine sequencing it never surfaces; when it does, the run is aborted.
var ErrEmptyStack = errors.New("pool stack is empty")

// ErrEndOfInput is returned when the input source will never produce another line.
var ErrEndOfInput = errors.New("end of input")

// ErrInvalidCommand is returned when a pool declares a malformed command.
var ErrInvalidCommand = errors.New("invalid command declaration")

// ErrDuplicateCommand is returned when a pool declares the same name and arity twice.
var ErrDuplicateCommand = errors.New("duplicate command declaration")

// CommandExecutionError wraps a failure raised by a command handler.
type CommandExecutionError struct {
	Command string
	Err     error
}

func (e *CommandExecutionError) Error() string {
	return fmt.Sprintf("command %q failed: %v", e.Command, e.Err)
}

func (e *CommandExecutionError) Unwrap() error {
	return e.Err
}

// DispatchFault reports an inconsistency in the resolution machinery itself.
type DispatchFault struct {
	Op  string
	Err error
}

func (e *DispatchFault) Error() string {
	return fmt.Sprintf("dispatch fault in %s: %v", e.Op, e.Err)
}

func (e *DispatchFault) Unwrap() error {
	return e.Err
}
