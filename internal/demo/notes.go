package demo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/clif/pkg/domain"
)

// NotesName is the display name of the notes pool.
const NotesName = "Notes"

// ErrNoNotes is returned by commands that need at least one note.
var ErrNoNotes = errors.New("no notes yet")

// Notes is a notebook pool. Unlike the calculator its state survives exits,
// so reopening it shows earlier notes.
type Notes struct {
	domain.NopHooks
	items []string
}

// NewNotes creates an empty notebook.
func NewNotes() *Notes {
	return &Notes{}
}

func (n *Notes) Name() string { return NotesName }

// Items returns a copy of the notes.
func (n *Notes) Items() []string {
	out := make([]string, len(n.items))
	copy(out, n.items)
	return out
}

func (n *Notes) Commands() []domain.Command {
	return []domain.Command{
		domain.NewArgsCommand("add", func(ctx context.Context, inv domain.Invocation) error {
			text := strings.TrimSpace(strings.Join(inv.Args, " "))
			if text == "" {
				return errors.New("empty note")
			}
			n.items = append(n.items, text)
			fmt.Fprintf(inv.Controller.Output(), "Noted (%d)\n", len(n.items))
			return nil
		}, domain.WithHelp("Adds a note"), domain.WithArguments("<Text>")),
		domain.NewCommand("list", func(ctx context.Context, inv domain.Invocation) error {
			out := inv.Controller.Output()
			if len(n.items) == 0 {
				fmt.Fprintln(out, "No notes")
				return nil
			}
			for i, item := range n.items {
				fmt.Fprintf(out, "%d. %s\n", i+1, item)
			}
			return nil
		}, domain.WithHelp("Lists all notes")),
		domain.NewCommand("last_note", func(ctx context.Context, inv domain.Invocation) error {
			if len(n.items) == 0 {
				return ErrNoNotes
			}
			fmt.Fprintln(inv.Controller.Output(), n.items[len(n.items)-1])
			return nil
		}, domain.WithHelp("Prints the most recent note")),
		domain.NewCommand("clear", func(ctx context.Context, inv domain.Invocation) error {
			n.items = nil
			fmt.Fprintln(inv.Controller.Output(), "Notes cleared")
			return nil
		}, domain.WithHelp("Deletes all notes")),
		domain.NewCommand("calc", func(ctx context.Context, inv domain.Invocation) error {
			return inv.Controller.Push(ctx, NewCalculator())
		}, domain.WithHelp("Opens a calculator on top of the notes")),
	}
}

func (n *Notes) OnStart(ctx context.Context, c domain.Controller) {
	fmt.Fprintf(c.Output(), "Notes open, %d kept\n", len(n.items))
}

func (n *Notes) OnResume(ctx context.Context, c domain.Controller) {
	fmt.Fprintln(c.Output(), "Back in "+NotesName)
}

func (n *Notes) OnExit(ctx context.Context, c domain.Controller) {
	fmt.Fprintf(c.Output(), "%d note(s) kept\n", len(n.items))
}
