/*
Package clif is an engine for interactive, text-based command-line interfaces
built from nested command pools.

A pool is a named bundle of related commands with its own lifecycle. Pools are
pushed onto a stack: entering a sub-mode replaces the commands available to
the user, and exiting it restores the previous mode. The engine contributes
the built-in commands "help", "exit", "exit-all" and "current-pool" to every
pool.

# Concept

Each input line is split on spaces. A line holding a single token calls a
command that takes no arguments; a longer line calls a command that receives
every remaining token. Names are typed with dashes ("exit-all") and declared
with underscores ("exit_all"), or with the separator of the codec passed to
WithCodec. Pool commands are tried before the built-ins, so a pool may
override one.

The loop is single-threaded: a command runs to completion before the next
line is read, and handlers may push or exit pools while they run.

# Usage

	package main

	import (
		"context"
		"fmt"
		"os"

		"github.com/aretw0/clif"
		"github.com/aretw0/clif/pkg/domain"
	)

	func main() {
		root := domain.NewPool("Root", domain.PoolHooks{},
			domain.NewCommand("greet", func(ctx context.Context, inv domain.Invocation) error {
				fmt.Fprintln(inv.Controller.Output(), "hi")
				return nil
			}, domain.WithHelp("Says hi")),
		)

		cli := clif.New(clif.WithPrompt("> "))
		if err := cli.Run(context.Background(), root); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
*/
package clif
