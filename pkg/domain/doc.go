/*
Package domain contains the core domain model of the clif engine.

It defines the entities the runtime operates on: command pools, the commands
they declare, the Controller surface that pools use to drive the engine, and
the error taxonomy shared by every layer. This package is kept free of I/O
and of any runtime state; the engine itself lives in internal/runtime.

# Key Entities

  - Pool: A named bundle of commands plus four lifecycle hooks.
  - Command: Metadata for one invocable command (name, arity, help, owner).
  - Controller: What hooks and handlers may do to the running engine.
  - LifecycleHooks: Optional observability callbacks (logging, metrics).
*/
package domain
