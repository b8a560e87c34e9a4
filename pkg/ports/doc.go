/*
Package ports defines the driven ports (interfaces) of the clif engine.

These interfaces decouple the engine from the world outside the process,
so the same pools can be driven by a terminal, a test script or any other
line-oriented source.

# Key Interfaces

  - LineSource: Produces one line of user input at a time, blocking.
*/
package ports
