/*
Package console implements line sources for the clif engine.

  - TextHandler: Reads lines from an io.Reader (usually os.Stdin), with an
    optional prompt and input sanitization.
  - JSONSource: Reads JSON-Lines, one JSON string or {"line": ...} object
    per line, for hosts that script the engine.
  - ScriptSource: Replays a fixed list of lines, then reports end of input.
    Useful for tests and for embedding the engine behind another front end.

All of them satisfy ports.LineSource and report exhaustion as domain.ErrEndOfInput.
*/
package console
