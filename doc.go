// Package headerlines is the root of go-headerlines, a small library for
// writing the header section of line-oriented protocols, HTTP/1.x responses
// and RFC 5322 messages being the usual suspects, straight into an io.Writer.
//
// I wanted something that would let me stream a response header onto a
// connection without first building it up in a map or a buffer, and without
// ever forgetting the CRLF at the end of a line or the blank line at the end
// of the header. The header package does exactly that and nothing else:
// header.Block hands out one header.Line at a time, each Line passes bytes
// through to the writer untouched, and closing each one writes the terminator.
// Content is never inspected, so if you write a CRLF into the middle of a line,
// you get what you asked for.
//
// Because Go has no destructors, closing is explicit. Use header.Emit() and
// Block.WriteLine() when you want the terminators written no matter how your
// code returns. Asking for a second Line while the first is still open panics,
// which I prefer to silently interleaving two lines.
//
// On top of that sit a couple of helpers that are clients of the header
// package rather than part of it: header/field writes "Name: body" fields and
// knows how to format dates, address lists, and charsets; header/status writes
// HTTP status lines. The hdrline command in cmd/hdrline puts all of these
// together for use from the shell.
package headerlines
