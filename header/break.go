package header

// CRLF is the network linebreak. It terminates every header line and, written
// on its own, ends the header section.
const CRLF = "\x0d\x0a"

var crlf = []byte(CRLF)
