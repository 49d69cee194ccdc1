// Package header writes the header section of a line-oriented protocol, such
// as an HTTP/1.x response or an RFC 5322 message, straight into an io.Writer.
//
// A Block owns the writer for the whole header section. Each call to
// Block.Line() hands out a Line, which owns the writer for one header line.
// Closing the Line appends the CRLF that terminates the line and gives the
// writer back to the Block. Closing the Block appends the blank line that
// separates the header from the body. Nothing is buffered: every byte written
// to a Line goes directly to the underlying writer.
//
//	b := header.NewBlock(w)
//	_ = b.Printf("%s %s", "HTTP/1.1", "200 OK")
//	_ = b.Printf("Host: %s", "iana.org")
//	_ = b.Close()
//	_, _ = io.WriteString(w, "hello")
//
// Only one Line may be open at a time. Asking the Block for another Line, or
// closing the Block, while a Line is still open is a programming error and
// panics with ErrLineOpen rather than interleaving output. If you want the
// terminators written no matter how your code exits, use Emit() and
// Block.WriteLine(), which close what they open even on early return.
//
// The content of a line is never inspected. Writing a CRLF into a Line will
// corrupt the header and is not detected.
package header
