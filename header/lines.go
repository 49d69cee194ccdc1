package header

import "io"

// Lines is a complete header section held as strings, one per line, without
// terminators.
type Lines []string

// WriteTo writes each string as a header line followed by the blank line that
// ends the section. It implements io.WriterTo.
func (ls Lines) WriteTo(w io.Writer) (int64, error) {
	return Emit(w, func(b *Block) error {
		for _, s := range ls {
			l := b.Line()
			if _, err := l.WriteString(s); err != nil {
				return err
			}

			if err := l.Close(); err != nil {
				return err
			}
		}
		return nil
	})
}
