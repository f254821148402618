package cst

import (
	"bytes"
	"io"

	"github.com/erledit/erledit/token"
)

// Render writes the content of tokens from..to inclusive, in original
// order, skipping tokens marked removed. With no edits applied this
// reproduces the tokenized input byte for byte.
func (d *Doc) Render(w io.Writer, from, to int) error {
	for i := from; i <= to && i < len(d.Toks); i++ {
		t := &d.Toks[i]
		if t.Action == token.RemoveAction {
			continue
		}
		if _, err := w.Write(t.Bytes); err != nil {
			return err
		}
	}
	return nil
}

// Bytes renders the whole document to memory.
func (d *Doc) Bytes() []byte {
	buf := bytes.NewBuffer(nil)
	d.Render(buf, 0, len(d.Toks)-1)
	return buf.Bytes()
}
