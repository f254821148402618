package main

import (
	"io"
	"io/fs"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/erledit/erledit/edit"
	"github.com/erledit/erledit/libdiff"
)

func (cfg *MainConfig) load() ([]byte, error) {
	if cfg.File == "" || cfg.File == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(cfg.File)
}

// finish is the save step for write commands. The new text is rendered
// to memory first and written in a single call, so a fatal anywhere
// earlier leaves the on-disk file untouched.
func (cfg *MainConfig) finish(cc *cli.Context, old []byte, sess *edit.Session) error {
	logWarnings(sess)
	if !sess.Dirty {
		return nil
	}
	renewed := sess.Doc.Bytes()
	switch {
	case cfg.Diff:
		return libdiff.Text(cc.Out, string(old), string(renewed), cfg.useColor(cc.Out))
	case cfg.Stdout:
		_, err := cc.Out.Write(renewed)
		return err
	case cfg.Out != "":
		return os.WriteFile(cfg.Out, renewed, 0644)
	case cfg.File != "" && cfg.File != "-":
		var mode fs.FileMode = 0644
		if st, err := os.Stat(cfg.File); err == nil {
			mode = st.Mode().Perm()
		}
		return os.WriteFile(cfg.File, renewed, mode)
	default:
		// stdin input with no destination: print the result
		_, err := cc.Out.Write(renewed)
		return err
	}
}
