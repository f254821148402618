package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/scott-cotton/cli"

	"github.com/erledit/erledit/cst"
	"github.com/erledit/erledit/edit"
	"github.com/erledit/erledit/token"
)

var theLog = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
	ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey {
			return slog.String(slog.TimeKey, a.Value.Time().Format(time.TimeOnly))
		}
		return a
	},
}))

// category maps the error taxonomy onto the uppercase log tag.
func category(err error) string {
	switch {
	case errors.Is(err, token.ErrLex):
		return "LEX"
	case errors.Is(err, cst.ErrStructure):
		return "STRUCTURE"
	case errors.Is(err, edit.ErrNoMatch):
		return "NOMATCH"
	case errors.Is(err, edit.ErrTypeMismatch):
		return "TYPE"
	case errors.Is(err, edit.ErrMissingTarget):
		return "TARGET"
	case errors.Is(err, edit.ErrBadArg):
		return "INPUT"
	}
	return "ERROR"
}

// fail logs a fatal condition and converts it to a process exit.
// Input-category fatals go back through the usage path instead.
func fail(err error) error {
	theLog.Error(err.Error(), "category", category(err))
	if errors.Is(err, edit.ErrBadArg) {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	return cli.ExitCodeErr(1)
}

func logWarnings(sess *edit.Session) {
	for _, w := range sess.Warnings {
		theLog.Warn(w.Msg, "category", w.Category)
	}
}
