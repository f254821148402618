package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/erledit/erledit/edit"
	"github.com/erledit/erledit/match"
)

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		cfg.List.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: list takes at most one name", cli.ErrUsage)
	}
	cmd := &edit.Command{Op: edit.List, All: cfg.All, Lines: cfg.Lines}
	if len(args) == 1 {
		cmd.Target = args[0]
	}
	if cfg.Where != "" {
		f, err := match.CompileFilter(cfg.Where)
		if err != nil {
			return fmt.Errorf("%w: %v", cli.ErrUsage, err)
		}
		cmd.Where = f
	}
	src, err := cfg.load()
	if err != nil {
		return fail(fmt.Errorf("%w: %v", edit.ErrBadArg, err))
	}
	sess, err := edit.Run(src, cmd, cc.Out)
	if err != nil {
		return fail(err)
	}
	logWarnings(sess)
	return nil
}
