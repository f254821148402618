package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/erledit/erledit/edit"
	"github.com/erledit/erledit/match"
)

func search(cfg *SearchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Search.Parse(cc, args)
	if err != nil {
		cfg.Search.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: search requires one substring", cli.ErrUsage)
	}
	cmd := &edit.Command{
		Op:     edit.Search,
		Target: args[0],
		All:    cfg.All,
		Lines:  cfg.Lines,
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
