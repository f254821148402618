package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/erledit/erledit/edit"
)

func remove(cfg *RemoveConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Remove.Parse(cc, args)
	if err != nil {
		cfg.Remove.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: remove requires exactly one name", cli.ErrUsage)
	}
	cmd := &edit.Command{Op: edit.Remove, Target: args[0]}
	src, err := cfg.load()
	if err != nil {
		return fail(fmt.Errorf("%w: %v", edit.ErrBadArg, err))
	}
	sess, err := edit.Run(src, cmd, nil)
	if err != nil {
		return fail(err)
	}
	return cfg.finish(cc, src, sess)
}
