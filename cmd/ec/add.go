package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/erledit/erledit/edit"
)

func add(cfg *AddConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Add.Parse(cc, args)
	if err != nil {
		cfg.Add.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: add requires a name and at least one value", cli.ErrUsage)
	}
	cmd := &edit.Command{Op: edit.Add, Target: args[0], Args: args[1:]}
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
