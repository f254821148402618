package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/erledit/erledit/edit"
)

func modify(cfg *ModifyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Modify.Parse(cc, args)
	if err != nil {
		cfg.Modify.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: modify requires a name and at least one value", cli.ErrUsage)
	}
	cmd := &edit.Command{
		Op:     edit.Modify,
		Target: args[0],
		Args:   args[1:],
		Force:  cfg.Force,
	}
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
