package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/erledit/erledit/edit"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires a name", cli.ErrUsage)
	}
	cmd := &edit.Command{
		Op:     edit.Get,
		Target: args[0],
		Args:   args[1:],
		All:    cfg.All,
		Lines:  cfg.Lines,
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
