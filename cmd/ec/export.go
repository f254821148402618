package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/erledit/erledit/cst"
	"github.com/erledit/erledit/edit"
	"github.com/erledit/erledit/export"
)

func exportRun(cfg *ExportConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Export.Parse(cc, args)
	if err != nil {
		cfg.Export.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: export takes no arguments", cli.ErrUsage)
	}
	if cfg.JSON && cfg.YAML {
		return fmt.Errorf("%w: specify at most one of -json -yaml", cli.ErrUsage)
	}
	if cfg.YAML && cfg.Patch != "" {
		return fmt.Errorf("%w: -patch applies to the JSON form only", cli.ErrUsage)
	}
	src, err := cfg.load()
	if err != nil {
		return fail(fmt.Errorf("%w: %v", edit.ErrBadArg, err))
	}
	doc, err := cst.Build(src, nil)
	if err != nil {
		return fail(err)
	}
	var out []byte
	if cfg.YAML {
		out, err = export.YAML(doc)
	} else {
		var patch []byte
		if cfg.Patch != "" {
			if patch, err = os.ReadFile(cfg.Patch); err != nil {
				return fail(fmt.Errorf("%w: %v", edit.ErrBadArg, err))
			}
		}
		out, err = export.JSON(doc, patch)
	}
	if err != nil {
		return fail(fmt.Errorf("%w: %v", edit.ErrBadArg, err))
	}
	if _, err := cc.Out.Write(out); err != nil {
		return err
	}
	if len(out) > 0 && out[len(out)-1] != '\n' {
		_, err = fmt.Fprintln(cc.Out)
	}
	return err
}
