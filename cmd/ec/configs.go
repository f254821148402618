package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	File   string `cli:"name=f aliases=file desc='config file to operate on (default stdin)'"`
	Out    string `cli:"name=o aliases=out desc='write the result to this path instead of in place'"`
	Stdout bool   `cli:"name=stdout desc='write the result to stdout instead of the input file'"`
	Diff   bool   `cli:"name=diff desc='show pending changes as a diff and write nothing'"`
	Color  bool   `cli:"name=color desc='force colored diff output'"`

	Main *cli.Command
}

func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type ListConfig struct {
	*MainConfig

	All   bool   `cli:"name=all aliases=a desc='include containers without direct values'"`
	Lines bool   `cli:"name=n aliases=lines desc='prefix each line with the source line number'"`
	Where string `cli:"name=where desc='filter expression over name, line and values'"`

	List *cli.Command
}

type GetConfig struct {
	*MainConfig

	All   bool `cli:"name=all aliases=a desc='include containers without direct values'"`
	Lines bool `cli:"name=n aliases=lines desc='prefix each line with the source line number'"`

	Get *cli.Command
}

type SearchConfig struct {
	*MainConfig

	All   bool   `cli:"name=all aliases=a desc='include containers without direct values'"`
	Lines bool   `cli:"name=n aliases=lines desc='prefix each line with the source line number'"`
	Where string `cli:"name=where desc='filter expression over name, line and values'"`

	Search *cli.Command
}

type AddConfig struct {
	*MainConfig

	Add *cli.Command
}

type RemoveConfig struct {
	*MainConfig

	Remove *cli.Command
}

type ModifyConfig struct {
	*MainConfig

	Force bool `cli:"name=force desc='accept value type mismatches with a warning'"`

	Modify *cli.Command
}

type ExportConfig struct {
	*MainConfig

	JSON  bool   `cli:"name=json aliases=j desc='emit JSON (default)'"`
	YAML  bool   `cli:"name=yaml aliases=y desc='emit YAML'"`
	Patch string `cli:"name=patch desc='RFC 6902 patch file applied to the JSON form'"`

	Export *cli.Command
}
