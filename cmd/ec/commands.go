package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "ec").
		WithSynopsis("ec [opts] command [opts] args...").
		WithDescription("ec edits term-style config files without disturbing their formatting.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return ecMain(cfg, cc, args)
		}).
		WithSubs(
			ListCommand(cfg),
			GetCommand(cfg),
			SearchCommand(cfg),
			AddCommand(cfg),
			RemoveCommand(cfg),
			ModifyCommand(cfg),
			ExportCommand(cfg))
}

func ListCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ListConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.List, "list").
		WithAliases("l", "ls").
		WithSynopsis("list [opts] [name]").
		WithDescription("list endpoints whose qualified name starts with name").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return list(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get [opts] name [nth...]").
		WithDescription("print the values of the exactly named endpoint, optionally selecting 1-based positions").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func SearchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SearchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Search, "search").
		WithAliases("s").
		WithSynopsis("search [opts] substring").
		WithDescription("list endpoints whose qualified name contains substring").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return search(cfg, cc, args)
		})
}

func AddCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &AddConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Add, "add").
		WithAliases("a").
		WithSynopsis("add name value [value...]").
		WithDescription("append a tuple under the named list held by name").
		WithRun(func(cc *cli.Context, args []string) error {
			return add(cfg, cc, args)
		})
}

func RemoveCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RemoveConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Remove, "remove").
		WithAliases("rm").
		WithSynopsis("remove name").
		WithDescription("delete the exactly named container, repairing separators").
		WithRun(func(cc *cli.Context, args []string) error {
			return remove(cfg, cc, args)
		})
}

func ModifyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ModifyConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Modify, "modify").
		WithAliases("m", "mod").
		WithSynopsis("modify [opts] name value [value...]").
		WithDescription("replace the named endpoint's values positionally; _ skips a position").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return modify(cfg, cc, args)
		})
}

func ExportCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExportConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Export, "export").
		WithAliases("x").
		WithSynopsis("export [-json|-yaml] [-patch file]").
		WithDescription("lower the config to plain data and emit JSON or YAML").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return exportRun(cfg, cc, args)
		})
}
