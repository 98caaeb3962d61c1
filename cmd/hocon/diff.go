package main

import (
	"fmt"

	"github.com/signadot/go-hocon/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	from, err := loadConfig(cc, args[:1], false)
	if err != nil {
		return err
	}
	to, err := loadConfig(cc, args[1:], false)
	if err != nil {
		return err
	}
	d := libdiff.Diff(from, to)
	if d == nil {
		return nil
	}
	if !cfg.Quiet {
		if err := libdiff.Render(d, cc.Out, cfg.MainConfig.encOpts(cc.Out)...); err != nil {
			return err
		}
	}
	return cli.ExitCodeErr(1)
}
