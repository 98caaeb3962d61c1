package main

import (
	"fmt"

	"github.com/signadot/go-hocon"
	"github.com/signadot/go-hocon/encode"
	"github.com/signadot/go-hocon/ir"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file", cli.ErrUsage)
	}
	p, err := readArg(cc, args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	if cfg.YAML {
		p, err = yaml.YAMLToJSON(p)
		if err != nil {
			return fmt.Errorf("error decoding yaml patch %s: %w", args[0], err)
		}
	}
	target, err := loadConfig(cc, args[1:], false)
	if err != nil {
		return err
	}
	var res *ir.Node
	if cfg.Merge {
		res, err = hocon.MergePatch(target, p)
	} else {
		res, err = hocon.Patch(target, p)
	}
	if err != nil {
		return fmt.Errorf("error patching with %s: %w", args[0], err)
	}
	if err := encode.Encode(res, cc.Out, cfg.MainConfig.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
