package main

import (
	"fmt"

	"github.com/signadot/go-hocon/encode"
	"github.com/signadot/go-hocon/parse"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a key path", cli.ErrUsage)
	}
	path, err := parse.ParsePath(args[0])
	if err != nil {
		return fmt.Errorf("%w: invalid path %q: %w", cli.ErrUsage, args[0], err)
	}
	node, err := loadConfig(cc, args[1:], false)
	if err != nil {
		return err
	}
	val, err := node.MustGetPath(path)
	if err != nil {
		return err
	}
	if err := encode.Encode(val, cc.Out, cfg.MainConfig.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
