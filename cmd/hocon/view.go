package main

import (
	"fmt"

	"github.com/signadot/go-hocon/encode"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	node, err := loadConfig(cc, args, cfg.Raw)
	if err != nil {
		return err
	}
	if err := encode.Encode(node, cc.Out, cfg.MainConfig.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
