package main

import (
	"fmt"

	"github.com/signadot/go-hocon/encode"
	"github.com/signadot/go-hocon/eval"

	"github.com/scott-cotton/cli"
)

func hoconEval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	node, err := loadConfig(cc, args[1:], false)
	if err != nil {
		return err
	}
	res, err := eval.ExprNode(node, args[0])
	if err != nil {
		return fmt.Errorf("error evaluating %q: %w", args[0], err)
	}
	if err := encode.Encode(res, cc.Out, cfg.MainConfig.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
