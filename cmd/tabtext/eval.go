package main

import (
	"fmt"

	"github.com/signadot/tabtext/eval"

	"github.com/scott-cotton/cli"
)

func evalExpr(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: eval requires a file and an expression, got %v", cli.ErrUsage, args)
	}
	d, a, err := loadStructured(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	res, err := eval.Eval(d, a, args[1])
	if err != nil {
		return err
	}
	if s, err := eval.NumberText(res); err == nil {
		_, err = fmt.Fprintln(cc.Out, s)
		return err
	}
	_, err = fmt.Fprintf(cc.Out, "%v\n", res)
	return err
}
