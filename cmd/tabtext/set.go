package main

import (
	"fmt"

	"github.com/signadot/tabtext"
	"github.com/signadot/tabtext/doc"
	"github.com/signadot/tabtext/encode"
	"github.com/signadot/tabtext/eval"

	"github.com/scott-cotton/cli"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: set requires a file and at least one assignment", cli.ErrUsage)
	}
	file := args[0]
	d, a, err := loadStructured(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	for _, arg := range args[1:] {
		asg, err := eval.ParseAssignment(arg)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		v, err := eval.Apply(d, a, asg)
		if err != nil {
			return fmt.Errorf("error assigning %s: %w", asg.Target, err)
		}
		cfg.logger().Debug("set", "target", asg.Target.String(), "value", v)
	}
	return saveOrPrint(cfg.MainConfig, cc, file, d, a, cfg.DryRun)
}

func saveOrPrint(cfg *MainConfig, cc *cli.Context, file string, d *doc.Document, a *doc.Arena, dryRun bool) error {
	if dryRun || file == "-" {
		return encode.Encode(d, a, cc.Out, cfg.encOpts(cc.Out)...)
	}
	return tabtext.Save(file, d, a, tabtext.SaveLogger(cfg.logger()))
}
