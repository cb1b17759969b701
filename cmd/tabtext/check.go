package main

import (
	"errors"
	"fmt"

	"github.com/signadot/tabtext/parse"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	bad := 0
	for _, file := range argsOrStdin(args) {
		in, err := readInput(cc, file)
		if err != nil {
			return err
		}
		err = parse.Validate(in)
		if err == nil {
			if !cfg.Quiet {
				fmt.Fprintf(cc.Out, "%s: ok\n", file)
			}
			continue
		}
		bad++
		if cfg.Quiet {
			continue
		}
		var verr *parse.ValidationError
		if errors.As(err, &verr) && verr.Pos != nil {
			line, col := verr.Pos.LineCol()
			fmt.Fprintf(cc.Out, "%s:%d:%d: %v\n", file, line+1, col+1, verr.Err)
			continue
		}
		fmt.Fprintf(cc.Out, "%s: %v\n", file, err)
	}
	if bad > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
