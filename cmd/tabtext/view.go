package main

import (
	"fmt"
	"io"

	"github.com/signadot/tabtext/encode"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	files := argsOrStdin(args)
	for i, file := range files {
		if len(files) > 1 {
			if i > 0 {
				io.WriteString(cc.Out, "\n")
			}
			fmt.Fprintf(cc.Out, "# %s\n", file)
		}
		if err := viewFile(cfg, cc, file); err != nil {
			return err
		}
	}
	return nil
}

func viewFile(cfg *ViewConfig, cc *cli.Context, file string) error {
	d, a, err := loadFile(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	opts := append(cfg.encOpts(cc.Out), encode.EncodeBlanks(!cfg.NoBlanks))
	if err := encode.Encode(d, a, cc.Out, opts...); err != nil {
		return fmt.Errorf("error encoding %s: %w", file, err)
	}
	return nil
}
