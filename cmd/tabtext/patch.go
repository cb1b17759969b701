package main

import (
	"fmt"
	"os"

	"github.com/signadot/tabtext"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires a file and a patch, got %v", cli.ErrUsage, args)
	}
	file := args[0]
	p := []byte(args[1])
	if cfg.File {
		p, err = os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("could not read patch: %w", err)
		}
	}
	d, a, err := loadStructured(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	if err := tabtext.Patch(d, a, p); err != nil {
		return fmt.Errorf("error patching %s: %w", file, err)
	}
	return saveOrPrint(cfg.MainConfig, cc, file, d, a, cfg.DryRun)
}
