package main

import (
	"fmt"

	"github.com/signadot/tabtext"

	"github.com/scott-cotton/cli"
)

func touch(cfg *TouchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Touch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: touch requires file arguments", cli.ErrUsage)
	}
	for _, file := range args {
		if err := tabtext.Touch(file); err != nil {
			cfg.logger().Warn("could not create file", "file", file, "error", err)
			return err
		}
	}
	return nil
}
