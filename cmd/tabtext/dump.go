package main

import (
	"fmt"

	"github.com/signadot/tabtext/encode"
	"github.com/signadot/tabtext/export"
	"github.com/signadot/tabtext/format"

	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	f := cfg.outFormat(format.YAMLFormat)
	if pf, ok := format.ForPath(cfg.Out); ok && pf != f {
		cfg.logger().Warn("output format does not match file suffix",
			"file", cfg.Out, "format", f, "suffix", f.Suffix())
	}
	for _, file := range argsOrStdin(args) {
		d, a, err := loadStructured(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		if f.IsTab() {
			if err := encode.Encode(d, a, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
				return fmt.Errorf("error encoding %s: %w", file, err)
			}
			continue
		}
		out, err := export.Marshal(d, a, f)
		if err != nil {
			return fmt.Errorf("error exporting %s: %w", file, err)
		}
		if _, err := cc.Out.Write(out); err != nil {
			return err
		}
	}
	return nil
}
