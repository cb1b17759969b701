package main

import (
	"bytes"
	"fmt"

	"github.com/signadot/tabtext"
	"github.com/signadot/tabtext/encode"
	"github.com/signadot/tabtext/libdiff"

	"github.com/scott-cotton/cli"
)

func fmtFiles(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	files := argsOrStdin(args)
	if cfg.Write {
		for _, file := range files {
			if file == "-" {
				return fmt.Errorf("%w: -w requires file arguments", cli.ErrUsage)
			}
		}
	}
	changed := 0
	for _, file := range files {
		differs, err := fmtFile(cfg, cc, file)
		if err != nil {
			return err
		}
		if differs {
			changed++
		}
	}
	if cfg.Diff && changed > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func fmtFile(cfg *FmtConfig, cc *cli.Context, file string) (bool, error) {
	orig, err := readInput(cc, file)
	if err != nil {
		return false, err
	}
	d, a, err := loadInput(cfg.MainConfig, file, orig)
	if err != nil {
		return false, err
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(d, a, buf); err != nil {
		return false, fmt.Errorf("error encoding %s: %w", file, err)
	}
	differs := !bytes.Equal(orig, buf.Bytes())
	switch {
	case cfg.Diff:
		if !differs {
			return false, nil
		}
		fmt.Fprintf(cc.Out, "--- %s\n+++ %s (formatted)\n", file, file)
		lines := libdiff.Lines(string(orig), buf.String())
		if err := libdiff.Write(cc.Out, lines, cfg.colors(cc.Out)); err != nil {
			return false, err
		}
	case cfg.Write:
		if !differs {
			return false, nil
		}
		if err := tabtext.Save(file, d, a, tabtext.SaveLogger(cfg.logger())); err != nil {
			return false, err
		}
		cfg.logger().Info("formatted", "file", file)
	default:
		if _, err := cc.Out.Write(buf.Bytes()); err != nil {
			return false, err
		}
	}
	return differs, nil
}
