package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/signadot/tabtext"
	"github.com/signadot/tabtext/doc"

	"github.com/scott-cotton/cli"
)

func readInput(cc *cli.Context, file string) ([]byte, error) {
	if file == "-" {
		d, err := io.ReadAll(cc.In)
		if err != nil {
			return nil, fmt.Errorf("error reading stdin: %w", err)
		}
		return d, nil
	}
	return tabtext.ReadBuffer(file)
}

func loadFile(cfg *MainConfig, cc *cli.Context, file string) (*doc.Document, *doc.Arena, error) {
	in, err := readInput(cc, file)
	if err != nil {
		if errors.Is(err, doc.ErrIO) {
			cfg.logger().Warn("could not read file", "file", file, "error", err)
		}
		return nil, nil, err
	}
	return loadInput(cfg, file, in)
}

func loadInput(cfg *MainConfig, file string, in []byte) (*doc.Document, *doc.Arena, error) {
	a := doc.NewArena()
	d, err := tabtext.LoadBytes(in, a, cfg.loadOpts()...)
	if err != nil {
		return nil, nil, fmt.Errorf("error loading %s: %w", file, err)
	}
	if d.Fallback != nil {
		cfg.logger().Debug("loaded as plain text", "file", file, "reason", d.Fallback)
	}
	return d, a, nil
}

// loadStructured is loadFile for commands which need values.
func loadStructured(cfg *MainConfig, cc *cli.Context, file string) (*doc.Document, *doc.Arena, error) {
	d, a, err := loadFile(cfg, cc, file)
	if err != nil {
		return nil, nil, err
	}
	if d.Mode != doc.Structured {
		if d.Fallback != nil {
			return nil, nil, fmt.Errorf("%s is not structured: %w", file, d.Fallback)
		}
		return nil, nil, fmt.Errorf("%s was loaded as plain text", file)
	}
	return d, a, nil
}

func argsOrStdin(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
