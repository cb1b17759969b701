package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/signadot/tabtext"
	"github.com/signadot/tabtext/doc"
	"github.com/signadot/tabtext/encode"
	"github.com/signadot/tabtext/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool   `cli:"name=color desc='encode with color'"`
	Plain   bool   `cli:"name=p aliases=plain desc='load files as plain text'"`
	Verbose bool   `cli:"name=v aliases=verbose desc='log debug messages'"`
	Silent  bool   `cli:"name=s aliases=silent desc='log warnings and errors only'"`
	Journal bool   `cli:"name=journal desc='also log to the systemd journal'"`
	LogFile string `cli:"name=log-file desc='also log json records to this file'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	log *slog.Logger

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) logger() *slog.Logger {
	if cfg.log == nil {
		level := new(slog.LevelVar)
		switch {
		case cfg.Verbose:
			level.Set(slog.LevelDebug)
		case cfg.Silent:
			level.Set(slog.LevelWarn)
		}
		cfg.log = newLogger(level, cfg.Journal, cfg.LogFile)
	}
	return cfg.log
}

func (cfg *MainConfig) loadOpts() []tabtext.LoadOption {
	res := []tabtext.LoadOption{
		tabtext.WithLogger(cfg.logger()),
	}
	if cfg.Plain {
		res = append(res, tabtext.WithMode(doc.PlainText))
	}
	return res
}

// outFormat is the -O format, else the format named by the suffix of the
// -o file, else def.
func (cfg *MainConfig) outFormat(def format.Format) format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	if cfg.Out != "" && cfg.Out != "-" {
		if f, ok := format.ForPath(cfg.Out); ok {
			return f
		}
	}
	return def
}

func (cfg *MainConfig) colors(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	if cfg.colors(w) {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	return nil
}

type CheckConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q aliases=quiet desc='print nothing, only set the exit code'"`

	Check *cli.Command
}

type ViewConfig struct {
	*MainConfig
	NoBlanks bool `cli:"name=B desc='omit blank lines'"`

	View *cli.Command
}

type FmtConfig struct {
	*MainConfig
	Write bool `cli:"name=w desc='write result to the source file'"`
	Diff  bool `cli:"name=d desc='show a diff against the source'"`

	Fmt *cli.Command
}

type DumpConfig struct {
	*MainConfig

	Dump *cli.Command
}

type SetConfig struct {
	*MainConfig
	DryRun bool `cli:"name=n desc='print the result instead of saving'"`

	Set *cli.Command
}

type EvalConfig struct {
	*MainConfig

	Eval *cli.Command
}

type PatchConfig struct {
	*MainConfig
	File   bool `cli:"name=f desc='patch arg is a file path'"`
	DryRun bool `cli:"name=n desc='print the result instead of saving'"`

	Patch *cli.Command
}

type TouchConfig struct {
	*MainConfig

	Touch *cli.Command
}
