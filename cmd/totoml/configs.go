package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/fluxpipe/totoml"
	"github.com/fluxpipe/totoml/toml"
	"github.com/fluxpipe/totoml/wire"
)

type MainConfig struct {
	Strict   bool `cli:"name=strict desc='fail on values with no TOML representation'"`
	Color    bool `cli:"name=color desc='encode with color'"`
	Verbose  bool `cli:"name=v aliases=verbose desc='log inputs as they convert'"`
	MaxDepth int  `cli:"name=maxDepth desc='max value nesting depth'"`

	InFormat *wire.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**wire.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := wire.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// inFormat resolves the wire format for one input, -I winning over the
// file suffix.
func (cfg *MainConfig) inFormat(path string) wire.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	return wire.FormatForPath(path)
}

func (cfg *MainConfig) convertOpts() []totoml.Option {
	return []totoml.Option{
		totoml.Strict(cfg.Strict),
		totoml.MaxDepth(cfg.MaxDepth),
	}
}

func (cfg *MainConfig) encOpts(w io.Writer) []toml.EncodeOption {
	res := []toml.EncodeOption{}
	if cfg.Color {
		res = append(res, toml.EncodeColors(toml.NewColors()))
		return res
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
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, toml.EncodeColors(toml.NewColors()))
		return res
	}
	return res
}
