package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/fluxpipe/totoml"
	"github.com/fluxpipe/totoml/toml"
	"github.com/fluxpipe/totoml/wire"
)

func toTOML(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if err := convertArg(cfg, cc.Out, arg); err != nil {
			return fmt.Errorf("error converting %s: %w", arg, err)
		}
	}
	return nil
}

func convertArg(cfg *MainConfig, w io.Writer, arg string) error {
	var in io.Reader
	if arg == "-" {
		in = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		in = f
	}
	v, err := wire.DecodeReader(in, cfg.inFormat(arg))
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", arg, err)
	}
	if cfg.Verbose {
		theLog.Info("converting", "input", arg, "kind", v.Kind.String())
	}
	node, err := totoml.Convert(context.Background(), v, cfg.convertOpts()...)
	if err != nil {
		return err
	}
	if err := toml.Encode(node, w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
