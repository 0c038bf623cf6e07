package main

import (
	"github.com/scott-cotton/cli"

	"github.com/fluxpipe/totoml"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{MaxDepth: totoml.DefaultMaxDepth}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input wire format: json/j, yaml/y (default by file suffix)",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "totoml").
		WithSynopsis("totoml [opts] [files]").
		WithDescription(mainDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return toTOML(cfg, cc, args)
		})
}

const mainDescription = `totoml converts pipeline values into TOML documents.

Input is a value in its JSON or YAML wire form, read from stdin or from
the files given as arguments, each converted in order. Output is TOML
text.

A record becomes the document's root table. A list of records becomes
an array of tables, except that a single-element list collapses to its
only table. A string is parsed as TOML and re-rendered. Any other root
is an error.

Value kinds with no TOML representation (ranges, blocks, nothing,
custom values) render as placeholder strings such as "<Range>"; pass
-strict to fail on them instead.`
