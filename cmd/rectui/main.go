// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command rectui runs a region tree over a directory listing without a
// window: input comes from a script, and every frame is dumped as draw
// commands to the standard output.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"rectui.dev/core/base/logx"
	"rectui.dev/core/draw/drawdump"
	"rectui.dev/core/settings"
)

type options struct {
	settings string
	watch    bool
	script   string
	format   string
	units    string
	width    float32
	height   float32
	vv, v, q bool
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "rectui [dir]",
		Short: "Run a file list UI from a script and dump its draw commands",
		Long: `Run a file list UI over the given directory (default ".") from an
input script, writing the draw commands of every frame to the standard
output. Double clicking a directory opens it; the Up button opens the
parent directory. Directories are read in the background.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logx.UserLevel = logx.LevelFromFlags(opts.vv, opts.v, opts.q)
			logx.SetDefaultLogger()
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), dir, opts)
		},
	}
	fs := cmd.Flags()
	fs.StringVarP(&opts.settings, "settings", "s", "", "settings file (.toml, .yaml or .yml)")
	fs.BoolVarP(&opts.watch, "watch", "w", false, "reload the settings file when it changes")
	fs.StringVarP(&opts.script, "script", "i", "", `input script file, or "-" for standard input`)
	fs.StringVarP(&opts.format, "format", "f", "text", "output format: text or yaml")
	fs.StringVar(&opts.units, "units", "float", "extra rect units of the text format: float, px or fixed")
	fs.Float32Var(&opts.width, "width", 640, "surface width")
	fs.Float32Var(&opts.height, "height", 480, "surface height")
	fs.BoolVar(&opts.vv, "vv", false, "debug logging")
	fs.BoolVarP(&opts.v, "verbose", "v", false, "info logging")
	fs.BoolVarP(&opts.q, "quiet", "q", false, "only log errors")
	return cmd
}

func run(ctx context.Context, stdin io.Reader, stdout io.Writer, dir string, opts *options) error {
	var format drawdump.Formats
	switch opts.format {
	case "text":
		format = drawdump.Text
	case "yaml":
		format = drawdump.YAML
	default:
		return fmt.Errorf("unknown output format %q", opts.format)
	}
	var units drawdump.Units
	switch opts.units {
	case "float":
		units = drawdump.Float
	case "px":
		units = drawdump.Pixels
	case "fixed":
		units = drawdump.Fixed
	default:
		return fmt.Errorf("unknown rect units %q", opts.units)
	}

	st := settings.New()
	if opts.settings != "" {
		if err := st.Open(opts.settings); err != nil {
			return err
		}
	}

	var steps []step
	if opts.script != "" {
		r := stdin
		if opts.script != "-" {
			f, err := os.Open(opts.script)
			if err != nil {
				return fmt.Errorf("opening script: %w", err)
			}
			defer f.Close()
			r = f
		}
		var err error
		steps, err = parseScript(r)
		if err != nil {
			return err
		}
	}

	out := drawdump.New(stdout, format)
	out.Units = units
	a := newApp(dir, st, opts.width, opts.height, out)
	if opts.watch && opts.settings != "" {
		err := settings.Watch(ctx, opts.settings, func(s *settings.Settings, err error) {
			select {
			case a.settingsCh <- settingsUpdate{s, err}:
			case <-ctx.Done():
			}
		})
		if err != nil {
			return err
		}
	}
	return a.run(ctx, steps)
}
