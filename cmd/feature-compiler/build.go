package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"feature-compiler/internal/build"
	"feature-compiler/internal/config"
	"feature-compiler/internal/diagnostic"
	"feature-compiler/internal/features"
	"feature-compiler/internal/scene"
)

func buildCmd(gf *globalFlags) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "build <scene.yaml>",
		Short: "Compile every feature of a scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := gf.setup()
			if err != nil {
				return err
			}

			return runBuild(cmd.OutOrStdout(), cfg, logger, args[0], output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the built scene to this file")

	return cmd
}

// runBuild loads, builds and writes one scene.
func runBuild(w io.Writer, cfg config.Config, logger *slog.Logger, path, output string) error {
	in, err := scene.LoadFile(path)
	if err != nil {
		return err
	}

	b := build.NewBuilder(cfg, features.Registry(), logger)
	b.Progress = func(fraction float64, msg string) {
		logger.Debug("progress", "done", fmt.Sprintf("%.0f%%", fraction*100), "step", msg)
	}

	res, ok, msg := b.SafeRun(in)
	if !ok {
		return fmt.Errorf("%s", msg)
	}

	printDiagnostics(w, res.Diagnostics)

	for _, f := range res.Staged {
		fmt.Fprintf(w, "staged %s\n", f)
	}

	if output != "" && !res.Skipped {
		if err := scene.WriteFile(res.Scene, output); err != nil {
			return err
		}

		fmt.Fprintf(w, "wrote %s\n", output)
	}

	out := termenv.NewOutput(w)
	fmt.Fprintln(w, out.String(msg).Foreground(termenv.ANSIGreen))

	return nil
}

func printDiagnostics(w io.Writer, d *diagnostic.Diagnostics) {
	if d == nil {
		return
	}

	out := termenv.NewOutput(w)

	for _, e := range d.Errors {
		fmt.Fprintln(w, out.String("error: "+e.String()).Foreground(termenv.ANSIRed))
	}

	for _, warn := range d.Warnings {
		fmt.Fprintln(w, out.String("warning: "+warn.String()).Foreground(termenv.ANSIYellow))
	}

	for _, info := range d.Infos {
		fmt.Fprintln(w, "info: "+info.String())
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
