// Package main provides the CLI entrypoint for feature-compiler.
//
// feature-compiler reads a scene with feature descriptors attached to its
// nodes and compiles them into a controller, a menu and a parameter table:
//   - build compiles a scene and writes the built copy
//   - check validates descriptors and existing artifacts without building
//   - plan prints the merge plan between two hierarchies
//   - watch rebuilds whenever the scene file changes
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"feature-compiler/internal/config"
)

type globalFlags struct {
	config  string
	verbose bool
	quiet   bool
}

func main() {
	var gf globalFlags

	root := &cobra.Command{
		Use:           "feature-compiler",
		Short:         "Compile scene feature descriptors into controller, menu and parameters",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&gf.config, "config", "c", "", "Build options file (TOML)")
	root.PersistentFlags().BoolVarP(&gf.verbose, "verbose", "v", false, "Log every action")
	root.PersistentFlags().BoolVarP(&gf.quiet, "quiet", "q", false, "Only log errors")

	root.AddCommand(buildCmd(&gf), checkCmd(&gf), planCmd(&gf), watchCmd(&gf))

	if err := root.Execute(); err != nil {
		out := termenv.NewOutput(os.Stderr)
		fmt.Fprintln(os.Stderr, out.String("error: "+err.Error()).Foreground(termenv.ANSIRed))
		os.Exit(1)
	}
}

// setup loads the build options and creates the logger they select.
func (gf *globalFlags) setup() (config.Config, *slog.Logger, error) {
	cfg := config.DefaultConfig()

	if gf.config != "" {
		var err error
		if cfg, err = config.LoadFile(gf.config); err != nil {
			return config.Config{}, nil, err
		}
	}

	level := config.LevelFromFlags(gf.verbose, gf.quiet, cfg.Level())
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	return cfg, logger, nil
}
