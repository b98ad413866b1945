package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"feature-compiler/internal/build"
	"feature-compiler/internal/diagnostic"
	"feature-compiler/internal/feature"
	"feature-compiler/internal/scene"
)

func checkCmd(gf *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check <scene.yaml>",
		Short: "Validate descriptors and existing artifacts without building",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, _, err := gf.setup(); err != nil {
				return err
			}

			return runCheck(cmd.OutOrStdout(), args[0])
		},
	}
}

func runCheck(w io.Writer, path string) error {
	sc, err := scene.LoadFile(path)
	if err != nil {
		return err
	}

	diags := checkScene(sc)
	printDiagnostics(w, diags)

	if err := diags.Error(); err != nil {
		return fmt.Errorf("%s: %d problems", path, len(diags.Errors))
	}

	fmt.Fprintf(w, "%s: ok\n", path)

	return nil
}

// checkScene reports malformed descriptors as warnings, the way a build
// would skip them, and inconsistent artifacts as errors.
func checkScene(sc *scene.Scene) *diagnostic.Diagnostics {
	diags := &diagnostic.Diagnostics{}

	sc.Root.WalkDown(func(n *scene.Node) bool {
		for _, d := range n.Features {
			if err := feature.Validate(d); err != nil {
				diags.AddWarning(build.CodeMalformedFeature, err.Error(), string(d.Kind()), n.Path())
			}
		}

		return true
	})

	diags.Merge(*sc.Artifacts.Validate())

	return diags
}
