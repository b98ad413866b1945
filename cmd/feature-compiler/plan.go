package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"feature-compiler/internal/merge"
	"feature-compiler/internal/scene"
)

func planCmd(gf *globalFlags) *cobra.Command {
	var donor, target string

	cmd := &cobra.Command{
		Use:   "plan <scene.yaml>",
		Short: "Print the merge plan of a donor hierarchy onto a target",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, _, err := gf.setup(); err != nil {
				return err
			}

			return runPlan(cmd.OutOrStdout(), args[0], donor, target)
		},
	}
	cmd.Flags().StringVar(&donor, "donor", "", "Root-relative path of the donor root")
	cmd.Flags().StringVar(&target, "target", "", "Root-relative path of the target root")
	_ = cmd.MarkFlagRequired("donor")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func runPlan(w io.Writer, path, donor, target string) error {
	sc, err := scene.LoadFile(path)
	if err != nil {
		return err
	}

	d := sc.Root.FindPath(donor)
	if d == nil {
		return fmt.Errorf("no donor node at %q", donor)
	}

	t := sc.Root.FindPath(target)
	if t == nil {
		return fmt.Errorf("no target node at %q", target)
	}

	plan, err := merge.BuildPlan(d, t)
	if err != nil {
		return err
	}

	fmt.Fprint(w, plan.String())

	return nil
}
