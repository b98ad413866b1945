package main

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"feature-compiler/internal/config"
)

func watchCmd(gf *globalFlags) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "watch <scene.yaml>",
		Short: "Rebuild the scene every time it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := gf.setup()
			if err != nil {
				return err
			}

			return runWatch(cmd.OutOrStdout(), cfg, logger, args[0], output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the built scene to this file")

	return cmd
}

// runWatch builds once and then again after every write to the scene file.
// Editors that save by renaming are handled by watching the directory.
func runWatch(w io.Writer, cfg config.Config, logger *slog.Logger, path, output string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	rebuild := func() {
		if err := runBuild(w, cfg, logger, abs, output); err != nil {
			logger.Error("build failed", "error", err)
		}
	}

	rebuild()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if filepath.Clean(event.Name) != abs || !exists(abs) {
				continue
			}

			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				logger.Info("scene changed, rebuilding", "file", abs)
				rebuild()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			logger.Warn("watch error", "error", err)
		}
	}
}
