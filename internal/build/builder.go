package build

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"feature-compiler/internal/anim"
	"feature-compiler/internal/common"
	"feature-compiler/internal/config"
	"feature-compiler/internal/defaults"
	"feature-compiler/internal/diagnostic"
	"feature-compiler/internal/motion"
	"feature-compiler/internal/scene"
)

// Staged artifact file names.
const (
	ControllerFile = "controller.yaml"
	MenuFile       = "menu.yaml"
	ParamsFile     = "params.yaml"
)

// ErrAlreadyBuilt is returned for a scene that is itself the output of a build.
var ErrAlreadyBuilt = errors.New("scene is already the output of a build")

// Error is a fatal build failure. Message aggregates every cause.
type Error struct {
	Scene string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("failed to build %s: %v", e.Scene, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Result is a successful build.
type Result struct {
	// Scene is the built copy. The input scene is never modified.
	Scene *scene.Scene
	// Skipped is true when the scene had no descriptors and was returned unchanged.
	Skipped     bool
	Diagnostics *diagnostic.Diagnostics
	Defaults    defaults.Report
	// Staged lists the written artifact files.
	Staged   []string
	Features int
	Actions  int
}

// Builder compiles feature descriptors into artifacts.
type Builder struct {
	Config   config.Config
	Registry Registry
	Logger   *slog.Logger
	Progress ProgressFunc
}

// NewBuilder returns a builder using cfg and the given processors.
func NewBuilder(cfg config.Config, reg Registry, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}

	return &Builder{Config: cfg, Registry: reg, Logger: logger}
}

// SafeRun runs a build and reduces the outcome to a success flag and a message.
func (b *Builder) SafeRun(in *scene.Scene) (*Result, bool, string) {
	res, err := b.Run(in)
	if err != nil {
		b.logger().Error("build failed", "error", err)
		return nil, false, err.Error()
	}

	if res.Skipped {
		return res, true, "nothing to build"
	}

	return res, true, fmt.Sprintf("built %d features (%d actions), %d warnings",
		res.Features, res.Actions, len(res.Diagnostics.Warnings))
}

// Run builds a copy of in. On failure nothing is staged and in is untouched.
func (b *Builder) Run(in *scene.Scene) (*Result, error) {
	name := in.Root.Name

	if in.Artifacts.Generated {
		return nil, &Error{Scene: name, Err: ErrAlreadyBuilt}
	}

	out, err := in.Clone()
	if err != nil {
		return nil, &Error{Scene: name, Err: err}
	}

	if !out.HasFeatures() {
		b.logger().Info("scene has no features, skipping", "scene", name)
		return &Result{Scene: out, Skipped: true, Diagnostics: &diagnostic.Diagnostics{}}, nil
	}

	staging, err := b.prepareStaging(name)
	if err != nil {
		return nil, &Error{Scene: name, Err: err}
	}

	res, err := b.run(out, staging)
	if err != nil {
		if rmErr := os.RemoveAll(staging); rmErr != nil {
			err = errors.Join(err, fmt.Errorf("removing staging dir: %w", rmErr))
		}

		return nil, &Error{Scene: name, Err: err}
	}

	return res, nil
}

func (b *Builder) prepareStaging(name string) (string, error) {
	if b.Config.StagingDir == "" {
		return "", errors.New("no staging directory configured")
	}

	dir := filepath.Join(b.Config.StagingDir, common.MakeFilenameSafe(name))

	if err := os.RemoveAll(dir); err != nil {
		return "", fmt.Errorf("clearing staging dir %s: %w", dir, err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating staging dir %s: %w", dir, err)
	}

	return dir, nil
}

func (b *Builder) run(sc *scene.Scene, staging string) (*Result, error) {
	s, err := b.newSession(sc, staging)
	if err != nil {
		return nil, err
	}

	defer s.Diags.Log(s.Logger)

	s.report(0, "collecting features")
	s.collect()

	if err := s.runActions(); err != nil {
		return nil, err
	}

	s.report(1, "finishing")

	anim.SplitMenus(s.Menu.Menu(), b.Config.MaxMenuItems)

	h := &defaults.Harmonizer{
		Controller: s.Controller,
		Motions:    s.Motions,
		Clip:       s.DefaultsClip,
		Force:      s.ExplicitValuesForced(),
		Diags:      s.Diags,
		Logger:     s.Logger,
	}
	report := h.Run()

	removeAuthoringContent(sc.Root)

	if vd := sc.Artifacts.Validate(); vd.HasErrors() {
		return nil, vd.Error()
	}

	if bits := s.Params.SyncedBits(); bits > b.Config.SyncedBitsBudget {
		return nil, fmt.Errorf("synced parameters use %d bits, budget is %d", bits, b.Config.SyncedBitsBudget)
	}

	sc.Artifacts.Generated = true

	staged, err := stage(sc.Artifacts, staging)
	if err != nil {
		return nil, err
	}

	return &Result{
		Scene:       sc,
		Diagnostics: s.Diags,
		Defaults:    report,
		Staged:      staged,
		Features:    len(s.features),
		Actions:     s.sched.total,
	}, nil
}

func (b *Builder) newSession(sc *scene.Scene, staging string) (*Session, error) {
	t := &sc.Artifacts

	if n := anim.PurgeGenerated(*t); n > 0 {
		b.logger().Info("purged stale generated content", "removed", n)
	}

	anim.JoinMenus(t.Menu)

	if t.Controller == nil {
		t.Controller = &anim.Controller{Name: sc.Root.Name}
	}

	menu := anim.NewMenuManager(&anim.Menu{})
	if err := menu.MergeMenu("", t.Menu); err != nil {
		return nil, fmt.Errorf("merging existing menu: %w", err)
	}

	t.Menu = menu.Menu()

	params := anim.NewParamManager(&anim.ParamTable{})
	if t.Params != nil {
		if err := params.DeclareAll(t.Params.Parameters); err != nil {
			return nil, fmt.Errorf("existing parameters: %w", err)
		}
	}

	t.Params = params.Table()
	ctrl := anim.NewControllerManager(t.Controller, params)

	return &Session{
		Scene:        sc,
		Config:       b.Config,
		Logger:       b.logger().With("scene", sc.Root.Name),
		Diags:        &diagnostic.Diagnostics{},
		Controller:   ctrl,
		Menu:         menu,
		Params:       params,
		Motions:      motion.NewBuilder(sc.Root),
		DefaultsClip: ctrl.NewClip(defaults.DefaultsLayerName),
		StagingDir:   staging,
		progress:     b.Progress,
		registry:     b.Registry,
	}, nil
}

// removeAuthoringContent strips descriptors and destroys editor-only nodes.
func removeAuthoringContent(root *scene.Node) {
	var doomed []*scene.Node

	root.WalkDown(func(n *scene.Node) bool {
		n.Features = nil

		if n.EditorOnly && n != root {
			doomed = append(doomed, n)
			return false
		}

		return true
	})

	for _, n := range doomed {
		n.Destroy()
	}
}

func stage(t anim.Triple, dir string) ([]string, error) {
	files := []struct {
		name string
		v    any
	}{
		{ControllerFile, t.Controller},
		{MenuFile, t.Menu},
		{ParamsFile, t.Params},
	}

	out := make([]string, 0, len(files))

	for _, f := range files {
		data, err := yaml.Marshal(f.v)
		if err != nil {
			return nil, fmt.Errorf("encoding %s: %w", f.name, err)
		}

		path := filepath.Join(dir, f.name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", path, err)
		}

		out = append(out, path)
	}

	return out, nil
}

func (b *Builder) logger() *slog.Logger {
	if b.Logger == nil {
		return slog.Default()
	}

	return b.Logger
}
