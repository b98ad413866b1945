package build

import (
	"fmt"
	"log/slog"

	"feature-compiler/internal/anim"
	"feature-compiler/internal/config"
	"feature-compiler/internal/diagnostic"
	"feature-compiler/internal/feature"
	"feature-compiler/internal/match"
	"feature-compiler/internal/motion"
	"feature-compiler/internal/scene"
)

// Diagnostic codes raised by the build itself.
const (
	CodeMalformedFeature = "malformed_feature"
	CodeUnknownKind      = "unknown_feature_kind"
	CodePurged           = "purged_generated"
	CodeNoFeatures       = "no_features"
)

// ProgressFunc receives build progress between 0 and 1.
type ProgressFunc func(fraction float64, message string)

// Session is the state shared by every action of one build.
type Session struct {
	Scene  *scene.Scene
	Config config.Config
	Logger *slog.Logger
	Diags  *diagnostic.Diagnostics

	Controller *anim.ControllerManager
	Menu       *anim.MenuManager
	Params     *anim.ParamManager
	Motions    *motion.Builder
	// DefaultsClip collects resting values; the harmonizer plays it in the defaults layer.
	DefaultsClip *anim.Clip
	// StagingDir is the exclusively owned output directory of this build.
	StagingDir string

	progress      ProgressFunc
	registry      Registry
	sched         scheduler
	features      []*Feature
	nextID        int
	forceExplicit bool
}

// Features returns every feature collected so far, in collection order.
func (s *Session) Features() []*Feature {
	return append([]*Feature(nil), s.features...)
}

// ForceExplicitValues makes the harmonizer impose the explicit convention.
func (s *Session) ForceExplicitValues() {
	s.forceExplicit = true
}

// ExplicitValuesForced reports whether any feature or the config forced the explicit convention.
func (s *Session) ExplicitValuesForced() bool {
	return s.forceExplicit || s.Config.ForceExplicitValues
}

// ClaimRenderer gives owner exclusive use of r. A second owner is fatal.
func (s *Session) ClaimRenderer(r *scene.Renderer, owner string) error {
	if r.Owner != "" && r.Owner != owner {
		return fmt.Errorf("renderer is claimed by both %s and %s", r.Owner, owner)
	}

	r.Owner = owner

	return nil
}

// FindBone resolves a humanoid bone name to a node.
func (s *Session) FindBone(name string) (*scene.Node, error) {
	cand, err := match.FindBone(s.Scene.Humanoid, name)
	if err != nil {
		return nil, err
	}

	n := s.Scene.Root.FindPath(cand.Path)
	if n == nil {
		return nil, fmt.Errorf("humanoid bone %s maps to missing node %q", cand.Bone, cand.Path)
	}

	return n, nil
}

// addFeature creates the feature and queues its actions. Malformed descriptors
// are reported and skipped.
func (s *Session) addFeature(d feature.Descriptor, node *scene.Node) {
	s.nextID++
	f := &Feature{ID: s.nextID, Node: node, Descriptor: d, session: s}
	s.features = append(s.features, f)

	if err := feature.Validate(d); err != nil {
		f.Warn(CodeMalformedFeature, fmt.Sprintf("skipping %s: %v", f.Label(), err))
		return
	}

	factory := s.registry[d.Kind()]
	if factory == nil {
		f.Warn(CodeUnknownKind, fmt.Sprintf("no processor for %s", d.Kind()))
		return
	}

	proc, err := factory(f)
	if err != nil {
		f.Warn(CodeMalformedFeature, fmt.Sprintf("skipping %s: %v", f.Label(), err))
		return
	}

	for _, a := range proc.Actions() {
		s.sched.push(f, a)
	}
}

// collect creates a feature for every descriptor in the tree, in walk order.
func (s *Session) collect() {
	s.Scene.Root.WalkDown(func(n *scene.Node) bool {
		for _, d := range n.Features {
			s.addFeature(d, n)
		}

		return true
	})
}

// runActions drains the queue. The first failing action aborts the build.
func (s *Session) runActions() (err error) {
	for {
		q, ok := s.sched.pop()
		if !ok {
			return nil
		}

		s.report(1-float64(s.sched.pending())/float64(max(s.sched.total, 1)),
			fmt.Sprintf("applying %s on %s", q.action.Name, q.feature.Label()))

		s.Logger.Debug("applying action",
			"feature", q.feature.Label(),
			"action", q.action.Name,
			"priority", int(q.action.Priority),
			"node", q.feature.NodePath())

		if err := s.call(q); err != nil {
			return err
		}
	}
}

func (s *Session) call(q queued) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: action %s panicked: %v", q.feature.Label(), q.action.Name, r)
		}
	}()

	if err := q.action.Run(s); err != nil {
		return fmt.Errorf("%s: action %s on %q: %w", q.feature.Label(), q.action.Name, q.feature.NodePath(), err)
	}

	return nil
}

func (s *Session) report(fraction float64, msg string) {
	if s.progress != nil {
		s.progress(fraction, msg)
	}
}
