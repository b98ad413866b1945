package features

import (
	"fmt"

	"feature-compiler/internal/build"
	"feature-compiler/internal/feature"
	"feature-compiler/internal/merge"
	"feature-compiler/internal/rewrite"
	"feature-compiler/internal/scene"
)

type armatureLink struct {
	f       *build.Feature
	m       feature.ArmatureLink
	mapping *rewrite.Mapping
}

func newArmatureLink(f *build.Feature) (build.Processor, error) {
	m, err := model[feature.ArmatureLink](f)
	if err != nil {
		return nil, err
	}

	if _, err := merge.ModeFromLink(m.EffectiveMode()); err != nil {
		return nil, err
	}

	return &armatureLink{f: f, m: m}, nil
}

func (l *armatureLink) Actions() []build.Action {
	return []build.Action{
		{Name: "link", Priority: build.PriorityLink, Run: l.link},
		{Name: "rewrite clips", Priority: build.PriorityRewrite, Run: l.rewriteClips},
	}
}

// target resolves the node the donor is linked onto.
func (l *armatureLink) target(s *build.Session) (*scene.Node, error) {
	if l.m.BonePathOnAvatar != "" {
		n := s.Scene.Root.FindPath(l.m.BonePathOnAvatar)
		if n == nil {
			return nil, fmt.Errorf("no node at %q", l.m.BonePathOnAvatar)
		}

		return n, nil
	}

	return s.FindBone(l.m.BoneOnAvatar)
}

func (l *armatureLink) link(s *build.Session) error {
	donor := l.f.Node.FindPath(l.m.PropBone)
	if donor == nil {
		l.f.Warn(CodeNodeMissing, fmt.Sprintf("prop bone %q not found, skipping link", l.m.PropBone))
		return nil
	}

	target, err := l.target(s)
	if err != nil {
		l.f.Warn(CodeTargetMissing, fmt.Sprintf("link target: %v, skipping link", err))
		return nil
	}

	plan, err := merge.BuildPlan(donor, target)
	if err != nil {
		l.f.Warn(CodeTargetMissing, err.Error())
		return nil
	}

	mode, err := merge.ModeFromLink(l.m.EffectiveMode())
	if err != nil {
		return err
	}

	s.Logger.Debug("merge plan", "feature", l.f.Label(), "plan", plan.String())

	res, err := merge.Apply(plan, merge.Options{
		Mode:            mode,
		KeepBoneOffsets: l.m.KeepBoneOffsets,
		ID:              l.f.ID,
		Scope:           s.Scene.Root,
	})
	if err != nil {
		return fmt.Errorf("linking %q onto %q: %w", donor.Path(), target.Path(), err)
	}

	l.mapping = res.Mapping

	s.Logger.Info("linked armature",
		"feature", l.f.Label(),
		"mode", mode,
		"paired", len(plan.Paired),
		"unpaired", len(plan.Unpaired),
		"relocated", len(res.Relocated),
		"deleted", res.Deleted,
		"rebound", res.Rebound,
		"excluded", res.Excluded)

	return nil
}

// rewriteClips moves every generated curve that pointed into the donor onto
// the merged hierarchy.
func (l *armatureLink) rewriteClips(s *build.Session) error {
	if l.mapping == nil || l.mapping.Len() == 0 {
		return nil
	}

	n := l.mapping.RewriteLayers(s.Controller.ManagedLayers())

	s.Logger.Debug("rewrote clip bindings", "feature", l.f.Label(), "bindings", n, "entries", l.mapping.Len())

	return nil
}
