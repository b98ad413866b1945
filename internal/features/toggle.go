package features

import (
	"fmt"

	"feature-compiler/internal/anim"
	"feature-compiler/internal/build"
	"feature-compiler/internal/feature"
)

type toggle struct {
	f *build.Feature
	m feature.Toggle
}

func newToggle(f *build.Feature) (build.Processor, error) {
	m, err := model[feature.Toggle](f)
	if err != nil {
		return nil, err
	}

	return &toggle{f: f, m: m}, nil
}

func (t *toggle) Actions() []build.Action {
	return []build.Action{{Name: "toggle", Run: t.apply}}
}

func (t *toggle) apply(s *build.Session) error {
	def := float32(0)
	if t.m.DefaultOn {
		def = 1
	}

	param, err := s.Controller.NewBool(t.f.ID, t.m.Name, anim.ParamOptions{
		Default: def,
		Saved:   t.m.Saved,
		Synced:  !t.m.LocalOnly,
	})
	if err != nil {
		return err
	}

	clip := s.Controller.NoopClip()

	if !t.m.State.IsEmpty() {
		clip = s.Controller.NewClip(t.m.Name)
		for _, problem := range s.Motions.LoadState(clip, t.f.Node, t.m.State) {
			t.f.Warn(CodeStateAction, problem.Error())
		}
	}

	layer := s.Controller.NewLayer(t.f.ID, t.m.Name)
	off := layer.NewState("Off")
	on := layer.NewState("On").WithAnimation(clip)
	off.TransitionsTo(on).When(param.IsTrue())
	on.TransitionsTo(off).When(param.IsFalse())

	if _, err := s.Menu.NewToggle(t.m.Name, param, t.m.Icon); err != nil {
		return fmt.Errorf("adding menu toggle: %w", err)
	}

	if len(t.m.ResetPhysbones) > 0 {
		t.f.AddFeature(feature.New(feature.PhysBoneReset{
			Name:      t.m.Name,
			Param:     param.Name,
			Physbones: t.m.ResetPhysbones,
		}))
	}

	return nil
}
