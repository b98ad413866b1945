package features

import (
	"fmt"

	"feature-compiler/internal/anim"
	"feature-compiler/internal/build"
	"feature-compiler/internal/feature"
	"feature-compiler/internal/scene"
)

type physBoneReset struct {
	f *build.Feature
	m feature.PhysBoneReset
}

func newPhysBoneReset(f *build.Feature) (build.Processor, error) {
	m, err := model[feature.PhysBoneReset](f)
	if err != nil {
		return nil, err
	}

	return &physBoneReset{f: f, m: m}, nil
}

func (p *physBoneReset) Actions() []build.Action {
	return []build.Action{{Name: "physbone reset", Run: p.apply}}
}

// apply builds a layer that disables the physbones for one frame each time
// the parameter flips.
func (p *physBoneReset) apply(s *build.Session) error {
	declared, ok := s.Params.Lookup(p.m.Param)
	if !ok {
		p.f.Warn(CodeParamMissing, fmt.Sprintf("parameter %q is not declared, skipping reset", p.m.Param))
		return nil
	}

	if declared.Type != anim.ParamBool {
		p.f.Warn(CodeParamMissing, fmt.Sprintf("parameter %q is %s, need bool", p.m.Param, declared.Type))
		return nil
	}

	var bones []*scene.Node

	for _, path := range p.m.Physbones {
		n := p.f.Node.FindPath(path)
		if n == nil || n.PhysBone == nil {
			p.f.Warn(CodeNodeMissing, fmt.Sprintf("no physbone at %q", path))
			continue
		}

		bones = append(bones, n)
	}

	if len(bones) == 0 {
		p.f.Warn(CodeNothingToDo, "no physbones to reset")
		return nil
	}

	reset := s.Controller.NewClip("Physbone Reset")
	for _, n := range bones {
		s.Motions.PhysBone(reset, n, false)
	}

	param := anim.Param{Name: declared.Name, Type: declared.Type}
	name := p.m.Name
	if name == "" {
		name = p.m.Param
	}

	layer := s.Controller.NewLayer(p.f.ID, name+" - Physbone Reset")
	idleOff := layer.NewState("Idle Off")
	pulseOn := layer.NewState("Reset On").WithAnimation(reset)
	idleOn := layer.NewState("Idle On")
	pulseOff := layer.NewState("Reset Off").WithAnimation(reset)

	idleOff.TransitionsTo(pulseOn).When(param.IsTrue())
	pulseOn.TransitionsTo(idleOn).WithExitTime(0)
	idleOn.TransitionsTo(pulseOff).When(param.IsFalse())
	pulseOff.TransitionsTo(idleOff).WithExitTime(0)

	return nil
}
