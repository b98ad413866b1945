package features

import (
	"fmt"

	"github.com/chewxy/math32"

	"feature-compiler/internal/build"
	"feature-compiler/internal/feature"
	"feature-compiler/internal/motion"
	"feature-compiler/internal/scene"
)

// Static bakes change the resting scene directly. They run before the
// harmonizer reads resting values, so the baked values become the defaults.

type blendShapeSet struct {
	f *build.Feature
	m feature.BlendShapeSet
}

func newBlendShapeSet(f *build.Feature) (build.Processor, error) {
	m, err := model[feature.BlendShapeSet](f)
	if err != nil {
		return nil, err
	}

	return &blendShapeSet{f: f, m: m}, nil
}

func (b *blendShapeSet) Actions() []build.Action {
	return []build.Action{{Name: "set blend shapes", Run: b.apply}}
}

func (b *blendShapeSet) apply(s *build.Session) error {
	var renderers []*scene.Renderer

	if b.m.Renderer != "" {
		n := b.f.Node.FindPath(b.m.Renderer)
		if n == nil || n.Renderer == nil {
			b.f.Warn(CodeRendererMissing, fmt.Sprintf("no renderer at %q", b.m.Renderer))
			return nil
		}

		renderers = append(renderers, n.Renderer)
	} else {
		s.Scene.Root.WalkDown(func(n *scene.Node) bool {
			if n.Renderer != nil && n.Renderer.Skinned {
				renderers = append(renderers, n.Renderer)
			}

			return true
		})
	}

	for _, bs := range b.m.BlendShapes {
		found := false

		for _, r := range renderers {
			if r.SetBlendShape(bs.Name, bs.Value) {
				found = true
			}
		}

		if !found {
			b.f.Warn(CodeRendererMissing, fmt.Sprintf("no renderer has blend shape %q", bs.Name))
		}
	}

	return nil
}

type materialSwap struct {
	f *build.Feature
	m feature.MaterialSwap
}

func newMaterialSwap(f *build.Feature) (build.Processor, error) {
	m, err := model[feature.MaterialSwap](f)
	if err != nil {
		return nil, err
	}

	return &materialSwap{f: f, m: m}, nil
}

func (ms *materialSwap) Actions() []build.Action {
	return []build.Action{{Name: "swap material", Run: ms.apply}}
}

func (ms *materialSwap) apply(*build.Session) error {
	n := ms.f.Node.FindPath(ms.m.Renderer)
	if n == nil || n.Renderer == nil {
		ms.f.Warn(CodeRendererMissing, fmt.Sprintf("no renderer at %q", ms.m.Renderer))
		return nil
	}

	mats := n.Renderer.Materials
	if ms.m.Slot >= len(mats) {
		ms.f.Warn(CodeRendererMissing, fmt.Sprintf("%q has %d material slots, wanted slot %d",
			n.Path(), len(mats), ms.m.Slot))

		return nil
	}

	mats[ms.m.Slot] = &scene.Material{Name: ms.m.Material}

	return nil
}

type scaleSet struct {
	f *build.Feature
	m feature.ScaleSet
}

func newScaleSet(f *build.Feature) (build.Processor, error) {
	m, err := model[feature.ScaleSet](f)
	if err != nil {
		return nil, err
	}

	return &scaleSet{f: f, m: m}, nil
}

func (ss *scaleSet) Actions() []build.Action {
	return []build.Action{{Name: "set scale", Run: ss.apply}}
}

func (ss *scaleSet) apply(*build.Session) error {
	n := ss.f.Node.FindPath(ss.m.Obj)
	if n == nil {
		ss.f.Warn(CodeNodeMissing, fmt.Sprintf("no node at %q", ss.m.Obj))
		return nil
	}

	n.Transform.Scale = n.Transform.Scale.Scale(ss.m.Scale)

	return nil
}

type frameSelect struct {
	f *build.Feature
	m feature.FrameSelect
}

func newFrameSelect(f *build.Feature) (build.Processor, error) {
	m, err := model[feature.FrameSelect](f)
	if err != nil {
		return nil, err
	}

	return &frameSelect{f: f, m: m}, nil
}

func (fs *frameSelect) Actions() []build.Action {
	return []build.Action{{Name: "select frame", Run: fs.apply}}
}

func (fs *frameSelect) apply(*build.Session) error {
	n := fs.f.Node.FindPath(fs.m.Renderer)
	if n == nil || n.Renderer == nil {
		fs.f.Warn(CodeRendererMissing, fmt.Sprintf("no renderer at %q", fs.m.Renderer))
		return nil
	}

	frame := math32.Floor(fs.m.Frame) + 0.5

	for i, mat := range n.Renderer.Materials {
		if mat == nil {
			continue
		}

		mat = mat.Clone()
		if mat.Floats == nil {
			mat.Floats = map[string]float32{}
		}

		mat.Floats[motion.PropFlipbookFrame] = frame
		n.Renderer.Materials[i] = mat
	}

	return nil
}

type forceExplicitValues struct{}

func newForceExplicitValues(*build.Feature) (build.Processor, error) {
	return forceExplicitValues{}, nil
}

func (forceExplicitValues) Actions() []build.Action {
	return []build.Action{{Name: "force explicit values", Run: func(s *build.Session) error {
		s.ForceExplicitValues()
		return nil
	}}}
}
