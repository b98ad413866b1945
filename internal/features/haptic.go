package features

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/chewxy/math32"

	"feature-compiler/internal/anim"
	"feature-compiler/internal/build"
	"feature-compiler/internal/common"
	"feature-compiler/internal/feature"
	"feature-compiler/internal/scene"
)

// Contact tags shared with other avatars.
const (
	TagPenMain  = "TPS_Pen_Penetrating"
	TagPenWidth = "TPS_Pen_Width"
	TagPenClose = "TPS_Pen_Close"
	TagPenRoot  = "TPS_Pen_Root"
	TagOrfRoot  = "TPS_Orf_Root"
	TagOrfNorm  = "TPS_Orf_Norm"
)

// Shader properties written by plugs that configure their materials.
const (
	PropPlugLength = "_SPS_Length"
	PropPlugRadius = "_SPS_Radius"
)

// Names of the generated haptic nodes.
const (
	PlugBakeName   = "BakedHapticPlug"
	SocketBakeName = "BakedHapticSocket"
)

var (
	selfContacts = []string{"Hand", "Finger"}
	bodyContacts = []string{"Head", "Hand", "Foot", "Finger"}
)

const (
	// maxTouchPadding caps the extra radius of touch receivers.
	maxTouchPadding = 0.08
	// rubPadding is the same for everyone so two plugs trigger together.
	rubPadding = 0.08
)

// capsuleRotation turns a contact's height axis onto the plug's forward axis.
var capsuleRotation = scene.AxisAngle(scene.Vector3{X: 1}, math32.Pi/2)

// Capsule is the size of a plug in world units.
type Capsule struct {
	Length float32
	Radius float32
}

// DetectCapsule measures the vertices of r, placed at node, along the forward
// (+Z) axis of plug. It reports false when no vertex lies in front of the plug.
func DetectCapsule(plug, node *scene.Node) (Capsule, bool) {
	r := node.Renderer
	if r == nil || len(r.Vertices) == 0 {
		return Capsule{}, false
	}

	rw := node.WorldTransform()
	pw := plug.WorldTransform()
	inv := pw.Rotation.Inverse()

	var c Capsule

	for _, v := range r.Vertices {
		world := rw.Position.Add(rw.Rotation.Rotate(rw.Scale.Mul(v)))
		local := inv.Rotate(world.Sub(pw.Position))

		if local.Z <= 0 {
			continue
		}

		c.Length = max(c.Length, local.Z)
		c.Radius = max(c.Radius, math32.Hypot(local.X, local.Y))
	}

	return c, c.Length > 0
}

type hapticPlug struct {
	f *build.Feature
	m feature.HapticPlug

	renderers []*scene.Node
	size      Capsule
	baked     bool
}

func newHapticPlug(f *build.Feature) (build.Processor, error) {
	m, err := model[feature.HapticPlug](f)
	if err != nil {
		return nil, err
	}

	return &hapticPlug{f: f, m: m}, nil
}

func (h *hapticPlug) Actions() []build.Action {
	acts := []build.Action{{Name: "bake plug", Run: h.bake}}

	if h.m.ConfigureShader {
		acts = append(acts, build.Action{Name: "configure plug shader", Priority: build.PriorityLate, Run: h.configureShader})
	}

	return acts
}

func (h *hapticPlug) findRenderers() []*scene.Node {
	var out []*scene.Node

	if len(h.m.Renderers) > 0 {
		for _, path := range h.m.Renderers {
			n := h.f.Node.FindPath(path)
			if n == nil || n.Renderer == nil {
				h.f.Warn(CodeRendererMissing, fmt.Sprintf("no renderer at %q", path))
				continue
			}

			out = append(out, n)
		}

		return out
	}

	h.f.Node.WalkDown(func(n *scene.Node) bool {
		if len(out) == 0 && n.Renderer != nil {
			out = append(out, n)
		}

		return len(out) == 0
	})

	return out
}

// measure combines detected and authored sizes into world units.
func (h *hapticPlug) measure() (Capsule, error) {
	var size Capsule

	if h.m.AutoLength || h.m.AutoRadius {
		if len(h.renderers) == 0 {
			return Capsule{}, errors.New("failed to find plug renderer")
		}

		for _, n := range h.renderers {
			detected, ok := DetectCapsule(h.f.Node, n)
			if !ok {
				continue
			}

			if h.m.AutoLength {
				size.Length = detected.Length
			}

			if h.m.AutoRadius {
				size.Radius = detected.Radius
			}

			break
		}
	}

	scale := float32(1)
	if !h.m.UnitsInMeters {
		scale = h.f.Node.LossyScale().X
	}

	if !h.m.AutoLength {
		size.Length = h.m.Length * scale
	}

	if !h.m.AutoRadius {
		size.Radius = h.m.Radius * scale
	}

	if size.Length <= 0 {
		return Capsule{}, errors.New("failed to detect plug length")
	}

	if size.Radius <= 0 {
		return Capsule{}, errors.New("failed to detect plug radius")
	}

	size.Radius = min(size.Radius, size.Length/2)

	return size, nil
}

func (h *hapticPlug) bake(*build.Session) error {
	h.renderers = h.findRenderers()

	size, err := h.measure()
	if err != nil {
		h.f.Warn(CodeRendererMissing, err.Error())
		return nil
	}

	h.size = size
	h.baked = true

	name := h.m.Name
	if strings.TrimSpace(name) == "" {
		name = h.f.Node.Name
	}

	prefix := "OGB/Pen/" + strings.ReplaceAll(name, "/", "_")
	root := newBakeRoot(h.f.Node, PlugBakeName)

	length, radius := size.Length, size.Radius
	touch := min(radius, maxTouchPadding)
	halfway := scene.Vector3{Z: length / 2}

	senders := root.NewChild("Senders")
	addSender(senders, "Length", scene.Vector3{}, length, TagPenMain)
	addSender(senders, "WidthHelper", scene.Vector3{}, max(0.01, length-radius*2), TagPenWidth)
	addCapsuleSender(senders, "Envelope", halfway, radius, length, TagPenClose)
	addSender(senders, "Root", scene.Vector3{}, 0.01, TagPenRoot)

	receivers := root.NewChild("Receivers")
	addCapsuleReceiver(receivers, "TouchSelfClose", halfway, radius+touch, length+touch*2, prefix, selfContacts...)
	addReceiver(receivers, "TouchSelf", length+touch, prefix, selfContacts...)
	addCapsuleReceiver(receivers, "TouchOthersClose", halfway, radius+touch, length+touch*2, prefix, bodyContacts...)
	addReceiver(receivers, "TouchOthers", length+touch, prefix, bodyContacts...)
	addReceiver(receivers, "PenSelf", length, prefix, TagOrfRoot)
	addReceiver(receivers, "PenOthers", length, prefix, TagOrfRoot)
	addReceiver(receivers, "FrotOthers", length, prefix, TagPenClose)
	addCapsuleReceiver(receivers, "FrotOthersClose", halfway, radius+rubPadding, length, prefix, TagPenClose)

	return nil
}

// configureShader writes the capsule size into the plug's materials. The
// renderers are claimed so no other plug can configure them too.
func (h *hapticPlug) configureShader(s *build.Session) error {
	if !h.baked {
		return nil
	}

	if len(h.renderers) == 0 {
		return fmt.Errorf("%s configures its shader but no renderer was found", h.f.Label())
	}

	for _, n := range h.renderers {
		if err := s.ClaimRenderer(n.Renderer, h.f.Label()); err != nil {
			return fmt.Errorf("renderer %q: %w", n.Path(), err)
		}

		configured := 0

		for i, mat := range n.Renderer.Materials {
			if mat == nil {
				continue
			}

			mat = mat.Clone()
			if mat.Floats == nil {
				mat.Floats = map[string]float32{}
			}

			mat.Floats[PropPlugLength] = h.size.Length
			mat.Floats[PropPlugRadius] = h.size.Radius
			n.Renderer.Materials[i] = mat
			configured++
		}

		if configured == 0 {
			return fmt.Errorf("%s configures its shader but %q has no material", h.f.Label(), n.Path())
		}
	}

	return nil
}

type hapticSocket struct {
	f *build.Feature
	m feature.HapticSocket
}

func newHapticSocket(f *build.Feature) (build.Processor, error) {
	m, err := model[feature.HapticSocket](f)
	if err != nil {
		return nil, err
	}

	return &hapticSocket{f: f, m: m}, nil
}

func (h *hapticSocket) Actions() []build.Action {
	return []build.Action{{Name: "bake socket", Run: h.bake}}
}

func (h *hapticSocket) bake(s *build.Session) error {
	name := h.m.Name
	if strings.TrimSpace(name) == "" {
		name = h.f.Node.Name
	}

	prefix := "OGB/Orf/" + strings.ReplaceAll(name, "/", "_")

	root := newBakeRoot(h.f.Node, SocketBakeName)
	root.Active = false

	senders := root.NewChild("Senders")
	addSender(senders, "Root", scene.Vector3{}, 0.01, TagOrfRoot)
	addSender(senders, "Front", scene.Vector3{Z: 0.01}, 0.01, TagOrfNorm)

	if h.m.Mode == feature.SocketRing {
		addSender(senders, "Back", scene.Vector3{Z: -0.01}, 0.01, TagOrfNorm)
	}

	receivers := root.NewChild("Receivers")
	addReceiver(receivers, "PenSelf", 1, prefix, TagPenMain)
	addReceiver(receivers, "PenOthers", 1, prefix, TagPenMain)
	addReceiver(receivers, "TouchSelf", 1, prefix, selfContacts...)
	addReceiver(receivers, "TouchOthers", 1, prefix, bodyContacts...)

	def := float32(0)
	if h.m.DefaultOn {
		def = 1
	}

	param, err := s.Controller.NewBool(h.f.ID, "Socket "+name, anim.ParamOptions{Default: def, Saved: true, Synced: true})
	if err != nil {
		return err
	}

	on := s.Controller.NewClip("Socket " + name)
	s.Motions.Enable(on, root, true)

	layer := s.Controller.NewLayer(h.f.ID, "Socket "+name)
	offState := layer.NewState("Off")
	onState := layer.NewState("On").WithAnimation(on)
	offState.TransitionsTo(onState).When(param.IsTrue())
	onState.TransitionsTo(offState).When(param.IsFalse())

	if _, err := s.Menu.NewToggle("Sockets/"+name, param, ""); err != nil {
		return fmt.Errorf("adding socket toggle: %w", err)
	}

	return nil
}

func newBakeRoot(parent *scene.Node, base string) *scene.Node {
	return parent.NewChild(common.UniqueName(base, func(s string) bool { return parent.ChildByName(s) != nil }))
}

func addSender(parent *scene.Node, name string, pos scene.Vector3, radius float32, tags ...string) *scene.Node {
	n := parent.NewChild(name)
	n.Transform.Position = pos
	n.Contact = &scene.Contact{Kind: scene.ContactSender, Radius: radius, Tags: slices.Clone(tags)}

	return n
}

func addCapsuleSender(parent *scene.Node, name string, pos scene.Vector3, radius, height float32, tags ...string) *scene.Node {
	n := addSender(parent, name, pos, radius, tags...)
	n.Transform.Rotation = capsuleRotation
	n.Contact.Height = height

	return n
}

func addReceiver(parent *scene.Node, name string, radius float32, prefix string, tags ...string) *scene.Node {
	n := parent.NewChild(name)
	n.Contact = &scene.Contact{
		Kind:      scene.ContactReceiver,
		Radius:    radius,
		Tags:      slices.Clone(tags),
		Parameter: common.JoinPath(prefix, name),
	}

	return n
}

func addCapsuleReceiver(parent *scene.Node, name string, pos scene.Vector3, radius, height float32, prefix string, tags ...string) *scene.Node {
	n := addReceiver(parent, name, radius, prefix, tags...)
	n.Transform.Position = pos
	n.Transform.Rotation = capsuleRotation
	n.Contact.Height = height

	return n
}
