package defaults

import (
	"fmt"
	"log/slog"
	"strings"

	"feature-compiler/internal/anim"
	"feature-compiler/internal/common"
	"feature-compiler/internal/diagnostic"
	"feature-compiler/internal/motion"
)

// Convention is the playback rule shared by every state after harmonizing.
type Convention int

const (
	// ConventionExplicit states write only the properties their clip animates.
	ConventionExplicit Convention = iota
	// ConventionDefaults states let unanimated properties return to rest.
	ConventionDefaults
)

// String returns a human-readable convention name.
func (c Convention) String() string {
	switch c {
	case ConventionExplicit:
		return "explicit"
	case ConventionDefaults:
		return "defaults"
	default:
		return common.UnknownStr
	}
}

// DefaultsLayerName is the name of the resting-values layer before the owner prefix.
const DefaultsLayerName = "Defaults"

// Diagnostic codes.
const (
	CodeMixedConventions = "mixed_conventions"
	CodeNoRestingValue   = "no_resting_value"
)

// Report describes a harmonizer run.
type Report struct {
	Convention Convention
	Forced     bool
	// DefaultsOn and DefaultsOff count the pre-existing states by convention.
	DefaultsOn  int
	DefaultsOff int
	// Minority names the pre-existing states ("layer.state") that disagreed with the majority.
	Minority []string
	// Captured is the number of curves in the resting-values clip.
	Captured int
	Layer    *anim.Layer
}

// Harmonizer runs the convention pass over one controller.
type Harmonizer struct {
	Controller *anim.ControllerManager
	Motions    *motion.Builder
	// Clip receives the resting values. It may already hold curves.
	Clip   *anim.Clip
	Force  bool
	Diags  *diagnostic.Diagnostics
	Logger *slog.Logger
}

// Run counts, decides, captures resting values and flips every state.
func (h *Harmonizer) Run() Report {
	rep := Report{Forced: h.Force}

	h.count(&rep)

	switch {
	case h.Force:
		rep.Convention = ConventionExplicit
	case rep.DefaultsOn >= rep.DefaultsOff && rep.DefaultsOn > 0:
		// Ties go to the defaults convention. No pre-existing states at all keeps
		// the explicit convention of the generated layers.
		rep.Convention = ConventionDefaults
	default:
		rep.Convention = ConventionExplicit
	}

	layers := h.Controller.Controller().Layers

	lb := h.Controller.NewLayerFirst(0, DefaultsLayerName)
	lb.NewState(DefaultsLayerName).WithAnimation(h.Clip)
	rep.Layer = lb.Layer()

	for _, l := range layers {
		l.ForEachClip(h.capture)
	}

	rep.Captured = len(h.Clip.Floats) + len(h.Clip.Objects)

	h.flip(rep.Convention)

	h.logger().Info("harmonized playback convention",
		"convention", rep.Convention,
		"forced", rep.Forced,
		"defaults_on", rep.DefaultsOn,
		"defaults_off", rep.DefaultsOff,
		"captured", rep.Captured)

	return rep
}

func (h *Harmonizer) count(rep *Report) {
	unmanaged := h.Controller.UnmanagedLayers()

	for _, l := range unmanaged {
		l.ForEachState(func(s *anim.State) {
			if s.WriteDefaults {
				rep.DefaultsOn++
			} else {
				rep.DefaultsOff++
			}
		})
	}

	if rep.DefaultsOn == 0 || rep.DefaultsOff == 0 {
		return
	}

	minorityOn := rep.DefaultsOff > rep.DefaultsOn

	for _, l := range unmanaged {
		l.ForEachState(func(s *anim.State) {
			if s.WriteDefaults == minorityOn {
				rep.Minority = append(rep.Minority, l.Name+"."+s.Name)
			}
		})
	}

	h.Diags.AddWarning(CodeMixedConventions, fmt.Sprintf(
		"controller mixes conventions (%d defaults, %d explicit); the odd states are most likely: %s",
		rep.DefaultsOn, rep.DefaultsOff, strings.Join(rep.Minority, ", ")), "", "")
}

// capture adds the resting value of every binding of c not yet in the clip.
func (h *Harmonizer) capture(c *anim.Clip) {
	if c == h.Clip || h.Controller.IsNoop(c) {
		return
	}

	for _, b := range c.FloatBindings() {
		if _, ok := h.Clip.Curve(b); ok || b.Path == anim.NoopPath {
			continue
		}

		v, ok := h.Motions.Resting(b)
		if !ok {
			h.Diags.AddWarning(CodeNoRestingValue,
				fmt.Sprintf("clip %q animates %s, which has no resting value", c.Name, b), "", b.Path)

			continue
		}

		h.Clip.SetCurve(b, anim.OneFrame(v))
	}

	for _, b := range c.ObjectBindings() {
		if _, ok := h.Clip.ObjectCurve(b); ok || b.Path == anim.NoopPath {
			continue
		}

		v, ok := h.Motions.RestingObject(b)
		if !ok {
			h.Diags.AddWarning(CodeNoRestingValue,
				fmt.Sprintf("clip %q animates %s, which has no resting value", c.Name, b), "", b.Path)

			continue
		}

		h.Clip.SetObjectCurve(b, anim.OneObjectFrame(v))
	}
}

// flip sets every state to conv. Under the explicit convention a state with no
// clip plays the noop clip so it does not write anything.
func (h *Harmonizer) flip(conv Convention) {
	on := conv == ConventionDefaults

	h.Controller.Controller().ForEachState(func(_ *anim.Layer, s *anim.State) {
		s.WriteDefaults = on

		if !on && s.Motion == nil {
			s.Motion = h.Controller.NoopClip()
		}
	})
}

func (h *Harmonizer) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}

	return slog.Default()
}
