package merge

import (
	"fmt"

	"feature-compiler/internal/feature"
)

//go:generate go tool stringer -type=Mode -trimprefix=Mode

// Mode selects how a plan is applied.
type Mode int

const (
	// ModeBoneMerge rewrites skinned renderers onto the target bones.
	ModeBoneMerge Mode = iota + 1
	// ModeRigidAttach parents each donor bone under its target bone.
	ModeRigidAttach
)

// ModeFromLink converts a descriptor link mode.
func ModeFromLink(m feature.LinkMode) (Mode, error) {
	switch m {
	case feature.LinkBoneMerge:
		return ModeBoneMerge, nil
	case feature.LinkRigidAttach, "":
		return ModeRigidAttach, nil
	default:
		return 0, fmt.Errorf("unknown link mode %q", m)
	}
}
