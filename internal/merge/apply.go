package merge

import (
	"fmt"

	"feature-compiler/internal/common"
	"feature-compiler/internal/rewrite"
	"feature-compiler/internal/scene"
)

// Options configures Apply.
type Options struct {
	Mode Mode
	// KeepBoneOffsets keeps the world offset of bones attached in ModeRigidAttach.
	// Otherwise they snap onto their target.
	KeepBoneOffsets bool
	// ID is the identity number of the owning feature, used in rename prefixes.
	ID int
	// Scope bounds the skinned renderers rewritten in ModeBoneMerge.
	// Nil means the donor root.
	Scope *scene.Node
}

// Result reports what Apply did.
type Result struct {
	// Mapping maps every relocated or merged donor path to its final path.
	Mapping *rewrite.Mapping
	// Relocated lists the donor nodes that now live under the target hierarchy.
	Relocated []*scene.Node
	// Deleted counts donor bones removed in ModeBoneMerge.
	Deleted int
	// Rebound counts renderer bone references moved onto target bones.
	Rebound int
	// Excluded counts physbone ignore entries added.
	Excluded int
}

// RenamePrefix returns the prefix given to nodes relocated by feature id.
func RenamePrefix(id int) string {
	return fmt.Sprintf("vrcf_%d_", id)
}

// Apply mutates the scene according to plan. Paths are relative to the root
// of the target hierarchy and are captured before anything moves.
func Apply(plan *Plan, opts Options) (*Result, error) {
	if plan == nil || len(plan.Paired) == 0 {
		return nil, fmt.Errorf("empty merge plan")
	}

	root := plan.Root().Target.Root()
	oldPaths := map[*scene.Node]string{}

	for _, p := range plan.Paired {
		oldPaths[p.Donor] = p.Donor.PathFrom(root)
	}

	for _, p := range plan.Unpaired {
		oldPaths[p.Donor] = p.Donor.PathFrom(root)
	}

	a := &applier{
		opts:     opts,
		root:     root,
		oldPaths: oldPaths,
		res:      &Result{Mapping: rewrite.NewMapping()},
	}

	var err error

	switch opts.Mode {
	case ModeBoneMerge:
		err = a.boneMerge(plan)
	case ModeRigidAttach:
		err = a.rigidAttach(plan)
	default:
		err = fmt.Errorf("unknown merge mode %s", opts.Mode)
	}

	if err != nil {
		return nil, err
	}

	return a.res, nil
}

type applier struct {
	opts     Options
	root     *scene.Node
	oldPaths map[*scene.Node]string
	res      *Result
}

func (a *applier) boneMerge(plan *Plan) error {
	scope := a.opts.Scope
	if scope == nil {
		scope = plan.Root().Donor
	}

	// Donor bones with components stay alive, so meshes keep following them.
	bones := make(map[*scene.Node]*scene.Node, len(plan.Paired))
	for _, p := range plan.Paired {
		if !hasComponents(p.Donor) {
			bones[p.Donor] = p.Target
		}
	}

	scope.WalkDown(func(n *scene.Node) bool {
		if r := n.Renderer; r != nil && r.Skinned {
			a.res.Rebound += r.RemapBones(bones)
		}

		return true
	})

	for _, p := range plan.UnpairedDeepestFirst() {
		if err := a.relocate(p.Donor, p.Target, true); err != nil {
			return err
		}
	}

	for _, p := range plan.PairedDeepestFirst() {
		if hasComponents(p.Donor) {
			if err := a.relocate(p.Donor, p.Target, true); err != nil {
				return err
			}

			continue
		}

		if err := a.res.Mapping.Add(a.oldPaths[p.Donor], p.Target.PathFrom(a.root)); err != nil {
			return err
		}

		p.Donor.Destroy()
		a.res.Deleted++
	}

	return nil
}

func (a *applier) rigidAttach(plan *Plan) error {
	for _, p := range plan.PairedDeepestFirst() {
		p.Donor.Constraint = nil

		if err := a.relocate(p.Donor, p.Target, a.opts.KeepBoneOffsets); err != nil {
			return err
		}

		if !a.opts.KeepBoneOffsets {
			p.Donor.Transform.Position = scene.Vector3{}
			p.Donor.Transform.Rotation = scene.Identity
		}
	}

	return nil
}

// relocate renames n with the feature prefix, moves it under parent and
// records the path change.
func (a *applier) relocate(n, parent *scene.Node, keepWorld bool) error {
	name := common.UniqueName(RenamePrefix(a.opts.ID)+n.Name, func(s string) bool {
		return parent.ChildByName(s) != nil
	})

	n.Name = name
	if keepWorld {
		n.SetParentKeepWorld(parent)
	} else {
		n.SetParent(parent)
	}

	a.res.Relocated = append(a.res.Relocated, n)
	a.res.Excluded += ExcludeFromPhysBones(a.root, n)

	return a.res.Mapping.Add(a.oldPaths[n], n.PathFrom(a.root))
}

func hasComponents(n *scene.Node) bool {
	return n.Renderer != nil || n.PhysBone != nil || n.Contact != nil || n.Constraint != nil
}

// ExcludeFromPhysBones adds n to the ignore list of every physbone in the tree
// under root whose affected hierarchy contains n's parent. Physbones that live
// inside n's own subtree are left alone. It returns the number of lists changed.
func ExcludeFromPhysBones(root, n *scene.Node) int {
	parent := n.Parent()
	if parent == nil {
		return 0
	}

	changed := 0

	root.WalkDown(func(owner *scene.Node) bool {
		pbRoot := owner.PhysBoneRoot()
		if pbRoot == nil || owner.IsDescendantOf(n) || pbRoot.IsDescendantOf(n) {
			return true
		}

		if parent.IsDescendantOf(pbRoot) {
			before := len(owner.PhysBone.Ignore)
			owner.PhysBone.Ignore = common.AppendUnique(owner.PhysBone.Ignore, n)

			if len(owner.PhysBone.Ignore) != before {
				changed++
			}
		}

		return true
	})

	return changed
}
