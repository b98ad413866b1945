package merge

import (
	"errors"
	"fmt"
	"strings"

	"feature-compiler/internal/common"
	"feature-compiler/internal/scene"
)

// Pair links a donor node to a target node. For unpaired entries Target is the
// node the donor subtree will be attached under.
type Pair struct {
	Donor  *scene.Node
	Target *scene.Node
}

// Plan is the read-only result of pairing two hierarchies.
// Both sequences are in traversal order, ancestors first.
type Plan struct {
	Paired   []Pair
	Unpaired []Pair
}

// BuildPlan pairs donorRoot with targetRoot and then every donor child with
// the target child of the same name, breadth first. A donor child with no
// namesake becomes an unpaired subtree under its parent's target and is not
// descended into.
func BuildPlan(donorRoot, targetRoot *scene.Node) (*Plan, error) {
	if donorRoot == nil || targetRoot == nil {
		return nil, errors.New("merge needs both a donor and a target root")
	}

	if targetRoot.IsDescendantOf(donorRoot) {
		return nil, fmt.Errorf("target %q lies inside donor %q", targetRoot.Path(), donorRoot.Path())
	}

	plan := &Plan{Paired: []Pair{{Donor: donorRoot, Target: targetRoot}}}
	queue := []Pair{plan.Paired[0]}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, child := range cur.Donor.Children() {
			// A namesake inside the donor itself is not a match.
			if match := cur.Target.ChildByName(child.Name); match != nil && !match.IsDescendantOf(donorRoot) {
				pair := Pair{Donor: child, Target: match}
				plan.Paired = append(plan.Paired, pair)
				queue = append(queue, pair)

				continue
			}

			plan.Unpaired = append(plan.Unpaired, Pair{Donor: child, Target: cur.Target})
		}
	}

	return plan, nil
}

// PairedDeepestFirst returns the paired nodes in mutation order.
func (p *Plan) PairedDeepestFirst() []Pair {
	return common.Reversed(p.Paired)
}

// UnpairedDeepestFirst returns the unpaired subtrees in mutation order.
func (p *Plan) UnpairedDeepestFirst() []Pair {
	return common.Reversed(p.Unpaired)
}

// Root returns the root pair.
func (p *Plan) Root() Pair {
	return p.Paired[0]
}

// String renders the plan one entry per line.
func (p *Plan) String() string {
	var b strings.Builder

	for _, pair := range p.Paired {
		fmt.Fprintf(&b, "merge  %s -> %s\n", pair.Donor.Path(), pair.Target.Path())
	}

	for _, pair := range p.Unpaired {
		fmt.Fprintf(&b, "attach %s -> %s\n", pair.Donor.Path(), pair.Target.Path())
	}

	return b.String()
}
