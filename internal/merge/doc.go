// Package merge links a donor hierarchy into a target hierarchy.
//
// Linking is split in two phases. BuildPlan walks both trees read-only and
// pairs donor nodes with target nodes of the same name, level by level,
// starting from the given root pair. Donor children without a namesake are
// recorded as unpaired subtrees attached to their paired parent's target.
// Apply then mutates the scene from the plan, deepest entries first, so a
// node is always handled before its ancestors move or disappear.
//
// Two modes exist. ModeBoneMerge points skinned renderers at the target bones,
// deletes the donor bones and moves the unpaired subtrees across. ModeRigidAttach
// keeps every donor bone and parents it under its target. In both modes each
// relocated node is added to the ignore list of any physbone whose root lies
// above its new parent, and every old path is recorded in a rewrite.Mapping.
package merge
