// Package match finds skeleton bones by their semantic name.
//
// Authored rigs spell humanoid bones in many ways ("LeftUpperArm",
// "upper_arm.L", "mixamorig:LeftArm"). NormalizeBone folds those spellings
// into one token string, Levenshtein and strutil's Jaro-Winkler score how
// close two normalized names are, and FindBone ranks the scene's humanoid map
// against a requested name.
//
// Key functions:
//   - NormalizeBone: normalizes bone names for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - RankBones: ranks humanoid bones against a requested name
//   - FindBone: resolves a requested name to one bone path
package match
