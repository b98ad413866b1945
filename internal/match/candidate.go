package match

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNoBone is returned when no humanoid bone resembles the requested name.
var ErrNoBone = errors.New("no matching bone")

// ErrAmbiguousBone is returned when two bones match the requested name equally well.
var ErrAmbiguousBone = errors.New("ambiguous bone name")

// Thresholds used by FindBone.
const (
	MinBoneScore = 0.85
	MinBoneGap   = 0.03
)

// Candidate is a humanoid bone considered for a requested name.
type Candidate struct {
	// Bone is the canonical humanoid name, e.g. "LeftUpperArm".
	Bone string
	// Path is the root-relative node path the bone maps to.
	Path  string
	Score float64
	// Normalized is the normalized form of Bone used for scoring.
	Normalized string
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// RankBones scores every entry of humanoid (canonical name -> path) against
// name. Returns candidates sorted by score descending.
func RankBones(humanoid map[string]string, name string) CandidateList {
	candidates := make(CandidateList, 0, len(humanoid))

	for bone, path := range humanoid {
		candidates = append(candidates, Candidate{
			Bone:       bone,
			Path:       path,
			Score:      BoneSimilarity(name, bone),
			Normalized: NormalizeBone(bone),
		})
	}

	sort.Sort(candidates)

	return candidates
}

// FindBone resolves name to a humanoid bone path. An exact canonical name wins
// outright; otherwise the best candidate must clear MinBoneScore and lead the
// runner-up by MinBoneGap.
func FindBone(humanoid map[string]string, name string) (Candidate, error) {
	if path, ok := humanoid[name]; ok {
		return Candidate{Bone: name, Path: path, Score: 1, Normalized: NormalizeBone(name)}, nil
	}

	ranked := RankBones(humanoid, name)

	best := ranked.HighConfidence(MinBoneScore, MinBoneGap)
	if best != nil {
		return *best, nil
	}

	if len(ranked) > 1 && ranked[0].Score >= MinBoneScore {
		return Candidate{}, fmt.Errorf("%w %q: %s", ErrAmbiguousBone, name, ranked.Top(3))
	}

	return Candidate{}, fmt.Errorf("%w for %q", ErrNoBone, name)
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by score descending, then by bone name for determinism.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Bone < c[j].Bone
}

func (c CandidateList) String() string {
	parts := make([]string, len(c))
	for i, cand := range c {
		parts[i] = fmt.Sprintf("%s (%.2f)", cand.Bone, cand.Score)
	}

	return strings.Join(parts, ", ")
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// Best returns the best candidate, or nil if no candidates.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}

	return &c[0]
}

// IsAmbiguous returns true if the top two candidates are within the threshold.
func (c CandidateList) IsAmbiguous(threshold float64) bool {
	if len(c) < 2 {
		return false
	}

	return c[0].Score-c[1].Score < threshold
}

// HighConfidence returns the best candidate if it's significantly better than alternatives.
// Returns nil if no clear winner exists.
func (c CandidateList) HighConfidence(minScore, minGap float64) *Candidate {
	best := c.Best()
	if best == nil || best.Score < minScore {
		return nil
	}

	if c.IsAmbiguous(minGap) {
		return nil
	}

	return best
}
