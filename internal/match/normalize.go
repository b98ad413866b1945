package match

import (
	"strings"
	"unicode"
)

// rigPrefixes are exporter namespaces that carry no meaning.
var rigPrefixes = []string{"mixamorig", "bip", "armature", "def", "j"}

// sideTokens map side markers to a canonical token.
var sideTokens = map[string]string{
	"l": "left", "left": "left", "lft": "left",
	"r": "right", "right": "right", "rgt": "right",
}

// NormalizeBone normalizes a bone name for fuzzy matching.
// The normalization pipeline:
// 1. Tokenize on separators and CamelCase.
// 2. Case-fold to lower.
// 3. Drop exporter prefixes such as "mixamorig".
// 4. Move the side marker ("L", ".R", "Left") to the front as "left"/"right".
func NormalizeBone(s string) string {
	tokens := TokenizeBone(s)

	side := ""
	rest := tokens[:0]
	prefixed := false

	for i, t := range tokens {
		if i == 0 && isRigPrefix(t) && len(tokens) > 1 {
			prefixed = true
			continue
		}

		// "Bip01" splits into "bip" and "01".
		if i == 1 && prefixed && isDigits(t) {
			continue
		}

		if canon, ok := sideTokens[t]; ok && side == "" {
			side = canon
			continue
		}

		rest = append(rest, t)
	}

	return side + strings.Join(rest, "")
}

// TokenizeBone splits a bone name into lowercase tokens.
func TokenizeBone(s string) []string {
	tokens := tokenizeCamelCase(s)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	return tokens
}

func isDigits(t string) bool {
	for _, r := range t {
		if !unicode.IsDigit(r) {
			return false
		}
	}

	return t != ""
}

func isRigPrefix(t string) bool {
	for _, p := range rigPrefixes {
		if t == p {
			return true
		}
	}

	return false
}

// tokenizeCamelCase splits a CamelCase or separated string into tokens.
// Examples:
//   - "LeftUpperArm" -> ["Left", "Upper", "Arm"]
//   - "upper_arm.L" -> ["upper", "arm", "L"]
//   - "mixamorig:LeftHand" -> ["mixamorig", "Left", "Hand"]
//   - "Spine2" -> ["Spine", "2"]
func tokenizeCamelCase(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string

	var current strings.Builder

	runes := []rune(s)
	for i := range runes {
		r := runes[i]

		// Handle separators - start a new token
		if isSeparator(r) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}

			continue
		}

		if i > 0 && shouldStartNewToken(runes, i) && current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

// isSeparator returns true if the rune separates tokens in a bone name.
func isSeparator(r rune) bool {
	switch r {
	case '_', '-', ' ', '.', ':', '|':
		return true
	default:
		return false
	}
}

// shouldStartNewToken determines if a new token should start at position i.
func shouldStartNewToken(runes []rune, i int) bool {
	r := runes[i]
	prev := runes[i-1]

	if isSeparator(prev) {
		return false
	}

	// Digits form their own token: "Spine2" -> "Spine" + "2"
	if unicode.IsDigit(r) != unicode.IsDigit(prev) {
		return true
	}

	// Transition from lowercase to uppercase, e.g. "upperArm" -> split before 'A'
	if unicode.IsUpper(r) && !unicode.IsUpper(prev) {
		return true
	}

	// End of acronym, e.g. "IKTarget" -> "IK" + "Target"
	hasNextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

	return unicode.IsUpper(r) && unicode.IsUpper(prev) && hasNextLower
}
