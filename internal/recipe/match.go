package recipe

import (
	"regexp"
	"strings"
)

var (
	parentheticalRe = regexp.MustCompile(`\([^)]*\)`)
	nameSymbolRe    = regexp.MustCompile(`[^a-z0-9\x{00C0}-\x{017F}\s]`)
	nameSpaceRe     = regexp.MustCompile(`\s+`)
)

// NormalizeName prepares an ingredient name for matching: lowercase, drop
// parenthetical asides, strip punctuation (keeping Latin-extended letters),
// collapse whitespace.
func NormalizeName(name string) string {
	s := strings.ToLower(name)
	s = parentheticalRe.ReplaceAllString(s, " ")
	s = nameSymbolRe.ReplaceAllString(s, " ")
	s = nameSpaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// MatchIngredientIndex returns the index of the first top-level ingredient
// whose normalized name contains, or is contained in, the normalized
// candidate name. Returns -1 when nothing matches, which is a normal outcome
// for sub-ingredients not listed at top level.
//
// First match wins. When names overlap ("cream" vs "sour cream") the result
// depends on list order; that order dependence is intentional and preserved.
func MatchIngredientIndex(name string, top []Ingredient) int {
	normalized := NormalizeName(name)
	if normalized == "" {
		return -1
	}

	for i, ing := range top {
		topName := NormalizeName(ing.Name)
		if strings.Contains(topName, normalized) || strings.Contains(normalized, topName) {
			return i
		}
	}
	return -1
}

// FindMatchingTopIngredient is MatchIngredientIndex returning the ingredient
// itself, or nil when there is no match.
func FindMatchingTopIngredient(name string, top []Ingredient) *Ingredient {
	if i := MatchIngredientIndex(name, top); i >= 0 {
		return &top[i]
	}
	return nil
}
