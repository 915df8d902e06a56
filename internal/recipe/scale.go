package recipe

import (
	"math"
	"strconv"
	"strings"
)

// RecipeTypeBaking marks recipes that scale by batches rather than servings.
const RecipeTypeBaking = "baking"

// ScaleBaseline returns the denominator of the scale multiplier. Baking
// recipes always scale from the authored batch, so their baseline is 1; all
// other types scale from the extracted serving count, floored at 1.
func ScaleBaseline(recipeType string, baseServings int) int {
	if recipeType == RecipeTypeBaking {
		return 1
	}
	if baseServings < 1 {
		return 1
	}
	return baseServings
}

// ScaleAmount rewrites every scalable numeric token in s by the multiplier.
// Temperature and duration tokens pass through verbatim, as do malformed
// fractions. A multiplier of exactly 1 returns s unchanged, byte for byte.
// Token count and ordering are never altered, only token values.
func ScaleAmount(s string, multiplier float64) string {
	if multiplier == 1 || s == "" {
		return s
	}

	tokens := Tokenize(s)
	if len(tokens) == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8)
	last := 0
	for _, tok := range tokens {
		b.WriteString(s[last:tok.Start])
		if tok.Scalable && tok.Valid {
			b.WriteString(formatScaled(tok.Value * multiplier))
		} else {
			b.WriteString(tok.Text)
		}
		last = tok.End
	}
	b.WriteString(s[last:])
	return b.String()
}

// FormatIngredientLine renders an ingredient for display: scaled amount,
// unit, name, joined with spaces and with empty parts dropped.
func FormatIngredientLine(ing Ingredient, multiplier float64) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{ScaleAmount(ing.Amount, multiplier), ing.Unit, ing.Name} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// formatScaled renders a scaled value: whole numbers without decimals,
// everything else with at most 2 decimal places and trailing zeros stripped.
func formatScaled(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	out := strconv.FormatFloat(v, 'f', 2, 64)
	out = strings.TrimRight(out, "0")
	return strings.TrimRight(out, ".")
}
