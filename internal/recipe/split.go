package recipe

import (
	"regexp"
	"strings"
)

// amountPrefixRe captures a leading quantity (optionally a "q - q" range)
// followed by up to three unit words, which may contain internal periods
// ("fl.oz."). Everything after is the name. Latin-extended letters are kept
// for Swedish units like "krm" / "tesked" with diacritics.
var amountPrefixRe = regexp.MustCompile(
	`^((?:\d+\s+\d+/\d+|\d+/\d+|\d+(?:[.,]\d+)?)` +
		`(?:\s*-\s*(?:\d+\s+\d+/\d+|\d+/\d+|\d+(?:[.,]\d+)?))?` +
		`(?:\s+[a-zA-Z\x{00C0}-\x{017F}%]+(?:\.[a-zA-Z\x{00C0}-\x{017F}%]+)*){0,3})` +
		`\s+(.+)$`)

// SplitAmountAndName splits a free-text ingredient line such as
// "2 1/2 cups flour, sifted" into a quantity+unit phrase and a trailing
// name. Lines with no parseable leading quantity become name-only. This is a
// best-effort heuristic: lines with unit words deep inside the name can
// misparse, which is accepted.
func SplitAmountAndName(line string) Ingredient {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return Ingredient{}
	}

	m := amountPrefixRe.FindStringSubmatch(trimmed)
	if m == nil {
		return Ingredient{Name: trimmed}
	}

	return Ingredient{
		Amount: strings.TrimSpace(m[1]),
		Name:   strings.TrimSpace(m[2]),
	}
}
