package recipe

import "strings"

// ResolveStepIngredient fills in a step ingredient's missing amount and unit
// from the matching top-level ingredient. A step-specific amount always wins;
// an unmatched name comes back with empty amount/unit, which renders as a
// name-only mention.
func ResolveStepIngredient(ing Ingredient, top []Ingredient) Ingredient {
	name := strings.TrimSpace(ing.Name)
	if name == "" {
		return Ingredient{}
	}

	if amount := strings.TrimSpace(ing.Amount); amount != "" {
		return Ingredient{
			Name:   name,
			Amount: amount,
			Unit:   strings.TrimSpace(ing.Unit),
		}
	}

	if match := FindMatchingTopIngredient(name, top); match != nil {
		return Ingredient{
			Name:   name,
			Amount: match.Amount,
			Unit:   match.Unit,
		}
	}

	return Ingredient{Name: name, Unit: strings.TrimSpace(ing.Unit)}
}

// ResolveInstruction resolves every step ingredient against the top-level
// list, dropping entries that resolve to nothing.
func ResolveInstruction(step Instruction, top []Ingredient) Instruction {
	resolved := make([]Ingredient, 0, len(step.Ingredients))
	for _, ing := range step.Ingredients {
		r := ResolveStepIngredient(ing, top)
		if r.Name == "" {
			continue
		}
		resolved = append(resolved, r)
	}
	return Instruction{Text: step.Text, Ingredients: resolved}
}
