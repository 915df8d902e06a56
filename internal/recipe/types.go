package recipe

import (
	"encoding/json"
	"strings"
)

// Ingredient is a single quantity line. Amount is kept as free text
// ("2 1/2", "1 - 2", "to taste") so the source wording survives; scaling
// works on the numeric tokens embedded in it.
type Ingredient struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
	Unit   string `json:"unit"`
}

// IngredientSection groups ingredients under a heading such as "For the sauce".
type IngredientSection struct {
	Title       string       `json:"title"`
	Ingredients []Ingredient `json:"ingredients"`
}

// Instruction is one cooking step. Its ingredients are references into the
// top-level list, possibly with a step-specific amount; missing amounts are
// filled in at resolution time.
type Instruction struct {
	Text        string       `json:"text"`
	Ingredients []Ingredient `json:"ingredients"`
}

// SectionList is the canonical sectioned ingredient list. Its decoder accepts
// the legacy shapes still present in stored recipes: a flat array of
// ingredient objects (wrapped into one untitled section) and a flat array of
// plain strings (run through the amount/name splitter).
type SectionList []IngredientSection

// InstructionList decodes instructions, accepting the legacy plain-string
// form for each step.
type InstructionList []Instruction

// UnmarshalJSON accepts an ingredient object (with "name", "item" or
// "ingredient" as the name key) or a bare string line.
func (ing *Ingredient) UnmarshalJSON(data []byte) error {
	var line string
	if err := json.Unmarshal(data, &line); err == nil {
		*ing = SplitAmountAndName(line)
		return nil
	}

	var raw struct {
		Name       string `json:"name"`
		Item       string `json:"item"`
		Ingredient string `json:"ingredient"`
		Amount     string `json:"amount"`
		Unit       string `json:"unit"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		// Malformed entries degrade to an empty ingredient and are filtered
		// out by the list decoders.
		*ing = Ingredient{}
		return nil
	}

	name := strings.TrimSpace(raw.Name)
	if name == "" {
		name = strings.TrimSpace(raw.Item)
	}
	if name == "" {
		name = strings.TrimSpace(raw.Ingredient)
	}

	*ing = Ingredient{
		Name:   name,
		Amount: strings.TrimSpace(raw.Amount),
		Unit:   strings.TrimSpace(raw.Unit),
	}
	return nil
}

func (s *SectionList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		*s = nil
		return nil
	}
	if len(raw) == 0 {
		*s = SectionList{}
		return nil
	}

	if isSectionShaped(raw[0]) {
		var sections []IngredientSection
		if err := json.Unmarshal(data, &sections); err != nil {
			*s = SectionList{}
			return nil
		}
		out := make(SectionList, 0, len(sections))
		for _, sec := range sections {
			sec.Ingredients = dropUnnamed(sec.Ingredients)
			out = append(out, sec)
		}
		*s = out
		return nil
	}

	// Legacy flat list: one untitled section.
	var flat []Ingredient
	if err := json.Unmarshal(data, &flat); err != nil {
		*s = SectionList{}
		return nil
	}
	*s = SectionList{{Title: "", Ingredients: dropUnnamed(flat)}}
	return nil
}

func (l *InstructionList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		*l = nil
		return nil
	}

	out := make(InstructionList, 0, len(raw))
	for _, elem := range raw {
		var text string
		if err := json.Unmarshal(elem, &text); err == nil {
			out = append(out, Instruction{Text: text, Ingredients: []Ingredient{}})
			continue
		}

		var step Instruction
		if err := json.Unmarshal(elem, stepAlias(&step)); err != nil {
			out = append(out, Instruction{Text: "", Ingredients: []Ingredient{}})
			continue
		}
		step.Ingredients = dropUnnamed(step.Ingredients)
		if step.Ingredients == nil {
			step.Ingredients = []Ingredient{}
		}
		out = append(out, step)
	}
	*l = out
	return nil
}

type instructionAlias struct {
	Text        string       `json:"text"`
	Ingredients []Ingredient `json:"ingredients"`
}

// stepAlias gives the decoder a method-free view of an Instruction.
func stepAlias(step *Instruction) *instructionAlias {
	return (*instructionAlias)(step)
}

// Flatten collapses the sections into one top-level ingredient list, in
// section order. Matcher results depend on this ordering.
func (s SectionList) Flatten() []Ingredient {
	var out []Ingredient
	for _, sec := range s {
		out = append(out, sec.Ingredients...)
	}
	return out
}

func isSectionShaped(elem json.RawMessage) bool {
	var probe struct {
		Ingredients json.RawMessage `json:"ingredients"`
	}
	if err := json.Unmarshal(elem, &probe); err != nil {
		return false
	}
	return len(probe.Ingredients) > 0
}

func dropUnnamed(ingredients []Ingredient) []Ingredient {
	out := make([]Ingredient, 0, len(ingredients))
	for _, ing := range ingredients {
		if strings.TrimSpace(ing.Name) == "" {
			continue
		}
		out = append(out, ing)
	}
	return out
}
