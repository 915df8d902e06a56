package recipe

import (
	"encoding/json"
	"sort"
	"strings"
)

// IndexSet is a set of slice indices. It marshals as a sorted JSON array so
// checklist snapshots round-trip cleanly through the API.
type IndexSet map[int]bool

func (s IndexSet) MarshalJSON() ([]byte, error) {
	indices := make([]int, 0, len(s))
	for i, on := range s {
		if on {
			indices = append(indices, i)
		}
	}
	sort.Ints(indices)
	return json.Marshal(indices)
}

func (s *IndexSet) UnmarshalJSON(data []byte) error {
	var indices []int
	if err := json.Unmarshal(data, &indices); err != nil {
		return err
	}
	out := make(IndexSet, len(indices))
	for _, i := range indices {
		out[i] = true
	}
	*s = out
	return nil
}

func (s IndexSet) clone() IndexSet {
	out := make(IndexSet, len(s))
	for i, on := range s {
		if on {
			out[i] = true
		}
	}
	return out
}

// Checklist is a session-scoped snapshot of cooking progress: which
// top-level ingredients are checked, which step ingredients are checked per
// step, and which steps are complete. It is never persisted; every toggle is
// a pure function producing a new snapshot.
type Checklist struct {
	Ingredients     IndexSet         `json:"checkedIngredients"`
	StepIngredients map[int]IndexSet `json:"stepCheckedIngredients"`
	Steps           IndexSet         `json:"completedSteps"`
}

// NewChecklist returns the empty snapshot.
func NewChecklist() Checklist {
	return Checklist{
		Ingredients:     IndexSet{},
		StepIngredients: map[int]IndexSet{},
		Steps:           IndexSet{},
	}
}

func (c Checklist) clone() Checklist {
	steps := make(map[int]IndexSet, len(c.StepIngredients))
	for i, set := range c.StepIngredients {
		steps[i] = set.clone()
	}
	return Checklist{
		Ingredients:     c.Ingredients.clone(),
		StepIngredients: steps,
		Steps:           c.Steps.clone(),
	}
}

// ensureStep returns the checked-ingredient set for a step, creating it on
// first use.
func (c Checklist) ensureStep(step int) IndexSet {
	set, ok := c.StepIngredients[step]
	if !ok {
		set = IndexSet{}
		c.StepIngredients[step] = set
	}
	return set
}

// ToggleIngredient flips a top-level ingredient and propagates the new state
// to every step ingredient whose resolved name overlaps it, then recomputes
// step completion: a step is complete iff all of its listed ingredients are
// checked and it lists at least one. Steps with no ingredients are never
// completed through this path.
func (c Checklist) ToggleIngredient(top []Ingredient, steps []Instruction, index int) Checklist {
	if index < 0 || index >= len(top) {
		return c
	}

	next := c.clone()
	nowChecked := !next.Ingredients[index]
	setMembership(next.Ingredients, index, nowChecked)

	masterName := NormalizeName(top[index].Name)
	for sIdx, step := range steps {
		set := next.ensureStep(sIdx)
		for iIdx, si := range step.Ingredients {
			name := NormalizeName(ResolveStepIngredient(si, top).Name)
			if strings.Contains(name, masterName) || strings.Contains(masterName, name) {
				setMembership(set, iIdx, nowChecked)
			}
		}
		complete := len(step.Ingredients) > 0 && countChecked(set) == len(step.Ingredients)
		setMembership(next.Steps, sIdx, complete)
	}
	return next
}

// ToggleStepIngredient flips one step ingredient, recomputes that step's
// completion, and cascades the new state to the matching top-level
// ingredient. The cascade is one-way at toggle time: other steps referencing
// the same top-level ingredient are left alone, so last toggle wins.
func (c Checklist) ToggleStepIngredient(top []Ingredient, steps []Instruction, stepIdx, subIdx int) Checklist {
	if stepIdx < 0 || stepIdx >= len(steps) {
		return c
	}
	step := steps[stepIdx]
	if subIdx < 0 || subIdx >= len(step.Ingredients) {
		return c
	}

	next := c.clone()
	set := next.ensureStep(stepIdx)
	nowChecked := !set[subIdx]
	setMembership(set, subIdx, nowChecked)

	complete := nowChecked && countChecked(set) == len(step.Ingredients)
	setMembership(next.Steps, stepIdx, complete)

	resolved := ResolveStepIngredient(step.Ingredients[subIdx], top)
	if mIdx := MatchIngredientIndex(resolved.Name, top); mIdx >= 0 {
		setMembership(next.Ingredients, mIdx, nowChecked)
	}
	return next
}

// ToggleStep marks a whole step complete or incomplete. Completing
// force-checks every step ingredient and additively cascades each to its
// matching top-level ingredient; un-completing force-unchecks and cascades
// the unchecks.
func (c Checklist) ToggleStep(top []Ingredient, steps []Instruction, stepIdx int) Checklist {
	if stepIdx < 0 || stepIdx >= len(steps) {
		return c
	}

	next := c.clone()
	completing := !next.Steps[stepIdx]
	step := steps[stepIdx]

	set := IndexSet{}
	for iIdx, ing := range step.Ingredients {
		if completing {
			set[iIdx] = true
		}
		resolved := ResolveStepIngredient(ing, top)
		if mIdx := MatchIngredientIndex(resolved.Name, top); mIdx >= 0 {
			setMembership(next.Ingredients, mIdx, completing)
		}
	}
	next.StepIngredients[stepIdx] = set
	setMembership(next.Steps, stepIdx, completing)
	return next
}

func setMembership(set IndexSet, index int, on bool) {
	if on {
		set[index] = true
	} else {
		delete(set, index)
	}
}

func countChecked(set IndexSet) int {
	n := 0
	for _, on := range set {
		if on {
			n++
		}
	}
	return n
}
