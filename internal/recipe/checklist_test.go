package recipe

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checklistFixture() ([]Ingredient, []Instruction) {
	top := []Ingredient{
		{Name: "flour", Amount: "2", Unit: "cups"},
		{Name: "salt", Amount: "1", Unit: "tsp"},
		{Name: "butter", Amount: "100", Unit: "g"},
	}
	steps := []Instruction{
		{
			Text: "Mix the dry ingredients.",
			Ingredients: []Ingredient{
				{Name: "flour"},
				{Name: "salt"},
			},
		},
		{
			Text: "Melt the butter with a pinch of salt.",
			Ingredients: []Ingredient{
				{Name: "butter"},
				{Name: "salt"},
			},
		},
		{
			Text: "Let the dough rest.",
		},
	}
	return top, steps
}

func TestToggleIngredientCascadesToSteps(t *testing.T) {
	top, steps := checklistFixture()

	// Salt appears in two different steps; both mentions get checked.
	c := NewChecklist().ToggleIngredient(top, steps, 1)

	assert.True(t, c.Ingredients[1])
	assert.True(t, c.StepIngredients[0][1])
	assert.True(t, c.StepIngredients[1][1])

	// Neither step is fully checked yet.
	assert.Empty(t, c.Steps)
}

func TestToggleIngredientCompletesFullyCheckedSteps(t *testing.T) {
	top, steps := checklistFixture()

	c := NewChecklist().
		ToggleIngredient(top, steps, 0).
		ToggleIngredient(top, steps, 1)

	assert.True(t, c.Steps[0], "step 0 has all ingredients checked")
	assert.False(t, c.Steps[1], "step 1 still misses butter")
}

func TestToggleIngredientNeverCompletesEmptySteps(t *testing.T) {
	top, steps := checklistFixture()

	c := NewChecklist()
	for i := range top {
		c = c.ToggleIngredient(top, steps, i)
	}

	assert.False(t, c.Steps[2], "a step with no listed ingredients is never auto-completed")
	assert.True(t, c.Steps[0])
	assert.True(t, c.Steps[1])
}

func TestToggleIngredientOffUnchecksMentions(t *testing.T) {
	top, steps := checklistFixture()

	c := NewChecklist().
		ToggleIngredient(top, steps, 1).
		ToggleIngredient(top, steps, 1)

	assert.False(t, c.Ingredients[1])
	assert.False(t, c.StepIngredients[0][1])
	assert.False(t, c.StepIngredients[1][1])
	assert.Empty(t, c.Steps)
}

func TestToggleStepIngredientCascadesToTopLevel(t *testing.T) {
	top, steps := checklistFixture()

	c := NewChecklist().ToggleStepIngredient(top, steps, 0, 1)

	assert.True(t, c.StepIngredients[0][1])
	assert.True(t, c.Ingredients[1], "salt cascaded up")
	assert.False(t, c.StepIngredients[1][1], "other steps are not touched")

	c = c.ToggleStepIngredient(top, steps, 0, 0)
	assert.True(t, c.Steps[0], "all step ingredients checked completes the step")

	c = c.ToggleStepIngredient(top, steps, 0, 0)
	assert.False(t, c.Steps[0], "unchecking reopens the step")
	assert.False(t, c.Ingredients[0], "uncheck cascades up too")
}

func TestToggleStepForceChecksAndCascades(t *testing.T) {
	top, steps := checklistFixture()

	c := NewChecklist().ToggleStep(top, steps, 1)

	assert.True(t, c.Steps[1])
	assert.True(t, c.StepIngredients[1][0])
	assert.True(t, c.StepIngredients[1][1])
	assert.True(t, c.Ingredients[1], "salt cascaded")
	assert.True(t, c.Ingredients[2], "butter cascaded")
	assert.False(t, c.Ingredients[0], "unrelated top ingredient untouched")

	c = c.ToggleStep(top, steps, 1)
	assert.False(t, c.Steps[1])
	assert.Empty(t, c.StepIngredients[1])
	assert.False(t, c.Ingredients[1])
	assert.False(t, c.Ingredients[2])
}

func TestTogglesArePureSnapshots(t *testing.T) {
	top, steps := checklistFixture()

	before := NewChecklist()
	after := before.ToggleIngredient(top, steps, 0)

	assert.Empty(t, before.Ingredients, "prior snapshot must not be mutated")
	assert.True(t, after.Ingredients[0])
}

func TestToggleOutOfRangeIsNoOp(t *testing.T) {
	top, steps := checklistFixture()
	c := NewChecklist()

	assert.Equal(t, c, c.ToggleIngredient(top, steps, 99))
	assert.Equal(t, c, c.ToggleStep(top, steps, -1))
	assert.Equal(t, c, c.ToggleStepIngredient(top, steps, 0, 99))
}

func TestChecklistJSONRoundTrip(t *testing.T) {
	top, steps := checklistFixture()
	c := NewChecklist().
		ToggleIngredient(top, steps, 1).
		ToggleStepIngredient(top, steps, 1, 0)

	data, err := json.Marshal(c)
	require.NoError(t, err)

	var decoded Checklist
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, c, decoded)
}
