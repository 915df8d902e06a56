package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveStepIngredientBorrowsFromTopLevel(t *testing.T) {
	top := []Ingredient{{Name: "salt", Amount: "1", Unit: "tsp"}}

	resolved := ResolveStepIngredient(Ingredient{Name: "salt"}, top)
	assert.Equal(t, Ingredient{Name: "salt", Amount: "1", Unit: "tsp"}, resolved)
}

func TestResolveStepIngredientNoMatch(t *testing.T) {
	top := []Ingredient{{Name: "salt", Amount: "1", Unit: "tsp"}}

	resolved := ResolveStepIngredient(Ingredient{Name: "water"}, top)
	assert.Equal(t, Ingredient{Name: "water"}, resolved)
}

func TestResolveStepIngredientStepAmountWins(t *testing.T) {
	top := []Ingredient{{Name: "sugar", Amount: "200", Unit: "g"}}

	resolved := ResolveStepIngredient(Ingredient{Name: "sugar", Amount: "50", Unit: "g"}, top)
	assert.Equal(t, Ingredient{Name: "sugar", Amount: "50", Unit: "g"}, resolved)
}

func TestResolveStepIngredientEmptyName(t *testing.T) {
	top := []Ingredient{{Name: "sugar", Amount: "200", Unit: "g"}}
	assert.Equal(t, Ingredient{}, ResolveStepIngredient(Ingredient{Name: "  "}, top))
}

func TestResolveStepIngredientTrimsFields(t *testing.T) {
	resolved := ResolveStepIngredient(Ingredient{Name: " sugar ", Amount: " 50 ", Unit: " g "}, nil)
	assert.Equal(t, Ingredient{Name: "sugar", Amount: "50", Unit: "g"}, resolved)
}

func TestResolveInstruction(t *testing.T) {
	top := []Ingredient{
		{Name: "flour", Amount: "2", Unit: "cups"},
		{Name: "salt", Amount: "1", Unit: "tsp"},
	}
	step := Instruction{
		Text: "Whisk the dry ingredients.",
		Ingredients: []Ingredient{
			{Name: "flour"},
			{Name: "salt"},
			{Name: "   "},
		},
	}

	resolved := ResolveInstruction(step, top)
	assert.Equal(t, "Whisk the dry ingredients.", resolved.Text)
	assert.Equal(t, []Ingredient{
		{Name: "flour", Amount: "2", Unit: "cups"},
		{Name: "salt", Amount: "1", Unit: "tsp"},
	}, resolved.Ingredients)
}
