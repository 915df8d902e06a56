package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aptit/backend/internal/recipe"
)

func TestConvertUnits(t *testing.T) {
	gemini := &fakeGemini{response: `{
		"ingredients": ["4 cups flour", "0.8 cups milk"],
		"instructions": [{"text": "Melt 1 stick butter.", "ingredients": ["1 stick butter"]}]
	}`}
	svc := NewConvertService(gemini, zap.NewNop())

	rec := testRecipe("Pancakes")
	rec.Language = "sv"

	data, err := svc.ConvertUnits(context.Background(), rec, "imperial")
	require.NoError(t, err)

	flat := recipe.SectionList(data.Ingredients).Flatten()
	require.Len(t, flat, 2)
	assert.Equal(t, "flour", flat[0].Name)
	assert.Equal(t, "4 cups", flat[0].Amount)
	require.Len(t, data.Instructions, 1)
	assert.Equal(t, "Melt 1 stick butter.", data.Instructions[0].Text)

	assert.True(t, gemini.lastReq.JSONResponse)
	assert.Contains(t, gemini.lastReq.System, "IMPERIAL")
	assert.Contains(t, gemini.lastReq.System, "Swedish")
	assert.Contains(t, gemini.lastReq.Prompt, "Pancakes")
}

func TestConvertUnitsEmptyResult(t *testing.T) {
	gemini := &fakeGemini{response: `{"ingredients": [], "instructions": []}`}
	svc := NewConvertService(gemini, zap.NewNop())

	_, err := svc.ConvertUnits(context.Background(), testRecipe("Pancakes"), "imperial")
	assert.Error(t, err)
}

func TestConvertUnitsKeepsSections(t *testing.T) {
	gemini := &fakeGemini{response: `{
		"ingredients": [
			{"title": "Dough", "ingredients": [{"name": "flour", "amount": "4", "unit": "cups"}]},
			{"title": "Filling", "ingredients": [{"name": "butter", "amount": "7", "unit": "oz"}]}
		],
		"instructions": ["Mix."]
	}`}
	svc := NewConvertService(gemini, zap.NewNop())

	data, err := svc.ConvertUnits(context.Background(), testRecipe("Buns"), "imperial")
	require.NoError(t, err)
	require.Len(t, data.Ingredients, 2)
	assert.Equal(t, "Dough", data.Ingredients[0].Title)
	assert.Equal(t, "Filling", data.Ingredients[1].Title)

	require.Len(t, data.Instructions, 1)
	assert.Equal(t, "Mix.", data.Instructions[0].Text)
}
