package main

import (
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/aptit/backend/config"
	"github.com/aptit/backend/internal/database"
	"github.com/aptit/backend/internal/logging"
	"github.com/aptit/backend/internal/model"
	"github.com/aptit/backend/internal/recipe"
)

// Seeds a handful of bookmarked recipes so the detail view, scaling and
// checklist can be exercised without burning extraction calls.
func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger, err := logging.New(string(config.GetEnvironment()), cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := database.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.RunMigrations(db); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}

	for _, rec := range sampleRecipes() {
		rec.Normalize()
		var count int64
		db.Model(&model.Recipe{}).Where("source_url = ?", rec.SourceURL).Count(&count)
		if count > 0 {
			logger.Info("skipping existing recipe", zap.String("title", rec.Title))
			continue
		}
		if err := db.Create(rec).Error; err != nil {
			logger.Error("failed to seed recipe", zap.String("title", rec.Title), zap.Error(err))
			continue
		}
		logger.Info("seeded recipe", zap.String("title", rec.Title))
	}
}

func sampleRecipes() []*model.Recipe {
	return []*model.Recipe{
		{
			Title:       "Svenska Pannkakor",
			Description: "Thin Swedish pancakes, best with lingonberry jam.",
			IngredientSections: model.IngredientSections{
				{Ingredients: []recipe.Ingredient{
					{Name: "vetemjöl", Amount: "2.5", Unit: "dl"},
					{Name: "mjölk", Amount: "6", Unit: "dl"},
					{Name: "ägg", Amount: "3"},
					{Name: "smör", Amount: "50", Unit: "g"},
					{Name: "salt", Amount: "0.5", Unit: "tsk"},
				}},
			},
			Instructions: model.Instructions{
				{Text: "Vispa ihop mjöl och hälften av mjölken.", Ingredients: []recipe.Ingredient{{Name: "vetemjöl"}, {Name: "mjölk"}}},
				{Text: "Tillsätt resten av mjölken, ägg och salt.", Ingredients: []recipe.Ingredient{{Name: "mjölk"}, {Name: "ägg"}, {Name: "salt"}}},
				{Text: "Stek i smör på medelvärme i cirka 2 minuter per sida.", Ingredients: []recipe.Ingredient{{Name: "smör"}}},
			},
			BaseServingsCount: 4,
			Servings:          "4 portioner",
			PrepTime:          "PT10M",
			CookTime:          "PT20M",
			RecipeType:        "food",
			MeasureSystem:     "metric",
			Language:          "sv",
			SourceURL:         "seed://svenska-pannkakor",
		},
		{
			Title:       "Sourdough Loaf",
			Description: "A weekend loaf with a long cold proof.",
			IngredientSections: model.IngredientSections{
				{Title: "Levain", Ingredients: []recipe.Ingredient{
					{Name: "starter", Amount: "50", Unit: "g"},
					{Name: "flour", Amount: "50", Unit: "g"},
					{Name: "water", Amount: "50", Unit: "g"},
				}},
				{Title: "Dough", Ingredients: []recipe.Ingredient{
					{Name: "bread flour", Amount: "450", Unit: "g"},
					{Name: "water", Amount: "330", Unit: "g"},
					{Name: "salt", Amount: "10", Unit: "g"},
				}},
			},
			Instructions: model.Instructions{
				{Text: "Mix the levain and leave overnight.", Ingredients: []recipe.Ingredient{{Name: "starter"}, {Name: "flour"}, {Name: "water"}}},
				{Text: "Combine 450 g bread flour with 330 g water and autolyse for 1 hour.", Ingredients: []recipe.Ingredient{{Name: "bread flour"}, {Name: "water"}}},
				{Text: "Add the levain and salt, then bulk ferment at 24°C.", Ingredients: []recipe.Ingredient{{Name: "salt"}}},
				{Text: "Bake at 250°C for 20 minutes with steam, then 230°C for 20 more."},
			},
			BaseServingsCount: 1,
			Servings:          "1 loaf",
			PrepTime:          "PT45M",
			CookTime:          "PT40M",
			RecipeType:        "baking",
			MeasureSystem:     "metric",
			Language:          "en",
			SourceURL:         "seed://sourdough-loaf",
		},
	}
}
