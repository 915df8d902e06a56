package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aptit/backend/internal/recipe"
)

// IngredientSections is the JSONB column type for the sectioned ingredient
// list. Scanning goes through the tolerant decoder, so rows persisted in the
// legacy flat or string-array shapes keep loading.
type IngredientSections recipe.SectionList

// Value implements the driver.Valuer interface
func (s IngredientSections) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	return json.Marshal([]recipe.IngredientSection(s))
}

// Scan implements the sql.Scanner interface
func (s *IngredientSections) Scan(value interface{}) error {
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		*s = IngredientSections{}
		return nil
	}
	return s.UnmarshalJSON(bytes)
}

func (s *IngredientSections) UnmarshalJSON(data []byte) error {
	return (*recipe.SectionList)(s).UnmarshalJSON(data)
}

// Instructions is the JSONB column type for cooking steps, tolerant of the
// legacy plain-string step shape.
type Instructions recipe.InstructionList

// Value implements the driver.Valuer interface
func (i Instructions) Value() (driver.Value, error) {
	if len(i) == 0 {
		return "[]", nil
	}
	return json.Marshal([]recipe.Instruction(i))
}

// Scan implements the sql.Scanner interface
func (i *Instructions) Scan(value interface{}) error {
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		*i = Instructions{}
		return nil
	}
	return i.UnmarshalJSON(bytes)
}

func (i *Instructions) UnmarshalJSON(data []byte) error {
	return (*recipe.InstructionList)(i).UnmarshalJSON(data)
}

// Recipe is one bookmarked recipe, created whole from a single extraction
// call and only ever mutated by full replacement.
type Recipe struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`

	IngredientSections IngredientSections `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Instructions       Instructions       `gorm:"type:jsonb;not null;default:'[]'" json:"instructions"`

	// Pre-conversion snapshot, kept so the source units stay toggleable.
	// Positionally parallel to Instructions; never reordered independently.
	OriginalIngredients  IngredientSections `gorm:"type:jsonb" json:"originalIngredients,omitempty"`
	OriginalInstructions Instructions       `gorm:"type:jsonb" json:"originalInstructions,omitempty"`

	// BaseServingsCount is the serving count the stored amounts already
	// reflect; the scale multiplier is always relative to it.
	BaseServingsCount int    `gorm:"not null;default:1" json:"baseServingsCount"`
	Servings          string `gorm:"size:100" json:"servings"`
	PrepTime          string `gorm:"size:50" json:"prepTime,omitempty"`
	CookTime          string `gorm:"size:50" json:"cookTime,omitempty"`
	RecipeType        string `gorm:"size:20" json:"recipeType"`
	MeasureSystem     string `gorm:"size:20" json:"measureSystem"`
	Language          string `gorm:"size:10" json:"language"`
	SourceURL         string `gorm:"size:512" json:"sourceUrl"`
	ImageURL          string `gorm:"size:512" json:"imageUrl,omitempty"`
}

// BeforeCreate assigns the ID so the model works on both the postgres and
// sqlite drivers.
func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// Normalize clamps fields into their documented invariants after decoding an
// extraction payload or a legacy row.
func (r *Recipe) Normalize() {
	if r.BaseServingsCount < 1 {
		r.BaseServingsCount = 1
	}
	if r.RecipeType == "" {
		r.RecipeType = "food"
	}
	if r.IngredientSections == nil {
		r.IngredientSections = IngredientSections{}
	}
	if r.Instructions == nil {
		r.Instructions = Instructions{}
	}
}

// Sections returns the canonical sectioned view.
func (r *Recipe) Sections() recipe.SectionList {
	return recipe.SectionList(r.IngredientSections)
}

// FlatIngredients returns the top-level ingredient list flattened across
// sections, the list the matcher and resolver run against.
func (r *Recipe) FlatIngredients() []recipe.Ingredient {
	return r.Sections().Flatten()
}

// Steps returns the instruction list as core domain values.
func (r *Recipe) Steps() []recipe.Instruction {
	return []recipe.Instruction(r.Instructions)
}

// ScaleBaseline returns the denominator for this recipe's scale multiplier.
func (r *Recipe) ScaleBaseline() int {
	return recipe.ScaleBaseline(r.RecipeType, r.BaseServingsCount)
}
