package recipe

import (
	"context"

	"cookia/internal/pkg/common"
)

// MaxIngredientFields TheMealDB 記錄中 strIngredientN / strMeasureN 欄位數
const MaxIngredientFields = 20

// MealRecord TheMealDB 食譜記錄（原文）
type MealRecord struct {
	ID           string
	Name         string
	Category     string
	Area         string
	Instructions string
	Thumbnail    string
	Ingredients  []common.Ingredient
}

// MealSource 食譜來源
type MealSource interface {
	SearchByIngredient(ctx context.Context, ingredient string) (string, error)
	LookupByID(ctx context.Context, id string) (string, error)
}

// Enricher 以補全服務翻譯與補充食譜內容
type Enricher interface {
	TranslateToEnglish(ctx context.Context, word string) (string, error)
	TranslateToSpanish(ctx context.Context, text string) (string, error)
	TranslateListToSpanish(ctx context.Context, items []string) ([]string, error)
	ClassifyDifficulty(ctx context.Context, instructions string) (string, error)
	GenerateRecommendation(ctx context.Context, recipeName, goal string) (string, error)
	GenerateSubstitutions(ctx context.Context, ingredients []string) ([]string, error)
}
