package recipe

import (
	"fmt"
	"strings"

	"cookia/internal/pkg/common"

	"github.com/tidwall/gjson"
)

// FirstMealID 從 filter.php 回應取出第一筆食譜 ID
func FirstMealID(searchJSON string) (string, error) {
	if !gjson.Valid(searchJSON) {
		return "", common.NewParseError("invalid recipe search response", nil)
	}

	meals := gjson.Get(searchJSON, "meals")
	if !meals.IsArray() || len(meals.Array()) == 0 {
		return "", common.NewNotFoundError(common.MsgNoRecipesFound)
	}

	id := meals.Get("0.idMeal")
	if !id.Exists() || id.String() == "" {
		return "", common.NewParseError("recipe search result has no idMeal", nil)
	}
	return id.String(), nil
}

// ParseMeal 從 lookup.php 回應解析第一筆完整食譜
func ParseMeal(lookupJSON string) (*MealRecord, error) {
	if !gjson.Valid(lookupJSON) {
		return nil, common.NewParseError("invalid recipe lookup response", nil)
	}

	meals := gjson.Get(lookupJSON, "meals")
	if !meals.IsArray() || len(meals.Array()) == 0 {
		return nil, common.NewNotFoundError(common.MsgNoRecipesFound)
	}

	meal := meals.Array()[0]
	return &MealRecord{
		ID:           meal.Get("idMeal").String(),
		Name:         meal.Get("strMeal").String(),
		Category:     meal.Get("strCategory").String(),
		Area:         meal.Get("strArea").String(),
		Instructions: meal.Get("strInstructions").String(),
		Thumbnail:    meal.Get("strMealThumb").String(),
		Ingredients:  ExtractIngredients(meal),
	}, nil
}

// ExtractIngredients 依序讀取 strIngredient1..20 / strMeasure1..20，略過空白食材
func ExtractIngredients(meal gjson.Result) []common.Ingredient {
	ingredients := make([]common.Ingredient, 0, MaxIngredientFields)
	for i := 1; i <= MaxIngredientFields; i++ {
		name := meal.Get(fmt.Sprintf("strIngredient%d", i))
		measure := meal.Get(fmt.Sprintf("strMeasure%d", i))
		if !name.Exists() || !measure.Exists() {
			continue
		}
		if strings.TrimSpace(name.String()) == "" {
			continue
		}
		ingredients = append(ingredients, common.Ingredient{
			Name:    name.String(),
			Measure: measure.String(),
		})
	}
	return ingredients
}

// ApplyTranslatedNames 依位置覆寫食材名稱，只處理 min(len) 筆。
// 翻譯行數不符時後面的食材保留原文，這是已知限制。
func ApplyTranslatedNames(ingredients []common.Ingredient, translated []string) {
	n := min(len(ingredients), len(translated))
	for i := 0; i < n; i++ {
		ingredients[i].Name = translated[i]
	}
}
