package common

// Ingredient 食材（名稱翻譯後會原地覆寫）
type Ingredient struct {
	Name    string `json:"name"`
	Measure string `json:"measure"`
}

// RecipeRequest 食譜生成請求，只使用第一個食材
type RecipeRequest struct {
	Ingredients []string `json:"ingredients"`
	Goal        string   `json:"goal"`
}

// RecipeResult 經過翻譯與 AI 補充的食譜
type RecipeResult struct {
	Name           string       `json:"name"`
	Category       string       `json:"category"`
	Area           string       `json:"area"`
	Instructions   string       `json:"instructions"`
	ImageURL       string       `json:"imageUrl"`
	Difficulty     string       `json:"difficulty"`
	Recommendation string       `json:"recommendation"`
	Substitutions  []string     `json:"substitutions"`
	Ingredients    []Ingredient `json:"ingredients"`
}

// IngredientNames 取出食材名稱列表
func IngredientNames(ingredients []Ingredient) []string {
	names := make([]string, len(ingredients))
	for i, ing := range ingredients {
		names[i] = ing.Name
	}
	return names
}
