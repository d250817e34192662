package recipe

import (
	"context"
	"strings"
	"time"

	"cookia/internal/core/ai/service"
	"cookia/internal/pkg/common"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// RecipeService 食譜流程：TheMealDB 查詢 + AI 翻譯與補充
type RecipeService struct {
	meals    MealSource
	enricher Enricher
	parallel bool
}

// Option RecipeService 選項
type Option func(*RecipeService)

// WithParallelEnrichment 翻譯與補充改為三條獨立鏈並行
func WithParallelEnrichment(enabled bool) Option {
	return func(s *RecipeService) {
		s.parallel = enabled
	}
}

// NewRecipeService 創建新的食譜服務
func NewRecipeService(meals MealSource, enricher Enricher, opts ...Option) *RecipeService {
	s := &RecipeService{
		meals:    meals,
		enricher: enricher,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// enrichment 翻譯與 AI 補充的結果
type enrichment struct {
	name           string
	instructions   string
	difficulty     string
	recommendation string
	substitutions  []string
}

// GenerateRecipe 根據第一個食材與使用者目標產生西文食譜
func (s *RecipeService) GenerateRecipe(ctx context.Context, ingredients []string, goal string) (*common.RecipeResult, error) {
	if len(ingredients) == 0 {
		return nil, common.NewValidationError(common.MsgEmptyIngredients)
	}
	start := time.Now()

	original := service.Lower(strings.TrimSpace(ingredients[0]))
	english, err := s.enricher.TranslateToEnglish(ctx, original)
	if err != nil {
		return nil, err
	}

	searchJSON, err := s.meals.SearchByIngredient(ctx, english)
	if err != nil {
		return nil, err
	}
	mealID, err := FirstMealID(searchJSON)
	if err != nil {
		return nil, err
	}

	lookupJSON, err := s.meals.LookupByID(ctx, mealID)
	if err != nil {
		return nil, err
	}
	meal, err := ParseMeal(lookupJSON)
	if err != nil {
		return nil, err
	}

	common.LogInfo("找到食譜",
		zap.String("ingredient", original),
		zap.String("ingredient_en", english),
		zap.String("meal_id", mealID),
		zap.String("meal", meal.Name),
		zap.Int("ingredients_count", len(meal.Ingredients)),
	)

	var result *enrichment
	if s.parallel {
		result, err = s.enrichParallel(ctx, meal, goal)
	} else {
		result, err = s.enrichSequential(ctx, meal, goal)
	}
	if err != nil {
		return nil, err
	}

	common.LogInfo("食譜生成完成",
		zap.String("meal_id", mealID),
		zap.Bool("parallel", s.parallel),
		zap.Duration("耗時", time.Since(start)),
	)

	return &common.RecipeResult{
		Name:           result.name,
		Category:       meal.Category,
		Area:           meal.Area,
		Instructions:   result.instructions,
		ImageURL:       meal.Thumbnail,
		Difficulty:     result.difficulty,
		Recommendation: result.recommendation,
		Substitutions:  result.substitutions,
		Ingredients:    meal.Ingredients,
	}, nil
}

// enrichSequential 依序呼叫補全服務，每一步等待前一步結果
func (s *RecipeService) enrichSequential(ctx context.Context, meal *MealRecord, goal string) (*enrichment, error) {
	var (
		out enrichment
		err error
	)

	if out.name, err = s.enricher.TranslateToSpanish(ctx, meal.Name); err != nil {
		return nil, err
	}
	if out.instructions, err = s.enricher.TranslateToSpanish(ctx, meal.Instructions); err != nil {
		return nil, err
	}
	if err = s.translateIngredients(ctx, meal.Ingredients); err != nil {
		return nil, err
	}
	if out.difficulty, err = s.enricher.ClassifyDifficulty(ctx, out.instructions); err != nil {
		return nil, err
	}
	if out.recommendation, err = s.enricher.GenerateRecommendation(ctx, out.name, goal); err != nil {
		return nil, err
	}
	if out.substitutions, err = s.enricher.GenerateSubstitutions(ctx, common.IngredientNames(meal.Ingredients)); err != nil {
		return nil, err
	}
	return &out, nil
}

// enrichParallel 三條鏈並行：名稱→建議、步驟→難度、食材→替代品。
// 任一失敗即取消其餘呼叫並丟棄整個結果。
func (s *RecipeService) enrichParallel(ctx context.Context, meal *MealRecord, goal string) (*enrichment, error) {
	var out enrichment
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		name, err := s.enricher.TranslateToSpanish(gctx, meal.Name)
		if err != nil {
			return err
		}
		out.name = name
		out.recommendation, err = s.enricher.GenerateRecommendation(gctx, name, goal)
		return err
	})

	g.Go(func() error {
		instructions, err := s.enricher.TranslateToSpanish(gctx, meal.Instructions)
		if err != nil {
			return err
		}
		out.instructions = instructions
		out.difficulty, err = s.enricher.ClassifyDifficulty(gctx, instructions)
		return err
	})

	g.Go(func() error {
		if err := s.translateIngredients(gctx, meal.Ingredients); err != nil {
			return err
		}
		var err error
		out.substitutions, err = s.enricher.GenerateSubstitutions(gctx, common.IngredientNames(meal.Ingredients))
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}

// translateIngredients 批次翻譯食材名稱並依位置寫回
func (s *RecipeService) translateIngredients(ctx context.Context, ingredients []common.Ingredient) error {
	translated, err := s.enricher.TranslateListToSpanish(ctx, common.IngredientNames(ingredients))
	if err != nil {
		return err
	}
	if len(translated) != len(ingredients) {
		common.LogWarn("食材翻譯行數不符，依位置套用",
			zap.Int("ingredients", len(ingredients)),
			zap.Int("translated", len(translated)),
		)
	}
	ApplyTranslatedNames(ingredients, translated)
	return nil
}
