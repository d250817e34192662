package recipe

import (
	"context"
	"net/http"

	"cookia/internal/pkg/common"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GenerateRecipeRequest 食譜生成請求；同時接受舊版前端的 ingredientes / objetivo
type GenerateRecipeRequest struct {
	Ingredients  []string `json:"ingredients"`
	Goal         string   `json:"goal"`
	Ingredientes []string `json:"ingredientes,omitempty"`
	Objetivo     string   `json:"objetivo,omitempty"`
}

// toRecipeRequest 合併新舊欄位，新欄位優先
func (r GenerateRecipeRequest) toRecipeRequest() common.RecipeRequest {
	req := common.RecipeRequest{Ingredients: r.Ingredients, Goal: r.Goal}
	if len(req.Ingredients) == 0 {
		req.Ingredients = r.Ingredientes
	}
	if req.Goal == "" {
		req.Goal = r.Objetivo
	}
	return req
}

// RecipeGenerator 食譜生成流程
type RecipeGenerator interface {
	GenerateRecipe(ctx context.Context, ingredients []string, goal string) (*common.RecipeResult, error)
}

// Handler 食譜處理程序
type Handler struct {
	recipeService RecipeGenerator
}

// NewHandler 創建新的食譜處理程序
func NewHandler(recipeService RecipeGenerator) *Handler {
	return &Handler{recipeService: recipeService}
}

// HandleGenerate POST /api/recipe/generate
func (h *Handler) HandleGenerate(c *gin.Context) {
	requestID := requestid.Get(c)
	if requestID == "" {
		requestID = common.GenerateUUID()
		c.Header("X-Request-ID", requestID)
	}

	var body GenerateRecipeRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		common.LogWarn("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		respondError(c, common.NewValidationError("invalid request body: "+err.Error()))
		return
	}
	req := body.toRecipeRequest()

	common.LogInfo("開始處理食譜生成請求",
		zap.String("request_id", requestID),
		zap.Strings("ingredients", req.Ingredients),
		zap.String("goal", req.Goal),
	)

	result, err := h.recipeService.GenerateRecipe(c.Request.Context(), req.Ingredients, req.Goal)
	if err != nil {
		common.LogError("食譜生成失敗",
			zap.Error(err),
			zap.String("kind", string(common.KindOf(err))),
			zap.String("request_id", requestID),
		)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// respondError 依錯誤種類對應狀態碼：NotFound 404，其餘 400
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)

	kind := common.KindOf(err)
	if kind == common.KindNotFound {
		c.JSON(http.StatusNotFound, gin.H{
			"message": err.Error(),
			"code":    string(kind),
		})
		return
	}

	c.JSON(http.StatusBadRequest, gin.H{
		"error": err.Error(),
		"code":  string(kind),
	})
}
