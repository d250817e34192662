package health

import (
	"net/http"
	"runtime"
	"time"

	"cookia/internal/infrastructure/config"
	"cookia/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HealthResponse 健康檢查響應
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Upstreams UpstreamStatus         `json:"upstreams"`
	Runtime   map[string]interface{} `json:"runtime"`
}

// UpstreamStatus 外部服務設定狀態（不主動探測）
type UpstreamStatus struct {
	CompletionConfigured bool   `json:"completion_configured"`
	CompletionModel      string `json:"completion_model"`
	RecipeSource         string `json:"recipe_source"`
}

// Handler 健康檢查處理器
type Handler struct {
	config *config.Config
}

// NewHandler 創建健康檢查處理器
func NewHandler(cfg *config.Config) *Handler {
	return &Handler{config: cfg}
}

// HealthCheck 健康檢查處理器
func (h *Handler) HealthCheck(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	response := HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
		Version:   h.config.App.Version,
		Upstreams: UpstreamStatus{
			CompletionConfigured: h.config.HasAPIKey(),
			CompletionModel:      h.config.Groq.Model,
			RecipeSource:         h.config.MealDB.BaseURL,
		},
		Runtime: map[string]interface{}{
			"goroutines": runtime.NumGoroutine(),
			"memory": map[string]interface{}{
				"alloc":       m.Alloc,
				"total_alloc": m.TotalAlloc,
				"sys":         m.Sys,
				"num_gc":      m.NumGC,
			},
		},
	}

	common.LogDebug("Health check request",
		zap.String("client_ip", c.ClientIP()),
		zap.String("path", c.Request.URL.Path),
	)

	c.JSON(http.StatusOK, response)
}

// ReadinessCheck 就緒檢查處理器；缺少金鑰仍視為就緒，呼叫時才失敗
func (h *Handler) ReadinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":                "ready",
		"completion_configured": h.config.HasAPIKey(),
	})
}

// LivenessCheck 存活檢查處理器
func (h *Handler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
	})
}
