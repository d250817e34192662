package mealdb

import (
	"context"
	"strings"
	"time"

	"cookia/internal/infrastructure/config"
	"cookia/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const serviceName = "themealdb"

// Client TheMealDB 公開 API 客戶端，回傳未解析的 JSON
type Client struct {
	client *resty.Client
}

// NewClient 創建 TheMealDB 客戶端
func NewClient(cfg config.MealDBConfig) *Client {
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetHeader("Accept", "application/json")

	return &Client{client: client}
}

// SearchByIngredient 依食材搜尋食譜：GET /filter.php?i=
func (c *Client) SearchByIngredient(ctx context.Context, ingredient string) (string, error) {
	if strings.TrimSpace(ingredient) == "" {
		return "", common.NewValidationError("ingredient is required")
	}
	return c.get(ctx, "filter", "/filter.php", ingredient)
}

// LookupByID 依 ID 取得完整食譜：GET /lookup.php?i=
func (c *Client) LookupByID(ctx context.Context, id string) (string, error) {
	return c.get(ctx, "lookup", "/lookup.php", id)
}

func (c *Client) get(ctx context.Context, operation, path, param string) (string, error) {
	start := time.Now()

	// SetQueryParam 會做百分比編碼
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("i", param).
		Get(path)
	if err != nil {
		err = common.NewTransportError(serviceName, err)
		common.LogUpstreamCall(serviceName, operation, time.Since(start), err)
		return "", err
	}

	if !resp.IsSuccess() {
		err = common.NewUpstreamError(serviceName, resp.StatusCode(), resp.String())
		common.LogUpstreamCall(serviceName, operation, time.Since(start), err)
		return "", err
	}

	common.LogUpstreamCall(serviceName, operation, time.Since(start), nil)
	common.LogDebug("TheMealDB response received",
		zap.String("operation", operation),
		zap.String("param", param),
		zap.Int("bytes", len(resp.Body())),
	)
	return resp.String(), nil
}
