package groq

import (
	"context"
	"time"

	"cookia/internal/core/ai/provider"
	"cookia/internal/infrastructure/config"
	"cookia/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

const (
	serviceName    = "groq"
	contentPath    = "choices.0.message.content"
	maxLoggedBytes = 500
)

// Client Groq（OpenAI 相容）chat completions 客戶端
type Client struct {
	config config.GroqConfig
	client *resty.Client
}

var _ provider.Completer = (*Client)(nil)

// NewClient 創建補全服務客戶端；金鑰在每次呼叫時檢查
func NewClient(cfg config.GroqConfig) *Client {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{
		config: cfg,
		client: client,
	}
}

// Model 目前使用的模型
func (c *Client) Model() string {
	return c.config.Model
}

// Complete 發送單一使用者訊息並取出 choices[0].message.content
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	if c.config.APIKey == "" {
		return "", common.NewConfigurationError(common.MsgMissingAPIKey)
	}

	req := provider.Request{
		Model: c.config.Model,
		Messages: []provider.Message{
			{Role: "user", Content: prompt},
		},
		Temperature: c.config.Temperature,
		MaxTokens:   c.config.MaxTokens,
	}

	start := time.Now()
	content, err := c.send(ctx, &req)
	common.LogUpstreamCall(serviceName, "chat.completions", time.Since(start), err)
	return content, err
}

func (c *Client) send(ctx context.Context, req *provider.Request) (string, error) {
	common.LogDebug("Sending request to completion service",
		zap.String("model", req.Model),
		zap.Int("prompt_length", len(req.Messages[0].Content)),
	)

	resp, err := c.client.R().
		SetContext(ctx).
		SetAuthToken(c.config.APIKey).
		SetBody(req).
		Post("/chat/completions")
	if err != nil {
		return "", common.NewTransportError(serviceName, err)
	}

	body := resp.Body()
	if !resp.IsSuccess() {
		common.LogWarn("Completion service returned error status",
			zap.Int("status_code", resp.StatusCode()),
			zap.String("response", common.TruncateForLog(string(body), maxLoggedBytes)),
		)
		return "", common.NewUpstreamError(serviceName, resp.StatusCode(), string(body))
	}

	if !gjson.ValidBytes(body) {
		return "", common.NewParseError("invalid completion response format", nil)
	}

	content := gjson.GetBytes(body, contentPath)
	if !content.Exists() {
		return "", common.NewParseError("invalid completion response format: missing "+contentPath, nil)
	}

	// null content 視為空字串
	return content.String(), nil
}
