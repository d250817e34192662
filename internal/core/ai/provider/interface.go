package provider

import (
	"context"
)

// Message 表示與 AI 模型的對話消息
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request 表示發送到補全服務的請求
type Request struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

// Completer 定義文字補全提供者介面
type Completer interface {
	// Complete 送出單一使用者訊息並回傳模型文字
	Complete(ctx context.Context, prompt string) (string, error)
}
