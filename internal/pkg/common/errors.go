package common

import (
	"errors"
	"fmt"
)

// Kind 錯誤種類，HTTP 邊界依種類決定狀態碼
type Kind string

const (
	KindConfiguration Kind = "CONFIGURATION_ERROR" // 缺少補全服務金鑰
	KindUpstream      Kind = "UPSTREAM_ERROR"      // 外部服務回傳非成功狀態或連線失敗
	KindParse         Kind = "PARSE_ERROR"         // 外部服務回應格式不符
	KindNotFound      Kind = "NOT_FOUND"           // 找不到符合的食譜
	KindValidation    Kind = "VALIDATION_ERROR"    // 請求內容無效
	KindUnknown       Kind = "UNKNOWN_ERROR"
)

// 錯誤訊息
const (
	MsgNoRecipesFound   = "no recipes found"
	MsgEmptyIngredients = "at least one ingredient is required"
	MsgMissingAPIKey    = "completion service API key is not configured"
)

// Error 自定義錯誤類型
type Error struct {
	Kind       Kind   // 錯誤種類
	Message    string // 錯誤信息
	Service    string // 上游服務名稱（僅 KindUpstream）
	StatusCode int    // 上游 HTTP 狀態碼，0 表示連線失敗
	Body       string // 上游響應內容
	Err        error  // 原始錯誤
}

func (e *Error) Error() string {
	switch {
	case e.Kind == KindUpstream && e.StatusCode > 0:
		return fmt.Sprintf("%s error %d: %s", e.Service, e.StatusCode, e.Body)
	case e.Err != nil && e.Message != "":
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewConfigurationError 創建設定錯誤
func NewConfigurationError(message string) error {
	return &Error{Kind: KindConfiguration, Message: message}
}

// NewUpstreamError 創建上游 HTTP 錯誤
func NewUpstreamError(service string, statusCode int, body string) error {
	return &Error{
		Kind:       KindUpstream,
		Message:    fmt.Sprintf("%s returned status %d", service, statusCode),
		Service:    service,
		StatusCode: statusCode,
		Body:       body,
	}
}

// NewTransportError 創建上游連線錯誤
func NewTransportError(service string, err error) error {
	return &Error{
		Kind:    KindUpstream,
		Message: fmt.Sprintf("%s request failed", service),
		Service: service,
		Err:     err,
	}
}

// NewParseError 創建解析錯誤
func NewParseError(message string, err error) error {
	return &Error{Kind: KindParse, Message: message, Err: err}
}

// NewNotFoundError 創建找不到資源錯誤
func NewNotFoundError(message string) error {
	return &Error{Kind: KindNotFound, Message: message}
}

// NewValidationError 創建新的驗證錯誤
func NewValidationError(message string) error {
	return &Error{Kind: KindValidation, Message: message}
}

// KindOf 取得錯誤種類，非本套件錯誤回傳 KindUnknown
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsNotFound 檢查是否為找不到資源錯誤
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

// IsValidationError 檢查是否為驗證錯誤
func IsValidationError(err error) bool {
	return KindOf(err) == KindValidation
}
