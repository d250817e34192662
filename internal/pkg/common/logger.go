package common

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// MsgRequestCompleted 請求完成日誌訊息，concise 模式下保留
	MsgRequestCompleted = "請求完成"
	// MsgAppStarting 啟動訊息
	MsgAppStarting = "啟動應用"
	// MsgShuttingDown 關閉訊息
	MsgShuttingDown = "Shutting down server..."
	// MsgServerExited 結束訊息
	MsgServerExited = "Server exited"
)

var (
	// Logger 全局日誌實例，InitLogger 之前為 no-op
	Logger  = zap.NewNop()
	LogMode string

	// 定義日誌級別的顏色
	levelColors = map[zapcore.Level]string{
		zapcore.DebugLevel: "\033[36m", // 青色
		zapcore.InfoLevel:  "\033[32m", // 綠色
		zapcore.WarnLevel:  "\033[33m", // 黃色
		zapcore.ErrorLevel: "\033[31m", // 紅色
		zapcore.FatalLevel: "\033[35m", // 紫色
	}
	resetColor = "\033[0m"

	conciseMessages = map[string]bool{
		MsgRequestCompleted: true,
		MsgAppStarting:      true,
		MsgShuttingDown:     true,
		MsgServerExited:     true,
	}
)

// 自定義編碼器配置
func getEncoderConfig(colored bool) zapcore.EncoderConfig {
	levelEncoder := zapcore.CapitalLevelEncoder
	if colored {
		levelEncoder = customLevelEncoder
	}
	return zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    levelEncoder,
		EncodeTime:     customTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
}

func customTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("15:04:05.000"))
}

// 自定義級別編碼器（添加顏色）
func customLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	level := l.String()
	switch l {
	case zapcore.DebugLevel:
		level = "DBG"
	case zapcore.InfoLevel:
		level = "INF"
	case zapcore.WarnLevel:
		level = "WRN"
	case zapcore.ErrorLevel:
		level = "ERR"
	case zapcore.FatalLevel:
		level = "FAT"
	}
	enc.AppendString(levelColors[l] + level + resetColor)
}

// ParseLevel 將設定字串轉為日誌級別，未知值視為 info
func ParseLevel(logLevel string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(logLevel)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	case "fatal":
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

// InitLogger 初始化日誌系統：終端機彩色輸出 + logDir/app.log JSON 檔案
func InitLogger(logLevel, logDir, serviceName string) error {
	level := ParseLevel(logLevel)

	// 讀取 LOG_MODE（必須在 .env 載入後）
	LogMode = os.Getenv("LOG_MODE")

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	logFile, err := os.OpenFile(filepath.Join(logDir, "app.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewJSONEncoder(getEncoderConfig(false)), zapcore.AddSync(logFile), level),
		zapcore.NewCore(zapcore.NewConsoleEncoder(getEncoderConfig(true)), zapcore.AddSync(os.Stdout), level),
	)

	Logger = zap.New(core,
		zap.AddCallerSkip(1),
		zap.Fields(zap.String("service", serviceName)),
	)
	zap.ReplaceGlobals(Logger)

	return nil
}

// LogInfo 記錄信息日誌
func LogInfo(msg string, fields ...zap.Field) {
	if LogMode == "concise" && !conciseMessages[msg] {
		return
	}
	Logger.Info(msg, fields...)
}

// LogWarn 記錄警告日誌
func LogWarn(msg string, fields ...zap.Field) {
	Logger.Warn(msg, fields...)
}

// LogError 記錄錯誤日誌
func LogError(msg string, fields ...zap.Field) {
	Logger.Error(msg, fields...)
}

// LogDebug 記錄調試日誌
func LogDebug(msg string, fields ...zap.Field) {
	Logger.Debug(msg, fields...)
}

// LogFatal 記錄致命錯誤日誌
func LogFatal(msg string, fields ...zap.Field) {
	Logger.Fatal(msg, fields...)
}

// Sync 同步日誌緩衝
func Sync() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}

// LogUpstreamCall 記錄一次對外部服務的呼叫
func LogUpstreamCall(service, operation string, duration time.Duration, err error) {
	if err != nil {
		LogError("外部服務請求失敗",
			zap.String("upstream", service),
			zap.String("operation", operation),
			zap.String("kind", string(KindOf(err))),
			zap.Duration("耗時", duration),
			zap.Error(err),
		)
		return
	}
	LogDebug("外部服務請求成功",
		zap.String("upstream", service),
		zap.String("operation", operation),
		zap.Duration("耗時", duration),
	)
}
