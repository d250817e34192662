package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config 應用配置
type Config struct {
	App      AppConfig    `mapstructure:"app"`
	Server   ServerConfig `mapstructure:"server"`
	Groq     GroqConfig   `mapstructure:"groq"`
	MealDB   MealDBConfig `mapstructure:"mealdb"`
	Recipe   RecipeConfig `mapstructure:"recipe"`
	CORS     CORSConfig   `mapstructure:"cors"`
	LogLevel string       `mapstructure:"log_level"`
	LogDir   string       `mapstructure:"log_dir"`
}

// AppConfig 應用程式設定
type AppConfig struct {
	Env     string `mapstructure:"env"`
	Debug   bool   `mapstructure:"debug"`
	Version string `mapstructure:"version"`
	Name    string `mapstructure:"name"`
}

// ServerConfig 服務器配置
type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
	MaxBodyBytes int64         `mapstructure:"max_body_bytes"`
}

// GroqConfig 補全服務配置（OpenAI 相容 API）
type GroqConfig struct {
	APIKey      string  `mapstructure:"api_key"`
	BaseURL     string  `mapstructure:"base_url"`
	Model       string  `mapstructure:"model"`
	Temperature float64 `mapstructure:"temperature"`
	MaxTokens   int     `mapstructure:"max_tokens"`
}

// MealDBConfig TheMealDB 配置
type MealDBConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

// RecipeConfig 食譜流程配置
type RecipeConfig struct {
	// ParallelEnrichment 翻譯與 AI 補充改為三條獨立鏈並行執行
	ParallelEnrichment bool `mapstructure:"parallel_enrichment"`
}

// CORSConfig 跨域設定
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// HasAPIKey 是否已設定補全服務金鑰
func (c *Config) HasAPIKey() bool {
	return strings.TrimSpace(c.Groq.APIKey) != ""
}

// LoadConfig 載入設定：預設值 < .env 檔 < 環境變數
func LoadConfig() (*Config, error) {
	// .env 不存在不是錯誤
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 綁定環境變量
	bindings := map[string]string{
		"groq.api_key":               "GROQ_API_KEY",
		"groq.model":                 "GROQ_MODEL",
		"groq.base_url":              "GROQ_BASE_URL",
		"mealdb.base_url":            "MEALDB_BASE_URL",
		"server.port":                "PORT",
		"log_level":                  "LOG_LEVEL",
		"recipe.parallel_enrichment": "PARALLEL_ENRICHMENT",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, "APP_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env); err != nil {
			return nil, fmt.Errorf("failed to bind env %s: %w", env, err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// setDefaults 設定預設值
func setDefaults(v *viper.Viper) {
	// 應用程式設定
	v.SetDefault("app.env", "development")
	v.SetDefault("app.debug", true)
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.name", "cookia")

	// 伺服器設定；write_timeout 0 表示不另設期限
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "0s")
	v.SetDefault("server.idle_timeout", "120s")
	v.SetDefault("server.max_body_bytes", 1<<20)

	// 補全服務設定
	v.SetDefault("groq.api_key", "")
	v.SetDefault("groq.base_url", "https://api.groq.com/openai/v1")
	v.SetDefault("groq.model", "llama-3.1-8b-instant")
	v.SetDefault("groq.temperature", 0.4)
	v.SetDefault("groq.max_tokens", 150)

	v.SetDefault("mealdb.base_url", "https://www.themealdb.com/api/json/v1/1")

	v.SetDefault("recipe.parallel_enrichment", false)
	v.SetDefault("cors.allow_origins", []string{"*"})

	v.SetDefault("log_level", "info")
	v.SetDefault("log_dir", "logs")
}

// Validate 驗證設定；金鑰缺失在呼叫時才報錯
func (c *Config) Validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("server port is required")
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("invalid max body bytes")
	}
	if c.Groq.BaseURL == "" {
		return fmt.Errorf("groq base url is required")
	}
	if c.Groq.Model == "" {
		return fmt.Errorf("groq model is required")
	}
	if c.Groq.MaxTokens <= 0 {
		return fmt.Errorf("invalid groq max tokens")
	}
	if c.Groq.Temperature < 0 || c.Groq.Temperature > 2 {
		return fmt.Errorf("invalid groq temperature")
	}
	if c.MealDB.BaseURL == "" {
		return fmt.Errorf("mealdb base url is required")
	}
	return nil
}
