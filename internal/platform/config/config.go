// Package config は環境変数と .env ファイルからアプリケーション設定を読み込みます。
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"stock_dashboard/internal/platform/externalapi/a1pro"
)

// Config はアプリケーション全体の設定です。
type Config struct {
	Server    ServerConfig
	API       a1pro.Config
	CORS      CORSConfig
	Log       LogConfig
	RateLimit RateLimitConfig
}

// ServerConfig はBFFサーバーの設定です。
type ServerConfig struct {
	Port string
	Addr string // ":8080" 形式
}

// CORSConfig はブラウザからのアクセスを許可するオリジンです。
type CORSConfig struct {
	AllowedOrigins []string
}

// LogConfig はログ出力の設定です。
type LogConfig struct {
	Format string // "text" または "json"
	Level  slog.Level
}

// RateLimitConfig はバックエンドへの送信頻度の上限です。Limitが0の場合は制限しません。
type RateLimitConfig struct {
	Limit    int
	Interval time.Duration
}

// Load は .env ファイル（存在する場合）と環境変数から設定を読み込みます。
func Load() (*Config, error) {
	// .env が無い場合はシステムの環境変数のみを使用する
	if err := godotenv.Load(); err != nil {
		slog.Debug(".env not found; using system environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		API: a1pro.LoadConfig(),
		CORS: CORSConfig{
			AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
		},
		Log: LogConfig{
			Format: strings.ToLower(getEnv("LOG_FORMAT", "text")),
		},
	}
	cfg.Server.Addr = ":" + cfg.Server.Port

	if err := cfg.Log.Level.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	if cfg.Log.Format != "text" && cfg.Log.Format != "json" {
		return nil, fmt.Errorf("invalid LOG_FORMAT %q: must be text or json", cfg.Log.Format)
	}

	limit, err := strconv.Atoi(getEnv("API_RATE_LIMIT", "0"))
	if err != nil || limit < 0 {
		return nil, fmt.Errorf("invalid API_RATE_LIMIT %q", os.Getenv("API_RATE_LIMIT"))
	}
	interval, err := time.ParseDuration(getEnv("API_RATE_INTERVAL", "1m"))
	if err != nil || interval <= 0 {
		return nil, fmt.Errorf("invalid API_RATE_INTERVAL %q", os.Getenv("API_RATE_INTERVAL"))
	}
	cfg.RateLimit = RateLimitConfig{Limit: limit, Interval: interval}

	return cfg, nil
}

// getEnv は環境変数を取得し、未設定の場合はデフォルト値を返します。
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func splitList(s string) []string {
	var out []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
