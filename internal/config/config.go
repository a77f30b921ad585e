package config

import (
	"github.com/spf13/viper"
)

// Config holds all process configuration, loaded from environment
// variables with an optional .env file for local development.
type Config struct {
	ServerHost string
	ServerPort string
	GinMode    string

	// DBDriver selects the gorm dialect: sqlite (default), mysql or
	// postgres. DBPath is the sqlite file; DBDSN covers the server-backed
	// drivers.
	DBDriver string
	DBPath   string
	DBDSN    string

	LogLevel string
	LogFile  string

	QwenAPIKey  string
	QwenBaseURL string
	QwenModel   string
}

// Load reads configuration from the environment. Missing keys fall back
// to development defaults.
func Load() *Config {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	// Best effort: the .env file is optional.
	_ = v.ReadInConfig()
	v.AutomaticEnv()

	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DB_PATH", "./data/uchannel.db")
	v.SetDefault("DB_DSN", "")
	v.SetDefault("LOG_LEVEL", "debug")
	v.SetDefault("LOG_FILE", "")
	v.SetDefault("QWEN_API_KEY", "")
	v.SetDefault("QWEN_BASE_URL", "https://dashscope.aliyuncs.com/compatible-mode/v1")
	v.SetDefault("QWEN_MODEL", "qwen-turbo")

	return &Config{
		ServerHost:  v.GetString("SERVER_HOST"),
		ServerPort:  v.GetString("SERVER_PORT"),
		GinMode:     v.GetString("GIN_MODE"),
		DBDriver:    v.GetString("DB_DRIVER"),
		DBPath:      v.GetString("DB_PATH"),
		DBDSN:       v.GetString("DB_DSN"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		LogFile:     v.GetString("LOG_FILE"),
		QwenAPIKey:  v.GetString("QWEN_API_KEY"),
		QwenBaseURL: v.GetString("QWEN_BASE_URL"),
		QwenModel:   v.GetString("QWEN_MODEL"),
	}
}
