package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath       = ".env"
	defaultSecret = "SecRetKey"

	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

type Config struct {
	Env    string
	DB     db
	Server server
	Auth   auth
	Quota  quota
	AI     ai
}

type db struct {
	DatabaseURI string `env:"DATABASE_URI"`
	Migrations  string `env:"MIGRATIONS_PATH"`
}

type server struct {
	RunAddress string `env:"RUN_ADDRESS"`
}

type auth struct {
	Secret   string        `env:"AUTH_SECRET"`
	TokenTTL time.Duration `env:"AUTH_TOKEN_TTL"`
}

type quota struct {
	DailyAnalysisLimit int `env:"DAILY_ANALYSIS_LIMIT"`
}

type ai struct {
	APIKey  string        `env:"AI_API_KEY"`
	BaseURL string        `env:"AI_BASE_URL"`
	Model   string        `env:"AI_MODEL"`
	Timeout time.Duration `env:"AI_TIMEOUT"`
}

func MustLoad() *Config {
	if err := godotenv.Load(envPath); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()

	config := Config{
		Env: viper.GetString("app_env"),
		DB: db{
			DatabaseURI: viper.GetString("database_uri"),
			Migrations:  viper.GetString("migrations_path"),
		},
		Server: server{RunAddress: viper.GetString("run_address")},
		Auth: auth{
			Secret:   viper.GetString("auth_secret"),
			TokenTTL: viper.GetDuration("auth_token_ttl"),
		},
		Quota: quota{DailyAnalysisLimit: viper.GetInt("daily_analysis_limit")},
		AI: ai{
			APIKey:  viper.GetString("ai_api_key"),
			BaseURL: viper.GetString("ai_base_url"),
			Model:   viper.GetString("ai_model"),
			Timeout: viper.GetDuration("ai_timeout"),
		},
	}

	if config.Env == "" {
		config.Env = EnvLocal
	}
	if config.Server.RunAddress == "" {
		config.Server.RunAddress = ":8080"
	}
	if config.DB.Migrations == "" {
		config.DB.Migrations = "migrations"
	}
	if config.Auth.Secret == "" {
		config.Auth.Secret = defaultSecret
	}
	if config.Auth.TokenTTL <= 0 {
		config.Auth.TokenTTL = 60 * time.Minute
	}
	if config.Quota.DailyAnalysisLimit <= 0 {
		config.Quota.DailyAnalysisLimit = 5
	}
	if config.AI.BaseURL == "" {
		config.AI.BaseURL = "https://api.deepseek.com"
	}
	if config.AI.Model == "" {
		config.AI.Model = "deepseek-chat"
	}
	if config.AI.Timeout <= 0 {
		config.AI.Timeout = 120 * time.Second
	}

	return &config
}
