package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App AppConfig
	DB  DBConfig
	AI  AIConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	// Driver is "postgres" or "sqlite". Single-file sqlite deployments
	// stay supported alongside the server database.
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	Path     string
}

type AIConfig struct {
	// APIKey empty means the provider is disabled; generate calls degrade
	// to the fallback response instead of failing.
	APIKey  string
	Model   string
	Timeout time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	// A missing .env is fine, the process environment alone is a valid
	// deployment configuration.
	if err := viper.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			return nil, err
		}
	}

	viper.SetDefault("APP_PORT", "5000")
	viper.SetDefault("DB_DRIVER", "sqlite")
	viper.SetDefault("DB_PATH", "caresync.db")
	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-flash-latest")

	aiTimeout, err := time.ParseDuration(viper.GetString("AI_TIMEOUT"))
	if err != nil {
		aiTimeout = 30 * time.Second
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Driver:   viper.GetString("DB_DRIVER"),
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
			Path:     viper.GetString("DB_PATH"),
		},
		AI: AIConfig{
			APIKey:  viper.GetString("GEMINI_API_KEY"),
			Model:   viper.GetString("GEMINI_MODEL"),
			Timeout: aiTimeout,
		},
	}

	return config, nil
}
