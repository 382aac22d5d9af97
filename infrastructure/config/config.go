package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	Messenger  MessengerConfig
	Telegram   TelegramConfig
	Redis      RedisConfig
	ConfigPath string
}

type ServerConfig struct {
	Port     int
	LogLevel string
}

func (c *ServerConfig) Addr() string {
	return "0.0.0.0:" + strconv.Itoa(c.Port)
}

type MessengerConfig struct {
	PageAccessToken string
	APIURL          string
	APIVersion      string
	Timeout         time.Duration
}

// TelegramConfig is optional; an empty Token disables the Telegram endpoint.
type TelegramConfig struct {
	Token  string
	APIURL string
}

func (c *TelegramConfig) Enabled() bool {
	return c.Token != ""
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoadFromEnv reads the process environment. Variables from an optional
// .env file in the working directory are loaded first without overriding
// anything already set.
func LoadFromEnv() (*Config, error) {
	_ = godotenv.Load()

	serverPort, err := getEnvOrDefaultInt("SERVER_PORT", 8080)
	if err != nil {
		return nil, err
	}

	redisDB, err := getEnvOrDefaultInt("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}

	httpTimeout, err := getEnvOrDefaultDuration("HTTP_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:     serverPort,
			LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
		},
		Messenger: MessengerConfig{
			PageAccessToken: os.Getenv("MESSENGER_PAGE_ACCESS_TOKEN"),
			APIURL:          getEnvOrDefault("MESSENGER_API_URL", "https://graph.facebook.com"),
			APIVersion:      getEnvOrDefault("MESSENGER_API_VERSION", "v2.6"),
			Timeout:         httpTimeout,
		},
		Telegram: TelegramConfig{
			Token:  os.Getenv("TELEGRAM_TOKEN"),
			APIURL: os.Getenv("TELEGRAM_API_URL"),
		},
		Redis: RedisConfig{
			Addr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		ConfigPath: getEnvOrDefault("CONFIG_PATH", "/etc/botutils/config.yaml"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyFileConfig fills settings from fc that were not set in the environment.
func (c *Config) ApplyFileConfig(fc *FileConfig) {
	if os.Getenv("MESSENGER_API_VERSION") == "" && fc.Messenger.APIVersion != "" {
		c.Messenger.APIVersion = fc.Messenger.APIVersion
	}
	if os.Getenv("HTTP_TIMEOUT") == "" && fc.Messenger.Timeout != "" {
		if d, err := time.ParseDuration(fc.Messenger.Timeout); err == nil && d > 0 {
			c.Messenger.Timeout = d
		}
	}
}

func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Messenger.PageAccessToken == "" {
		return fmt.Errorf("MESSENGER_PAGE_ACCESS_TOKEN is required")
	}
	if c.Messenger.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %s", c.Messenger.Timeout)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvOrDefaultInt(key string, defaultValue int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s=%q: %w", key, v, err)
	}
	return i, nil
}

func getEnvOrDefaultDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s=%q: %w", key, v, err)
	}
	return d, nil
}
