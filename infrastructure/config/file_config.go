package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const defaultDeliveryTTL = 7 * 24 * time.Hour

type FileConfig struct {
	Messenger FileMessengerConfig `yaml:"messenger"`
	Buttons   ButtonsConfig       `yaml:"buttons"`
	Delivery  DeliveryConfig      `yaml:"delivery"`
}

type FileMessengerConfig struct {
	APIVersion string `yaml:"api_version"`
	Timeout    string `yaml:"timeout"`
}

// ButtonsConfig holds defaults for URL buttons built from gateway requests
// that leave the optional fields out.
type ButtonsConfig struct {
	WebviewHeightRatio  string `yaml:"webview_height_ratio"`
	MessengerExtensions *bool  `yaml:"messenger_extensions"`
}

type DeliveryConfig struct {
	TTL string `yaml:"ttl"`
}

func LoadFromFile(path string) (*FileConfig, error) {
	path = filepath.Clean(path)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultFileConfig(), nil
		}
		return nil, err
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func defaultFileConfig() *FileConfig {
	cfg := &FileConfig{}
	cfg.applyDefaults()
	return cfg
}

func (c *FileConfig) applyDefaults() {
	if c.Buttons.WebviewHeightRatio == "" {
		c.Buttons.WebviewHeightRatio = "full"
	}
	if c.Buttons.MessengerExtensions == nil {
		enabled := true
		c.Buttons.MessengerExtensions = &enabled
	}
	if c.Delivery.TTL == "" {
		c.Delivery.TTL = defaultDeliveryTTL.String()
	}
}

func (c *FileConfig) DefaultWebviewHeightRatio() string {
	return c.Buttons.WebviewHeightRatio
}

func (c *FileConfig) DefaultMessengerExtensions() bool {
	if c.Buttons.MessengerExtensions == nil {
		return true
	}
	return *c.Buttons.MessengerExtensions
}

// DeliveryTTL falls back to seven days when the configured value does not parse.
func (c *FileConfig) DeliveryTTL() time.Duration {
	d, err := time.ParseDuration(c.Delivery.TTL)
	if err != nil || d <= 0 {
		return defaultDeliveryTTL
	}
	return d
}
