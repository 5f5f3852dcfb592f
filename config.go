package main

import (
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

type ExportConfig struct {
	Dir         string `yaml:"dir"`
	QR          bool   `yaml:"qr"`
	FontRegular string `yaml:"font_regular"`
	FontBold    string `yaml:"font_bold"`
}

type AIConfig struct {
	Enabled bool   `yaml:"enabled"`
	Model   string `yaml:"model"`
}

type Config struct {
	TelegramAPIToken string        `yaml:"tg_api_token"`
	ChatIDs          []int64       `yaml:"tg_chat_ids"`
	Locale           string        `yaml:"locale"`
	GenerateDelay    time.Duration `yaml:"generate_delay"`
	Export           ExportConfig  `yaml:"export"`
	AI               AIConfig      `yaml:"ai"`
}

func defaultConfig() *Config {
	return &Config{
		Locale:        "en",
		GenerateDelay: 500 * time.Millisecond,
		Export:        ExportConfig{Dir: "."},
		AI:            AIConfig{Model: "googleai/gemini-2.0-flash"},
	}
}

// loadConfig reads fp when it exists, then applies .env and environment
// overrides. A missing file is not an error.
func loadConfig(fp string) (*Config, error) {
	c := defaultConfig()

	f, err := os.Open(fp)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to open config file: %w", err)
	default:
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(c); err != nil {
			return nil, fmt.Errorf("failed to decode config file: %w", err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	c.TelegramAPIToken = cmp.Or(os.Getenv("TG_API_TOKEN"), c.TelegramAPIToken)
	c.Locale = cmp.Or(os.Getenv("LOTTO_LOCALE"), c.Locale)
	c.Export.Dir = cmp.Or(os.Getenv("LOTTO_EXPORT_DIR"), c.Export.Dir)
	if ids := os.Getenv("TG_CHAT_IDS"); ids != "" {
		c.ChatIDs, err = parseChatIDs(ids)
		if err != nil {
			return nil, err
		}
	}

	if c.GenerateDelay < 0 {
		return nil, fmt.Errorf("generate_delay must not be negative: %v", c.GenerateDelay)
	}
	return c, nil
}

func (c *Config) validateBot() error {
	if c.TelegramAPIToken == "" {
		return fmt.Errorf("missing Telegram API token")
	}
	return nil
}

func parseChatIDs(s string) ([]int64, error) {
	var ids []int64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse chat id %q: %w", part, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
