package update

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/sandeepkv93/todoboard/internal/model"
)

type RuntimeConfig struct {
	Theme         string
	DraftCategory string
	Empty         bool
	LogLevel      string
	LogFile       string
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		Theme:         string(model.ThemeLight),
		DraftCategory: string(model.CategoryWork),
		Empty:         false,
		LogLevel:      "info",
		LogFile:       "",
	}
}

func (c RuntimeConfig) Validate() error {
	if _, err := model.ParseTheme(c.Theme); err != nil {
		return fmt.Errorf("theme: %w", err)
	}
	cat, err := model.ParseCategory(c.DraftCategory)
	if err != nil {
		return fmt.Errorf("draft_category: %w", err)
	}
	if !cat.IsTaskCategory() {
		return fmt.Errorf("draft_category: %w: %q", model.ErrInvalidCategory, c.DraftCategory)
	}
	return nil
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v := strings.TrimSpace(os.Getenv("TODOBOARD_THEME")); v != "" {
		cfg.Theme = v
	}
	if v := strings.TrimSpace(os.Getenv("TODOBOARD_DRAFT_CATEGORY")); v != "" {
		cfg.DraftCategory = v
	}
	if v, ok := getEnvBool("TODOBOARD_EMPTY"); ok {
		cfg.Empty = v
	}
	if v := strings.TrimSpace(os.Getenv("TODOBOARD_LOG_LEVEL")); v != "" {
		cfg.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv("TODOBOARD_LOG_FILE")); v != "" {
		cfg.LogFile = v
	}
	return cfg
}

type fileConfig struct {
	Board struct {
		Theme         string `toml:"theme"`
		DraftCategory string `toml:"draft_category"`
		Empty         *bool  `toml:"empty"`
	} `toml:"board"`
	Log struct {
		Level string `toml:"level"`
		File  string `toml:"file"`
	} `toml:"log"`
}

// LoadRuntimeConfigFile overlays a TOML file on base. A missing or empty
// file leaves base untouched.
func LoadRuntimeConfigFile(path string, base RuntimeConfig) (RuntimeConfig, error) {
	cfg := base
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(trimmed)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return RuntimeConfig{}, fmt.Errorf("read config: %w", err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return cfg, nil
	}

	var fc fileConfig
	dec := toml.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&fc); err != nil {
		return RuntimeConfig{}, fmt.Errorf("decode toml: %w", err)
	}
	if v := strings.TrimSpace(fc.Board.Theme); v != "" {
		cfg.Theme = v
	}
	if v := strings.TrimSpace(fc.Board.DraftCategory); v != "" {
		cfg.DraftCategory = v
	}
	if fc.Board.Empty != nil {
		cfg.Empty = *fc.Board.Empty
	}
	if v := strings.TrimSpace(fc.Log.Level); v != "" {
		cfg.LogLevel = v
	}
	if v := strings.TrimSpace(fc.Log.File); v != "" {
		cfg.LogFile = v
	}
	return cfg, nil
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
