// Package config loads theme and widget settings from YAML or TOML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/esimov/m3/color"
)

// DefaultSeed is the seed used when a file names none.
const DefaultSeed = "#6750a4"

// Config is the root of a settings file.
type Config struct {
	Theme     Theme     `yaml:"theme" toml:"theme"`
	TextField TextField `yaml:"text_field" toml:"text_field"`
	Log       Log       `yaml:"log" toml:"log"`
}

// Theme selects the colors of the widgets.
type Theme struct {
	Seed string `yaml:"seed" toml:"seed" validate:"required,argb"`
	Mode string `yaml:"mode" toml:"mode" validate:"required,oneof=light dark"`
}

// TextField holds text field defaults.
type TextField struct {
	MaxLen   int     `yaml:"max_len" toml:"max_len" validate:"gte=0"`
	FontSize float32 `yaml:"font_size" toml:"font_size" validate:"gt=0"`
}

// Log configures the diagnostic output.
type Log struct {
	Level string `yaml:"level" toml:"level" validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
	Human bool   `yaml:"human" toml:"human"`
}

// Default returns the settings used without a file.
func Default() Config {
	return Config{
		Theme:     Theme{Seed: DefaultSeed, Mode: color.Light.String()},
		TextField: TextField{MaxLen: 10, FontSize: 16},
		Log:       Log{Level: "info"},
	}
}

// ErrFormat reports a file extension that is neither YAML nor TOML.
var ErrFormat = errors.New("unsupported config format")

// Load reads path on top of the defaults and validates the result. The
// format follows the extension: .yaml, .yml or .toml.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := Parse(data, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data in the format named by ext on top of the defaults.
func Parse(data []byte, ext string) (Config, error) {
	cfg := Default()
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing yaml: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing toml: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("%w %q", ErrFormat, ext)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field against its constraints.
func (c Config) Validate() error {
	if err := validatorInstance().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Seed returns the parsed theme seed.
func (c Config) Seed() (color.ARGB, error) {
	return color.ParseARGB(c.Theme.Seed)
}

// Mode returns the parsed theme mode.
func (c Config) Mode() (color.Mode, error) {
	return color.ParseMode(c.Theme.Mode)
}
