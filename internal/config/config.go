// Package config loads the promptfade YAML configuration. Loading starts
// from built-in defaults and merges the first configuration file found on
// top: a local .promptfade.yaml, then <user config dir>/promptfade/config.yaml.
// A missing file is not an error; the defaults simply apply.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dkoosis/promptfade/pkg/prompt"
)

// LocalConfigName is the per-directory configuration file name.
const LocalConfigName = ".promptfade.yaml"

// Config is the root of the YAML configuration.
type Config struct {
	// Gradient configures the color curve shared by gradient components.
	Gradient GradientConfig `yaml:"gradient"`

	// GradientUsername configures the gradient username component.
	GradientUsername UsernameConfig `yaml:"gradient_username"`
}

// GradientConfig selects the gradient curve.
type GradientConfig struct {
	// Format is reserved for prompt-level composition; only "$module" is
	// meaningful today.
	Format string `yaml:"format"`

	// Gradient names a built-in preset ("sunset", "gold", "magma").
	Gradient string `yaml:"gradient"`

	// Stops and Domain define a custom curve and take precedence over the
	// preset name.
	Stops  []string  `yaml:"stops"`
	Domain []float64 `yaml:"domain"`

	ShowAlways bool `yaml:"show_always"`
	Disabled   bool `yaml:"disabled"`
}

// UsernameConfig configures the username component proper.
type UsernameConfig struct {
	Format     string `yaml:"format"`
	StyleRoot  string `yaml:"style_root"`
	StyleUser  string `yaml:"style_user"`
	ShowAlways bool   `yaml:"show_always"`
	Disabled   bool   `yaml:"disabled"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Gradient: GradientConfig{
			Format: "$module",
		},
		GradientUsername: UsernameConfig{
			Format:    "[$user]($style) in ",
			StyleRoot: "red bold",
			StyleUser: "yellow bold",
		},
	}
}

// Load reads the configuration at path, merged over defaults. An empty path
// triggers discovery; a missing file yields the defaults. With strict set,
// fields not present in the schema are rejected.
func Load(path string, strict bool) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = discoverPath()
		if path == "" {
			return cfg, nil
		}
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := unmarshal(raw, cfg, strict); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

func unmarshal(raw []byte, cfg *Config, strict bool) error {
	if !strict {
		return yaml.Unmarshal(raw, cfg)
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// discoverPath finds the configuration file: local directory first, then
// the user config dir.
func discoverPath() string {
	if _, err := os.Stat(LocalConfigName); err == nil {
		return LocalConfigName
	}
	configHome, err := os.UserConfigDir()
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}
	p := filepath.Join(configHome, "promptfade", "config.yaml")
	if _, err := os.Stat(p); err == nil {
		return p
	}
	return ""
}

// UsernameOptions converts the username section to component options.
func (c *Config) UsernameOptions() prompt.UsernameOptions {
	u := c.GradientUsername
	return prompt.UsernameOptions{
		Format:     u.Format,
		StyleRoot:  u.StyleRoot,
		StyleUser:  u.StyleUser,
		ShowAlways: u.ShowAlways || c.Gradient.ShowAlways,
		Disabled:   u.Disabled || c.Gradient.Disabled,
	}
}

// GradientOptions converts the gradient section to component options.
func (c *Config) GradientOptions() prompt.GradientOptions {
	opts := prompt.DefaultGradientOptions()
	opts.Preset = c.Gradient.Gradient
	opts.Stops = c.Gradient.Stops
	opts.Domain = c.Gradient.Domain
	return opts
}
