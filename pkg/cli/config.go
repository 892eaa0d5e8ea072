package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// UserConfig represents ~/.insertkit/config.yaml.
type UserConfig struct {
	CurrentProfile string             `yaml:"current-profile" json:"current_profile"`
	Profiles       map[string]Profile `yaml:"profiles" json:"profiles"`
}

// Profile represents a single named configuration profile.
type Profile struct {
	Host   string `yaml:"host,omitempty" json:"host,omitempty"`
	Output string `yaml:"output,omitempty" json:"output,omitempty"`
}

// ActiveProfile returns the profile to use based on the override or
// current-profile. A missing current profile yields the zero Profile; a
// missing override is an error.
func (c *UserConfig) ActiveProfile(override string) (Profile, error) {
	if override != "" {
		p, ok := c.Profiles[override]
		if !ok {
			return Profile{}, fmt.Errorf("profile %q not found", override)
		}
		return p, nil
	}
	return c.Profiles[c.CurrentProfile], nil
}

// ConfigDir returns the path to ~/.insertkit/.
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".insertkit")
}

// ConfigPath returns the path to ~/.insertkit/config.yaml.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// LoadUserConfig reads ~/.insertkit/config.yaml.
func LoadUserConfig() (*UserConfig, error) {
	path := ConfigPath()
	data, err := os.ReadFile(path) //nolint:gosec // path is under the user's home
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg UserConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Profiles == nil {
		cfg.Profiles = map[string]Profile{}
	}
	return &cfg, nil
}

// SaveUserConfig writes ~/.insertkit/config.yaml.
func SaveUserConfig(cfg *UserConfig) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(ConfigPath(), data, 0o600)
}
