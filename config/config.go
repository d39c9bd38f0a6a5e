// Package config provides configuration loading and management for the
// workbench CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that YAML-encodes as a string like "10s".
type Duration time.Duration

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err == nil {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", s, err)
		}
		*d = Duration(parsed)
		return nil
	}
	var n int64
	if err := value.Decode(&n); err != nil {
		return fmt.Errorf("invalid duration: %s", value.Value)
	}
	*d = Duration(n)
	return nil
}

// Config represents the complete workbench configuration
type Config struct {
	Project    ProjectConfig    `yaml:"project"`
	Themes     ThemesConfig     `yaml:"themes"`
	Provenance ProvenanceConfig `yaml:"provenance"`
	Server     ServerConfig     `yaml:"server"`
}

// ProjectConfig configures the target project settings
type ProjectConfig struct {
	// Root is the project root path (auto-detected from git if empty)
	Root string `yaml:"root"`
	// Layout is the target layout name (default: "default")
	Layout string `yaml:"layout"`
}

// ThemesConfig configures theme loading
type ThemesConfig struct {
	// Dir is the directory watched for theme files (relative to root)
	Dir string `yaml:"dir"`
	// Active is the theme activated at startup
	Active string `yaml:"active"`
}

// ProvenanceConfig configures provenance checking
type ProvenanceConfig struct {
	// Doc is the provenance document path relative to the project root
	Doc string `yaml:"doc"`
	// Exclude are glob patterns never scanned for markers
	Exclude []string `yaml:"exclude"`
}

// ServerConfig configures the registry server
type ServerConfig struct {
	// Addr is the listen address for `workbench serve`
	Addr string `yaml:"addr"`
	// ShutdownTimeout bounds graceful shutdown
	ShutdownTimeout Duration `yaml:"shutdown_timeout"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Project: ProjectConfig{
			Root:   "", // Auto-detect
			Layout: "default",
		},
		Themes: ThemesConfig{
			Dir:    "themes",
			Active: "One Dark",
		},
		Provenance: ProvenanceConfig{
			Doc:     "docs/PROVENANCE.md",
			Exclude: []string{"target/**", ".refs/**", ".git/**"},
		},
		Server: ServerConfig{
			Addr:            ":8390",
			ShutdownTimeout: Duration(10 * time.Second),
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Project.Layout == "" {
		return fmt.Errorf("project.layout is required")
	}
	if c.Project.Layout != "default" {
		return fmt.Errorf("unknown project.layout %q", c.Project.Layout)
	}
	if c.Themes.Dir == "" {
		return fmt.Errorf("themes.dir is required")
	}
	if c.Provenance.Doc == "" {
		return fmt.Errorf("provenance.doc is required")
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for
// non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.Project.Root != "" {
		c.Project.Root = other.Project.Root
	}
	if other.Project.Layout != "" {
		c.Project.Layout = other.Project.Layout
	}

	if other.Themes.Dir != "" {
		c.Themes.Dir = other.Themes.Dir
	}
	if other.Themes.Active != "" {
		c.Themes.Active = other.Themes.Active
	}

	if other.Provenance.Doc != "" {
		c.Provenance.Doc = other.Provenance.Doc
	}
	if len(other.Provenance.Exclude) > 0 {
		c.Provenance.Exclude = other.Provenance.Exclude
	}

	if other.Server.Addr != "" {
		c.Server.Addr = other.Server.Addr
	}
	if other.Server.ShutdownTimeout != 0 {
		c.Server.ShutdownTimeout = other.Server.ShutdownTimeout
	}
}

// ThemesPath returns the absolute theme directory for the configured root.
func (c *Config) ThemesPath() string {
	if filepath.IsAbs(c.Themes.Dir) {
		return c.Themes.Dir
	}
	return filepath.Join(c.Project.Root, c.Themes.Dir)
}
