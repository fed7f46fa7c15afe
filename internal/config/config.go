package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/harrison/checker/internal/logger"
	"github.com/harrison/checker/internal/models"
	"github.com/harrison/checker/internal/rule"
)

// FileName is the name of the config file looked up next to the executable.
const FileName = "checker.cfg"

// Errors returned by LoadConfig. Every failure wraps exactly one of them.
var (
	ErrConfigMissing   = errors.New("config file not found")
	ErrConfigMalformed = errors.New("config file unparsable")
)

// Schema identifies which of the two problem layouts a config uses.
type Schema string

// Schema values
const (
	// SchemaStructured: problems give has_subfolder, the file set is
	// "{name}[/{name}].{suffix}" over acceptable_suffixes.
	SchemaStructured Schema = "structured"
	// SchemaPattern: every problem gives its own regex or glob.
	SchemaPattern Schema = "pattern"
)

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ContestantIDConfig is the structured contestant identifier: Length
// characters, starting with Prefix, digits after it.
type ContestantIDConfig struct {
	Length int    `yaml:"length"`
	Prefix string `yaml:"prefix"`
}

// ProblemConfig is one entry of the problems list
type ProblemConfig struct {
	// Name identifies the problem and is its display label
	Name string `yaml:"name"`

	// HasSubfolder requires the file to live in a folder named after the problem (structured schema)
	HasSubfolder *bool `yaml:"has_subfolder"`

	// Regex is matched against the whole relative path (pattern schema)
	Regex string `yaml:"regex"`

	// Glob is matched against the whole relative path (pattern schema)
	Glob string `yaml:"glob"`

	// NotFoundHint replaces the default "no source files" message (pattern schema)
	NotFoundHint string `yaml:"not_found_hint"`
}

// Config represents the checker configuration
type Config struct {
	// RootPath is the directory holding contestant folders
	RootPath string `yaml:"root_path"`

	// Regex selects contestant folders by full-name regex
	Regex string `yaml:"regex"`

	// Glob selects contestant folders by glob
	Glob string `yaml:"glob"`

	// ContestantID selects contestant folders structurally (default GD- + 5 digits)
	ContestantID ContestantIDConfig `yaml:"contestant_id"`

	// AcceptableSuffixes switches the config to the structured schema
	AcceptableSuffixes []string `yaml:"acceptable_suffixes"`

	// Problems in report order
	Problems []ProblemConfig `yaml:"problems"`

	// LogLevel sets the diagnostic verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// Pause waits for Enter before the process exits
	Pause bool `yaml:"pause"`

	// Color is one of auto, always, never
	Color string `yaml:"color"`

	// Schema is detected from the fields present in the file
	Schema Schema `yaml:"-"`

	idRule   rule.IDRule
	problems []models.Problem
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		ContestantID: ContestantIDConfig{
			Length: rule.DefaultID.Length,
			Prefix: rule.DefaultID.Prefix,
		},
		LogLevel: "warn",
		Pause:    true,
		Color:    ColorAuto,
		Schema:   SchemaPattern,
	}
}

// LoadConfig loads, validates and compiles the configuration at path.
// A missing or unreadable file wraps ErrConfigMissing. Any parse, schema or
// validation failure wraps ErrConfigMalformed; there is no partial recovery.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigMissing, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfigMalformed, path, err)
	}
	return cfg, nil
}

// Parse decodes data (YAML or JSON) on top of DefaultConfig, then validates
// and compiles it.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	data = normalize(data)

	// Use a temporary struct so optional fields can be told apart from zero values
	type yamlConfig struct {
		RootPath           string              `yaml:"root_path"`
		Regex              string              `yaml:"regex"`
		Glob               string              `yaml:"glob"`
		ContestantID       *ContestantIDConfig `yaml:"contestant_id"`
		AcceptableSuffixes []string            `yaml:"acceptable_suffixes"`
		Problems           []ProblemConfig     `yaml:"problems"`
		LogLevel           string              `yaml:"log_level"`
		Pause              *bool               `yaml:"pause"`
		Color              string              `yaml:"color"`
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Presence of keys decides the schema, so look at the raw document too
	var rawMap map[string]interface{}
	if err := yaml.Unmarshal(data, &rawMap); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	for _, key := range []string{"root_path", "problems"} {
		if _, exists := rawMap[key]; !exists {
			return nil, fmt.Errorf("missing required field %q", key)
		}
	}
	if _, exists := rawMap["acceptable_suffixes"]; exists {
		cfg.Schema = SchemaStructured
	}

	cfg.RootPath = yamlCfg.RootPath
	cfg.Regex = yamlCfg.Regex
	cfg.Glob = yamlCfg.Glob
	if yamlCfg.ContestantID != nil {
		cfg.ContestantID = *yamlCfg.ContestantID
	}
	cfg.AcceptableSuffixes = yamlCfg.AcceptableSuffixes
	cfg.Problems = yamlCfg.Problems
	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}
	if yamlCfg.Pause != nil {
		cfg.Pause = *yamlCfg.Pause
	}
	if yamlCfg.Color != "" {
		cfg.Color = yamlCfg.Color
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.compile(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalize re-encodes a JSON object as YAML. yaml.v3 reads JSON directly,
// but rejects the tab indentation that hand-written JSON configs often use.
// Anything that does not decode as a JSON object is returned unchanged.
func normalize(data []byte) []byte {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return data
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return data
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return data
	}
	return out
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
func (c *Config) MergeWithFlags(logLevel *string, color *string, pause *bool) {
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
	if color != nil {
		c.Color = *color
	}
	if pause != nil {
		c.Pause = *pause
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	if strings.TrimSpace(c.RootPath) == "" {
		return fmt.Errorf("root_path cannot be empty")
	}

	if c.Regex != "" && c.Glob != "" {
		return fmt.Errorf("regex and glob are mutually exclusive for contestant folders")
	}
	if c.Regex == "" && c.Glob == "" {
		if c.ContestantID.Length <= len(c.ContestantID.Prefix) {
			return fmt.Errorf("contestant_id.length must exceed the prefix length, got %d for prefix %q",
				c.ContestantID.Length, c.ContestantID.Prefix)
		}
	}

	if !logger.IsValidLevel(c.LogLevel) {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color %q, must be one of: auto, always, never", c.Color)
	}

	if c.Schema == SchemaStructured {
		if len(c.AcceptableSuffixes) == 0 {
			return fmt.Errorf("acceptable_suffixes cannot be empty")
		}
		for i, s := range c.AcceptableSuffixes {
			if s == "" || strings.ContainsAny(s, `/\`) {
				return fmt.Errorf("acceptable_suffixes[%d]: invalid suffix %q", i, s)
			}
		}
	}

	seen := make(map[string]bool, len(c.Problems))
	for i, p := range c.Problems {
		if p.Name == "" {
			return fmt.Errorf("problems[%d]: name cannot be empty", i)
		}
		if seen[p.Name] {
			return fmt.Errorf("problems[%d]: duplicate problem name %q", i, p.Name)
		}
		seen[p.Name] = true

		switch c.Schema {
		case SchemaStructured:
			if p.HasSubfolder == nil {
				return fmt.Errorf("problem %q: has_subfolder is required when acceptable_suffixes is set", p.Name)
			}
			if p.Regex != "" || p.Glob != "" {
				return fmt.Errorf("problem %q: regex and glob cannot be combined with acceptable_suffixes", p.Name)
			}
		case SchemaPattern:
			if (p.Regex == "") == (p.Glob == "") {
				return fmt.Errorf("problem %q: exactly one of regex or glob is required", p.Name)
			}
		}
	}

	return nil
}

// compile builds the rules described by the validated fields.
func (c *Config) compile() error {
	switch {
	case c.Regex != "":
		r, err := rule.NewRegexRule(c.Regex)
		if err != nil {
			return fmt.Errorf("contestant folder rule: %w", err)
		}
		c.idRule = r
	case c.Glob != "":
		g, err := rule.NewGlobRule(c.Glob)
		if err != nil {
			return fmt.Errorf("contestant folder rule: %w", err)
		}
		c.idRule = g
	default:
		c.idRule = rule.StructuredID{Length: c.ContestantID.Length, Prefix: c.ContestantID.Prefix}
	}

	c.problems = make([]models.Problem, 0, len(c.Problems))
	for _, p := range c.Problems {
		problem := models.Problem{Name: p.Name, NotFoundHint: p.NotFoundHint}

		switch {
		case c.Schema == SchemaStructured:
			// structured problems always print the default message
			problem.NotFoundHint = ""
			problem.Rule = rule.SuffixRule{
				Name:         p.Name,
				HasSubfolder: *p.HasSubfolder,
				Suffixes:     c.AcceptableSuffixes,
			}
		case p.Regex != "":
			r, err := rule.NewRegexRule(p.Regex)
			if err != nil {
				return fmt.Errorf("problem %q: %w", p.Name, err)
			}
			problem.Rule = r
		default:
			g, err := rule.NewGlobRule(p.Glob)
			if err != nil {
				return fmt.Errorf("problem %q: %w", p.Name, err)
			}
			problem.Rule = g
		}

		c.problems = append(c.problems, problem)
	}
	return nil
}

// IDRule returns the compiled contestant folder rule.
func (c *Config) IDRule() rule.IDRule {
	return c.idRule
}

// ProblemSpecs returns the compiled problems in configured order.
func (c *Config) ProblemSpecs() []models.Problem {
	return c.problems
}
