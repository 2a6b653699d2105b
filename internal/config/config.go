package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level cashflow configuration file.
type Config struct {
	General    GeneralConfig `yaml:"general"`
	Categories CategoryTable `yaml:"categories"`
	Report     ReportConfig  `yaml:"report"`
}

// GeneralConfig controls dataset loading, normalization and categorization.
type GeneralConfig struct {
	// FileLocation lists files and/or directories holding bank exports.
	FileLocation StringList `yaml:"file_location"`

	// Column candidates per canonical field, tried in order. Date and
	// amount use the first candidate present in a dataset; description
	// uses every candidate present.
	DateColumns        []string `yaml:"date_columns"`
	DescriptionColumns []string `yaml:"description_columns"`
	AmountColumns      []string `yaml:"amount_columns"`

	// CostOrIncomeColumns maps sign-indicator columns to their
	// {cell value: multiplier} tables. The first configured column present
	// in a dataset is used.
	CostOrIncomeColumns SignColumns `yaml:"cost_or_income_columns,omitempty"`

	// DefaultMultiplier applies when a sign-indicator cell value is absent
	// from its multiplier table. Defaults to 1 so unknown values never zero
	// an amount.
	DefaultMultiplier int `yaml:"default_multiplier"`

	DateFormat       string `yaml:"date_format"`       // Go reference layout
	DecimalSeparator string `yaml:"decimal_separator"` // "," or "."

	// AdjustDuplicates enables deduplication of transactions that appear in
	// more than one source file (overlapping export windows).
	AdjustDuplicates bool `yaml:"adjust_duplicates"`

	// CategorizationThreshold is the 0-100 similarity score a keyword match
	// must reach before a category is assigned.
	CategorizationThreshold int `yaml:"categorization_threshold"`

	// CategoryExclusions are summed in their own bucket but left out of the
	// Totals column (e.g. transfers between own accounts).
	CategoryExclusions []string `yaml:"category_exclusions,omitempty"`
}

// ReportConfig controls report emission.
type ReportConfig struct {
	Directory string   `yaml:"directory"`
	Overviews []string `yaml:"overviews"` // subset of daily/weekly/monthly/quarterly/yearly
	Currency  string   `yaml:"currency"`
}

// StringList accepts either a single YAML scalar or a sequence of strings.
type StringList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *StringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var v string
		if err := node.Decode(&v); err != nil {
			return err
		}
		*s = StringList{v}
		return nil
	case yaml.SequenceNode:
		var v []string
		if err := node.Decode(&v); err != nil {
			return err
		}
		*s = StringList(v)
		return nil
	default:
		return fmt.Errorf("expected string or list of strings, got %s node", nodeKind(node))
	}
}

// Load reads a configuration file from disk, applies defaults for absent
// settings and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := withDefaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// withDefaults returns a Config pre-filled with defaults; yaml.Unmarshal
// only overwrites fields the document actually sets.
func withDefaults() *Config {
	return &Config{
		General: GeneralConfig{
			DateFormat:              "2006-01-02",
			DecimalSeparator:        ".",
			DefaultMultiplier:       1,
			AdjustDuplicates:        true,
			CategorizationThreshold: 90,
		},
		Report: ReportConfig{
			Directory: "reports",
			Overviews: []string{"daily", "weekly", "monthly", "quarterly", "yearly"},
			Currency:  "EUR",
		},
	}
}

func nodeKind(node *yaml.Node) string {
	switch node.Kind {
	case yaml.ScalarNode:
		return "scalar"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	default:
		return fmt.Sprintf("kind %d", node.Kind)
	}
}
