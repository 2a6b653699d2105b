package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// CategoryEntry is one category with its ordered keyword list.
type CategoryEntry struct {
	Name     string
	Keywords []string
}

// CategoryTable is an ordered mapping from category name to keywords.
// Iteration order is the document order of the YAML mapping; the matcher's
// tie-break rule (earliest declared pair wins) depends on it, so the order
// is part of the contract.
type CategoryTable struct {
	entries []CategoryEntry
}

// NewCategoryTable builds a table from entries in the given order.
func NewCategoryTable(entries []CategoryEntry) CategoryTable {
	return CategoryTable{entries: entries}
}

// Entries returns the categories in declaration order.
func (t CategoryTable) Entries() []CategoryEntry {
	return t.entries
}

// Names returns the category names in declaration order.
func (t CategoryTable) Names() []string {
	names := make([]string, len(t.entries))
	for i, e := range t.entries {
		names[i] = e.Name
	}
	return names
}

// Len returns the number of categories.
func (t CategoryTable) Len() int { return len(t.entries) }

// Has reports whether a category with the given name is declared.
func (t CategoryTable) Has(name string) bool {
	for _, e := range t.entries {
		if e.Name == name {
			return true
		}
	}
	return false
}

// UnmarshalYAML implements yaml.Unmarshaler, preserving mapping order.
func (t *CategoryTable) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("categories: expected mapping, got %s node", nodeKind(node))
	}
	entries := make([]CategoryEntry, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		var keywords []string
		if err := node.Content[i+1].Decode(&keywords); err != nil {
			return fmt.Errorf("categories: %s: %w", key.Value, err)
		}
		entries = append(entries, CategoryEntry{Name: key.Value, Keywords: keywords})
	}
	t.entries = entries
	return nil
}

// MarshalYAML implements yaml.Marshaler, emitting categories in order.
func (t CategoryTable) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range t.entries {
		key := &yaml.Node{Kind: yaml.ScalarNode, Value: e.Name}
		val := &yaml.Node{}
		if err := val.Encode(e.Keywords); err != nil {
			return nil, fmt.Errorf("categories: %s: %w", e.Name, err)
		}
		node.Content = append(node.Content, key, val)
	}
	return node, nil
}

// SignColumn is one sign-indicator column with its multiplier table.
type SignColumn struct {
	Column      string
	Multipliers map[string]int
}

// SignColumns is an ordered mapping from sign-indicator column name to its
// {cell value: multiplier} table. Order gives resolution priority.
type SignColumns struct {
	entries []SignColumn
}

// NewSignColumns builds a SignColumns from entries in the given order.
func NewSignColumns(entries []SignColumn) SignColumns {
	return SignColumns{entries: entries}
}

// Entries returns the sign columns in declaration order.
func (s SignColumns) Entries() []SignColumn { return s.entries }

// Len returns the number of configured sign columns.
func (s SignColumns) Len() int { return len(s.entries) }

// UnmarshalYAML implements yaml.Unmarshaler, preserving mapping order.
func (s *SignColumns) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("cost_or_income_columns: expected mapping, got %s node", nodeKind(node))
	}
	entries := make([]SignColumn, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		multipliers := make(map[string]int)
		if err := node.Content[i+1].Decode(&multipliers); err != nil {
			return fmt.Errorf("cost_or_income_columns: %s: %w", key.Value, err)
		}
		entries = append(entries, SignColumn{Column: key.Value, Multipliers: multipliers})
	}
	s.entries = entries
	return nil
}

// MarshalYAML implements yaml.Marshaler, emitting columns in order.
func (s SignColumns) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range s.entries {
		key := &yaml.Node{Kind: yaml.ScalarNode, Value: e.Column}
		val := &yaml.Node{}
		if err := val.Encode(e.Multipliers); err != nil {
			return nil, fmt.Errorf("cost_or_income_columns: %s: %w", e.Column, err)
		}
		node.Content = append(node.Content, key, val)
	}
	return node, nil
}
