package fieldconfig

import "strings"

// FieldConfig declares attribute overrides for a single object.field path.
// Zero values mean "leave the attribute alone"; boolean flags only ever turn
// a flag on, mirroring the flag modifiers they compile to.
type FieldConfig struct {
	Label           string         `json:"label,omitempty" yaml:"label,omitempty"`
	Placeholder     string         `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Value           string         `json:"value,omitempty" yaml:"value,omitempty"`
	ID              string         `json:"id,omitempty" yaml:"id,omitempty"`
	Type            string         `json:"type,omitempty" yaml:"type,omitempty"`
	Mandatory       bool           `json:"mandatory,omitempty" yaml:"mandatory,omitempty"`
	Hidden          bool           `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	NoBottomPadding bool           `json:"noBottomPadding,omitempty" yaml:"noBottomPadding,omitempty"`
	Options         []OptionConfig `json:"options,omitempty" yaml:"options,omitempty"`

	// OriginalPath preserves the document key before normalisation.
	OriginalPath string `json:"-" yaml:"-"`
}

// OptionConfig is one selectable choice in a declarative document.
type OptionConfig struct {
	Label string `json:"label" yaml:"label"`
	Value int    `json:"value" yaml:"value"`
}

// Store keeps the parsed field configurations. It is safe for concurrent
// readers when treated as immutable after LoadFS returns.
type Store struct {
	fields map[string]FieldConfig
}

// Field returns the configuration for the supplied path, normalising it the
// same way the loader does.
func (s *Store) Field(path string) (FieldConfig, bool) {
	if s == nil {
		return FieldConfig{}, false
	}
	cfg, ok := s.fields[NormalizePath(path)]
	return cfg, ok
}

// Empty reports whether the store holds any field configurations.
func (s *Store) Empty() bool {
	return s == nil || len(s.fields) == 0
}

// NormalizePath canonicalises a document key: surrounding whitespace and dots
// are trimmed and runs of dots collapse to one separator.
func NormalizePath(path string) string {
	trimmed := strings.TrimSpace(path)
	for strings.Contains(trimmed, "..") {
		trimmed = strings.ReplaceAll(trimmed, "..", ".")
	}
	return strings.Trim(trimmed, ".")
}
