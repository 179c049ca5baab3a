package fieldconfig

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-fieldattrs/pkg/attributes"
)

// Modifiers compiles the declared overrides into the core modifier chain.
// Load-time validation guarantees the type parses, so unknown types never
// reach this point.
func (c FieldConfig) Modifiers() []attributes.Modifier {
	var modifiers []attributes.Modifier

	if c.Label != "" {
		modifiers = append(modifiers, attributes.Label(c.Label))
	}
	if c.Placeholder != "" {
		modifiers = append(modifiers, attributes.Placeholder(c.Placeholder))
	}
	if c.Value != "" {
		modifiers = append(modifiers, attributes.Value(c.Value))
	}
	if c.ID != "" {
		modifiers = append(modifiers, attributes.ID(c.ID))
	}
	if c.Type != "" {
		if inputType, err := parseInputType(c.Type); err == nil {
			modifiers = append(modifiers, attributes.Type(inputType))
		}
	}
	if c.Mandatory {
		modifiers = append(modifiers, attributes.Mandatory())
	}
	if c.Hidden {
		modifiers = append(modifiers, attributes.Hidden())
	}
	if c.NoBottomPadding {
		modifiers = append(modifiers, attributes.NoBottomPadding())
	}
	if len(c.Options) > 0 {
		options := make([]attributes.Option, len(c.Options))
		for i, option := range c.Options {
			options[i] = attributes.Option{Label: option.Label, Value: option.Value}
		}
		modifiers = append(modifiers, attributes.Options(options))
	}

	return modifiers
}

// Decorate applies the configuration stored for path to attrs and stamps the
// object/field names the path encodes. Records pass through untouched when
// the store has no entry for the path.
func (s *Store) Decorate(path string, attrs attributes.FieldAttributes) attributes.FieldAttributes {
	cfg, ok := s.Field(path)
	if !ok {
		return attrs
	}

	modifiers := append(pathModifiers(NormalizePath(path)), cfg.Modifiers()...)
	return attributes.Apply(attrs, modifiers...)
}

func pathModifiers(path string) []attributes.Modifier {
	object, field, found := strings.Cut(path, ".")
	if !found {
		return []attributes.Modifier{attributes.FieldName(path)}
	}
	return []attributes.Modifier{
		attributes.ObjectName(object),
		attributes.FieldName(field),
	}
}

func parseInputType(raw string) (attributes.InputType, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "hidden":
		return attributes.InputHidden, nil
	case "textarea":
		return attributes.InputTextArea, nil
	case "text":
		return attributes.InputText, nil
	case "file":
		return attributes.InputFile, nil
	default:
		return "", fmt.Errorf("unknown input type %q", raw)
	}
}
