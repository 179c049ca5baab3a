package attributes

// Modifier transforms one FieldAttributes into another. Modifiers returned
// by this package are pure and total: each replaces exactly one common
// attribute, copies the rest, and never touches the extension part. Applying
// the same modifier twice keeps the later value.
type Modifier func(FieldAttributes) FieldAttributes

// Apply threads attrs through the given modifiers left to right. Modifiers
// that set distinct attributes commute, so the order only matters when the
// same attribute is set more than once.
func Apply(attrs FieldAttributes, modifiers ...Modifier) FieldAttributes {
	for _, modifier := range modifiers {
		attrs = modifier(attrs)
	}
	return attrs
}

// New applies the given modifiers to Default.
func New(modifiers ...Modifier) FieldAttributes {
	return Apply(Default(), modifiers...)
}

// merge swaps the common block of attrs for the supplied one. Every modifier
// funnels through here so the extension-preserving contract lives in exactly
// one place.
func merge(attrs FieldAttributes, common CommonAttributes) FieldAttributes {
	return attrs.WithCommon(common)
}

// Value pre-fills the field with the given text.
func Value(text string) Modifier {
	return func(attrs FieldAttributes) FieldAttributes {
		common := attrs.Common()
		common.Value = &text
		return merge(attrs, common)
	}
}

// ObjectName records the logical owning-object name, used by renderers to
// derive element ids and form names.
func ObjectName(name string) Modifier {
	return func(attrs FieldAttributes) FieldAttributes {
		common := attrs.Common()
		common.ObjectName = &name
		return merge(attrs, common)
	}
}

// FieldName records the logical field name.
func FieldName(name string) Modifier {
	return func(attrs FieldAttributes) FieldAttributes {
		common := attrs.Common()
		common.FieldName = &name
		return merge(attrs, common)
	}
}

// ID overrides the element identifier the renderer would otherwise generate.
func ID(id string) Modifier {
	return func(attrs FieldAttributes) FieldAttributes {
		common := attrs.Common()
		common.ID = &id
		return merge(attrs, common)
	}
}

// Type sets the rendering mode for the field.
func Type(inputType InputType) Modifier {
	return func(attrs FieldAttributes) FieldAttributes {
		common := attrs.Common()
		common.Type = &inputType
		return merge(attrs, common)
	}
}

// Label sets the display label text.
func Label(text string) Modifier {
	return func(attrs FieldAttributes) FieldAttributes {
		common := attrs.Common()
		common.Label = &text
		return merge(attrs, common)
	}
}

// Placeholder sets the placeholder text.
func Placeholder(text string) Modifier {
	return func(attrs FieldAttributes) FieldAttributes {
		common := attrs.Common()
		common.Placeholder = &text
		return merge(attrs, common)
	}
}

// Mandatory marks the field as required.
func Mandatory() Modifier {
	return func(attrs FieldAttributes) FieldAttributes {
		common := attrs.Common()
		common.Mandatory = true
		return merge(attrs, common)
	}
}

// Hidden removes the field from view without removing it from the form.
func Hidden() Modifier {
	return func(attrs FieldAttributes) FieldAttributes {
		common := attrs.Common()
		common.Hidden = true
		return merge(attrs, common)
	}
}

// Options sets the selectable choices, preserving the given order. The slice
// is copied so later mutation by the caller cannot reach the record.
func Options(options []Option) Modifier {
	return func(attrs FieldAttributes) FieldAttributes {
		common := attrs.Common()
		common.Options = append([]Option(nil), options...)
		return merge(attrs, common)
	}
}

// NoBottomPadding suppresses the default bottom spacing under the field.
func NoBottomPadding() Modifier {
	return func(attrs FieldAttributes) FieldAttributes {
		common := attrs.Common()
		common.NoBottomPadding = true
		return merge(attrs, common)
	}
}

// OnInput registers the callback invoked with the field's text on input.
// The callback is carried opaquely; only the renderer ever calls it.
func OnInput(callback func(string) Event) Modifier {
	return func(attrs FieldAttributes) FieldAttributes {
		common := attrs.Common()
		common.OnInput = callback
		return merge(attrs, common)
	}
}

// OnFocus registers the event emitted when the field gains focus.
func OnFocus(event Event) Modifier {
	return func(attrs FieldAttributes) FieldAttributes {
		common := attrs.Common()
		common.OnFocus = event
		return merge(attrs, common)
	}
}

// OnBlur registers the event emitted when the field loses focus.
func OnBlur(event Event) Modifier {
	return func(attrs FieldAttributes) FieldAttributes {
		common := attrs.Common()
		common.OnBlur = event
		return merge(attrs, common)
	}
}

// OnChange registers the event emitted when the field's value changes.
func OnChange(event Event) Modifier {
	return func(attrs FieldAttributes) FieldAttributes {
		common := attrs.Common()
		common.OnChange = event
		return merge(attrs, common)
	}
}
