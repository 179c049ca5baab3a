// Package fieldattrs re-exports the attribute record and modifier chain from
// pkg/attributes and wires the internal OpenAPI builder behind its public
// interface, so most consumers only ever import the module root.
package fieldattrs

import (
	internalopenapi "github.com/goliatone/go-fieldattrs/internal/openapi"
	"github.com/goliatone/go-fieldattrs/pkg/attributes"
	pkgopenapi "github.com/goliatone/go-fieldattrs/pkg/openapi"
)

// CommonAttributes is the attribute block shared by every field kind.
type CommonAttributes = attributes.CommonAttributes

// FieldAttributes is the extensible per-field configuration record.
type FieldAttributes = attributes.FieldAttributes

// Modifier transforms one FieldAttributes into another.
type Modifier = attributes.Modifier

// InputType selects the rendering mode for a field.
type InputType = attributes.InputType

// Option is a selectable choice: display label plus integer value.
type Option = attributes.Option

// Event is an opaque application event carried by the callback attributes.
type Event = attributes.Event

// Input type constants re-exported for call sites using the root package.
const (
	InputHidden   = attributes.InputHidden
	InputTextArea = attributes.InputTextArea
	InputText     = attributes.InputText
	InputFile     = attributes.InputFile
)

// Modifier constructors re-exported so call sites composing a configuration
// do not need the pkg/attributes import.
var (
	Value           = attributes.Value
	ObjectName      = attributes.ObjectName
	FieldName       = attributes.FieldName
	ID              = attributes.ID
	Type            = attributes.Type
	Label           = attributes.Label
	Placeholder     = attributes.Placeholder
	Mandatory       = attributes.Mandatory
	Hidden          = attributes.Hidden
	Options         = attributes.Options
	NoBottomPadding = attributes.NoBottomPadding
	OnInput         = attributes.OnInput
	OnFocus         = attributes.OnFocus
	OnBlur          = attributes.OnBlur
	OnChange        = attributes.OnChange
)

// Default returns a FieldAttributes with every attribute at its zero state.
func Default() FieldAttributes { return attributes.Default() }

// New applies the given modifiers to Default.
func New(modifiers ...Modifier) FieldAttributes { return attributes.New(modifiers...) }

// Apply threads attrs through the given modifiers left to right.
func Apply(attrs FieldAttributes, modifiers ...Modifier) FieldAttributes {
	return attributes.Apply(attrs, modifiers...)
}

// NewSchemaBuilder constructs the OpenAPI-backed attribute builder while
// keeping the concrete type hidden from consumers.
func NewSchemaBuilder(options ...pkgopenapi.BuilderOption) pkgopenapi.Builder {
	cfg := pkgopenapi.NewBuilderOptions(options...)
	return internalopenapi.New(cfg)
}
