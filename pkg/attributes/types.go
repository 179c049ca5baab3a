package attributes

// InputType selects the rendering mode for a field.
type InputType string

const (
	InputHidden   InputType = "hidden"
	InputTextArea InputType = "textarea"
	InputText     InputType = "text"
	InputFile     InputType = "file"
)

// Event is an opaque application event produced by a field callback. This
// package never constructs or inspects events; it only carries them so the
// renderer can feed them into the application's message loop.
type Event any

// Option is a single selectable choice: a display label paired with the
// integer value submitted when the choice is picked. Order within an option
// list is significant and always preserved.
type Option struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// CommonAttributes holds the configuration shared by every field kind.
// Optional scalars are pointers and nil means the attribute was never set,
// letting the renderer apply its own fallback. No cross-field checks happen
// here: whether Options makes sense for the chosen Type is the renderer's
// concern.
type CommonAttributes struct {
	Value           *string            `json:"value,omitempty"`
	ObjectName      *string            `json:"objectName,omitempty"`
	FieldName       *string            `json:"fieldName,omitempty"`
	ID              *string            `json:"id,omitempty"`
	Type            *InputType         `json:"type,omitempty"`
	Label           *string            `json:"label,omitempty"`
	Placeholder     *string            `json:"placeholder,omitempty"`
	Mandatory       bool               `json:"mandatory"`
	Hidden          bool               `json:"hidden"`
	Options         []Option           `json:"options,omitempty"`
	NoBottomPadding bool               `json:"noBottomPadding"`
	OnInput         func(string) Event `json:"-"`
	OnFocus         Event              `json:"-"`
	OnBlur          Event              `json:"-"`
	OnChange        Event              `json:"-"`
}

// FieldAttributes is the extensible configuration record: the common
// attribute block plus whatever subfield-specific state the concrete type
// carries. Implementations must treat values as immutable and return their
// extension fields unchanged from WithCommon.
type FieldAttributes interface {
	// Common returns a copy of the shared attribute block.
	Common() CommonAttributes
	// WithCommon returns a copy of the receiver whose shared attribute block
	// is replaced wholesale, with every extension field kept as is.
	WithCommon(CommonAttributes) FieldAttributes
}

// Base is the extension-free FieldAttributes implementation returned by
// Default. Subfield packages embed it and override WithCommon so modifier
// chains preserve their own fields.
type Base struct {
	common CommonAttributes
}

// Common implements FieldAttributes.
func (b Base) Common() CommonAttributes { return b.common }

// WithCommon implements FieldAttributes. The value receiver makes the copy.
func (b Base) WithCommon(common CommonAttributes) FieldAttributes {
	b.common = common
	return b
}

// Default returns a FieldAttributes with every optional attribute absent,
// every flag false, and no extension part.
func Default() FieldAttributes { return Base{} }

// DefaultCommon returns the shared attribute block Default starts from.
func DefaultCommon() CommonAttributes { return CommonAttributes{} }
