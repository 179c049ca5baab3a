package attributes_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-fieldattrs/pkg/attributes"
)

// noteAttributes is a subfield-style extension used to prove modifiers leave
// extension fields alone.
type noteAttributes struct {
	attributes.Base
	Rows int
}

func (n noteAttributes) WithCommon(common attributes.CommonAttributes) attributes.FieldAttributes {
	base, ok := n.Base.WithCommon(common).(attributes.Base)
	if !ok {
		panic("attributes: Base.WithCommon changed its concrete type")
	}
	n.Base = base
	return n
}

func strPtr(s string) *string { return &s }

func typePtr(t attributes.InputType) *attributes.InputType { return &t }

func TestDefaultAttributes(t *testing.T) {
	attrs := attributes.Default()

	if diff := cmp.Diff(attributes.DefaultCommon(), attrs.Common()); diff != "" {
		t.Fatalf("default common mismatch (-want +got):\n%s", diff)
	}

	common := attrs.Common()
	if common.Value != nil || common.ObjectName != nil || common.FieldName != nil ||
		common.ID != nil || common.Type != nil || common.Label != nil ||
		common.Placeholder != nil || common.Options != nil {
		t.Fatalf("expected every optional attribute absent, got %+v", common)
	}
	if common.Mandatory || common.Hidden || common.NoBottomPadding {
		t.Fatalf("expected every flag false, got %+v", common)
	}
	if common.OnInput != nil || common.OnFocus != nil || common.OnBlur != nil || common.OnChange != nil {
		t.Fatalf("expected no callbacks, got %+v", common)
	}
}

func TestModifiersReplaceExactlyOneField(t *testing.T) {
	cases := []struct {
		name     string
		modifier attributes.Modifier
		want     attributes.CommonAttributes
	}{
		{
			name:     "value",
			modifier: attributes.Value("draft"),
			want:     attributes.CommonAttributes{Value: strPtr("draft")},
		},
		{
			name:     "objectName",
			modifier: attributes.ObjectName("pet"),
			want:     attributes.CommonAttributes{ObjectName: strPtr("pet")},
		},
		{
			name:     "fieldName",
			modifier: attributes.FieldName("nickname"),
			want:     attributes.CommonAttributes{FieldName: strPtr("nickname")},
		},
		{
			name:     "id",
			modifier: attributes.ID("pet-nickname"),
			want:     attributes.CommonAttributes{ID: strPtr("pet-nickname")},
		},
		{
			name:     "type",
			modifier: attributes.Type(attributes.InputTextArea),
			want:     attributes.CommonAttributes{Type: typePtr(attributes.InputTextArea)},
		},
		{
			name:     "label",
			modifier: attributes.Label("Nickname"),
			want:     attributes.CommonAttributes{Label: strPtr("Nickname")},
		},
		{
			name:     "placeholder",
			modifier: attributes.Placeholder("e.g. Rex"),
			want:     attributes.CommonAttributes{Placeholder: strPtr("e.g. Rex")},
		},
		{
			name:     "mandatory",
			modifier: attributes.Mandatory(),
			want:     attributes.CommonAttributes{Mandatory: true},
		},
		{
			name:     "hidden",
			modifier: attributes.Hidden(),
			want:     attributes.CommonAttributes{Hidden: true},
		},
		{
			name:     "options",
			modifier: attributes.Options([]attributes.Option{{Label: "Dog", Value: 1}}),
			want:     attributes.CommonAttributes{Options: []attributes.Option{{Label: "Dog", Value: 1}}},
		},
		{
			name:     "noBottomPadding",
			modifier: attributes.NoBottomPadding(),
			want:     attributes.CommonAttributes{NoBottomPadding: true},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.modifier(attributes.Default()).Common()
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("modifier result mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestModifiersPreserveExtension(t *testing.T) {
	start := noteAttributes{Rows: 6}

	result := attributes.Apply(start,
		attributes.Label("Notes"),
		attributes.Type(attributes.InputTextArea),
		attributes.Mandatory(),
	)

	note, ok := result.(noteAttributes)
	if !ok {
		t.Fatalf("expected noteAttributes back, got %T", result)
	}
	if note.Rows != 6 {
		t.Fatalf("extension field changed: rows = %d", note.Rows)
	}

	want := attributes.CommonAttributes{
		Label:     strPtr("Notes"),
		Type:      typePtr(attributes.InputTextArea),
		Mandatory: true,
	}
	if diff := cmp.Diff(want, note.Common()); diff != "" {
		t.Fatalf("common mismatch (-want +got):\n%s", diff)
	}
}

func TestModifierIdempotence(t *testing.T) {
	once := attributes.Apply(attributes.Default(), attributes.Label("Email"))
	twice := attributes.Apply(once, attributes.Label("Email"))

	if diff := cmp.Diff(once.Common(), twice.Common()); diff != "" {
		t.Fatalf("repeated application changed the record (-once +twice):\n%s", diff)
	}
}

func TestModifierCommutativity(t *testing.T) {
	m1 := attributes.Placeholder("name")
	m2 := attributes.Hidden()

	ab := attributes.Apply(attributes.Default(), m1, m2)
	ba := attributes.Apply(attributes.Default(), m2, m1)

	if diff := cmp.Diff(ab.Common(), ba.Common()); diff != "" {
		t.Fatalf("distinct-field modifiers do not commute (-ab +ba):\n%s", diff)
	}
}

func TestLastWriteWins(t *testing.T) {
	attrs := attributes.Apply(attributes.Default(),
		attributes.Value("first"),
		attributes.Value("second"),
	)

	common := attrs.Common()
	if common.Value == nil || *common.Value != "second" {
		t.Fatalf("expected later value to win, got %v", common.Value)
	}
}

func TestOptionsPreserveOrderAndCopy(t *testing.T) {
	input := []attributes.Option{
		{Label: "Red", Value: 1},
		{Label: "Blue", Value: 2},
	}

	attrs := attributes.Apply(attributes.Default(), attributes.Options(input))

	// Mutating the caller's slice must not reach the stored record.
	input[0] = attributes.Option{Label: "Green", Value: 3}

	want := []attributes.Option{
		{Label: "Red", Value: 1},
		{Label: "Blue", Value: 2},
	}
	if diff := cmp.Diff(want, attrs.Common().Options); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyLeavesInputUntouched(t *testing.T) {
	base := attributes.Apply(attributes.Default(), attributes.Label("Original"))
	derived := attributes.Apply(base, attributes.Label("Changed"), attributes.Mandatory())

	if got := *base.Common().Label; got != "Original" {
		t.Fatalf("input record mutated: label = %q", got)
	}
	if got := *derived.Common().Label; got != "Changed" {
		t.Fatalf("derived record label = %q", got)
	}
}

func TestEmailScenario(t *testing.T) {
	attrs := attributes.New(
		attributes.Label("Email"),
		attributes.Mandatory(),
		attributes.Placeholder("you@example.com"),
	)

	want := attributes.CommonAttributes{
		Label:       strPtr("Email"),
		Mandatory:   true,
		Placeholder: strPtr("you@example.com"),
	}
	if diff := cmp.Diff(want, attrs.Common()); diff != "" {
		t.Fatalf("scenario mismatch (-want +got):\n%s", diff)
	}
}

func TestCallbackModifiers(t *testing.T) {
	type inputChanged struct{ text string }
	type focused struct{}
	type blurred struct{}
	type changed struct{}

	attrs := attributes.New(
		attributes.OnInput(func(text string) attributes.Event { return inputChanged{text: text} }),
		attributes.OnFocus(focused{}),
		attributes.OnBlur(blurred{}),
		attributes.OnChange(changed{}),
	)

	common := attrs.Common()
	if common.OnInput == nil {
		t.Fatal("expected OnInput callback to be set")
	}
	if got := common.OnInput("hello"); got != (inputChanged{text: "hello"}) {
		t.Fatalf("OnInput produced %v", got)
	}
	if common.OnFocus != (focused{}) {
		t.Fatalf("OnFocus = %v", common.OnFocus)
	}
	if common.OnBlur != (blurred{}) {
		t.Fatalf("OnBlur = %v", common.OnBlur)
	}
	if common.OnChange != (changed{}) {
		t.Fatalf("OnChange = %v", common.OnChange)
	}

	// Setting the callbacks must not disturb anything else.
	if common.Label != nil || common.Mandatory {
		t.Fatalf("callback modifiers touched unrelated fields: %+v", common)
	}
}
