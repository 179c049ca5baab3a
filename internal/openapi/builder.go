package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-fieldattrs/pkg/attributes"
	pkgopenapi "github.com/goliatone/go-fieldattrs/pkg/openapi"
)

const (
	placeholderExtensionKey = "x-placeholder"
	enumLabelsExtensionKey  = "x-enum-labels"
)

// Builder implements pkgopenapi.Builder using kin-openapi.
type Builder struct {
	options pkgopenapi.BuilderOptions
}

// Ensure the implementation satisfies the public interface.
var _ pkgopenapi.Builder = (*Builder)(nil)

// New constructs a Builder with the given options.
func New(options pkgopenapi.BuilderOptions) *Builder {
	return &Builder{options: options}
}

// Build parses the document, locates the operation, and derives one attribute
// record per request-body property, in alphabetical property order.
func (b *Builder) Build(ctx context.Context, document []byte, operationID string) ([]pkgopenapi.Field, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(document) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(document)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}

	operation, err := findOperation(spec, operationID)
	if err != nil {
		return nil, err
	}

	schema, err := requestSchema(operation, operationID)
	if err != nil {
		return nil, err
	}

	return b.buildFields(operationID, schema)
}

func findOperation(spec *openapi3.T, operationID string) (*openapi3.Operation, error) {
	if operationID == "" {
		return nil, errors.New("openapi: operation id is required")
	}
	if spec.Paths != nil {
		for _, item := range spec.Paths.Map() {
			if item == nil {
				continue
			}
			for _, operation := range item.Operations() {
				if operation != nil && operation.OperationID == operationID {
					return operation, nil
				}
			}
		}
	}
	return nil, fmt.Errorf("openapi: operation %q not found", operationID)
}

func requestSchema(operation *openapi3.Operation, operationID string) (*openapi3.Schema, error) {
	if operation.RequestBody == nil || operation.RequestBody.Value == nil {
		return nil, fmt.Errorf("openapi: operation %q has no request body", operationID)
	}

	content := operation.RequestBody.Value.Content
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"} {
		if mt, ok := content[mediaType]; ok {
			return schemaValue(mt.Schema, operationID)
		}
	}
	for _, mt := range content {
		return schemaValue(mt.Schema, operationID)
	}
	return nil, fmt.Errorf("openapi: operation %q request body has no content", operationID)
}

func schemaValue(ref *openapi3.SchemaRef, operationID string) (*openapi3.Schema, error) {
	if ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("openapi: operation %q request body has no schema", operationID)
	}
	return ref.Value, nil
}

func (b *Builder) buildFields(operationID string, schema *openapi3.Schema) ([]pkgopenapi.Field, error) {
	if len(schema.Properties) == 0 {
		return nil, fmt.Errorf("openapi: operation %q request schema has no properties", operationID)
	}

	required := make(map[string]struct{}, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = struct{}{}
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]pkgopenapi.Field, 0, len(names))
	for _, name := range names {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		_, isRequired := required[name]
		modifiers := b.fieldModifiers(operationID, name, ref.Value, isRequired)
		fields = append(fields, pkgopenapi.Field{
			Name:       name,
			Attributes: attributes.New(modifiers...),
		})
	}
	return fields, nil
}

func (b *Builder) fieldModifiers(operationID, name string, schema *openapi3.Schema, isRequired bool) []attributes.Modifier {
	modifiers := []attributes.Modifier{
		attributes.ObjectName(operationID),
		attributes.FieldName(name),
	}

	switch {
	case schema.Title != "":
		modifiers = append(modifiers, attributes.Label(schema.Title))
	case b.options.DeriveLabels:
		modifiers = append(modifiers, attributes.Label(b.options.Labeler(name)))
	}

	if placeholder, ok := stringExtension(schema.Extensions, placeholderExtensionKey); ok {
		modifiers = append(modifiers, attributes.Placeholder(placeholder))
	}
	if isRequired {
		modifiers = append(modifiers, attributes.Mandatory())
	}
	if schema.WriteOnly {
		modifiers = append(modifiers, attributes.Hidden())
	}
	if value, ok := schema.Default.(string); ok && value != "" {
		modifiers = append(modifiers, attributes.Value(value))
	}
	if inputType, ok := inputTypeFor(schema); ok {
		modifiers = append(modifiers, attributes.Type(inputType))
	}
	if options := enumOptions(schema); len(options) > 0 {
		modifiers = append(modifiers, attributes.Options(options))
	}

	return modifiers
}

func inputTypeFor(schema *openapi3.Schema) (attributes.InputType, bool) {
	switch schema.Format {
	case "hidden":
		return attributes.InputHidden, true
	case "textarea":
		return attributes.InputTextArea, true
	case "binary", "file":
		return attributes.InputFile, true
	}
	if schema.Type.Is("string") {
		return attributes.InputText, true
	}
	return "", false
}

// enumOptions maps an integer enum onto an ordered option list. Labels come
// from the x-enum-labels extension by index, falling back to the stringified
// value. Non-integer enums carry no option list.
func enumOptions(schema *openapi3.Schema) []attributes.Option {
	if len(schema.Enum) == 0 {
		return nil
	}

	labels := enumLabels(schema.Extensions)
	options := make([]attributes.Option, 0, len(schema.Enum))
	for i, raw := range schema.Enum {
		value, ok := intValue(raw)
		if !ok {
			return nil
		}
		label := strconv.Itoa(value)
		if i < len(labels) && labels[i] != "" {
			label = labels[i]
		}
		options = append(options, attributes.Option{Label: label, Value: value})
	}
	return options
}

func enumLabels(ext map[string]any) []string {
	raw, ok := ext[enumLabelsExtensionKey]
	if !ok {
		return nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil
	}
	labels := make([]string, len(items))
	for i, item := range items {
		if value, ok := item.(string); ok {
			labels[i] = value
		}
	}
	return labels
}

func intValue(raw any) (int, bool) {
	switch v := raw.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if v == float64(int(v)) {
			return int(v), true
		}
	}
	return 0, false
}

func stringExtension(ext map[string]any, key string) (string, bool) {
	raw, ok := ext[key]
	if !ok {
		return "", false
	}
	value, ok := raw.(string)
	return value, ok && value != ""
}
