package openapi

import (
	"context"

	"github.com/goliatone/go-fieldattrs/pkg/attributes"
)

// Field pairs a request-body property name with its derived attribute record.
type Field struct {
	Name       string
	Attributes attributes.FieldAttributes
}

// Builder derives field attribute records from an OpenAPI document. Fields
// come back in deterministic (alphabetical) property order.
type Builder interface {
	Build(ctx context.Context, document []byte, operationID string) ([]Field, error)
}

// BuilderOption configures builder behaviour.
type BuilderOption func(*BuilderOptions)

// BuilderOptions carries the resolved builder configuration. Constructed via
// NewBuilderOptions and passed to the internal implementation.
type BuilderOptions struct {
	// Labeler turns a property name into a display label when the schema
	// carries no title. Defaults to attributes.DefaultLabeler.
	Labeler func(string) string
	// DeriveLabels enables falling back to Labeler for untitled properties.
	// When false, untitled properties get no label at all.
	DeriveLabels bool
}

// NewBuilderOptions folds the supplied options over the defaults.
func NewBuilderOptions(options ...BuilderOption) BuilderOptions {
	cfg := BuilderOptions{Labeler: attributes.DefaultLabeler}
	for _, option := range options {
		option(&cfg)
	}
	if cfg.Labeler == nil {
		cfg.Labeler = attributes.DefaultLabeler
	}
	return cfg
}

// WithLabeler overrides the label derivation function.
func WithLabeler(labeler func(string) string) BuilderOption {
	return func(cfg *BuilderOptions) {
		cfg.Labeler = labeler
	}
}

// WithDeriveLabels toggles label derivation for untitled properties.
func WithDeriveLabels(derive bool) BuilderOption {
	return func(cfg *BuilderOptions) {
		cfg.DeriveLabels = derive
	}
}
