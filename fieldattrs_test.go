package fieldattrs_test

import (
	"context"
	"testing"

	fieldattrs "github.com/goliatone/go-fieldattrs"
)

const contactDocument = `{
  "openapi": "3.0.3",
  "info": {"title": "Contact API", "version": "1.0.0"},
  "paths": {
    "/contacts": {
      "post": {
        "operationId": "createContact",
        "requestBody": {
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["email"],
                "properties": {
                  "email": {"type": "string", "title": "Email"}
                }
              }
            }
          }
        },
        "responses": {"201": {"description": "created"}}
      }
    }
  }
}`

func TestRootModifierChain(t *testing.T) {
	attrs := fieldattrs.New(
		fieldattrs.Label("Email"),
		fieldattrs.Mandatory(),
		fieldattrs.Type(fieldattrs.InputText),
	)

	common := attrs.Common()
	if common.Label == nil || *common.Label != "Email" {
		t.Fatalf("label = %v", common.Label)
	}
	if !common.Mandatory {
		t.Fatal("expected mandatory")
	}
	if common.Type == nil || *common.Type != fieldattrs.InputText {
		t.Fatalf("type = %v", common.Type)
	}
}

func TestNewSchemaBuilder(t *testing.T) {
	builder := fieldattrs.NewSchemaBuilder()

	fields, err := builder.Build(context.Background(), []byte(contactDocument), "createContact")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(fields) != 1 || fields[0].Name != "email" {
		t.Fatalf("unexpected fields: %+v", fields)
	}

	common := fields[0].Attributes.Common()
	if common.Label == nil || *common.Label != "Email" {
		t.Fatalf("label = %v", common.Label)
	}
	if !common.Mandatory {
		t.Fatal("expected mandatory from the required list")
	}
}
