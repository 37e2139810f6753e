// Package validation checks configuration documents against JSON Schema.
package validation

import (
	"bytes"
	"encoding/json"
	stdErrors "errors"
	"fmt"
	"strings"

	"github.com/reglet-dev/scriptbox/domain/entities"
	"github.com/reglet-dev/scriptbox/domain/errors"
	"github.com/reglet-dev/scriptbox/domain/ports"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// SchemaValidator implements ports.DocumentValidator with a compiled schema.
// It is safe for concurrent use.
type SchemaValidator struct {
	schema *jsonschema.Schema
	name   string
}

// NewSchemaValidator compiles schemaJSON. name identifies the schema
// resource and appears in errors.
func NewSchemaValidator(name string, schemaJSON []byte) (ports.DocumentValidator, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	if err := compiler.AddResource(name, bytes.NewReader(schemaJSON)); err != nil {
		return nil, &errors.SchemaError{Type: name, Err: fmt.Errorf("failed to add schema resource: %w", err)}
	}

	sch, err := compiler.Compile(name)
	if err != nil {
		return nil, &errors.SchemaError{Type: name, Err: fmt.Errorf("invalid schema: %w", err)}
	}

	return &SchemaValidator{schema: sch, name: name}, nil
}

// Validate checks doc against the schema. Schema violations are reported in
// the result; the error return is reserved for documents that cannot be
// prepared for validation at all.
func (v *SchemaValidator) Validate(doc any) (*entities.ValidationResult, error) {
	result := &entities.ValidationResult{Valid: true}

	// Normalise through JSON so integers, nested maps and slices take the
	// shapes the validator expects.
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare validation object: %w", err)
	}
	var obj any
	if err := json.Unmarshal(b, &obj); err != nil {
		return nil, fmt.Errorf("failed to prepare validation object: %w", err)
	}

	if err := v.schema.Validate(obj); err != nil {
		result.Valid = false

		var ve *jsonschema.ValidationError
		if stdErrors.As(err, &ve) {
			collect(ve, &result.Errors)
		} else {
			result.Errors = append(result.Errors, entities.ValidationError{Field: "/", Message: err.Error()})
		}
	}

	return result, nil
}

// collect appends the leaf causes of ve, which carry the specific failures.
func collect(ve *jsonschema.ValidationError, out *[]entities.ValidationError) {
	if len(ve.Causes) == 0 {
		field := ve.InstanceLocation
		if field == "" {
			field = "/"
		}
		*out = append(*out, entities.ValidationError{Field: field, Message: ve.Message})
		return
	}
	for _, c := range ve.Causes {
		collect(c, out)
	}
}

// ResultError converts a failed result into a *errors.ConfigError. It returns
// nil for a valid result.
func ResultError(res *entities.ValidationResult) error {
	if res == nil || res.Valid {
		return nil
	}

	msgs := make([]string, 0, len(res.Errors))
	for _, e := range res.Errors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", e.Field, e.Message))
	}

	field := ""
	if len(res.Errors) == 1 {
		field = res.Errors[0].Field
	}
	return &errors.ConfigError{Field: field, Err: stdErrors.New(strings.Join(msgs, "; "))}
}
