// Package errors provides domain-specific error types for scriptbox.
// All error types support error unwrapping via errors.As() and errors.Is().
package errors

import (
	stdErrors "errors"
	"fmt"
	"strings"

	"github.com/reglet-dev/scriptbox/domain/entities"
)

// Sentinel errors for classification with errors.Is.
var (
	// ErrInvalidIdentifier indicates a name that is not a legal host identifier.
	ErrInvalidIdentifier = stdErrors.New("invalid identifier")

	// ErrReservedIdentifier indicates a name colliding with a runtime reserved word.
	ErrReservedIdentifier = stdErrors.New("reserved identifier")

	// ErrMangleCollision indicates a mangled name that clashes with another script name.
	ErrMangleCollision = stdErrors.New("mangle collision")

	// ErrEngineCreation indicates the script runtime could not create an engine.
	ErrEngineCreation = stdErrors.New("engine creation failed")

	// ErrScriptExecution indicates script source failed to evaluate.
	ErrScriptExecution = stdErrors.New("script execution failed")

	// ErrEngineClosed is returned by engine operations after Close.
	ErrEngineClosed = stdErrors.New("engine closed")

	// ErrNotCallable indicates a script global that is not a function.
	ErrNotCallable = stdErrors.New("not callable")
)

// ErrorDetail is an alias to entities.ErrorDetail for convenience.
type ErrorDetail = entities.ErrorDetail

// DetailedError is an interface for custom error types that can convert themselves
// to a structured ErrorDetail. New error types only need to implement this
// interface without modifying ToErrorDetail.
type DetailedError interface {
	error
	ToErrorDetail() *entities.ErrorDetail
}

// ToErrorDetail converts a Go error to our structured ErrorDetail.
// This function recognizes custom error types and categorizes them appropriately.
func ToErrorDetail(err error) *entities.ErrorDetail {
	if err == nil {
		return nil
	}

	var e *entities.ErrorDetail
	if stdErrors.As(err, &e) {
		return e
	}

	var de DetailedError
	if stdErrors.As(err, &de) {
		return de.ToErrorDetail()
	}

	return entities.NewErrorDetail("internal", err.Error())
}

// InvalidIdentifierError reports a registration name that fails identifier syntax.
type InvalidIdentifierError struct {
	Name   string
	Reason string
}

func (e *InvalidIdentifierError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("'%s' is not a valid identifier: %s", e.Name, e.Reason)
	}
	return fmt.Sprintf("'%s' is not a valid identifier", e.Name)
}

// Is matches ErrInvalidIdentifier.
func (e *InvalidIdentifierError) Is(target error) bool {
	return target == ErrInvalidIdentifier
}

// ToErrorDetail implements DetailedError.
func (e *InvalidIdentifierError) ToErrorDetail() *entities.ErrorDetail {
	return entities.NewErrorDetail("identifier", e.Error()).WithCode(e.Name)
}

// ReservedIdentifierError reports a binding name that is reserved in the target runtime.
type ReservedIdentifierError struct {
	Name    string
	Runtime string
}

func (e *ReservedIdentifierError) Error() string {
	if e.Runtime != "" {
		return fmt.Sprintf("'%s' is a reserved keyword in %s", e.Name, e.Runtime)
	}
	return fmt.Sprintf("'%s' is a reserved keyword", e.Name)
}

// Is matches ErrReservedIdentifier.
func (e *ReservedIdentifierError) Is(target error) bool {
	return target == ErrReservedIdentifier
}

// ToErrorDetail implements DetailedError.
func (e *ReservedIdentifierError) ToErrorDetail() *entities.ErrorDetail {
	return entities.NewErrorDetail("reserved", e.Error()).WithCode(e.Name)
}

// MangleCollisionError reports a mangled script name that cannot be used.
type MangleCollisionError struct {
	Original string
	Mangled  string

	// ConflictsWith is the registration name that already owns Mangled.
	// Empty when Mangled is itself reserved or not a valid identifier.
	ConflictsWith string
}

func (e *MangleCollisionError) Error() string {
	if e.ConflictsWith != "" {
		return fmt.Sprintf("'%s' mangles to '%s' which is already bound by '%s'", e.Original, e.Mangled, e.ConflictsWith)
	}
	return fmt.Sprintf("'%s' mangles to '%s' which is not usable as a script name", e.Original, e.Mangled)
}

// Is matches ErrMangleCollision.
func (e *MangleCollisionError) Is(target error) bool {
	return target == ErrMangleCollision
}

// ToErrorDetail implements DetailedError.
func (e *MangleCollisionError) ToErrorDetail() *entities.ErrorDetail {
	return entities.NewErrorDetail("collision", e.Error()).
		WithCode(e.Original).
		WithDetails(map[string]any{"mangled": e.Mangled, "conflicts_with": e.ConflictsWith})
}

// EngineCreationError reports that a script runtime could not produce an engine.
type EngineCreationError struct {
	Err     error
	Runtime string
}

func (e *EngineCreationError) Error() string {
	return fmt.Sprintf("failed to create %s engine: %v", e.Runtime, e.Err)
}

func (e *EngineCreationError) Unwrap() error {
	return e.Err
}

// Is matches ErrEngineCreation.
func (e *EngineCreationError) Is(target error) bool {
	return target == ErrEngineCreation
}

// ToErrorDetail implements DetailedError.
func (e *EngineCreationError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{
		Message: fmt.Sprintf("failed to create %s engine", e.Runtime),
		Type:    "engine",
		Code:    e.Runtime,
		Wrapped: ToErrorDetail(e.Err),
	}
}

// ScriptExecutionError reports a failure evaluating script source.
// Source carries the offending script for diagnosis.
type ScriptExecutionError struct {
	Err     error
	Runtime string
	Source  string
}

func (e *ScriptExecutionError) Error() string {
	return fmt.Sprintf("%s evaluation failed: %v", e.Runtime, e.Err)
}

func (e *ScriptExecutionError) Unwrap() error {
	return e.Err
}

// Is matches ErrScriptExecution.
func (e *ScriptExecutionError) Is(target error) bool {
	return target == ErrScriptExecution
}

// Excerpt returns the first lines of Source, for log lines.
func (e *ScriptExecutionError) Excerpt(lines int) string {
	parts := strings.SplitN(e.Source, "\n", lines+1)
	if len(parts) > lines {
		parts = append(parts[:lines], "...")
	}
	return strings.Join(parts, "\n")
}

// ToErrorDetail implements DetailedError.
func (e *ScriptExecutionError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{
		Message: fmt.Sprintf("%s evaluation failed", e.Runtime),
		Type:    "script",
		Code:    e.Runtime,
		Source:  e.Source,
		Wrapped: ToErrorDetail(e.Err),
	}
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Err   error
	Field string
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config validation failed for field '%s': %v", e.Field, e.Err)
	}
	return fmt.Sprintf("config validation failed: %v", e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ToErrorDetail implements DetailedError.
func (e *ConfigError) ToErrorDetail() *entities.ErrorDetail {
	return entities.NewErrorDetail("config", e.Error()).WithCode(e.Field)
}

// SchemaError represents a schema generation or validation error.
type SchemaError struct {
	Err  error
	Type string
}

func (e *SchemaError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("schema error for type %s: %v", e.Type, e.Err)
	}
	return fmt.Sprintf("schema error: %v", e.Err)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

// ToErrorDetail implements DetailedError.
func (e *SchemaError) ToErrorDetail() *entities.ErrorDetail {
	return entities.NewErrorDetail("config", e.Error()).WithCode("schema")
}
