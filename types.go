package scriptbox

import (
	"github.com/reglet-dev/scriptbox/domain/entities"
	"github.com/reglet-dev/scriptbox/domain/errors"
	"github.com/reglet-dev/scriptbox/domain/naming"
	"github.com/reglet-dev/scriptbox/domain/policy"
	"github.com/reglet-dev/scriptbox/domain/ports"
	"github.com/reglet-dev/scriptbox/host"
)

// Engine is a live script engine with its bindings declared.
type Engine = ports.Engine

// Runtime is a script runtime able to create engines.
type Runtime = ports.ScriptRuntime

// Binding associates a registration name with a host value.
type Binding = entities.Binding

// ErrorDetail is re-exported from entities for callers that report errors.
type ErrorDetail = entities.ErrorDetail

// CollisionPolicy decides what happens to names reserved in the runtime.
type CollisionPolicy = policy.CollisionPolicy

// Collision policies.
const (
	Error  = policy.Error
	Mangle = policy.Mangle
	Skip   = policy.Skip
)

// Sentinel errors, usable with errors.Is.
var (
	ErrInvalidIdentifier  = errors.ErrInvalidIdentifier
	ErrReservedIdentifier = errors.ErrReservedIdentifier
	ErrMangleCollision    = errors.ErrMangleCollision
	ErrEngineCreation     = errors.ErrEngineCreation
	ErrScriptExecution    = errors.ErrScriptExecution
)

// BuildOption configures a single Build.
type BuildOption = host.Option

// Build options, re-exported from host.
var (
	WithPolicy           = host.WithPolicy
	WithMangler          = host.WithMangler
	WithTransferSlot     = host.WithTransferSlot
	WithReserved         = host.WithReserved
	WithReservedPatterns = host.WithReservedPatterns
	WithLogger           = host.WithLogger
	WithCollisionHandler = host.WithCollisionHandler
)

// IsValidIdentifier reports whether name may be registered.
func IsValidIdentifier(name string) bool {
	return naming.IsValidIdentifier(name)
}

// ValidateIdentifier returns name unchanged, or an *errors.InvalidIdentifierError.
func ValidateIdentifier(name string) (string, error) {
	return naming.ValidateIdentifier(name)
}

// ToErrorDetail converts any error into a structured ErrorDetail.
func ToErrorDetail(err error) *ErrorDetail {
	return errors.ToErrorDetail(err)
}
