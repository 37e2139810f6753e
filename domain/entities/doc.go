// Package entities provides the core domain types shared by every package:
// host bindings and their arity-tagged callables, bootstrap dialects, and the
// structured error detail used for diagnostics.
package entities
