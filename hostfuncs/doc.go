// Package hostfuncs holds the host side of a binding: the ordered registry of
// named host values, the arity-tagged invokers script runtimes call through,
// middleware applied to every invocation, and ready-made bundles.
//
// Nothing in this package depends on a particular script engine; adapters in
// infrastructure consume Registry.Entries.
package hostfuncs
