// Package ports defines the interfaces scriptbox depends on.
// The binding core works against these abstractions, and script runtime
// adapters in infrastructure implement them.
package ports
