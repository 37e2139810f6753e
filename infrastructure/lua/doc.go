// Package lua provides the gopher-lua backed Lua 5.1 script runtime.
//
// Host bindings become Lua globals. Callables are wrapped as Lua functions;
// an error returned by the host is raised as a Lua error. Lua has a single
// number type, so host integers arrive in scripts as numbers and every number
// leaves the engine as float64.
package lua
