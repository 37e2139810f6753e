// Package host binds a registry of host values into a script engine.
//
// A Binder resolves registration names against the target runtime's reserved
// words, generates bootstrap source for the runtime's dialect, stages the
// registry into a fresh engine under a temporary transfer slot, and evaluates
// the bootstrap. The last generated statement always removes the slot, so
// only the declared variables remain visible to scripts.
package host
