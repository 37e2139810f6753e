// Package naming decides which names may cross from the host into a script
// runtime: identifier syntax, per-runtime reserved words, and the rename rule
// applied to reserved names.
package naming
