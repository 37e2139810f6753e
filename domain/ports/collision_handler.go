package ports

// CollisionHandler is notified when the keyword policy rewrites or drops a
// binding. Implementations can log, collect metrics, or take other actions.
type CollisionHandler interface {
	// OnMangle is called when original is exposed to scripts as mangled.
	OnMangle(runtime, original, mangled string)

	// OnSkip is called when name is dropped from the script namespace.
	OnSkip(runtime, name string)
}
