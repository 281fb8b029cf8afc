package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigInvalid is returned when a configuration document is missing or malformed.
	ErrConfigInvalid = zerr.New("invalid configuration")

	// ErrCycleDetected is returned when the declared project dependencies form a cycle.
	ErrCycleDetected = zerr.New("dependency cycle detected")

	// ErrVersionConflict is returned when two parents pin the same project at different versions.
	ErrVersionConflict = zerr.New("dependency version conflict")

	// ErrUnresolvedDependency is returned when a referenced project is neither the
	// current project nor a node in the dependency graph.
	ErrUnresolvedDependency = zerr.New("unresolved dependency")

	// ErrInvalidReference is returned when a logical asset path does not match
	// the <project>/static/... form.
	ErrInvalidReference = zerr.New("invalid asset reference")

	// ErrPrecompiledExtension is returned when a reference points at a source
	// extension (sass, scss, coffee) that never exists on the published store.
	ErrPrecompiledExtension = zerr.New("precompiled extension in asset reference")
)
