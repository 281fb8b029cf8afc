package ports

// VersionSnapshotStore persists a project->version snapshot taken before a
// deploy, so production never resolves to an older dependency build than
// the one verified on QA.
//
//go:generate go run go.uber.org/mock/mockgen -source=snapshot_store.go -destination=mocks/mock_snapshot_store.go -package=mocks
type VersionSnapshotStore interface {
	// Write persists the snapshot under the given project root, replacing
	// any previous one. The root must be the same one the loader reads
	// from, or the frozen versions will never be picked up again.
	Write(root string, versions map[string]string) error
}
