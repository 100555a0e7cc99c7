package repositories

// WorktreeRepository inspects the version control state of the manifest.
type WorktreeRepository interface {
	// IsDirty returns true if the file at path has uncommitted changes.
	// Files outside any repository are never dirty.
	IsDirty(path string) (bool, error)
}
