package entities

import "errors"

var (
	// ErrParse means the manifest could not be read or is not well-formed TOML.
	ErrParse = errors.New("manifest parse error")

	// ErrUnsupportedFormat means a dependency entry has no single rewritable
	// string version field (path, git or workspace dependencies).
	ErrUnsupportedFormat = errors.New("unsupported dependency format")

	// ErrNotFound means a section or entry is missing from the manifest.
	ErrNotFound = errors.New("not found")

	// ErrRegistry means a registry lookup failed for a single package.
	ErrRegistry = errors.New("registry error")

	// ErrInvalidVersion means a version spec cannot be reduced to a semantic version.
	ErrInvalidVersion = errors.New("invalid version")

	// ErrDirtyManifest means the manifest has uncommitted changes in its git worktree.
	ErrDirtyManifest = errors.New("manifest has uncommitted changes")
)
