package domain

// WorkspaceSpec describes where a workspace should be created.
type WorkspaceSpec struct {
	Root string
}

// ProfileRef points at a profile document on disk.
type ProfileRef struct {
	Name string
	Path string
}
