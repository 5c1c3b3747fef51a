package ports

import "github.com/aalvaropc/pizzadough/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
