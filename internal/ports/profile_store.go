package ports

import "github.com/aalvaropc/pizzadough/internal/domain"

// ProfileStore loads and saves flat parameter documents (profiles).
type ProfileStore interface {
	LoadProfile(path string) (domain.Params, error)
	SaveProfile(path string, p domain.Params) error
	ListProfiles(root string) ([]domain.ProfileRef, error)
}
