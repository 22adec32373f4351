package index

import "github.com/dokonepal/doko/internal/models"

// ActivityIndex defines the interface for activity indexing operations.
// Consumers should depend on this interface rather than the concrete *DB
// type to facilitate testing with mocks.
type ActivityIndex interface {
	Insert(entry models.Activity) error
	Recent(limit int) ([]models.Activity, error)
	Search(term, kind string, limit int) ([]models.Activity, error)
	CountByKind() (map[string]int, error)
	Close() error
}

// Verify *DB satisfies ActivityIndex at compile time.
var _ ActivityIndex = (*DB)(nil)
