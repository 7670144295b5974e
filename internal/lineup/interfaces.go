package lineup

import (
	"context"

	"github.com/ytget/lineup-browser/internal/model"
)

// Loader defines the interface for the lineup data service.
type Loader interface {
	// SetUpdateCallback registers a status observer (err is nil unless status is Error)
	SetUpdateCallback(func(status model.LoadStatus, err error))

	// Load fetches and decodes the artist list from the configured URL
	Load(ctx context.Context) ([]*model.Artist, error)

	// Status returns the status of the most recent Load
	Status() model.LoadStatus

	// SetURL changes the source used by the next Load
	SetURL(url string)

	// URL returns the configured source
	URL() string
}
