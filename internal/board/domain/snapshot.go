package domain

import "time"

// CatalogSnapshot is one full catalog as fetched from the backend. The version
// increases monotonically per fetch attempt so overlapping refreshes resolve
// deterministically: a response carrying a lower version than the one already
// rendered is discarded instead of overwriting newer state.
type CatalogSnapshot struct {
	Version   uint64          `json:"version"`
	Catalog   ActivityCatalog `json:"catalog"`
	FetchedAt time.Time       `json:"fetchedAt"`
}
