package tags

import "context"

// TagStore is the persistence boundary for tags and their associations.
// Batch methods accept empty input and do nothing for it.
type TagStore interface {
	// FindAssociations returns the tags linked to one media item.
	FindAssociations(ctx context.Context, mediaType MediaType, mediaID uint) ([]Association, error)

	// FindTagIDs resolves tag texts to ids. Unknown texts are absent from the map.
	FindTagIDs(ctx context.Context, texts []string) (map[string]uint, error)

	// CreateTagsIfAbsent inserts the texts that do not exist yet.
	// A text that already exists, including one created concurrently by
	// another caller, is skipped rather than reported as an error.
	CreateTagsIfAbsent(ctx context.Context, texts []string) error

	// AddAssociations inserts links. Links that already exist are skipped.
	AddAssociations(ctx context.Context, links []MediaTag) error

	// RemoveAssociations deletes the links between the media and the tag ids.
	RemoveAssociations(ctx context.Context, mediaType MediaType, mediaID uint, tagIDs []uint) error
}

// Transactor is implemented by stores that can run a whole reconcile
// atomically. The store passed to fn is bound to the transaction.
type Transactor interface {
	InTx(ctx context.Context, fn func(store TagStore) error) error
}
