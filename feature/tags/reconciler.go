package tags

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"home-media/core/reconcile"
)

// Reconciler synchronizes the tags on a media item to a desired set.
// Calls for the same media item are serialized; distinct items run in parallel.
type Reconciler struct {
	store TagStore
	locks reconcile.KeyedMutex
}

// NewReconciler creates a reconciler on top of a store. When the store
// implements Transactor every reconcile runs inside one transaction.
func NewReconciler(store TagStore) *Reconciler {
	return &Reconciler{store: store}
}

// Reconcile makes the associations of (mediaType, mediaID) exactly equal to
// the distinct values of desired, creating missing tags on the way.
// Calling it again with the same input reports no changes.
func (r *Reconciler) Reconcile(ctx context.Context, mediaType MediaType, mediaID uint, desired []string) (*Result, error) {
	if err := validateMedia(mediaType, mediaID); err != nil {
		return nil, err
	}

	unlock := r.locks.Lock(lockKey(mediaType, mediaID))
	defer unlock()

	var result *Result
	err := r.withStore(ctx, func(store TagStore) error {
		var err error
		result, err = apply(ctx, store, mediaType, mediaID, desired)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Plan previews what Reconcile would change without touching the store.
func (r *Reconciler) Plan(ctx context.Context, mediaType MediaType, mediaID uint, desired []string) (reconcile.Plan, error) {
	if err := validateMedia(mediaType, mediaID); err != nil {
		return reconcile.Plan{}, err
	}

	existing, err := r.store.FindAssociations(ctx, mediaType, mediaID)
	if err != nil {
		return reconcile.Plan{}, storeErr("find associations", err)
	}
	return reconcile.Diff(texts(existing), desired), nil
}

// Tags returns the sorted tag texts linked to a media item.
func (r *Reconciler) Tags(ctx context.Context, mediaType MediaType, mediaID uint) ([]string, error) {
	if err := validateMedia(mediaType, mediaID); err != nil {
		return nil, err
	}

	existing, err := r.store.FindAssociations(ctx, mediaType, mediaID)
	if err != nil {
		return nil, storeErr("find associations", err)
	}
	out := texts(existing)
	sort.Strings(out)
	return out, nil
}

func (r *Reconciler) withStore(ctx context.Context, fn func(store TagStore) error) error {
	tx, ok := r.store.(Transactor)
	if !ok {
		return fn(r.store)
	}
	if err := tx.InTx(ctx, fn); err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			return err
		}
		return storeErr("transaction", err)
	}
	return nil
}

// apply computes the set difference first and then issues batched calls:
// unlink, create missing tags, resolve ids, link.
func apply(ctx context.Context, store TagStore, mediaType MediaType, mediaID uint, desired []string) (*Result, error) {
	existing, err := store.FindAssociations(ctx, mediaType, mediaID)
	if err != nil {
		return nil, storeErr("find associations", err)
	}

	existingIDs := make(map[string]uint, len(existing))
	for _, a := range existing {
		existingIDs[a.Text] = a.TagID
	}

	plan := reconcile.Diff(texts(existing), desired)
	result := &Result{
		Created:  []string{},
		Linked:   plan.Add,
		Unlinked: plan.Remove,
	}
	if plan.IsNoop() {
		return result, nil
	}

	if len(plan.Remove) > 0 {
		ids := make([]uint, 0, len(plan.Remove))
		for _, text := range plan.Remove {
			ids = append(ids, existingIDs[text])
		}
		if err := store.RemoveAssociations(ctx, mediaType, mediaID, ids); err != nil {
			return nil, storeErr("remove associations", err)
		}
	}

	if len(plan.Add) == 0 {
		return result, nil
	}

	ids, err := store.FindTagIDs(ctx, plan.Add)
	if err != nil {
		return nil, storeErr("find tags", err)
	}

	var missing []string
	for _, text := range plan.Add {
		if _, ok := ids[text]; !ok {
			missing = append(missing, text)
		}
	}

	if len(missing) > 0 {
		if err := store.CreateTagsIfAbsent(ctx, missing); err != nil {
			return nil, storeErr("create tags", err)
		}
		created, err := store.FindTagIDs(ctx, missing)
		if err != nil {
			return nil, storeErr("find tags", err)
		}
		for _, text := range missing {
			id, ok := created[text]
			if !ok {
				return nil, storeErr("create tags", fmt.Errorf("tag %q missing after create", text))
			}
			ids[text] = id
		}
		result.Created = missing
	}

	links := make([]MediaTag, 0, len(plan.Add))
	for _, text := range plan.Add {
		links = append(links, MediaTag{TagID: ids[text], MediaType: mediaType, MediaID: mediaID})
	}
	if err := store.AddAssociations(ctx, links); err != nil {
		return nil, storeErr("add associations", err)
	}

	return result, nil
}

func validateMedia(mediaType MediaType, mediaID uint) error {
	if !mediaType.Valid() {
		return &ValidationError{Field: "type", Message: fmt.Sprintf("unknown media type %q", mediaType)}
	}
	if mediaID == 0 {
		return &ValidationError{Field: "id", Message: "media id must be a positive integer"}
	}
	return nil
}

func lockKey(mediaType MediaType, mediaID uint) string {
	return fmt.Sprintf("%s|%d", mediaType, mediaID)
}

func texts(assocs []Association) []string {
	out := make([]string, 0, len(assocs))
	for _, a := range assocs {
		out = append(out, a.Text)
	}
	return out
}
