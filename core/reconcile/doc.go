// Package reconcile provides set reconciliation primitives: planning the
// difference between an existing and a desired key set, and serializing
// reconciliations that target the same entity.
//
// # Plans
//
// Diff builds a Plan from two key lists. Inputs are treated as sets, so the
// result only depends on membership. Plans are pure data: applying them is
// left to the feature that owns the store, which can batch the Add and Remove
// slices into single calls.
//
// # Serialization
//
// A reconcile is a read-then-write sequence. KeyedMutex lets callers hold a
// lock per entity key so concurrent reconciles for the same entity cannot
// lose each other's writes.
//
// # Usage Example
//
//	unlock := locks.Lock("video|42")
//	defer unlock()
//
//	plan := reconcile.Diff(existingTags, desiredTags)
//	if plan.IsNoop() {
//	    return nil
//	}
package reconcile
