// Package tags implements tag reconciliation for catalog media.
//
// A media item (video, show, season, episode or image) carries a set of
// tags. Callers send the complete desired set; the Reconciler computes the
// difference against the stored associations and applies it with batched
// store calls, creating tags that do not exist yet.
//
// # Guarantees
//
//   - After Reconcile, the associations for the media equal the distinct
//     desired tags, whatever the prior state was.
//   - A second Reconcile with the same input reports no changes and does
//     not write.
//   - Tag creation is an upsert at the store boundary; concurrent creation of
//     the same text resolves to the existing tag.
//   - Reconciles for the same media are serialized in-process, and run in a
//     single transaction when the store supports it.
//
// # HTTP Endpoints
//
//   - GET /media/:type/:id/tags : List the tags of a media item.
//   - PUT /media/:type/:id/tags : Replace them with {"tags": [...]}.
package tags
