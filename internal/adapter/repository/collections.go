// Package repository implements the persistence interfaces on top of the
// JSON file store: one shared collection file per entity kind, loaded
// whole, filtered in memory, written back whole.
package repository

// Collection file names under the storage directory.
const (
	collectionProgress    = "progress"
	collectionFavorites   = "favorites"
	collectionHistory     = "history"
	collectionSubmissions = "submissions"
)
