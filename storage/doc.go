// Package storage defines the persistence interfaces for the knowledge index
// and audio artifacts.
//
// The package contains only contracts and shared errors; backends live in
// subpackages. storage/badger provides the embedded vector index and
// storage/fsblob provides filesystem-backed artifact storage. Callers depend
// on the interfaces here, never on a backend directly.
package storage
