package store

import "fmt"

// Collection names. Absence of a collection reads as an empty sequence.
const (
	CollectionPlots       = "plots"
	CollectionPlants      = "plants"
	CollectionWateringLog = "watering_log"
	CollectionHarvestLog  = "harvest_log"
)

// Store persists whole collections as snapshots. Write replaces the entire
// collection; a caller never observes a partial write.
type Store interface {
	// Read decodes the stored sequence into out (a pointer to a slice).
	// A collection that was never written leaves out untouched.
	Read(collection string, out any) error
	// Write replaces the collection with the given records.
	Write(collection string, records any) error
}

// PersistenceError wraps a storage-medium failure. Retryable, as opposed to
// a validation failure which requires the caller to correct the payload.
type PersistenceError struct {
	Op         string // "read" or "write"
	Collection string
	Err        error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("store: %s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
