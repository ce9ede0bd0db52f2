// Package reconcile applies domain events as a two-phase commit: stage the
// snapshot the domain model produced, attempt the durable write through the
// schema validator, and either commit or revert to the captured prior state.
// It is the only place failures are caught and translated for callers.
package reconcile

import (
	"errors"
	"log"
	"sync"
	"time"

	"garden/entities"
	"garden/pkg/garden"
	"garden/pkg/maturity"
	"garden/pkg/schema"
	"garden/pkg/store"
	"garden/pkg/weather"
)

// ErrNotFound reports a referenced plot/plant id that no longer exists —
// stale client state, not retryable.
var ErrNotFound = errors.New("not found")

// Coordinator owns the in-memory snapshot and serializes every event behind
// one mutex: events apply in invocation order and each store write is
// awaited before the outcome is reported, so a later event can never be
// overwritten by an earlier one completing late.
type Coordinator struct {
	mu    sync.Mutex
	st    store.Store
	snap  garden.Snapshot
	wx    weather.Provider
	est   maturity.Estimator
	clock func() time.Time
}

func New(st store.Store, wx weather.Provider, est maturity.Estimator) *Coordinator {
	return &Coordinator{st: st, wx: wx, est: est, clock: time.Now}
}

// Load reads all four collections from the store into memory. Absent
// collections come back empty.
func (c *Coordinator) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	var snap garden.Snapshot
	if err := c.st.Read(store.CollectionPlots, &snap.Plots); err != nil {
		return err
	}
	if err := c.st.Read(store.CollectionPlants, &snap.Plants); err != nil {
		return err
	}
	if err := c.st.Read(store.CollectionWateringLog, &snap.WateringLog); err != nil {
		return err
	}
	if err := c.st.Read(store.CollectionHarvestLog, &snap.HarvestLog); err != nil {
		return err
	}
	c.snap = snap
	return nil
}

// apply runs one event: capture, transform, optimistic install, persist the
// touched collections, commit or roll back. The transform must be pure; a
// false return means the event referenced a missing entity.
func (c *Coordinator) apply(transform func(garden.Snapshot) (garden.Snapshot, bool), collections ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	prev := c.snap
	next, ok := transform(prev)
	if !ok {
		return ErrNotFound
	}
	c.snap = next
	if err := c.persist(next, collections); err != nil {
		c.snap = prev
		return err
	}
	return nil
}

func (c *Coordinator) persist(snap garden.Snapshot, collections []string) error {
	for _, name := range collections {
		var records any
		var err error
		switch name {
		case store.CollectionPlots:
			records, err = snap.Plots, schema.ValidatePlots(snap.Plots)
		case store.CollectionPlants:
			records, err = snap.Plants, schema.ValidatePlants(snap.Plants)
		case store.CollectionWateringLog:
			records, err = snap.WateringLog, schema.ValidateWateringLog(snap.WateringLog)
		case store.CollectionHarvestLog:
			records, err = snap.HarvestLog, schema.ValidateHarvestLog(snap.HarvestLog)
		}
		if err != nil {
			return err
		}
		if err := c.st.Write(name, records); err != nil {
			return err
		}
	}
	return nil
}

// currentWeather asks the provider best-effort. nil means the log entry
// simply omits the weather field.
func (c *Coordinator) currentWeather() *entities.WeatherSnapshot {
	if c.wx == nil {
		return nil
	}
	snap, err := c.wx.Current()
	if err != nil {
		log.Printf("[reconcile] weather unavailable: %v", err)
		return nil
	}
	return snap
}
