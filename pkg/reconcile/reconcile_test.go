package reconcile

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"garden/entities"
	"garden/pkg/garden"
	"garden/pkg/schema"
	"garden/pkg/store"
)

// memStore is an in-memory store.Store with a switchable write failure, used
// to exercise the commit and rollback paths.
type memStore struct {
	data       map[string][]byte
	failWrites bool
	writes     []string
}

func newMemStore() *memStore { return &memStore{data: map[string][]byte{}} }

func (m *memStore) Read(collection string, out any) error {
	b, ok := m.data[collection]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return &store.PersistenceError{Op: "read", Collection: collection, Err: err}
	}
	return nil
}

func (m *memStore) Write(collection string, records any) error {
	if m.failWrites {
		return &store.PersistenceError{Op: "write", Collection: collection, Err: errors.New("disk full")}
	}
	b, err := json.Marshal(records)
	if err != nil {
		return &store.PersistenceError{Op: "write", Collection: collection, Err: err}
	}
	m.data[collection] = b
	m.writes = append(m.writes, collection)
	return nil
}

type stubEstimator struct {
	days int
	ok   bool
}

func (s stubEstimator) EstimateDays(string) (int, bool) { return s.days, s.ok }

type stubWeather struct {
	snap *entities.WeatherSnapshot
	err  error
}

func (s stubWeather) Current() (*entities.WeatherSnapshot, error) { return s.snap, s.err }
func (s stubWeather) Forecast() (map[string]any, error)           { return nil, s.err }

func testSnapshot() garden.Snapshot {
	return garden.Snapshot{
		Plots: []entities.Plot{
			{ID: 1, Name: "Bed A", WateringInterval: 86400000, NextWateringTime: 1700000000000, PlantIDs: []int64{10}},
		},
		Plants: []entities.Plant{
			{ID: 10, PlotID: 1, Name: "Tomato", Status: "Growing", DatePlanted: "2023-11-01T00:00:00Z",
				WateringHistory: []entities.WateringEvent{}, Harvests: []entities.HarvestEvent{}, Notes: []string{}},
		},
	}
}

func newTestCoordinator(st store.Store, nowMs int64) *Coordinator {
	c := New(st, stubWeather{snap: &entities.WeatherSnapshot{Temp: 18, Description: "light rain", Icon: "10d", Humidity: 80}}, stubEstimator{})
	c.snap = testSnapshot()
	c.clock = func() time.Time { return time.UnixMilli(nowMs).UTC() }
	return c
}

func TestWaterPlotCommits(t *testing.T) {
	ms := newMemStore()
	// 2h past the due instant
	c := newTestCoordinator(ms, 1700000000000+7200000)

	entry, err := c.WaterPlot(1)
	if err != nil {
		t.Fatalf("WaterPlot: %v", err)
	}
	if entry.Status != garden.StatusLate || entry.TimeDifference != 7200000 {
		t.Errorf("entry = %+v, want Late with timeDifference 7200000", entry)
	}

	plots := c.Plots()
	want := int64(1700000000000) + 7200000 + 86400000
	if plots[0].NextWateringTime != want {
		t.Errorf("in-memory nextWateringTime = %d, want %d", plots[0].NextWateringTime, want)
	}

	var stored []entities.Plot
	if err := ms.Read(store.CollectionPlots, &stored); err != nil {
		t.Fatal(err)
	}
	if len(stored) != 1 || stored[0].NextWateringTime != want {
		t.Errorf("persisted plots = %+v", stored)
	}
	if len(ms.writes) != 3 {
		t.Errorf("writes = %v, want plots+plants+watering_log", ms.writes)
	}

	if h := c.Plants()[0].WateringHistory; len(h) != 1 || h[0].Weather == nil {
		t.Errorf("plant history = %+v, want one entry with weather", h)
	}
}

func TestWaterPlotRollsBackOnPersistenceFailure(t *testing.T) {
	ms := newMemStore()
	ms.failWrites = true
	c := newTestCoordinator(ms, 1700000000000+7200000)
	before := c.Snapshot()

	_, err := c.WaterPlot(1)
	var pe *store.PersistenceError
	if !errors.As(err, &pe) {
		t.Fatalf("err = %v (%T), want *store.PersistenceError", err, err)
	}

	after := c.Snapshot()
	if after.Plots[0].NextWateringTime != before.Plots[0].NextWateringTime {
		t.Error("schedule changed despite the failed write")
	}
	if len(after.WateringLog) != len(before.WateringLog) {
		t.Error("log entry survived the rollback")
	}
	if len(after.Plants[0].WateringHistory) != 0 {
		t.Error("plant history survived the rollback")
	}
}

func TestUnknownIDsMapToNotFound(t *testing.T) {
	c := newTestCoordinator(newMemStore(), 1700000000000)
	if _, err := c.WaterPlot(999); !errors.Is(err, ErrNotFound) {
		t.Errorf("WaterPlot(999) = %v, want ErrNotFound", err)
	}
	if err := c.DeletePlot(999); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeletePlot(999) = %v, want ErrNotFound", err)
	}
	if _, err := c.HarvestPlant(999, "", "keep"); !errors.Is(err, ErrNotFound) {
		t.Errorf("HarvestPlant(999) = %v, want ErrNotFound", err)
	}
}

func TestDeletePlotPersistsBothCollections(t *testing.T) {
	ms := newMemStore()
	c := newTestCoordinator(ms, 1700000000000)
	if err := c.DeletePlot(1); err != nil {
		t.Fatal(err)
	}
	if len(ms.writes) != 2 || ms.writes[0] != store.CollectionPlots || ms.writes[1] != store.CollectionPlants {
		t.Errorf("writes = %v, want [plots plants]", ms.writes)
	}
	if len(c.Plots()) != 0 || len(c.Plants()) != 0 {
		t.Error("cascade left residue in memory")
	}
}

func TestAddPlantUsesEstimator(t *testing.T) {
	c := newTestCoordinator(newMemStore(), 1700000000000)
	c.est = stubEstimator{days: 60, ok: true}

	plant, err := c.AddPlant(1, "Basil", "", "🌿")
	if err != nil {
		t.Fatal(err)
	}
	if plant.Status != "Seed" {
		t.Errorf("default status = %q, want Seed", plant.Status)
	}
	if plant.EstimatedDaysToMaturity != 60 || plant.EstimatedHarvestDate == "" {
		t.Errorf("estimate not applied: %+v", plant)
	}
	if n := len(c.Plants()); n != 2 {
		t.Errorf("plants = %d, want 2", n)
	}
}

func TestAddPlantWithoutEstimateLeavesFieldsEmpty(t *testing.T) {
	c := newTestCoordinator(newMemStore(), 1700000000000)
	plant, err := c.AddPlant(1, "Mystery Gourd", "Seed", "")
	if err != nil {
		t.Fatal(err)
	}
	if plant.EstimatedDaysToMaturity != 0 || plant.EstimatedHarvestDate != "" {
		t.Errorf("estimate fields set without an estimator answer: %+v", plant)
	}
}

func TestReplacePlantsRejectsInvalidPayload(t *testing.T) {
	ms := newMemStore()
	c := newTestCoordinator(ms, 1700000000000)

	err := c.ReplacePlants([]entities.Plant{{ID: 0, Name: ""}})
	var ve *schema.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v (%T), want *schema.ValidationError", err, err)
	}
	if len(ms.writes) != 0 {
		t.Errorf("invalid payload reached the store: %v", ms.writes)
	}
	if c.Plants()[0].Name != "Tomato" {
		t.Error("invalid payload replaced the in-memory collection")
	}
}

func TestLoadRoundTripsThroughStore(t *testing.T) {
	ms := newMemStore()
	seed := newTestCoordinator(ms, 1700000000000)
	if _, err := seed.WaterPlot(1); err != nil {
		t.Fatal(err)
	}

	fresh := New(ms, nil, nil)
	if err := fresh.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(fresh.Plots()) != 1 || len(fresh.WateringLog()) != 1 {
		t.Errorf("loaded snapshot = %+v", fresh.Snapshot())
	}
}

func TestViewsReturnCopies(t *testing.T) {
	c := newTestCoordinator(newMemStore(), 1700000000000)
	plots := c.Plots()
	plots[0].Name = "Mutated"
	if c.Plots()[0].Name != "Bed A" {
		t.Error("view aliased the coordinator's snapshot")
	}
}
