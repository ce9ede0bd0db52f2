package garden

import (
	"testing"
	"time"

	"garden/entities"
)

const dayInterval = int64(86400000)

func fixedTime(ms int64) time.Time { return time.UnixMilli(ms).UTC() }

func seedSnapshot() Snapshot {
	return Snapshot{
		Plots: []entities.Plot{
			{ID: 1, Name: "Bed A", WateringInterval: dayInterval, NextWateringTime: 1700000000000, PlantIDs: []int64{10, 11}},
			{ID: 2, Name: "Bed B", WateringInterval: dayInterval, NextWateringTime: 1700000000000, PlantIDs: []int64{12}},
		},
		Plants: []entities.Plant{
			{ID: 10, PlotID: 1, Name: "Tomato", Status: "Growing", DatePlanted: "2023-11-01T00:00:00Z", WateringHistory: []entities.WateringEvent{}, Harvests: []entities.HarvestEvent{}, Notes: []string{}},
			{ID: 11, PlotID: 1, Name: "Basil", Status: "Seedling", DatePlanted: "2023-11-01T00:00:00Z", IsRemoved: true, WateringHistory: []entities.WateringEvent{}, Harvests: []entities.HarvestEvent{}, Notes: []string{}},
			{ID: 12, PlotID: 2, Name: "Lettuce", Status: "Sprout", DatePlanted: "2023-11-01T00:00:00Z", WateringHistory: []entities.WateringEvent{}, Harvests: []entities.HarvestEvent{}, Notes: []string{}},
		},
	}
}

func TestWaterResetsScheduleRelativeToNow(t *testing.T) {
	snap := seedSnapshot()
	// 2h past due
	now := fixedTime(1700000000000 + 7200000)
	out, ok := Water(snap, 1, now, nil)
	if !ok {
		t.Fatal("water: plot not found")
	}
	got := out.Plots[0].NextWateringTime
	want := now.UnixMilli() + dayInterval
	if got != want {
		t.Errorf("nextWateringTime = %d, want %d (now + interval)", got, want)
	}
	if len(out.WateringLog) != 1 {
		t.Fatalf("watering log entries = %d, want 1", len(out.WateringLog))
	}
	entry := out.WateringLog[0]
	if entry.Status != StatusLate {
		t.Errorf("status = %q, want %q", entry.Status, StatusLate)
	}
	if entry.TimeDifference != 7200000 {
		t.Errorf("timeDifference = %d, want 7200000", entry.TimeDifference)
	}
	if entry.PlotName != "Bed A" {
		t.Errorf("plotName = %q", entry.PlotName)
	}
}

func TestWaterSkipsRemovedPlantsAndOtherPlots(t *testing.T) {
	snap := seedSnapshot()
	now := fixedTime(1700000000000)
	wx := &entities.WeatherSnapshot{Temp: 20, Description: "clear sky", Icon: "01d", Humidity: 40}
	out, _ := Water(snap, 1, now, wx)

	if n := len(out.Plants[0].WateringHistory); n != 1 {
		t.Errorf("active plant history = %d entries, want 1", n)
	}
	if out.Plants[0].WateringHistory[0].Weather == nil {
		t.Error("history entry lost the weather snapshot")
	}
	if n := len(out.Plants[1].WateringHistory); n != 0 {
		t.Errorf("removed plant history = %d entries, want 0", n)
	}
	if n := len(out.Plants[2].WateringHistory); n != 0 {
		t.Errorf("other-plot plant history = %d entries, want 0", n)
	}
}

func TestWaterDoesNotMutateInput(t *testing.T) {
	snap := seedSnapshot()
	before := snap.Plots[0].NextWateringTime
	Water(snap, 1, fixedTime(1700003600000), nil)
	if snap.Plots[0].NextWateringTime != before {
		t.Error("input snapshot was mutated")
	}
	if len(snap.Plants[0].WateringHistory) != 0 {
		t.Error("input plant history was mutated")
	}
	if len(snap.WateringLog) != 0 {
		t.Error("input watering log was mutated")
	}
}

func TestWaterUnknownPlotIsNoOp(t *testing.T) {
	snap := seedSnapshot()
	out, ok := Water(snap, 999, fixedTime(1700000000000), nil)
	if ok {
		t.Fatal("expected ok=false for unknown plot")
	}
	if len(out.WateringLog) != 0 {
		t.Error("no-op produced a log entry")
	}
}

func TestTimeShiftAcceptsNegativeHours(t *testing.T) {
	snap := seedSnapshot()
	out, ok := TimeShift(snap, 1, -2, fixedTime(0))
	if !ok {
		t.Fatal("timeshift: plot not found")
	}
	want := int64(1700000000000) - 2*3600000
	if out.Plots[0].NextWateringTime != want {
		t.Errorf("nextWateringTime = %d, want %d", out.Plots[0].NextWateringTime, want)
	}
}

func TestEditPlotIntervalChangeRestartsCountdown(t *testing.T) {
	snap := seedSnapshot()
	now := fixedTime(1700000500000)
	newInterval := int64(43200000)
	out, ok := EditPlot(snap, 1, "Bed A+", "loam", newInterval, now)
	if !ok {
		t.Fatal("edit: plot not found")
	}
	plot := out.Plots[0]
	if plot.Name != "Bed A+" || plot.SoilType != "loam" {
		t.Errorf("mutable fields not applied: %+v", plot)
	}
	if plot.NextWateringTime != now.UnixMilli()+newInterval {
		t.Errorf("countdown not restarted: next = %d", plot.NextWateringTime)
	}
}

func TestEditPlotSameIntervalKeepsSchedule(t *testing.T) {
	snap := seedSnapshot()
	out, _ := EditPlot(snap, 1, "Renamed", "", dayInterval, fixedTime(1700000500000))
	if out.Plots[0].NextWateringTime != 1700000000000 {
		t.Errorf("schedule moved on a rename-only edit: %d", out.Plots[0].NextWateringTime)
	}
}

func TestDeletePlotCascades(t *testing.T) {
	snap := seedSnapshot()
	out, ok := DeletePlot(snap, 1)
	if !ok {
		t.Fatal("delete: plot not found")
	}
	if len(out.Plots) != 1 || out.Plots[0].ID != 2 {
		t.Errorf("remaining plots = %+v, want only plot 2", out.Plots)
	}
	if len(out.Plants) != 1 || out.Plants[0].ID != 12 {
		t.Errorf("remaining plants = %+v, want only plant 12", out.Plants)
	}
}

func TestAddPlantProducesFreshDocument(t *testing.T) {
	snap := Snapshot{Plots: []entities.Plot{{ID: 1, Name: "Bed A", WateringInterval: dayInterval, NextWateringTime: 1700000000000}}}
	now := fixedTime(1700001234000)
	out, plant, ok := AddPlant(snap, 1, "Basil", "Seed", "", now, Estimate{})
	if !ok {
		t.Fatal("addPlant: plot not found")
	}
	if len(out.Plants) != 1 {
		t.Fatalf("plants = %d, want exactly 1", len(out.Plants))
	}
	got := out.Plants[0]
	if got.IsRemoved {
		t.Error("new plant marked removed")
	}
	if len(got.Harvests) != 0 || len(got.WateringHistory) != 0 || len(got.Notes) != 0 {
		t.Error("new plant histories not empty")
	}
	if got.DatePlanted != now.UTC().Format(time.RFC3339) {
		t.Errorf("datePlanted = %q, want call instant", got.DatePlanted)
	}
	if got.Status != "Seed" || got.Name != "Basil" {
		t.Errorf("plant fields = %+v", got)
	}
	if plant.ID != got.ID {
		t.Error("returned plant differs from stored plant")
	}
	if len(out.Plots[0].PlantIDs) != 1 || out.Plots[0].PlantIDs[0] != got.ID {
		t.Errorf("plantIds = %v, want [%d]", out.Plots[0].PlantIDs, got.ID)
	}
}

func TestAddPlantWithEstimateFillsAdvisoryFields(t *testing.T) {
	snap := seedSnapshot()
	now := fixedTime(1700001234000)
	out, _, _ := AddPlant(snap, 2, "Tomato", "Seed", "", now, Estimate{Days: 75, OK: true})
	got := out.Plants[len(out.Plants)-1]
	if got.EstimatedDaysToMaturity != 75 {
		t.Errorf("estimatedDaysToMaturity = %d, want 75", got.EstimatedDaysToMaturity)
	}
	want := now.AddDate(0, 0, 75).UTC().Format(time.RFC3339)
	if got.EstimatedHarvestDate != want {
		t.Errorf("estimatedHarvestDate = %q, want %q", got.EstimatedHarvestDate, want)
	}
}

func TestHarvestRemoveIsTerminalForWatering(t *testing.T) {
	snap := seedSnapshot()
	now := fixedTime(1700000000000)
	out, ok := Harvest(snap, 10, "5 tomatoes", "remove", now, nil)
	if !ok {
		t.Fatal("harvest: plant not found")
	}
	if !out.Plants[0].IsRemoved {
		t.Fatal("action=remove did not retire the plant")
	}
	if len(out.Plants[0].Harvests) != 1 {
		t.Fatalf("harvests = %d, want 1", len(out.Plants[0].Harvests))
	}
	if len(out.HarvestLog) != 1 || out.HarvestLog[0].PlotName != "Bed A" {
		t.Errorf("harvest log projection = %+v", out.HarvestLog)
	}

	// subsequent watering must skip the removed plant
	watered, _ := Water(out, 1, fixedTime(1700003600000), nil)
	if len(watered.Plants[0].WateringHistory) != 0 {
		t.Error("removed plant still received a watering entry")
	}
}

func TestHarvestKeepLeavesRemovalFlagAlone(t *testing.T) {
	snap := seedSnapshot()
	out, _ := Harvest(snap, 10, "2 lbs", "keep", fixedTime(1700000000000), nil)
	if out.Plants[0].IsRemoved {
		t.Error("action=keep retired the plant")
	}
}

func TestHarvestOnRemovedPlantStillAppends(t *testing.T) {
	// permissive behavior preserved from the source: an already-removed
	// plant accepts further harvest entries
	snap := seedSnapshot()
	out, ok := Harvest(snap, 11, "", "keep", fixedTime(1700000000000), nil)
	if !ok {
		t.Fatal("harvest on removed plant rejected")
	}
	if len(out.Plants[1].Harvests) != 1 {
		t.Error("harvest entry not appended to removed plant")
	}
	if !out.Plants[1].IsRemoved {
		t.Error("action=keep cleared isRemoved")
	}
}

func TestEditPlantReplacesAdvisoryFields(t *testing.T) {
	snap := seedSnapshot()
	out, ok := EditPlant(snap, 10, "Roma Tomato", "Fruiting", []string{"staked", "pruned suckers"})
	if !ok {
		t.Fatal("edit: plant not found")
	}
	got := out.Plants[0]
	if got.Name != "Roma Tomato" || got.Status != "Fruiting" || len(got.Notes) != 2 {
		t.Errorf("edit not applied: %+v", got)
	}
	if got.DatePlanted != "2023-11-01T00:00:00Z" || got.PlotID != 1 {
		t.Error("immutable fields changed")
	}
}

func TestNextIDAvoidsCollisions(t *testing.T) {
	now := fixedTime(1700000000000)
	snap := Snapshot{Plots: []entities.Plot{{ID: now.UnixMilli()}}}
	if id := nextID(snap, now); id == now.UnixMilli() {
		t.Errorf("nextID reused an existing identity %d", id)
	}
}
