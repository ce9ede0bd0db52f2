package garden

import (
	"time"

	"garden/entities"
)

// Estimate is an advisory days-to-maturity answer from the external
// estimator. OK=false means the estimator had nothing; plant creation
// proceeds without the advisory fields.
type Estimate struct {
	Days int
	OK   bool
}

// Water advances the plot's schedule and fans the event out: a watering-log
// projection entry plus a history entry on every non-removed plant of the
// plot. The new due instant is now + interval, relative to now, so lateness
// never compounds into the next interval. Unknown plot ids return the input
// snapshot unchanged with ok=false.
func Water(s Snapshot, plotID int64, now time.Time, weather *entities.WeatherSnapshot) (Snapshot, bool) {
	i := s.plotIndex(plotID)
	if i < 0 {
		return s, false
	}
	out := s.Clone()
	plot := &out.Plots[i]

	timeDifference := now.UnixMilli() - plot.NextWateringTime
	plot.NextWateringTime = now.UnixMilli() + plot.WateringInterval

	out.WateringLog = append(out.WateringLog, entities.WateringLogEntry{
		ID:             nextID(out, now),
		PlotName:       plot.Name,
		Timestamp:      stamp(now),
		Status:         Classify(timeDifference),
		TimeDifference: timeDifference,
	})

	for j := range out.Plants {
		p := &out.Plants[j]
		if p.PlotID != plotID || p.IsRemoved {
			continue
		}
		p.WateringHistory = append(p.WateringHistory, entities.WateringEvent{
			Timestamp: stamp(now),
			Weather:   weather,
		})
	}
	return out, true
}

// TimeShift moves the due instant by whole hours. Negative hours pull the
// due time earlier, simulating an overdue plot. Debug affordance.
func TimeShift(s Snapshot, plotID int64, hours int, _ time.Time) (Snapshot, bool) {
	i := s.plotIndex(plotID)
	if i < 0 {
		return s, false
	}
	out := s.Clone()
	out.Plots[i].NextWateringTime += int64(hours) * hourMs
	return out, true
}

// AddPlot creates a plot whose countdown starts now.
func AddPlot(s Snapshot, name, soilType string, interval int64, now time.Time) (Snapshot, entities.Plot) {
	out := s.Clone()
	plot := entities.Plot{
		ID:               nextID(out, now),
		Name:             name,
		SoilType:         soilType,
		WateringInterval: interval,
		NextWateringTime: now.UnixMilli() + interval,
		PlantIDs:         []int64{},
	}
	out.Plots = append(out.Plots, plot)
	return out, plot
}

// EditPlot replaces the mutable plot fields. Changing the interval restarts
// the countdown from the moment of edit; partial elapsed time is never
// preserved.
func EditPlot(s Snapshot, plotID int64, name, soilType string, interval int64, now time.Time) (Snapshot, bool) {
	i := s.plotIndex(plotID)
	if i < 0 {
		return s, false
	}
	out := s.Clone()
	plot := &out.Plots[i]
	plot.Name = name
	plot.SoilType = soilType
	if interval != plot.WateringInterval {
		plot.WateringInterval = interval
		plot.NextWateringTime = now.UnixMilli() + interval
	}
	return out, true
}

// DeletePlot removes the plot and every plant keyed to it in one logical
// operation; both collections must be persisted together.
func DeletePlot(s Snapshot, plotID int64) (Snapshot, bool) {
	i := s.plotIndex(plotID)
	if i < 0 {
		return s, false
	}
	out := s.Clone()
	out.Plots = append(out.Plots[:i], out.Plots[i+1:]...)
	kept := out.Plants[:0]
	for _, p := range out.Plants {
		if p.PlotID != plotID {
			kept = append(kept, p)
		}
	}
	out.Plants = kept
	return out, true
}

// AddPlant creates a fresh plant in the plot and appends its identity to the
// plot's planting order. The maturity estimate is advisory; est.OK=false
// simply leaves the fields empty.
func AddPlant(s Snapshot, plotID int64, name, status, icon string, now time.Time, est Estimate) (Snapshot, entities.Plant, bool) {
	i := s.plotIndex(plotID)
	if i < 0 {
		return s, entities.Plant{}, false
	}
	out := s.Clone()
	plant := entities.Plant{
		ID:              nextID(out, now),
		PlotID:          plotID,
		Name:            name,
		Status:          status,
		Icon:            icon,
		DatePlanted:     stamp(now),
		IsRemoved:       false,
		WateringHistory: []entities.WateringEvent{},
		Harvests:        []entities.HarvestEvent{},
		Notes:           []string{},
	}
	if est.OK {
		plant.EstimatedDaysToMaturity = est.Days
		plant.EstimatedHarvestDate = stamp(now.AddDate(0, 0, est.Days))
	}
	out.Plants = append(out.Plants, plant)
	out.Plots[i].PlantIDs = append(out.Plots[i].PlantIDs, plant.ID)
	return out, plant, true
}

// EditPlant replaces the advisory fields a user can change. Identity,
// plotId and datePlanted are immutable.
func EditPlant(s Snapshot, plantID int64, name, status string, notes []string) (Snapshot, bool) {
	i := s.plantIndex(plantID)
	if i < 0 {
		return s, false
	}
	out := s.Clone()
	plant := &out.Plants[i]
	plant.Name = name
	plant.Status = status
	plant.Notes = append([]string(nil), notes...)
	return out, true
}

// Harvest appends a harvest entry and the matching log projection. Action
// "remove" retires the plant one-way; "keep" leaves isRemoved as-is.
// Harvesting an already-removed plant is allowed and appends normally —
// preserved behavior of the source, see DESIGN.md.
func Harvest(s Snapshot, plantID int64, quantity, action string, now time.Time, weather *entities.WeatherSnapshot) (Snapshot, bool) {
	i := s.plantIndex(plantID)
	if i < 0 {
		return s, false
	}
	out := s.Clone()
	plant := &out.Plants[i]
	plant.Harvests = append(plant.Harvests, entities.HarvestEvent{
		Timestamp: stamp(now),
		Quantity:  quantity,
		Action:    action,
		Weather:   weather,
	})
	if action == "remove" {
		plant.IsRemoved = true
	}
	out.HarvestLog = append(out.HarvestLog, entities.HarvestLogEntry{
		ID:        nextID(out, now),
		PlantName: plant.Name,
		PlotName:  out.PlotName(plant.PlotID),
		Timestamp: stamp(now),
		Quantity:  quantity,
		Action:    action,
		Weather:   weather,
	})
	return out, true
}
