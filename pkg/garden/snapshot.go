// Package garden holds the domain model: pure functions that take a snapshot
// of the four collections and an event, and return the next snapshot. Nothing
// here touches storage or mutates its input; the reconcile package decides
// whether a produced snapshot survives.
package garden

import (
	"time"

	"garden/entities"
)

// Snapshot is the full in-memory state: the two authoritative collections and
// the two denormalized log projections.
type Snapshot struct {
	Plots       []entities.Plot
	Plants      []entities.Plant
	WateringLog []entities.WateringLogEntry
	HarvestLog  []entities.HarvestLogEntry
}

// Clone deep-copies the snapshot so a transform can build the next state
// without aliasing the previous one. Rollback depends on this.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Plots:       make([]entities.Plot, len(s.Plots)),
		Plants:      make([]entities.Plant, len(s.Plants)),
		WateringLog: append([]entities.WateringLogEntry(nil), s.WateringLog...),
		HarvestLog:  append([]entities.HarvestLogEntry(nil), s.HarvestLog...),
	}
	for i, p := range s.Plots {
		p.PlantIDs = append([]int64(nil), p.PlantIDs...)
		out.Plots[i] = p
	}
	for i, p := range s.Plants {
		p.WateringHistory = append([]entities.WateringEvent(nil), p.WateringHistory...)
		p.Harvests = append([]entities.HarvestEvent(nil), p.Harvests...)
		p.Notes = append([]string(nil), p.Notes...)
		out.Plants[i] = p
	}
	return out
}

func (s Snapshot) plotIndex(id int64) int {
	for i := range s.Plots {
		if s.Plots[i].ID == id {
			return i
		}
	}
	return -1
}

func (s Snapshot) plantIndex(id int64) int {
	for i := range s.Plants {
		if s.Plants[i].ID == id {
			return i
		}
	}
	return -1
}

// PlotName resolves a plot id for display projections.
func (s Snapshot) PlotName(id int64) string {
	if i := s.plotIndex(id); i >= 0 {
		return s.Plots[i].Name
	}
	return "Unknown Plot"
}

// nextID hands out a fresh creation-timestamp identity. The front end uses
// Date.now() for ids; we keep that shape but bump past any identity already
// present so two creations in the same millisecond cannot collide.
func nextID(s Snapshot, now time.Time) int64 {
	used := make(map[int64]bool, len(s.Plots)+len(s.Plants)+len(s.WateringLog)+len(s.HarvestLog))
	for _, p := range s.Plots {
		used[p.ID] = true
	}
	for _, p := range s.Plants {
		used[p.ID] = true
	}
	for _, e := range s.WateringLog {
		used[e.ID] = true
	}
	for _, e := range s.HarvestLog {
		used[e.ID] = true
	}
	id := now.UnixMilli()
	for used[id] {
		id++
	}
	return id
}

func stamp(now time.Time) string { return now.UTC().Format(time.RFC3339) }
