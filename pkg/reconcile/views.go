package reconcile

import (
	"garden/entities"
	"garden/pkg/garden"
)

// Read accessors hand out copies; callers can't reach the live snapshot.

func (c *Coordinator) Snapshot() garden.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap.Clone()
}

func (c *Coordinator) Plots() []entities.Plot {
	return c.Snapshot().Plots
}

func (c *Coordinator) Plants() []entities.Plant {
	return c.Snapshot().Plants
}

func (c *Coordinator) WateringLog() []entities.WateringLogEntry {
	return c.Snapshot().WateringLog
}

func (c *Coordinator) HarvestLog() []entities.HarvestLogEntry {
	return c.Snapshot().HarvestLog
}

func (c *Coordinator) plotByID(id int64) (entities.Plot, error) {
	for _, p := range c.Plots() {
		if p.ID == id {
			return p, nil
		}
	}
	return entities.Plot{}, ErrNotFound
}

func (c *Coordinator) plantByID(id int64) (entities.Plant, error) {
	for _, p := range c.Plants() {
		if p.ID == id {
			return p, nil
		}
	}
	return entities.Plant{}, ErrNotFound
}
