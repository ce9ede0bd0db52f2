package reconcile

import (
	"garden/entities"
	"garden/pkg/garden"
	"garden/pkg/store"
)

// WaterPlot waters every plant of the plot and resets its schedule. Returns
// the produced watering-log entry for the caller to display.
func (c *Coordinator) WaterPlot(plotID int64) (entities.WateringLogEntry, error) {
	wx := c.currentWeather() // outside the lock: upstream calls must not serialize events
	now := c.clock()
	err := c.apply(func(s garden.Snapshot) (garden.Snapshot, bool) {
		return garden.Water(s, plotID, now, wx)
	}, store.CollectionPlots, store.CollectionPlants, store.CollectionWateringLog)
	if err != nil {
		return entities.WateringLogEntry{}, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap.WateringLog[len(c.snap.WateringLog)-1], nil
}

// TimeShift moves a plot's due instant by whole hours; negative values
// simulate an overdue plot.
func (c *Coordinator) TimeShift(plotID int64, hours int) error {
	now := c.clock()
	return c.apply(func(s garden.Snapshot) (garden.Snapshot, bool) {
		return garden.TimeShift(s, plotID, hours, now)
	}, store.CollectionPlots)
}

func (c *Coordinator) AddPlot(name, soilType string, interval int64) (entities.Plot, error) {
	now := c.clock()
	var created entities.Plot
	err := c.apply(func(s garden.Snapshot) (garden.Snapshot, bool) {
		next, plot := garden.AddPlot(s, name, soilType, interval, now)
		created = plot
		return next, true
	}, store.CollectionPlots)
	return created, err
}

func (c *Coordinator) EditPlot(plotID int64, name, soilType string, interval int64) (entities.Plot, error) {
	now := c.clock()
	err := c.apply(func(s garden.Snapshot) (garden.Snapshot, bool) {
		return garden.EditPlot(s, plotID, name, soilType, interval, now)
	}, store.CollectionPlots)
	if err != nil {
		return entities.Plot{}, err
	}
	return c.plotByID(plotID)
}

// DeletePlot cascades: the plot and every plant keyed to it go together, and
// both collections persist in the same event.
func (c *Coordinator) DeletePlot(plotID int64) error {
	return c.apply(func(s garden.Snapshot) (garden.Snapshot, bool) {
		return garden.DeletePlot(s, plotID)
	}, store.CollectionPlots, store.CollectionPlants)
}

func (c *Coordinator) AddPlant(plotID int64, name, status, icon string) (entities.Plant, error) {
	if status == "" {
		status = "Seed"
	}
	est := garden.Estimate{}
	if c.est != nil {
		if days, ok := c.est.EstimateDays(name); ok {
			est = garden.Estimate{Days: days, OK: true}
		}
	}
	now := c.clock()
	var created entities.Plant
	err := c.apply(func(s garden.Snapshot) (garden.Snapshot, bool) {
		next, plant, ok := garden.AddPlant(s, plotID, name, status, icon, now, est)
		created = plant
		return next, ok
	}, store.CollectionPlots, store.CollectionPlants)
	return created, err
}

func (c *Coordinator) EditPlant(plantID int64, name, status string, notes []string) (entities.Plant, error) {
	err := c.apply(func(s garden.Snapshot) (garden.Snapshot, bool) {
		return garden.EditPlant(s, plantID, name, status, notes)
	}, store.CollectionPlants)
	if err != nil {
		return entities.Plant{}, err
	}
	return c.plantByID(plantID)
}

// HarvestPlant logs a harvest; action "remove" retires the plant. An invalid
// action flows through to the validator and comes back as a violation.
func (c *Coordinator) HarvestPlant(plantID int64, quantity, action string) (entities.Plant, error) {
	wx := c.currentWeather()
	now := c.clock()
	err := c.apply(func(s garden.Snapshot) (garden.Snapshot, bool) {
		return garden.Harvest(s, plantID, quantity, action, now, wx)
	}, store.CollectionPlants, store.CollectionHarvestLog)
	if err != nil {
		return entities.Plant{}, err
	}
	return c.plantByID(plantID)
}

// Legacy whole-collection replacements, kept for the original front end's
// POST endpoints. Validated and persisted like any other event.

func (c *Coordinator) ReplacePlots(plots []entities.Plot) error {
	return c.apply(func(s garden.Snapshot) (garden.Snapshot, bool) {
		next := s.Clone()
		next.Plots = plots
		return next, true
	}, store.CollectionPlots)
}

func (c *Coordinator) ReplacePlants(plants []entities.Plant) error {
	return c.apply(func(s garden.Snapshot) (garden.Snapshot, bool) {
		next := s.Clone()
		next.Plants = plants
		return next, true
	}, store.CollectionPlants)
}

func (c *Coordinator) ReplaceWateringLog(log []entities.WateringLogEntry) error {
	return c.apply(func(s garden.Snapshot) (garden.Snapshot, bool) {
		next := s.Clone()
		next.WateringLog = log
		return next, true
	}, store.CollectionWateringLog)
}

func (c *Coordinator) ReplaceHarvestLog(log []entities.HarvestLogEntry) error {
	return c.apply(func(s garden.Snapshot) (garden.Snapshot, bool) {
		next := s.Clone()
		next.HarvestLog = log
		return next, true
	}, store.CollectionHarvestLog)
}
