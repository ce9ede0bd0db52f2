// Package schema validates collections structurally before they are allowed
// to overwrite the store. Validation is batch-reported: a single violation
// rejects the whole write, but every recognized violation is returned so the
// caller can correct its payload in one pass. Cross-entity rules (e.g. a
// plant's plotId referencing an existing plot) are deliberately out of scope.
package schema

import (
	"fmt"
	"strings"
	"time"

	"garden/entities"
)

// Violation is one structural problem, addressed by a path like
// "plants[2].harvests[0].action".
type Violation struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

type ValidationError struct {
	Collection string
	Violations []Violation
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "schema: %s rejected, %d violation(s)", e.Collection, len(e.Violations))
	for i, v := range e.Violations {
		if i == 3 {
			sb.WriteString("; ...")
			break
		}
		fmt.Fprintf(&sb, "; %s: %s", v.Path, v.Message)
	}
	return sb.String()
}

// HarvestActions are the only accepted harvest actions. Plant growth status
// is an open tag and intentionally not checked against a closed set.
var HarvestActions = map[string]bool{"keep": true, "remove": true}

// WateringStatuses are the accepted watering-log classifications.
var WateringStatuses = map[string]bool{"Late": true, "Early": true, "On Time": true}

type checker struct {
	violations []Violation
}

func (c *checker) addf(path, format string, args ...any) {
	c.violations = append(c.violations, Violation{Path: path, Message: fmt.Sprintf(format, args...)})
}

func (c *checker) id(path string, id int64) {
	if id <= 0 {
		c.addf(path, "must be a positive integer, got %d", id)
	}
}

func (c *checker) nonempty(path, s string) {
	if strings.TrimSpace(s) == "" {
		c.addf(path, "is required")
	}
}

func (c *checker) instant(path, s string) {
	if s == "" {
		c.addf(path, "is required")
		return
	}
	if _, err := time.Parse(time.RFC3339, s); err != nil {
		c.addf(path, "not an ISO-8601 instant: %q", s)
	}
}

func (c *checker) err(collection string) error {
	if len(c.violations) == 0 {
		return nil
	}
	return &ValidationError{Collection: collection, Violations: c.violations}
}

func ValidatePlots(plots []entities.Plot) error {
	var c checker
	for i, p := range plots {
		at := fmt.Sprintf("plots[%d]", i)
		c.id(at+".id", p.ID)
		c.nonempty(at+".name", p.Name)
		if p.WateringInterval < 0 {
			c.addf(at+".wateringInterval", "must be >= 0, got %d", p.WateringInterval)
		}
		if p.NextWateringTime <= 0 {
			c.addf(at+".nextWateringTime", "must be a positive epoch-ms instant, got %d", p.NextWateringTime)
		}
		for j, id := range p.PlantIDs {
			c.id(fmt.Sprintf("%s.plantIds[%d]", at, j), id)
		}
	}
	return c.err("plots")
}

func ValidatePlants(plants []entities.Plant) error {
	var c checker
	for i, p := range plants {
		at := fmt.Sprintf("plants[%d]", i)
		c.id(at+".id", p.ID)
		c.id(at+".plotId", p.PlotID)
		c.nonempty(at+".name", p.Name)
		c.nonempty(at+".status", p.Status)
		c.instant(at+".datePlanted", p.DatePlanted)
		for j, w := range p.WateringHistory {
			c.instant(fmt.Sprintf("%s.wateringHistory[%d].timestamp", at, j), w.Timestamp)
		}
		for j, h := range p.Harvests {
			hat := fmt.Sprintf("%s.harvests[%d]", at, j)
			c.instant(hat+".timestamp", h.Timestamp)
			if !HarvestActions[h.Action] {
				c.addf(hat+".action", "must be \"keep\" or \"remove\", got %q", h.Action)
			}
		}
		if p.EstimatedDaysToMaturity < 0 {
			c.addf(at+".estimatedDaysToMaturity", "must be >= 0, got %d", p.EstimatedDaysToMaturity)
		}
		if p.EstimatedHarvestDate != "" {
			c.instant(at+".estimatedHarvestDate", p.EstimatedHarvestDate)
		}
	}
	return c.err("plants")
}

func ValidateWateringLog(log []entities.WateringLogEntry) error {
	var c checker
	for i, e := range log {
		at := fmt.Sprintf("watering_log[%d]", i)
		c.id(at+".id", e.ID)
		c.nonempty(at+".plotName", e.PlotName)
		c.instant(at+".timestamp", e.Timestamp)
		if !WateringStatuses[e.Status] {
			c.addf(at+".status", "must be \"Late\", \"Early\" or \"On Time\", got %q", e.Status)
		}
	}
	return c.err("watering_log")
}

func ValidateHarvestLog(log []entities.HarvestLogEntry) error {
	var c checker
	for i, e := range log {
		at := fmt.Sprintf("harvest_log[%d]", i)
		c.id(at+".id", e.ID)
		c.nonempty(at+".plantName", e.PlantName)
		c.instant(at+".timestamp", e.Timestamp)
		if !HarvestActions[e.Action] {
			c.addf(at+".action", "must be \"keep\" or \"remove\", got %q", e.Action)
		}
	}
	return c.err("harvest_log")
}
