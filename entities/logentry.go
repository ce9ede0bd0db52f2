package entities

// WateringLogEntry is the denormalized watering-log projection shown in the
// log tab. Not authoritative; the per-plant history is.
type WateringLogEntry struct {
	ID             int64  `json:"id"`
	PlotName       string `json:"plotName"`
	Timestamp      string `json:"timestamp"`
	Status         string `json:"status"`         // Late|Early|On Time
	TimeDifference int64  `json:"timeDifference"` // ms past (positive) or before (negative) due
}

// HarvestLogEntry is the flat harvest-log projection.
type HarvestLogEntry struct {
	ID        int64            `json:"id"`
	PlantName string           `json:"plantName"`
	PlotName  string           `json:"plotName"`
	Timestamp string           `json:"timestamp"`
	Quantity  string           `json:"quantity,omitempty"`
	Action    string           `json:"action"`
	Weather   *WeatherSnapshot `json:"weather,omitempty"`
}
