package entities

// WateringEvent is one entry in a plant's watering history. The weather
// snapshot is denormalized display data and may be absent.
type WateringEvent struct {
	Timestamp string           `json:"timestamp"` // RFC 3339
	Weather   *WeatherSnapshot `json:"weather,omitempty"`
}

// HarvestEvent records a single harvest. Action "remove" retires the plant,
// "keep" leaves it growing.
type HarvestEvent struct {
	Timestamp string           `json:"timestamp"`
	Quantity  string           `json:"quantity,omitempty"` // free text, e.g. "5 tomatoes"
	Action    string           `json:"action"`             // keep|remove
	Weather   *WeatherSnapshot `json:"weather,omitempty"`
}

// Plant is an individual specimen grown within exactly one plot. PlotID is a
// lookup key, not an ownership pointer: both plots and plants are top-level
// store entries.
type Plant struct {
	ID          int64  `json:"id"`
	PlotID      int64  `json:"plotId"`
	Name        string `json:"name"`
	Icon        string `json:"icon,omitempty"`
	Status      string `json:"status"` // open tag: Seed, Seedling, Sprout, Growing, ...
	DatePlanted string `json:"datePlanted"`
	IsRemoved   bool   `json:"isRemoved"`

	WateringHistory []WateringEvent `json:"wateringHistory"`
	Harvests        []HarvestEvent  `json:"harvests"`
	Notes           []string        `json:"notes"`

	// Advisory fields filled by the maturity estimator; absent when the
	// estimator has no answer.
	EstimatedDaysToMaturity int    `json:"estimatedDaysToMaturity,omitempty"`
	EstimatedHarvestDate    string `json:"estimatedHarvestDate,omitempty"`
}
