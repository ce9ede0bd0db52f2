package entities

// Plot is a garden bed with its own watering schedule. Identities are
// creation-time epoch milliseconds, matching what the front end generates.
type Plot struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	SoilType         string  `json:"soilType,omitempty"`
	WateringInterval int64   `json:"wateringInterval"` // ms between required waterings
	NextWateringTime int64   `json:"nextWateringTime"` // epoch ms
	PlantIDs         []int64 `json:"plantIds"`         // planting order
}
