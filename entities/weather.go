package entities

// WeatherSnapshot is a flattened copy of the weather provider's current
// conditions, attached to log entries for historical display.
type WeatherSnapshot struct {
	Temp        float64 `json:"temp"` // degrees in the configured units
	Description string  `json:"description"`
	Icon        string  `json:"icon"` // provider icon code, e.g. "03d"
	Humidity    int     `json:"humidity"`
}
