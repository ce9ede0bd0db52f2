// Package weather supplies the current-conditions snapshots attached to log
// entries, plus the forecast passthrough for the weather tab.
package weather

import "garden/entities"

type Provider interface {
	// Current returns the conditions to denormalize onto a log entry. An
	// error means "omit the weather field"; it never fails the event that
	// asked for it.
	Current() (*entities.WeatherSnapshot, error)
	// Forecast returns the upstream 5-day forecast payload as-is for the
	// front end to render.
	Forecast() (map[string]any, error)
}
