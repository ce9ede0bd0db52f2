package weather

import "garden/entities"

type mockProvider struct{}

// NewMock serves fixed mild conditions when no API key is configured, so
// local development still exercises the weather-snapshot path.
func NewMock() Provider { return &mockProvider{} }

func (m *mockProvider) Current() (*entities.WeatherSnapshot, error) {
	return &entities.WeatherSnapshot{
		Temp:        22.5,
		Description: "scattered clouds",
		Icon:        "03d",
		Humidity:    60,
	}, nil
}

func (m *mockProvider) Forecast() (map[string]any, error) {
	return map[string]any{
		"city": map[string]any{"name": "Mock City", "country": "XX"},
		"list": []any{},
	}, nil
}
