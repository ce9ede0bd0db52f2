package router

import (
	"github.com/labstack/echo/v4"
)

func New(
	e *echo.Echo,
	plotCtrl interface {
		List(echo.Context) error
		Replace(echo.Context) error
		Create(echo.Context) error
		Update(echo.Context) error
		Delete(echo.Context) error
		Water(echo.Context) error
		TimeShift(echo.Context) error
		AddPlant(echo.Context) error
	},
	plantCtrl interface {
		List(echo.Context) error
		Replace(echo.Context) error
		Update(echo.Context) error
		Harvest(echo.Context) error
	},
	logCtrl interface {
		ListWatering(echo.Context) error
		ReplaceWatering(echo.Context) error
		ListHarvest(echo.Context) error
		ReplaceHarvest(echo.Context) error
		Export(echo.Context) error
	},
	weatherCtrl interface {
		Current(echo.Context) error
		Forecast(echo.Context) error
	},
	adviceCtrl interface {
		Ask(echo.Context) error
		IngestArticle(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)

	// Legacy whole-collection endpoints, path-compatible with the original
	// Express server: GET returns the collection, POST replaces it.
	api := e.Group("/api")
	api.GET("/plots", plotCtrl.List)
	api.POST("/plots", plotCtrl.Replace)
	api.GET("/plants", plantCtrl.List)
	api.POST("/plants", plantCtrl.Replace)
	api.GET("/log", logCtrl.ListWatering)
	api.POST("/log", logCtrl.ReplaceWatering)
	api.GET("/harvest_log", logCtrl.ListHarvest)
	api.POST("/harvest_log", logCtrl.ReplaceHarvest)

	// Domain operations go through the coordinator.
	v1 := e.Group("/api/v1")
	v1.POST("/plots", plotCtrl.Create)
	v1.PUT("/plots/:id", plotCtrl.Update)
	v1.DELETE("/plots/:id", plotCtrl.Delete)
	v1.POST("/plots/:id/water", plotCtrl.Water)
	v1.POST("/plots/:id/timeshift", plotCtrl.TimeShift)
	v1.POST("/plots/:id/plants", plotCtrl.AddPlant)
	v1.PUT("/plants/:id", plantCtrl.Update)
	v1.POST("/plants/:id/harvest", plantCtrl.Harvest)

	v1.GET("/weather", weatherCtrl.Current)
	v1.GET("/weather/forecast", weatherCtrl.Forecast)

	v1.POST("/advice/ask", adviceCtrl.Ask)
	v1.POST("/advice/articles", adviceCtrl.IngestArticle)

	v1.GET("/export/logs.xlsx", logCtrl.Export)
	return e
}
