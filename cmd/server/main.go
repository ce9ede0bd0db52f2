package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"garden/config"
	"garden/router"

	"garden/pkg/advice"
	"garden/pkg/maturity"
	"garden/pkg/reconcile"
	"garden/pkg/store"
	"garden/pkg/weather"

	adviceCtrlImp "garden/pkg/advice/controllerImp"
	healthCtrlImp "garden/pkg/health/controllerImp"
	logbookCtrlImp "garden/pkg/logbook/controllerImp"
	plantCtrlImp "garden/pkg/plant/controllerImp"
	plotCtrlImp "garden/pkg/plot/controllerImp"
	weatherCtrlImp "garden/pkg/weather/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) Store (file by default, sqlite opt-in)
	var st store.Store
	var err error
	switch cfg.StoreDriver {
	case "sqlite":
		st, err = store.OpenSQLite(cfg.DBPath)
	default:
		st, err = store.NewFile(cfg.DataDir)
	}
	if err != nil {
		log.Fatalf("open store: %v", err)
	}

	// 3) Collaborators (mock fallbacks keep everything working offline)
	var wx weather.Provider
	if cfg.WeatherKey != "" {
		wx = weather.NewOpenWeather("", cfg.WeatherKey, cfg.WeatherCity, cfg.WeatherUnit)
	} else {
		log.Printf("WARN: WEATHER_API_KEY not set, using mock weather")
		wx = weather.NewMock()
	}
	var llm advice.Client
	if cfg.LLMEndpoint != "" && cfg.LLMAPIKey != "" {
		llm = advice.NewOpenAI(cfg.LLMEndpoint, cfg.LLMAPIKey, cfg.LLMModel)
	} else {
		llm = advice.NewMock()
	}
	est := maturity.NewTable()

	// 4) Coordinator + initial load
	co := reconcile.New(st, wx, est)
	if err := co.Load(); err != nil {
		log.Fatalf("load collections: %v", err)
	}

	// 5) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())

	// 6) Controllers
	plotCtrl := plotCtrlImp.New(co)
	plantCtrl := plantCtrlImp.New(co)
	logCtrl := logbookCtrlImp.New(co)
	wxCtrl := weatherCtrlImp.New(wx)
	adCtrl := adviceCtrlImp.New(llm, co, advice.NewCache(64, 30*time.Minute), advice.NewLibrary(10, 1500000))
	hCtrl := healthCtrlImp.NewHealthCtrl(st)

	// 7) Router
	r := router.New(e, plotCtrl, plantCtrl, logCtrl, wxCtrl, adCtrl, hCtrl)

	// 8) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
