package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"garden/pkg/weather"
)

type WeatherCtrl struct{ wx weather.Provider }

func New(wx weather.Provider) *WeatherCtrl { return &WeatherCtrl{wx} }

func (h *WeatherCtrl) Current(c echo.Context) error {
	snap, err := h.wx.Current()
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, snap)
}

func (h *WeatherCtrl) Forecast(c echo.Context) error {
	fc, err := h.wx.Forecast()
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, fc)
}
