package controller

import "github.com/labstack/echo/v4"

type PlotController interface {
	List(c echo.Context) error
	Replace(c echo.Context) error
	Create(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
	Water(c echo.Context) error
	TimeShift(c echo.Context) error
	AddPlant(c echo.Context) error
}
