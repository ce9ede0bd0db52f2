package controller

import "github.com/labstack/echo/v4"

type PlantController interface {
	List(c echo.Context) error
	Replace(c echo.Context) error
	Update(c echo.Context) error
	Harvest(c echo.Context) error
}
