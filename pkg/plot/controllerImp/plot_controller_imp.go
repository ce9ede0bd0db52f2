package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"garden/entities"
	"garden/pkg/plot/controller"
	"garden/pkg/reconcile"
	"garden/pkg/schema"
	"garden/pkg/store"
)

type PlotCtrl struct{ co *reconcile.Coordinator }

func New(co *reconcile.Coordinator) controller.PlotController { return &PlotCtrl{co} }

type plotReq struct {
	Name             string `json:"name"`
	SoilType         string `json:"soilType"`
	WateringInterval int64  `json:"wateringInterval"`
}

func (h *PlotCtrl) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.co.Plots())
}

// Replace is the legacy whole-collection save the original front end POSTs.
func (h *PlotCtrl) Replace(c echo.Context) error {
	var plots []entities.Plot
	if err := c.Bind(&plots); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := h.co.ReplacePlots(plots); err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Data saved successfully"})
}

func (h *PlotCtrl) Create(c echo.Context) error {
	var req plotReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	plot, err := h.co.AddPlot(req.Name, req.SoilType, req.WateringInterval)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, plot)
}

func (h *PlotCtrl) Update(c echo.Context) error {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	var req plotReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	plot, err := h.co.EditPlot(id, req.Name, req.SoilType, req.WateringInterval)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, plot)
}

func (h *PlotCtrl) Delete(c echo.Context) error {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	if err := h.co.DeletePlot(id); err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *PlotCtrl) Water(c echo.Context) error {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	entry, err := h.co.WaterPlot(id)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, entry)
}

func (h *PlotCtrl) TimeShift(c echo.Context) error {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	var body struct {
		Hours int `json:"hours"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := h.co.TimeShift(id, body.Hours); err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *PlotCtrl) AddPlant(c echo.Context) error {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	var body struct {
		Name   string `json:"name"`
		Status string `json:"status"`
		Icon   string `json:"icon"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	plant, err := h.co.AddPlant(id, body.Name, body.Status, body.Icon)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, plant)
}

// writeErr maps the reconciliation taxonomy onto HTTP: correct your payload
// (422), retry later (503), or refresh stale state (404).
func writeErr(c echo.Context, err error) error {
	var ve *schema.ValidationError
	if errors.As(err, &ve) {
		return c.JSON(http.StatusUnprocessableEntity, map[string]any{
			"error":      "validation failed",
			"violations": ve.Violations,
		})
	}
	var pe *store.PersistenceError
	if errors.As(err, &pe) {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": pe.Error()})
	}
	if errors.Is(err, reconcile.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
