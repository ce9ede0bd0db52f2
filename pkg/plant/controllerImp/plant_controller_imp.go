package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"garden/entities"
	"garden/pkg/plant/controller"
	"garden/pkg/reconcile"
	"garden/pkg/schema"
	"garden/pkg/store"
)

type PlantCtrl struct{ co *reconcile.Coordinator }

func New(co *reconcile.Coordinator) controller.PlantController { return &PlantCtrl{co} }

func (h *PlantCtrl) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.co.Plants())
}

func (h *PlantCtrl) Replace(c echo.Context) error {
	var plants []entities.Plant
	if err := c.Bind(&plants); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := h.co.ReplacePlants(plants); err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Data saved successfully"})
}

func (h *PlantCtrl) Update(c echo.Context) error {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	var body struct {
		Name   string   `json:"name"`
		Status string   `json:"status"`
		Notes  []string `json:"notes"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	plant, err := h.co.EditPlant(id, body.Name, body.Status, body.Notes)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, plant)
}

func (h *PlantCtrl) Harvest(c echo.Context) error {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	var body struct {
		Quantity string `json:"quantity"`
		Action   string `json:"action"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if body.Action == "" {
		body.Action = "keep"
	}
	plant, err := h.co.HarvestPlant(id, body.Quantity, body.Action)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, plant)
}

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
