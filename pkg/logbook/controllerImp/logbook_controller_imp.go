package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"garden/entities"
	"garden/pkg/export"
	"garden/pkg/reconcile"
	"garden/pkg/schema"
	"garden/pkg/store"
)

// LogbookCtrl serves the legacy watering/harvest log collections and the
// spreadsheet export.
type LogbookCtrl struct{ co *reconcile.Coordinator }

func New(co *reconcile.Coordinator) *LogbookCtrl { return &LogbookCtrl{co} }

func (h *LogbookCtrl) ListWatering(c echo.Context) error {
	return c.JSON(http.StatusOK, h.co.WateringLog())
}

func (h *LogbookCtrl) ReplaceWatering(c echo.Context) error {
	var log []entities.WateringLogEntry
	if err := c.Bind(&log); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid data format. Expected an array."})
	}
	if err := h.co.ReplaceWateringLog(log); err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Log saved successfully"})
}

func (h *LogbookCtrl) ListHarvest(c echo.Context) error {
	return c.JSON(http.StatusOK, h.co.HarvestLog())
}

func (h *LogbookCtrl) ReplaceHarvest(c echo.Context) error {
	var log []entities.HarvestLogEntry
	if err := c.Bind(&log); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid data format. Expected an array."})
	}
	if err := h.co.ReplaceHarvestLog(log); err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Harvest log saved successfully"})
}

func (h *LogbookCtrl) Export(c echo.Context) error {
	f, err := export.LogsWorkbook(h.co.WateringLog(), h.co.HarvestLog())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="garden-logs.xlsx"`)
	c.Response().WriteHeader(http.StatusOK)
	return f.Write(c.Response().Writer)
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
