package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"garden/entities"
	"garden/pkg/store"
)

var appStart = time.Now()

type HealthCtrl struct {
	st store.Store
}

func NewHealthCtrl(st store.Store) *HealthCtrl { return &HealthCtrl{st: st} }

func (h *HealthCtrl) Health(c echo.Context) error {
	storeOK := true
	storeErr := ""
	if h.st != nil {
		var probe []entities.Plot
		if err := h.st.Read(store.CollectionPlots, &probe); err != nil {
			storeOK = false
			storeErr = err.Error()
		}
	} else {
		storeOK = false
		storeErr = "store is nil"
	}

	status := http.StatusOK
	if !storeOK {
		status = http.StatusServiceUnavailable
	}

	type sub struct {
		OK  bool   `json:"ok"`
		Err string `json:"err,omitempty"`
	}

	resp := map[string]any{
		"status":     map[string]any{"ok": storeOK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks": map[string]any{
			"store": sub{OK: storeOK, Err: storeErr},
		},
		"time": time.Now().Format(time.RFC3339),
	}

	return c.JSON(status, resp)
}
