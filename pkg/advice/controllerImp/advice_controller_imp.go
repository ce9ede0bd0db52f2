package controllerImp

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"garden/pkg/advice"
	"garden/pkg/reconcile"
)

// AdviceCtrl answers garden questions. The answer cache and article library
// are passed in explicitly so their lifetime is owned by the wiring, not by
// this package.
type AdviceCtrl struct {
	llm     advice.Client
	co      *reconcile.Coordinator
	cache   *advice.Cache
	library *advice.Library
}

func New(llm advice.Client, co *reconcile.Coordinator, cache *advice.Cache, library *advice.Library) *AdviceCtrl {
	return &AdviceCtrl{llm: llm, co: co, cache: cache, library: library}
}

func (h *AdviceCtrl) Ask(c echo.Context) error {
	var body struct {
		Question string `json:"question"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	q := strings.TrimSpace(body.Question)
	if q == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "question is required"})
	}
	if answer, ok := h.cache.Get(q); ok {
		return c.JSON(http.StatusOK, map[string]any{"answer": answer, "cached": true})
	}
	answer := h.llm.Ask(q, h.co.Plants(), h.library.Articles())
	h.cache.Put(q, answer)
	return c.JSON(http.StatusOK, map[string]any{"answer": answer})
}

func (h *AdviceCtrl) IngestArticle(c echo.Context) error {
	var body struct {
		URL   string `json:"url"`
		Title string `json:"title"`
	}
	if err := c.Bind(&body); err != nil || body.URL == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "url required"})
	}
	if _, err := url.Parse(body.URL); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad url"})
	}
	a, err := h.library.IngestURL(body.URL, body.Title)
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{"title": a.Title, "url": a.URL, "bytes": len(a.Text)})
}
