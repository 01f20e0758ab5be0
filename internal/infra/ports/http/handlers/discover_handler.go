package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/linktower/linktower/internal/application/constant"
	"github.com/linktower/linktower/internal/usecase"
)

type DiscoverHandler struct {
	discoverUsecase usecase.DiscoverUsecase
}

func NewDiscoverHandler(discoverUsecase usecase.DiscoverUsecase) *DiscoverHandler {
	return &DiscoverHandler{discoverUsecase: discoverUsecase}
}

func (h *DiscoverHandler) Show(c echo.Context) error {
	return h.render(c, "")
}

func (h *DiscoverHandler) Filter(c echo.Context) error {
	return h.render(c, c.FormValue("domain"))
}

func (h *DiscoverHandler) render(c echo.Context, domain string) error {
	page, err := h.discoverUsecase.Discover(c.Request().Context(), domain)
	if err != nil {
		slog.Error("discover", slog.Any(constant.Error, err))
		return err
	}

	return c.Render(http.StatusOK, "discover.html", page)
}
