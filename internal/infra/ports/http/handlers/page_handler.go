package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// PageHandler serves the static informational pages.
type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

func (h *PageHandler) Home(c echo.Context) error {
	return c.Render(http.StatusOK, "index.html", nil)
}

func (h *PageHandler) Help(c echo.Context) error {
	return c.Render(http.StatusOK, "help.html", nil)
}
