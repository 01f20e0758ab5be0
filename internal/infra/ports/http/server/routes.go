package server

import (
	"github.com/labstack/echo/v4"

	"github.com/linktower/linktower/internal/application/config"
	"github.com/linktower/linktower/internal/infra/ports/http/handlers"
	"github.com/linktower/linktower/internal/infra/ports/http/middleware"
)

func New(
	cfg *config.Config,
	roomHandler *handlers.RoomHandler,
	floorHandler *handlers.FloorHandler,
	discoverHandler *handlers.DiscoverHandler,
	pageHandler *handlers.PageHandler,
) (*echo.Echo, error) {
	e := echo.New()

	e.HideBanner = true
	e.Debug = cfg.Debug

	r, err := newRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = r

	e.Use(middleware.SlogLogger())
	e.Use(middleware.PrometheusMiddleware())

	e.GET("/", pageHandler.Home)
	e.GET("/help", pageHandler.Help)

	e.GET("/new", roomHandler.NewForm)
	e.POST("/new", roomHandler.Create)

	room := e.Group("/room")
	{
		room.GET("/:slug", roomHandler.View)
		room.GET("/:slug/edit", roomHandler.EditForm)
		room.POST("/:slug/edit", roomHandler.Update)
		room.GET("/:slug/delete", roomHandler.DeleteForm)
		room.POST("/:slug/delete", roomHandler.Delete)
	}

	e.GET("/floor/:name", floorHandler.List)

	e.GET("/discover", discoverHandler.Show)
	e.POST("/discover", discoverHandler.Filter)

	return e, nil
}
