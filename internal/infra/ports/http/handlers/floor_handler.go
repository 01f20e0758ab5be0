package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/linktower/linktower/internal/application/constant"
	"github.com/linktower/linktower/internal/domain/models"
	"github.com/linktower/linktower/internal/infra/adapters/postgres/repository"
	"github.com/linktower/linktower/internal/usecase"
)

type floorData struct {
	FloorName string
	Rooms     []models.Room
}

type FloorHandler struct {
	roomUsecase usecase.RoomUsecase
}

func NewFloorHandler(roomUsecase usecase.RoomUsecase) *FloorHandler {
	return &FloorHandler{roomUsecase: roomUsecase}
}

func (h *FloorHandler) List(c echo.Context) error {
	floorName := c.Param("name")

	rooms, err := h.roomUsecase.RoomsOnFloor(c.Request().Context(), floorName)
	if errors.Is(err, repository.ErrNotFound) {
		return c.Render(http.StatusNotFound, "not_found.html", notFoundData{Msg: "floor with name " + floorName})
	}
	if err != nil {
		slog.Error("list floor", slog.Any(constant.Error, err), slog.String(constant.Floor, floorName))
		return err
	}

	return c.Render(http.StatusOK, "floor_name.html", floorData{
		FloorName: floorName,
		Rooms:     rooms,
	})
}
