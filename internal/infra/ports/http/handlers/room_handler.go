package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/linktower/linktower/internal/application/constant"
	"github.com/linktower/linktower/internal/domain/input"
	"github.com/linktower/linktower/internal/domain/models"
	"github.com/linktower/linktower/internal/infra/adapters/postgres/repository"
	"github.com/linktower/linktower/internal/usecase"
)

// roomFormData is what the new/edit templates render: the submitted values
// echoed back alongside the collected errors.
type roomFormData struct {
	Title     string
	Links     string
	FloorName string
	Password  string
	Errors    []string
}

type notFoundData struct {
	Msg string
}

type deleteFormData struct {
	Room    *models.Room
	Errors  []string
	Success bool
}

type RoomHandler struct {
	roomUsecase usecase.RoomUsecase
}

func NewRoomHandler(roomUsecase usecase.RoomUsecase) *RoomHandler {
	return &RoomHandler{roomUsecase: roomUsecase}
}

func (h *RoomHandler) NewForm(c echo.Context) error {
	return c.Render(http.StatusOK, "new.html", roomFormData{})
}

func (h *RoomHandler) Create(c echo.Context) error {
	form := bindRoomForm(c)

	slug, formErrors, err := h.roomUsecase.CreateRoom(c.Request().Context(), form)
	if err != nil {
		slog.Error("create room", slog.Any(constant.Error, err))
		return err
	}

	if len(formErrors) > 0 {
		return c.Render(http.StatusOK, "new.html", roomFormData{
			Title:     form.Title,
			Links:     form.Links,
			FloorName: form.FloorName,
			Password:  form.Password,
			Errors:    formErrors,
		})
	}

	return c.Redirect(http.StatusSeeOther, "/room/"+slug)
}

func (h *RoomHandler) View(c echo.Context) error {
	slug := c.Param("slug")

	page, err := h.roomUsecase.ViewRoom(c.Request().Context(), slug)
	if errors.Is(err, repository.ErrNotFound) {
		return renderRoomNotFound(c, slug)
	}
	if err != nil {
		slog.Error("view room", slog.Any(constant.Error, err), slog.String(constant.Slug, slug))
		return err
	}

	return c.Render(http.StatusOK, "room.html", page)
}

func (h *RoomHandler) EditForm(c echo.Context) error {
	slug := c.Param("slug")

	page, err := h.roomUsecase.EditForm(c.Request().Context(), slug)
	if errors.Is(err, repository.ErrNotFound) {
		return renderRoomNotFound(c, slug)
	}
	if err != nil {
		slog.Error("edit form", slog.Any(constant.Error, err), slog.String(constant.Slug, slug))
		return err
	}

	return c.Render(http.StatusOK, "edit.html", roomFormData{
		Title:     page.Room.Title,
		Links:     page.LinksText,
		FloorName: page.Room.FloorName,
	})
}

func (h *RoomHandler) Update(c echo.Context) error {
	slug := c.Param("slug")
	form := bindRoomForm(c)

	formErrors, err := h.roomUsecase.UpdateRoom(c.Request().Context(), slug, form)
	if errors.Is(err, repository.ErrNotFound) {
		return renderRoomNotFound(c, slug)
	}
	if err != nil {
		slog.Error("update room", slog.Any(constant.Error, err), slog.String(constant.Slug, slug))
		return err
	}

	if len(formErrors) > 0 {
		return c.Render(http.StatusOK, "edit.html", roomFormData{
			Title:     form.Title,
			Links:     form.Links,
			FloorName: form.FloorName,
			Password:  form.Password,
			Errors:    formErrors,
		})
	}

	return c.Redirect(http.StatusSeeOther, "/room/"+slug)
}

func (h *RoomHandler) DeleteForm(c echo.Context) error {
	slug := c.Param("slug")

	room, err := h.roomUsecase.RoomBySlug(c.Request().Context(), slug)
	if errors.Is(err, repository.ErrNotFound) {
		return renderRoomNotFound(c, slug)
	}
	if err != nil {
		slog.Error("delete form", slog.Any(constant.Error, err), slog.String(constant.Slug, slug))
		return err
	}

	return c.Render(http.StatusOK, "delete.html", deleteFormData{Room: room})
}

func (h *RoomHandler) Delete(c echo.Context) error {
	slug := c.Param("slug")
	password := c.FormValue("password")
	ctx := c.Request().Context()

	room, err := h.roomUsecase.RoomBySlug(ctx, slug)
	if errors.Is(err, repository.ErrNotFound) {
		return renderRoomNotFound(c, slug)
	}
	if err != nil {
		slog.Error("delete room", slog.Any(constant.Error, err), slog.String(constant.Slug, slug))
		return err
	}

	ok, err := h.roomUsecase.DeleteRoom(ctx, slug, password)
	if err != nil {
		slog.Error("delete room", slog.Any(constant.Error, err), slog.String(constant.Slug, slug))
		return err
	}

	if !ok {
		return c.Render(http.StatusOK, "delete.html", deleteFormData{
			Room:   room,
			Errors: []string{"Incorrect password"},
		})
	}

	return c.Render(http.StatusOK, "delete.html", deleteFormData{
		Room:    room,
		Success: true,
	})
}

func bindRoomForm(c echo.Context) input.RoomForm {
	return input.RoomForm{
		Title:       c.FormValue("title"),
		FloorName:   c.FormValue("floor_name"),
		Password:    c.FormValue("password"),
		Links:       c.FormValue("links"),
		NewPassword: c.FormValue("new_password"),
	}
}

func renderRoomNotFound(c echo.Context, slug string) error {
	return c.Render(http.StatusNotFound, "not_found.html", notFoundData{Msg: "room at " + slug})
}
