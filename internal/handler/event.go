package handler

import (
	"fmt"
	"net/http"
	"time"

	"pcof-site-backend/internal/apperr"
	"pcof-site-backend/internal/dto"
	"pcof-site-backend/internal/ics"
	"pcof-site-backend/internal/service"

	"github.com/labstack/echo/v4"
)

type EventHandler struct {
	contentService service.ContentService
	rsvpService    service.RSVPService
}

func NewEventHandler(contentService service.ContentService, rsvpService service.RSVPService) *EventHandler {
	return &EventHandler{
		contentService: contentService,
		rsvpService:    rsvpService,
	}
}

func (h *EventHandler) ListEvents(c echo.Context) error {
	return c.JSON(http.StatusOK, h.contentService.Events(c.Request().Context()))
}

func (h *EventHandler) GetEvent(c echo.Context) error {
	ev, err := h.contentService.EventByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ev)
}

func (h *EventHandler) SubmitRSVP(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.RSVPRequest
	if err := c.Bind(&req); err != nil {
		return apperr.New(apperr.ErrInvalidRequest, "invalid request body")
	}

	entry, err := h.rsvpService.Submit(ctx, c.Param("id"), req.Name, req.Email)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message": "ok",
		"entry":   entry,
	})
}

func (h *EventHandler) DownloadCalendar(c echo.Context) error {
	ev, err := h.contentService.EventByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	cal := ics.Render(ev, time.Now())
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, cal.Filename))
	return c.Blob(http.StatusOK, "text/calendar; charset=utf-8", []byte(cal.Body))
}
