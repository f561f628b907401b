package handler

import (
	"net/http"

	"pcof-site-backend/internal/apperr"
	"pcof-site-backend/internal/dto"
	"pcof-site-backend/internal/service"

	"github.com/labstack/echo/v4"
)

type IntakeHandler struct {
	intakeService service.IntakeService
}

func NewIntakeHandler(intakeService service.IntakeService) *IntakeHandler {
	return &IntakeHandler{intakeService: intakeService}
}

func (h *IntakeHandler) SubmitContact(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ContactRequest
	if err := c.Bind(&req); err != nil {
		return apperr.New(apperr.ErrInvalidRequest, "invalid request body")
	}

	if err := h.intakeService.SubmitContact(ctx, &req); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "ok"})
}

func (h *IntakeHandler) Subscribe(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.SubscribeRequest
	if err := c.Bind(&req); err != nil {
		return apperr.New(apperr.ErrInvalidRequest, "invalid request body")
	}

	if err := h.intakeService.Subscribe(ctx, req.Email); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "ok"})
}
