package handler

import (
	"net/http"

	"pcof-site-backend/internal/apperr"
	"pcof-site-backend/internal/dto"
	"pcof-site-backend/internal/service"

	"github.com/labstack/echo/v4"
)

type AdminHandler struct {
	adminService    service.AdminService
	donationService service.DonationService
	rsvpService     service.RSVPService
	intakeService   service.IntakeService
}

func NewAdminHandler(
	adminService service.AdminService,
	donationService service.DonationService,
	rsvpService service.RSVPService,
	intakeService service.IntakeService,
) *AdminHandler {
	return &AdminHandler{
		adminService:    adminService,
		donationService: donationService,
		rsvpService:     rsvpService,
		intakeService:   intakeService,
	}
}

func (h *AdminHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return apperr.New(apperr.ErrInvalidRequest, "invalid request body")
	}

	token, err := h.adminService.Login(ctx, req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &dto.LoginResponse{Token: token})
}

func (h *AdminHandler) ListDonations(c echo.Context) error {
	recs, err := h.donationService.ListDonations(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, recs)
}

func (h *AdminHandler) ListRSVPs(c echo.Context) error {
	entries, err := h.rsvpService.List(c.Request().Context(), c.Param("eventID"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

func (h *AdminHandler) ListMessages(c echo.Context) error {
	msgs, err := h.intakeService.ListMessages(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, msgs)
}

func (h *AdminHandler) ListSubscribers(c echo.Context) error {
	subs, err := h.intakeService.ListSubscribers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, subs)
}

func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.adminService.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
