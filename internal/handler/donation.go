package handler

import (
	"io"
	"net/http"

	"pcof-site-backend/internal/apperr"
	"pcof-site-backend/internal/dto"
	"pcof-site-backend/internal/service"

	"github.com/labstack/echo/v4"
)

type DonationHandler struct {
	donationService service.DonationService
}

func NewDonationHandler(donationService service.DonationService) *DonationHandler {
	return &DonationHandler{donationService: donationService}
}

func (h *DonationHandler) CreateCheckout(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.DonationIntent
	if err := c.Bind(&req); err != nil {
		return apperr.New(apperr.ErrInvalidRequest, "invalid request body")
	}

	resp, err := h.donationService.CreateCheckout(ctx, &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, resp)
}

// StripeWebhook reads the raw body before any decoding: signature
// verification needs the exact bytes the provider signed.
func (h *DonationHandler) StripeWebhook(c echo.Context) error {
	ctx := c.Request().Context()

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return apperr.New(apperr.ErrInvalidRequest, "could not read request body")
	}

	sig := c.Request().Header.Get("Stripe-Signature")
	if err := h.donationService.HandleWebhook(ctx, body, sig); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]bool{"received": true})
}
