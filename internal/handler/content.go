package handler

import (
	"net/http"

	"pcof-site-backend/internal/service"

	"github.com/labstack/echo/v4"
)

type ContentHandler struct {
	contentService service.ContentService
}

func NewContentHandler(contentService service.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

func (h *ContentHandler) ListChurches(c echo.Context) error {
	return c.JSON(http.StatusOK, h.contentService.Churches(c.Request().Context()))
}

func (h *ContentHandler) GetChurch(c echo.Context) error {
	church, err := h.contentService.ChurchBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, church)
}

func (h *ContentHandler) ListSermons(c echo.Context) error {
	return c.JSON(http.StatusOK, h.contentService.Sermons(c.Request().Context()))
}

func (h *ContentHandler) ListLeaders(c echo.Context) error {
	return c.JSON(http.StatusOK, h.contentService.Leaders(c.Request().Context()))
}
