package server

import (
	"errors"
	"fmt"
	"net/http"

	"pcof-site-backend/internal/apperr"
	"pcof-site-backend/internal/logging"

	"github.com/labstack/echo/v4"
)

// newErrorHandler maps the error taxonomy to HTTP responses. Clients only
// ever see the taxonomy message; causes stay in the logs.
func newErrorHandler(logger logging.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := "internal server error"

		var appErr *apperr.Error
		var httpErr *echo.HTTPError
		switch {
		case errors.As(err, &appErr):
			status = apperr.Status(appErr)
			message = appErr.Message()
		case errors.As(err, &httpErr):
			status = httpErr.Code
			message = fmt.Sprint(httpErr.Message)
		}

		if status >= http.StatusInternalServerError {
			logger.Error(c.Request().Context(), "request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"error", err,
			)
		}

		if jsonErr := c.JSON(status, map[string]string{"message": message}); jsonErr != nil {
			logger.Error(c.Request().Context(), "write error response", "error", jsonErr)
		}
	}
}
