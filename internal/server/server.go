package server

import (
	"context"
	"net/http"

	"pcof-site-backend/internal/handler"
	"pcof-site-backend/internal/logging"
	appmw "pcof-site-backend/internal/middleware"
	"pcof-site-backend/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo            *echo.Echo
	donationHandler *handler.DonationHandler
	eventHandler    *handler.EventHandler
	contentHandler  *handler.ContentHandler
	intakeHandler   *handler.IntakeHandler
	adminHandler    *handler.AdminHandler
	adminJWTSecret  []byte
}

func NewServer(
	logger logging.Logger,
	adminJWTSecret string,
	donationService service.DonationService,
	rsvpService service.RSVPService,
	contentService service.ContentService,
	intakeService service.IntakeService,
	adminService service.AdminService,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = newErrorHandler(logger)

	e.Use(requestLogger(logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:            e,
		donationHandler: handler.NewDonationHandler(donationService),
		eventHandler:    handler.NewEventHandler(contentService, rsvpService),
		contentHandler:  handler.NewContentHandler(contentService),
		intakeHandler:   handler.NewIntakeHandler(intakeService),
		adminHandler:    handler.NewAdminHandler(adminService, donationService, rsvpService, intakeService),
		adminJWTSecret:  []byte(adminJWTSecret),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// -------- public content --------
	api.GET("/churches", s.contentHandler.ListChurches)
	api.GET("/churches/:slug", s.contentHandler.GetChurch)
	api.GET("/sermons", s.contentHandler.ListSermons)
	api.GET("/leaders", s.contentHandler.ListLeaders)
	api.GET("/events", s.eventHandler.ListEvents)
	api.GET("/events/:id", s.eventHandler.GetEvent)
	api.GET("/events/:id/calendar", s.eventHandler.DownloadCalendar)

	// -------- intake --------
	api.POST("/events/:id/rsvp", s.eventHandler.SubmitRSVP)
	api.POST("/donate/checkout", s.donationHandler.CreateCheckout)
	api.POST("/contact", s.intakeHandler.SubmitContact)
	api.POST("/subscribe", s.intakeHandler.Subscribe)

	// -------- provider webhooks --------
	api.POST("/webhooks/stripe", s.donationHandler.StripeWebhook)

	// -------- admin --------
	admin := api.Group("/admin")
	admin.POST("/login", s.adminHandler.Login)

	protected := admin.Group("", appmw.AdminAuth(s.adminJWTSecret))
	protected.GET("/donations", s.adminHandler.ListDonations)
	protected.GET("/rsvps/:eventID", s.adminHandler.ListRSVPs)
	protected.GET("/messages", s.adminHandler.ListMessages)
	protected.GET("/subscribers", s.adminHandler.ListSubscribers)
	protected.GET("/stats", s.adminHandler.Stats)
}

func requestLogger(logger logging.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info(c.Request().Context(), "request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
			)
			return nil
		},
	})
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
