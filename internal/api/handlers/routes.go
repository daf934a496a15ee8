package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"clinic-record-service/internal/services"
)

// RequestIDHeader carries the per-request correlation ID.
const RequestIDHeader = "X-Request-ID"

// NewApp builds the fiber application with every route registered.
func NewApp(registry services.RegistryServiceContract, exports services.ExportServiceContract, logger zerolog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(requestLogger(logger))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy", "service": "clinic-record-service"})
	})

	RegisterPatientRoutes(app, NewPatientHandler(registry, logger))
	RegisterDoctorRoutes(app, NewDoctorHandler(registry, logger))
	RegisterAppointmentRoutes(app, NewAppointmentHandler(registry, logger))
	RegisterExportRoutes(app, NewExportHandler(exports, logger))
	return app
}

// requestLogger tags each request with an ID and logs its outcome.
func requestLogger(logger zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(RequestIDHeader, requestID)

		err := c.Next()
		logger.Info().
			Str("request_id", requestID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Msg("request handled")
		return err
	}
}

func RegisterPatientRoutes(app *fiber.App, h *PatientHandler) {
	g := app.Group("/patients")
	g.Post("/", h.Create)
	g.Get("/", h.List)
	g.Get("/:id", h.Get)
	g.Get("/:id/history", h.History)
	g.Post("/:id/notes", h.AddNote)
	g.Get("/:id/appointments", h.Appointments)
}

func RegisterDoctorRoutes(app *fiber.App, h *DoctorHandler) {
	g := app.Group("/doctors")
	g.Post("/", h.Create)
	g.Get("/", h.List)
	g.Get("/:id", h.Get)
	g.Get("/:id/appointments", h.Appointments)
}

func RegisterAppointmentRoutes(app *fiber.App, h *AppointmentHandler) {
	g := app.Group("/appointments")
	g.Post("/", h.Schedule)
	g.Get("/", h.List)
	g.Patch("/:id/status", h.UpdateStatus)
}

func RegisterExportRoutes(app *fiber.App, h *ExportHandler) {
	g := app.Group("/export")
	g.Post("/", h.InitiateExport)
	g.Get("/:id", h.Status)
}
