package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"clinic-record-service/internal/domain/dtos"
	"clinic-record-service/internal/services"
)

type AppointmentHandler struct {
	registry services.RegistryServiceContract
	logger   zerolog.Logger
}

func NewAppointmentHandler(registry services.RegistryServiceContract, logger zerolog.Logger) *AppointmentHandler {
	return &AppointmentHandler{registry: registry, logger: logger}
}

func (h *AppointmentHandler) Schedule(c *fiber.Ctx) error {
	var req dtos.ScheduleAppointmentRequest
	if err := parseRequest(c, &req); err != nil {
		return respondError(c, err)
	}
	appointment, err := h.registry.ScheduleAppointment(c.UserContext(), req.PatientID, req.DoctorID, req.Date, req.Time)
	if err != nil {
		h.logger.Debug().Err(err).Str("patient_id", req.PatientID).Str("doctor_id", req.DoctorID).Msg("schedule request rejected")
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dtos.NewAppointmentDTO(appointment))
}

func (h *AppointmentHandler) List(c *fiber.Ctx) error {
	appointments, err := h.registry.ListAppointments(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dtos.NewAppointmentDTOs(appointments))
}

func (h *AppointmentHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dtos.UpdateAppointmentStatusRequest
	if err := parseRequest(c, &req); err != nil {
		return respondError(c, err)
	}
	appointment, err := h.registry.UpdateAppointmentStatus(c.UserContext(), c.Params("id"), req.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dtos.NewAppointmentDTO(appointment))
}
