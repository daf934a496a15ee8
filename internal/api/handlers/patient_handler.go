package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"clinic-record-service/internal/domain/dtos"
	"clinic-record-service/internal/domain/entities"
	"clinic-record-service/internal/services"
)

type PatientHandler struct {
	registry services.RegistryServiceContract
	logger   zerolog.Logger
}

func NewPatientHandler(registry services.RegistryServiceContract, logger zerolog.Logger) *PatientHandler {
	return &PatientHandler{registry: registry, logger: logger}
}

func (h *PatientHandler) Create(c *fiber.Ctx) error {
	var req dtos.CreatePatientRequest
	if err := parseRequest(c, &req); err != nil {
		return respondError(c, err)
	}
	patient, err := h.registry.CreatePatient(c.UserContext(), req.Name, req.Age, req.Gender, req.Contact)
	if err != nil {
		h.logger.Debug().Err(err).Msg("create patient request rejected")
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dtos.NewPatientDTO(patient))
}

func (h *PatientHandler) List(c *fiber.Ctx) error {
	patients, err := h.registry.ListPatients(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dtos.NewPatientDTOs(patients))
}

func (h *PatientHandler) Get(c *fiber.Ctx) error {
	patient, ok := h.registry.FindPatientByID(c.UserContext(), c.Params("id"))
	if !ok {
		return respondError(c, entities.NewReferenceError(entities.KindPatient, c.Params("id")))
	}
	return c.JSON(dtos.NewPatientDTO(patient))
}

func (h *PatientHandler) History(c *fiber.Ctx) error {
	history, err := h.registry.GetPatientHistory(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dtos.NewHistoryDTOs(history))
}

func (h *PatientHandler) AddNote(c *fiber.Ctx) error {
	var req dtos.AddNoteRequest
	if err := parseRequest(c, &req); err != nil {
		return respondError(c, err)
	}
	patient, err := h.registry.AddPatientNote(c.UserContext(), c.Params("id"), req.Text)
	if err != nil {
		h.logger.Debug().Err(err).Str("patient_id", c.Params("id")).Msg("add note request rejected")
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dtos.NewPatientDTO(patient))
}

func (h *PatientHandler) Appointments(c *fiber.Ctx) error {
	appointments, err := h.registry.ListAppointmentsByPatient(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dtos.NewAppointmentDTOs(appointments))
}
