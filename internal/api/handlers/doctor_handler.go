package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"clinic-record-service/internal/domain/dtos"
	"clinic-record-service/internal/domain/entities"
	"clinic-record-service/internal/services"
)

type DoctorHandler struct {
	registry services.RegistryServiceContract
	logger   zerolog.Logger
}

func NewDoctorHandler(registry services.RegistryServiceContract, logger zerolog.Logger) *DoctorHandler {
	return &DoctorHandler{registry: registry, logger: logger}
}

func (h *DoctorHandler) Create(c *fiber.Ctx) error {
	var req dtos.CreateDoctorRequest
	if err := parseRequest(c, &req); err != nil {
		return respondError(c, err)
	}
	doctor, err := h.registry.CreateDoctor(c.UserContext(), req.Name, req.Specialization, req.Contact)
	if err != nil {
		h.logger.Debug().Err(err).Msg("create doctor request rejected")
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dtos.NewDoctorDTO(doctor))
}

func (h *DoctorHandler) List(c *fiber.Ctx) error {
	doctors, err := h.registry.ListDoctors(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dtos.NewDoctorDTOs(doctors))
}

func (h *DoctorHandler) Get(c *fiber.Ctx) error {
	doctor, ok := h.registry.FindDoctorByID(c.UserContext(), c.Params("id"))
	if !ok {
		return respondError(c, entities.NewReferenceError(entities.KindDoctor, c.Params("id")))
	}
	return c.JSON(dtos.NewDoctorDTO(doctor))
}

func (h *DoctorHandler) Appointments(c *fiber.Ctx) error {
	appointments, err := h.registry.ListAppointmentsByDoctor(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dtos.NewAppointmentDTOs(appointments))
}
