package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"clinic-record-service/internal/domain/dtos"
	"clinic-record-service/internal/services"
)

const exportTimeout = 30 * time.Second

type ExportHandler struct {
	exportService services.ExportServiceContract
	logger        zerolog.Logger
}

func NewExportHandler(es services.ExportServiceContract, logger zerolog.Logger) *ExportHandler {
	return &ExportHandler{exportService: es, logger: logger}
}

func (h *ExportHandler) InitiateExport(c *fiber.Ctx) error {
	var req dtos.InitiateExportRequest
	if err := parseRequest(c, &req); err != nil {
		return respondError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), exportTimeout)
	defer cancel()

	exportID, err := h.exportService.InitiateExport(ctx, req)
	if err != nil {
		h.logger.Warn().Err(err).Str("patient_id", req.PatientID).Msg("export not started")
		return respondError(c, err)
	}

	// 202: the bundle is delivered asynchronously through the export queue.
	return c.Status(fiber.StatusAccepted).JSON(dtos.ExportStatusResponse{
		TransferProgress: dtos.TransferProgress{
			TransferID: exportID,
			Status:     dtos.ExportPending,
			Message:    "Export queued.",
		},
	})
}

func (h *ExportHandler) Status(c *fiber.Ctx) error {
	status, ok := h.exportService.ExportStatus(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "export not found"})
	}
	return c.JSON(status)
}
