package services

import (
	"context"

	"clinic-record-service/internal/domain/dtos"
)

// ExportServiceContract defines the operations of the FHIR record export service.
type ExportServiceContract interface {
	Start(ctx context.Context) error // starts the export queue consumer
	Stop(ctx context.Context) error  // stops the export queue consumer

	// InitiateExport snapshots a patient's record as a FHIR bundle and queues it.
	// It returns the export ID used to poll ExportStatus.
	InitiateExport(ctx context.Context, request dtos.InitiateExportRequest) (exportID string, err error)

	// ExportStatus reports the progress of a previously initiated export.
	ExportStatus(exportID string) (dtos.ExportStatusResponse, bool)
}
