package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"clinic-record-service/internal/adapters"
	"clinic-record-service/internal/domain/dtos"
	"clinic-record-service/internal/domain/entities"
	"clinic-record-service/internal/fhir/mappers"
)

const PatientExportQueue = "patient_export_jobs"

// ExportJobData is the message published on PatientExportQueue.
type ExportJobData struct {
	ExportID    string          `json:"exportId"`
	PatientID   string          `json:"patientId"`
	FHIRVersion string          `json:"fhirVersion"`
	FHIRBundle  json.RawMessage `json:"fhirBundle"`
	RequestedAt time.Time       `json:"requestedAt"`
}

// ExportServiceImpl implements ExportServiceContract.
type ExportServiceImpl struct {
	registry     RegistryServiceContract
	queueAdapter adapters.QueueAdapter
	logger       zerolog.Logger

	mu      sync.RWMutex
	exports map[string]dtos.ExportStatusResponse
}

// NewExportService creates an export service reading from registry and publishing to queueAdapter.
func NewExportService(
	registry RegistryServiceContract,
	queueAdapter adapters.QueueAdapter,
	logger zerolog.Logger,
) ExportServiceContract {
	return &ExportServiceImpl{
		registry:     registry,
		queueAdapter: queueAdapter,
		logger:       logger.With().Str("component", "export").Logger(),
		exports:      make(map[string]dtos.ExportStatusResponse),
	}
}

func (s *ExportServiceImpl) Start(ctx context.Context) error {
	if err := s.queueAdapter.StartConsuming(ctx, PatientExportQueue, s.handlePatientExportJob); err != nil {
		return fmt.Errorf("starting consumer for %s: %w", PatientExportQueue, err)
	}
	s.logger.Info().Str("queue", PatientExportQueue).Msg("export service started")
	return nil
}

func (s *ExportServiceImpl) Stop(ctx context.Context) error {
	if err := s.queueAdapter.StopConsuming(ctx, PatientExportQueue); err != nil {
		return fmt.Errorf("stopping consumer for %s: %w", PatientExportQueue, err)
	}
	s.logger.Info().Msg("export service stopped")
	return nil
}

func (s *ExportServiceImpl) InitiateExport(ctx context.Context, request dtos.InitiateExportRequest) (string, error) {
	if err := mappers.ValidateVersion(request.FHIRVersion); err != nil {
		return "", entities.NewValidationError("fhirVersion", err.Error())
	}

	patient, ok := s.registry.FindPatientByID(ctx, request.PatientID)
	if !ok {
		return "", entities.NewReferenceError(entities.KindPatient, request.PatientID)
	}
	appointments, err := s.registry.ListAppointmentsByPatient(ctx, patient.ID)
	if err != nil {
		return "", err
	}

	bundle, err := mappers.MapPatientRecordToFHIRBundle(*patient, appointments, request.FHIRVersion)
	if err != nil {
		return "", fmt.Errorf("FHIR mapping for patient %s: %w", patient.ID, err)
	}

	exportID := uuid.New().String()
	jobBytes, err := json.Marshal(ExportJobData{
		ExportID:    exportID,
		PatientID:   patient.ID,
		FHIRVersion: request.FHIRVersion,
		FHIRBundle:  bundle,
		RequestedAt: time.Now().UTC(),
	})
	if err != nil {
		return "", fmt.Errorf("encoding export job: %w", err)
	}

	s.setStatus(exportID, dtos.ExportStatusResponse{TransferProgress: dtos.TransferProgress{
		TransferID: exportID,
		Status:     dtos.ExportPending,
		Message:    "Export queued.",
	}})
	if err := s.queueAdapter.Publish(ctx, PatientExportQueue, jobBytes); err != nil {
		s.forget(exportID)
		return "", fmt.Errorf("enqueueing export job: %w", err)
	}

	s.logger.Info().Str("export_id", exportID).Str("patient_id", patient.ID).Msg("export queued")
	return exportID, nil
}

func (s *ExportServiceImpl) ExportStatus(exportID string) (dtos.ExportStatusResponse, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	status, ok := s.exports[exportID]
	return status, ok
}

func (s *ExportServiceImpl) setStatus(exportID string, status dtos.ExportStatusResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exports[exportID] = status
}

func (s *ExportServiceImpl) forget(exportID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.exports, exportID)
}

// handlePatientExportJob consumes one export job and marks it completed.
func (s *ExportServiceImpl) handlePatientExportJob(ctx context.Context, jobData []byte) error {
	var job ExportJobData
	if err := json.Unmarshal(jobData, &job); err != nil {
		return fmt.Errorf("decoding export job: %w", err)
	}

	s.logger.Info().
		Str("export_id", job.ExportID).
		Str("patient_id", job.PatientID).
		Str("fhir_version", job.FHIRVersion).
		Int("bundle_bytes", len(job.FHIRBundle)).
		Msg("export job received")

	s.setStatus(job.ExportID, dtos.ExportStatusResponse{
		TransferProgress: dtos.TransferProgress{
			TransferID: job.ExportID,
			Status:     dtos.ExportCompleted,
			Message:    "Export completed.",
		},
		FHIRBundle: job.FHIRBundle,
	})

	s.logger.Info().Str("export_id", job.ExportID).Msg("export job completed")
	return nil
}
