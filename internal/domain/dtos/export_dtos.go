package dtos

import "encoding/json"

// Export progress states.
const (
	ExportPending   = "PENDING"
	ExportCompleted = "COMPLETED"
)

// InitiateExportRequest starts a FHIR export of one patient's record.
type InitiateExportRequest struct {
	PatientID   string `json:"patientId" validate:"required"`
	FHIRVersion string `json:"fhirVersion" validate:"required,oneof=STU3 DSTU2"`
}

// TransferProgress represents common fields for export status responses.
type TransferProgress struct {
	TransferID string `json:"transferId"`
	Status     string `json:"status"`
	Message    string `json:"message,omitempty"`
}

// ExportStatusResponse is the response for an export operation.
type ExportStatusResponse struct {
	TransferProgress
	FHIRBundle json.RawMessage `json:"fhirBundle,omitempty"` // set once the export job has been processed
}
