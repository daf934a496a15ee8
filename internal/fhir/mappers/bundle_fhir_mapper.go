package mappers

import (
	"encoding/json"
	"fmt"

	"clinic-record-service/internal/domain/entities"
)

// FHIRBundleEntry wraps one resource of a bundle.
type FHIRBundleEntry struct {
	FullURL  string          `json:"fullUrl"`
	Resource json.RawMessage `json:"resource"`
}

// FHIRBundle is a simplified FHIR Bundle of type "collection".
type FHIRBundle struct {
	ResourceType string            `json:"resourceType"` // "Bundle"
	Type         string            `json:"type"`
	Meta         map[string]string `json:"meta,omitempty"`
	Entry        []FHIRBundleEntry `json:"entry"`
}

func entry(kind, id string, resource interface{}) (FHIRBundleEntry, error) {
	raw, err := json.Marshal(resource)
	if err != nil {
		return FHIRBundleEntry{}, fmt.Errorf("marshalling %s/%s: %w", kind, id, err)
	}
	return FHIRBundleEntry{FullURL: kind + "/" + id, Resource: raw}, nil
}

// MapPatientRecordToFHIRBundle builds a collection bundle holding the patient,
// every doctor the patient has an appointment with, and those appointments.
// Each practitioner appears once, in order of first appointment.
func MapPatientRecordToFHIRBundle(patient entities.Patient, appointments []*entities.Appointment, fhirVersion string) (json.RawMessage, error) {
	if err := ValidateVersion(fhirVersion); err != nil {
		return nil, err
	}

	patientResource, err := BuildPatientResource(patient)
	if err != nil {
		return nil, err
	}
	first, err := entry("Patient", patient.ID, patientResource)
	if err != nil {
		return nil, err
	}
	bundle := FHIRBundle{
		ResourceType: "Bundle",
		Type:         "collection",
		Meta:         map[string]string{"fhirVersion": fhirVersion},
		Entry:        []FHIRBundleEntry{first},
	}

	seenDoctors := map[string]bool{}
	var appointmentEntries []FHIRBundleEntry
	for _, a := range appointments {
		if a == nil {
			continue
		}
		if a.Doctor != nil && !seenDoctors[a.Doctor.ID] {
			seenDoctors[a.Doctor.ID] = true
			practitioner, err := BuildPractitionerResource(*a.Doctor)
			if err != nil {
				return nil, err
			}
			e, err := entry("Practitioner", a.Doctor.ID, practitioner)
			if err != nil {
				return nil, err
			}
			bundle.Entry = append(bundle.Entry, e)
		}
		resource, err := BuildAppointmentResource(*a)
		if err != nil {
			return nil, err
		}
		e, err := entry("Appointment", a.ID, resource)
		if err != nil {
			return nil, err
		}
		appointmentEntries = append(appointmentEntries, e)
	}
	bundle.Entry = append(bundle.Entry, appointmentEntries...)

	rawJSON, err := json.Marshal(bundle)
	if err != nil {
		return nil, fmt.Errorf("error marshalling FHIR bundle to JSON: %w", err)
	}
	return rawJSON, nil
}
