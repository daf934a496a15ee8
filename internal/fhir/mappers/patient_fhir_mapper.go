package mappers

import (
	"encoding/json"
	"fmt"
	"strings"

	"clinic-record-service/internal/domain/entities"
)

// Supported FHIR versions.
const (
	VersionSTU3  = "STU3"
	VersionDSTU2 = "DSTU2"
)

// AgeExtensionURL identifies the extension carrying the patient's age in years.
const AgeExtensionURL = "http://clinic-record-service/fhir/StructureDefinition/patient-age"

// FHIRHumanName represents a FHIR HumanName data type.
type FHIRHumanName struct {
	Use    string   `json:"use,omitempty"`
	Text   string   `json:"text,omitempty"`
	Family string   `json:"family,omitempty"`
	Given  []string `json:"given,omitempty"`
	Prefix []string `json:"prefix,omitempty"`
}

// FHIRContactPoint represents a FHIR ContactPoint (telecom) entry.
type FHIRContactPoint struct {
	System string `json:"system,omitempty"` // phone | email | other
	Value  string `json:"value"`
}

// FHIRExtension is a simplified FHIR extension holding an integer value.
type FHIRExtension struct {
	URL          string `json:"url"`
	ValueInteger int    `json:"valueInteger"`
}

// FHIRPatientGender represents the administrative gender of a patient.
// FHIR values: male | female | other | unknown
type FHIRPatientGender string

const (
	GenderMale    FHIRPatientGender = "male"
	GenderFemale  FHIRPatientGender = "female"
	GenderOther   FHIRPatientGender = "other"
	GenderUnknown FHIRPatientGender = "unknown"
)

// FHIRPatientResource represents a simplified FHIR Patient resource.
type FHIRPatientResource struct {
	ResourceType string             `json:"resourceType"` // Should be "Patient"
	ID           string             `json:"id,omitempty"`
	Name         []FHIRHumanName    `json:"name,omitempty"`
	Gender       FHIRPatientGender  `json:"gender,omitempty"`
	Telecom      []FHIRContactPoint `json:"telecom,omitempty"`
	Extension    []FHIRExtension    `json:"extension,omitempty"`
}

// ValidateVersion rejects FHIR versions the mappers do not produce.
func ValidateVersion(fhirVersion string) error {
	switch fhirVersion {
	case VersionSTU3, VersionDSTU2:
		return nil
	default:
		return fmt.Errorf("unsupported FHIR version %q", fhirVersion)
	}
}

// MapGender folds free-text gender onto the FHIR administrative gender codes.
func MapGender(gender string) FHIRPatientGender {
	switch strings.ToLower(strings.TrimSpace(gender)) {
	case "m", "male", "man":
		return GenderMale
	case "f", "female", "woman":
		return GenderFemale
	case "":
		return GenderUnknown
	default:
		return GenderOther
	}
}

// splitName turns "Given Middle Family" into family and given parts.
func splitName(full string) (family string, given []string) {
	parts := strings.Fields(full)
	if len(parts) < 2 {
		return "", parts
	}
	return parts[len(parts)-1], parts[:len(parts)-1]
}

// contactPoint guesses the telecom system from the contact text.
func contactPoint(contact string) FHIRContactPoint {
	system := "phone"
	if strings.Contains(contact, "@") {
		system = "email"
	}
	return FHIRContactPoint{System: system, Value: contact}
}

// BuildPatientResource converts a Patient entity to a FHIR Patient resource.
func BuildPatientResource(patient entities.Patient) (FHIRPatientResource, error) {
	if strings.TrimSpace(patient.Name) == "" {
		return FHIRPatientResource{}, fmt.Errorf("patient name is required for FHIR mapping")
	}
	family, given := splitName(patient.Name)
	resource := FHIRPatientResource{
		ResourceType: "Patient",
		ID:           patient.ID,
		Name: []FHIRHumanName{{
			Use:    "official",
			Text:   patient.Name,
			Family: family,
			Given:  given,
		}},
		Gender:    MapGender(patient.Gender),
		Extension: []FHIRExtension{{URL: AgeExtensionURL, ValueInteger: patient.Age}},
	}
	if patient.Contact != "" {
		resource.Telecom = []FHIRContactPoint{contactPoint(patient.Contact)}
	}
	return resource, nil
}

// MapPatientToFHIR converts a Patient entity to FHIR Patient JSON.
func MapPatientToFHIR(patient entities.Patient, fhirVersion string) (json.RawMessage, error) {
	if err := ValidateVersion(fhirVersion); err != nil {
		return nil, err
	}
	resource, err := BuildPatientResource(patient)
	if err != nil {
		return nil, err
	}
	rawJSON, err := json.MarshalIndent(resource, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error marshalling FHIR patient resource to JSON: %w", err)
	}
	return rawJSON, nil
}
