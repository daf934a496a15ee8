package mappers

import (
	"fmt"
	"strings"

	"clinic-record-service/internal/domain/entities"
)

// FHIRCodeableText is a CodeableConcept carrying only free text.
type FHIRCodeableText struct {
	Text string `json:"text"`
}

// FHIRQualification is a simplified Practitioner.qualification entry.
type FHIRQualification struct {
	Code FHIRCodeableText `json:"code"`
}

// FHIRPractitionerResource represents a simplified FHIR Practitioner resource.
type FHIRPractitionerResource struct {
	ResourceType  string              `json:"resourceType"` // "Practitioner"
	ID            string              `json:"id,omitempty"`
	Name          []FHIRHumanName     `json:"name,omitempty"`
	Telecom       []FHIRContactPoint  `json:"telecom,omitempty"`
	Qualification []FHIRQualification `json:"qualification,omitempty"`
}

// BuildPractitionerResource converts a Doctor entity to a FHIR Practitioner.
// A leading "Dr." in the name becomes a prefix.
func BuildPractitionerResource(doctor entities.Doctor) (FHIRPractitionerResource, error) {
	if strings.TrimSpace(doctor.Name) == "" {
		return FHIRPractitionerResource{}, fmt.Errorf("doctor name is required for FHIR mapping")
	}
	name := strings.TrimSpace(doctor.Name)
	var prefix []string
	if rest, ok := strings.CutPrefix(name, "Dr. "); ok {
		prefix = []string{"Dr."}
		name = rest
	}
	family, given := splitName(name)

	resource := FHIRPractitionerResource{
		ResourceType: "Practitioner",
		ID:           doctor.ID,
		Name: []FHIRHumanName{{
			Use:    "official",
			Text:   doctor.Name,
			Family: family,
			Given:  given,
			Prefix: prefix,
		}},
	}
	if doctor.Contact != "" {
		resource.Telecom = []FHIRContactPoint{contactPoint(doctor.Contact)}
	}
	if doctor.Specialization != "" {
		resource.Qualification = []FHIRQualification{{Code: FHIRCodeableText{Text: doctor.Specialization}}}
	}
	return resource, nil
}
