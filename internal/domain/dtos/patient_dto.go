package dtos

import (
	"time"

	"clinic-record-service/internal/domain/entities"
)

// HistoryNoteDTO represents one medical-history entry in API responses.
type HistoryNoteDTO struct {
	Seq       int       `json:"seq"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// PatientDTO represents patient data in API responses.
type PatientDTO struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Age       int              `json:"age"`
	Gender    string           `json:"gender"`
	Contact   string           `json:"contact"`
	History   []HistoryNoteDTO `json:"history"`
	CreatedAt time.Time        `json:"created_at"`
}

// NewHistoryDTOs converts history notes, keeping their order.
func NewHistoryDTOs(notes []entities.HistoryNote) []HistoryNoteDTO {
	out := make([]HistoryNoteDTO, 0, len(notes))
	for _, n := range notes {
		out = append(out, HistoryNoteDTO{Seq: n.Seq, Text: n.Text, CreatedAt: n.CreatedAt})
	}
	return out
}

func NewPatientDTO(p *entities.Patient) PatientDTO {
	return PatientDTO{
		ID:        p.ID,
		Name:      p.Name,
		Age:       p.Age,
		Gender:    p.Gender,
		Contact:   p.Contact,
		History:   NewHistoryDTOs(p.History),
		CreatedAt: p.CreatedAt,
	}
}

func NewPatientDTOs(patients []*entities.Patient) []PatientDTO {
	out := make([]PatientDTO, 0, len(patients))
	for _, p := range patients {
		out = append(out, NewPatientDTO(p))
	}
	return out
}
