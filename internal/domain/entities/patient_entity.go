package entities

import (
	"strings"
	"time"
)

// PatientCreatedNote is the first entry of every patient history.
const PatientCreatedNote = "Patient record created."

// Patient represents a patient in the system.
// History is append-only and kept in insertion order.
type Patient struct {
	ID        string        `json:"id" gorm:"primaryKey;size:16"`
	Seq       int64         `json:"-" gorm:"not null;index"`
	Name      string        `json:"name" gorm:"not null"`
	Age       int           `json:"age" gorm:"not null"`
	Gender    string        `json:"gender" gorm:"not null"`
	Contact   string        `json:"contact" gorm:"not null"`
	History   []HistoryNote `json:"history" gorm:"foreignKey:PatientID"`
	CreatedAt time.Time     `json:"created_at" gorm:"not null"` // gorm will default to autoCreateTime
}

// AddNote appends a note to the patient's history.
func (p *Patient) AddNote(text string) error {
	if strings.TrimSpace(text) == "" {
		return NewValidationError("note", "text must not be empty")
	}
	p.History = append(p.History, HistoryNote{
		PatientID: p.ID,
		Seq:       len(p.History) + 1,
		Text:      text,
		CreatedAt: time.Now(),
	})
	return nil
}

// LastNote returns the most recent history entry, if any.
func (p *Patient) LastNote() (HistoryNote, bool) {
	if len(p.History) == 0 {
		return HistoryNote{}, false
	}
	return p.History[len(p.History)-1], true
}

// Clone returns a copy of the patient that shares no history storage with p.
func (p *Patient) Clone() *Patient {
	if p == nil {
		return nil
	}
	c := *p
	c.History = make([]HistoryNote, len(p.History))
	copy(c.History, p.History)
	return &c
}
