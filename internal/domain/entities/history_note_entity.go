package entities

import "time"

// HistoryNote is a single medical-history entry for a patient.
// Seq starts at 1 and orders the notes of one patient.
type HistoryNote struct {
	ID        uint      `json:"-" gorm:"primaryKey;autoIncrement"`
	PatientID string    `json:"patient_id" gorm:"size:16;not null;index"`
	Seq       int       `json:"seq" gorm:"not null"`
	Text      string    `json:"text" gorm:"not null"`
	CreatedAt time.Time `json:"created_at" gorm:"not null"`
}
