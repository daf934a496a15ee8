package entities

import (
	"strings"
	"time"
)

// AppointmentStatus is the lifecycle state of an appointment.
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "Scheduled"
	StatusCompleted AppointmentStatus = "Completed"
	StatusCancelled AppointmentStatus = "Cancelled"
)

// AppointmentStatuses lists every accepted status in menu order.
var AppointmentStatuses = []AppointmentStatus{StatusScheduled, StatusCompleted, StatusCancelled}

// ParseAppointmentStatus matches raw case-insensitively against the known statuses.
func ParseAppointmentStatus(raw string) (AppointmentStatus, error) {
	trimmed := strings.TrimSpace(raw)
	for _, s := range AppointmentStatuses {
		if strings.EqualFold(trimmed, string(s)) {
			return s, nil
		}
	}
	if trimmed == "" {
		return "", NewValidationError("status", "must not be empty")
	}
	return "", NewValidationError("status", "unrecognized value "+`"`+trimmed+`"`)
}

// Appointment links one patient and one doctor. Patient and Doctor are
// snapshots loaded alongside the appointment; the patient and doctor
// collections own the records.
type Appointment struct {
	ID        string            `json:"id" gorm:"primaryKey;size:16"`
	Seq       int64             `json:"-" gorm:"not null;index"`
	PatientID string            `json:"patient_id" gorm:"size:16;not null;index"`
	Patient   *Patient          `json:"-" gorm:"foreignKey:PatientID"`
	DoctorID  string            `json:"doctor_id" gorm:"size:16;not null;index"`
	Doctor    *Doctor           `json:"-" gorm:"foreignKey:DoctorID"`
	Date      string            `json:"date" gorm:"column:appointment_date;not null"`
	Time      string            `json:"time" gorm:"column:appointment_time;not null"`
	Status    AppointmentStatus `json:"status" gorm:"size:16;not null"`
	CreatedAt time.Time         `json:"created_at" gorm:"not null"`
	UpdatedAt time.Time         `json:"updated_at" gorm:"not null"`
}

// SetStatus replaces the appointment status.
func (a *Appointment) SetStatus(status AppointmentStatus) {
	a.Status = status
	a.UpdatedAt = time.Now()
}

// Clone returns a deep copy of the appointment, including its patient and doctor.
func (a *Appointment) Clone() *Appointment {
	if a == nil {
		return nil
	}
	c := *a
	c.Patient = a.Patient.Clone()
	c.Doctor = a.Doctor.Clone()
	return &c
}
