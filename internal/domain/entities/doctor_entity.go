package entities

import "time"

// Doctor represents a doctor. Doctors are immutable after creation.
type Doctor struct {
	ID             string    `json:"id" gorm:"primaryKey;size:16"`
	Seq            int64     `json:"-" gorm:"not null;index"`
	Name           string    `json:"name" gorm:"not null"`
	Specialization string    `json:"specialization" gorm:"not null"`
	Contact        string    `json:"contact" gorm:"not null"`
	CreatedAt      time.Time `json:"created_at" gorm:"not null"`
}

// Clone returns a copy of the doctor.
func (d *Doctor) Clone() *Doctor {
	if d == nil {
		return nil
	}
	c := *d
	return &c
}
