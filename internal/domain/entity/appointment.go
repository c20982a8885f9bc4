package entity

import "time"

// AppointmentDateLayout is the only accepted wire format for appointment dates
const AppointmentDateLayout = "2006-01-02T15:04"

// Appointment links a patient to a doctor at a given time
type Appointment struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID int       `gorm:"not null;index" json:"patient_id"`
	DoctorID  int       `gorm:"not null;index" json:"doctor_id"`
	Date      time.Time `gorm:"column:scheduled_at;not null;index" json:"date"`
	Completed bool      `gorm:"not null;default:false" json:"completed"`
	Notes     string    `gorm:"type:text" json:"notes,omitempty"`

	// Relationships
	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  *Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// MarkCompleted sets the completed flag. Nothing flips it automatically.
func (a *Appointment) MarkCompleted(done bool) {
	a.Completed = done
}
