package dto

import "time"

// Request DTOs

type AppointmentRequest struct {
	PatientID int    `form:"patient_id" validate:"required,gt=0"`
	DoctorID  int    `form:"medecin_id" validate:"required,gt=0"`
	Date      string `form:"date" validate:"required"` // Format: YYYY-MM-DDTHH:MM
	Notes     string `form:"notes"`
	Completed bool   `form:"effectue"`
}

// Response DTOs

type AppointmentResponse struct {
	ID            int       `json:"id"`
	PatientID     int       `json:"patient_id"`
	DoctorID      int       `json:"doctor_id"`
	PatientName   string    `json:"patient_name,omitempty"`
	DoctorName    string    `json:"doctor_name,omitempty"`
	Date          time.Time `json:"date"`
	DateFormatted string    `json:"date_formatted"`
	DateInput     string    `json:"date_input"`
	Completed     bool      `json:"completed"`
	Notes         string    `json:"notes,omitempty"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
