package dto

// Request DTOs

type PatientRequest struct {
	LastName  string `form:"nom" validate:"required,max=100"`
	FirstName string `form:"prenom" validate:"required,max=100"`
	Age       int    `form:"age" validate:"required,gt=0"`
	Phone     string `form:"telephone" validate:"omitempty,max=20"`
	Email     string `form:"email" validate:"omitempty,email,max=100"`
}

// Response DTOs

type PatientResponse struct {
	ID        int    `json:"id"`
	LastName  string `json:"last_name"`
	FirstName string `json:"first_name"`
	FullName  string `json:"full_name"`
	Age       int    `json:"age"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}

// PatientDetailResponse is the patient page: the record and its appointment history
type PatientDetailResponse struct {
	Patient      PatientResponse         `json:"patient"`
	Appointments AppointmentListResponse `json:"appointments"`
}
