package dto

// Request DTOs

type DoctorRequest struct {
	LastName  string `form:"nom" validate:"required,max=100"`
	FirstName string `form:"prenom" validate:"required,max=100"`
	Specialty string `form:"specialite" validate:"required,max=100"`
	Office    string `form:"cabinet" validate:"required,max=100"`
}

// AvailabilityRequest carries the weekday names ticked on the availability page
type AvailabilityRequest struct {
	Days []string `form:"jours"`
}

// Response DTOs

type DoctorResponse struct {
	ID           int      `json:"id"`
	LastName     string   `json:"last_name"`
	FirstName    string   `json:"first_name"`
	FullName     string   `json:"full_name"`
	Specialty    string   `json:"specialty"`
	Office       string   `json:"office"`
	Availability []string `json:"availability"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}

type WeekdayOption struct {
	Name    string `json:"name"`
	Checked bool   `json:"checked"`
}

type AvailabilityResponse struct {
	Doctor DoctorResponse  `json:"doctor"`
	Days   []WeekdayOption `json:"days"`
}
