package dto

type DashboardResponse struct {
	DoctorCount        int64                 `json:"doctor_count"`
	PatientCount       int64                 `json:"patient_count"`
	AppointmentCount   int64                 `json:"appointment_count"`
	RecentAppointments []AppointmentResponse `json:"recent_appointments"`
}
