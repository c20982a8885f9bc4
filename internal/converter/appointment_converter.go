package converter

import (
	"go-clinic-management/internal/delivery/dto"
	"go-clinic-management/internal/domain/entity"
)

// AppointmentDisplayLayout is how dates are shown in tables
const AppointmentDisplayLayout = "02/01/2006 15:04"

// AppointmentToResponse converts an Appointment entity. Names are filled only
// when the relationship was preloaded.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:            appointment.ID,
		PatientID:     appointment.PatientID,
		DoctorID:      appointment.DoctorID,
		Date:          appointment.Date,
		DateFormatted: appointment.Date.Format(AppointmentDisplayLayout),
		DateInput:     appointment.Date.Format(entity.AppointmentDateLayout),
		Completed:     appointment.Completed,
		Notes:         appointment.Notes,
	}
	if appointment.Patient != nil {
		response.PatientName = appointment.Patient.DisplayName()
	}
	if appointment.Doctor != nil {
		response.DoctorName = appointment.Doctor.DisplayName()
	}
	return response
}

func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
