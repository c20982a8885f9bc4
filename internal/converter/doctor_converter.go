package converter

import (
	"go-clinic-management/internal/delivery/dto"
	"go-clinic-management/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:           doctor.ID,
		LastName:     doctor.LastName,
		FirstName:    doctor.FirstName,
		FullName:     doctor.DisplayName(),
		Specialty:    doctor.Specialty,
		Office:       doctor.Office,
		Availability: doctor.Availability.Names(),
	}
}

// DoctorsToResponses converts a slice of Doctor entities to DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}

// DoctorToAvailability lists every weekday with its checked state
func DoctorToAvailability(doctor *entity.Doctor) *dto.AvailabilityResponse {
	if doctor == nil {
		return nil
	}

	days := make([]dto.WeekdayOption, len(entity.Weekdays))
	for i, d := range entity.Weekdays {
		days[i] = dto.WeekdayOption{
			Name:    d.String(),
			Checked: doctor.Availability.Has(d),
		}
	}

	return &dto.AvailabilityResponse{
		Doctor: *DoctorToResponse(doctor),
		Days:   days,
	}
}
