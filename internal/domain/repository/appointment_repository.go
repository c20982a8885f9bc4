package repository

import (
	"context"

	"go-clinic-management/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Appointment, error)
	FindRecent(ctx context.Context, db *gorm.DB, limit int) ([]entity.Appointment, error)
	FindByPatientID(ctx context.Context, db *gorm.DB, patientID int) ([]entity.Appointment, error)
	Update(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error
	Delete(ctx context.Context, db *gorm.DB, id int) (int64, error)
	DeleteByDoctorID(ctx context.Context, db *gorm.DB, doctorID int) (int64, error)
	DeleteByPatientID(ctx context.Context, db *gorm.DB, patientID int) (int64, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
}
