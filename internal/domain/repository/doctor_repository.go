package repository

import (
	"context"

	"go-clinic-management/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(ctx context.Context, db *gorm.DB, doctor *entity.Doctor) error
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Doctor, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Doctor, error)
	Update(ctx context.Context, db *gorm.DB, doctor *entity.Doctor) error
	UpdateAvailability(ctx context.Context, db *gorm.DB, id int, days entity.WeekdaySet) (int64, error)
	Delete(ctx context.Context, db *gorm.DB, id int) (int64, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
}
