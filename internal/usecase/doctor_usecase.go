package usecase

import (
	"context"
	"errors"
	"fmt"

	"go-clinic-management/internal/converter"
	"go-clinic-management/internal/delivery/dto"
	"go-clinic-management/internal/domain/entity"
	"go-clinic-management/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDoctorNotFound = errors.New("doctor not found")
	ErrInvalidWeekday = fmt.Errorf("%w: unknown weekday", ErrValidation)
)

type DoctorUsecase interface {
	CreateDoctor(ctx context.Context, req *dto.DoctorRequest) (*dto.DoctorResponse, error)
	GetDoctor(ctx context.Context, id int) (*dto.DoctorResponse, error)
	GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error)
	UpdateDoctor(ctx context.Context, id int, req *dto.DoctorRequest) (*dto.DoctorResponse, error)
	GetAvailability(ctx context.Context, id int) (*dto.AvailabilityResponse, error)
	SetAvailability(ctx context.Context, id int, req *dto.AvailabilityRequest) (*dto.AvailabilityResponse, error)
	DeleteDoctor(ctx context.Context, id int) error
}

type doctorUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	doctorRepo      repository.DoctorRepository
	appointmentRepo repository.AppointmentRepository
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	appointmentRepo repository.AppointmentRepository,
) DoctorUsecase {
	return &doctorUsecase{
		db:              db,
		log:             log,
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
	}
}

func (u *doctorUsecase) CreateDoctor(ctx context.Context, req *dto.DoctorRequest) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor := &entity.Doctor{
		LastName:  req.LastName,
		FirstName: req.FirstName,
		Specialty: req.Specialty,
		Office:    req.Office,
	}

	if err := u.doctorRepo.Create(ctx, tx, doctor); err != nil {
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, id int) (*dto.DoctorResponse, error) {
	doctor, err := u.findDoctor(ctx, u.db, id)
	if err != nil {
		return nil, err
	}
	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find all doctors: %+v", err)
		return nil, err
	}

	responses := converter.DoctorsToResponses(doctors)

	return &dto.DoctorListResponse{
		Doctors: responses,
		Total:   len(responses),
	}, nil
}

func (u *doctorUsecase) UpdateDoctor(ctx context.Context, id int, req *dto.DoctorRequest) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.findDoctor(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	// availability is edited on its own page and stays as stored
	doctor.LastName = req.LastName
	doctor.FirstName = req.FirstName
	doctor.Specialty = req.Specialty
	doctor.Office = req.Office

	if err := u.doctorRepo.Update(ctx, tx, doctor); err != nil {
		u.log.Warnf("Failed to update doctor: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetAvailability(ctx context.Context, id int) (*dto.AvailabilityResponse, error) {
	doctor, err := u.findDoctor(ctx, u.db, id)
	if err != nil {
		return nil, err
	}
	return converter.DoctorToAvailability(doctor), nil
}

// SetAvailability replaces the whole set; an empty request clears it
func (u *doctorUsecase) SetAvailability(ctx context.Context, id int, req *dto.AvailabilityRequest) (*dto.AvailabilityResponse, error) {
	days, err := entity.ParseWeekdaySet(req.Days)
	if err != nil {
		return nil, fmt.Errorf("%w (%v)", ErrInvalidWeekday, err)
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.findDoctor(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	if _, err := u.doctorRepo.UpdateAvailability(ctx, tx, id, days); err != nil {
		u.log.Warnf("Failed to update doctor availability: %+v", err)
		return nil, err
	}
	doctor.Availability = days

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DoctorToAvailability(doctor), nil
}

// DeleteDoctor removes the doctor's appointments, then the doctor, in one transaction
func (u *doctorUsecase) DeleteDoctor(ctx context.Context, id int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if _, err := u.findDoctor(ctx, tx, id); err != nil {
		return err
	}

	removed, err := u.appointmentRepo.DeleteByDoctorID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed delete doctor appointments: %+v", err)
		return err
	}

	affectedRows, err := u.doctorRepo.Delete(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed delete doctor: %+v", err)
		return err
	}

	if affectedRows == 0 {
		return ErrDoctorNotFound
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.log.WithFields(logrus.Fields{
		"doctor_id":    id,
		"appointments": removed,
	}).Info("Doctor deleted")

	return nil
}

func (u *doctorUsecase) findDoctor(ctx context.Context, db *gorm.DB, id int) (*entity.Doctor, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, db, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	return doctor, nil
}
