package usecase_test

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"go-clinic-management/config"
	"go-clinic-management/internal/delivery/dto"
	"go-clinic-management/internal/infrastructure/database"
	"go-clinic-management/internal/repository"
	"go-clinic-management/internal/usecase"
)

type fixture struct {
	db           *gorm.DB
	doctors      usecase.DoctorUsecase
	patients     usecase.PatientUsecase
	appointments usecase.AppointmentUsecase
	dashboard    usecase.DashboardUsecase
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewSQLiteConnection(config.DBConfig{
		Path:     filepath.Join(t.TempDir(), "clinic.db"),
		LogLevel: "silent",
	})
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, database.Migrate(db), qt.IsNil)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newTestDB(t)
	log := newTestLogger()

	doctorRepo := repository.NewDoctorRepository()
	patientRepo := repository.NewPatientRepository()
	appointmentRepo := repository.NewAppointmentRepository()

	return &fixture{
		db:           db,
		doctors:      usecase.NewDoctorUsecase(db, log, doctorRepo, appointmentRepo),
		patients:     usecase.NewPatientUsecase(db, log, patientRepo, appointmentRepo),
		appointments: usecase.NewAppointmentUsecase(db, log, appointmentRepo, patientRepo, doctorRepo),
		dashboard:    usecase.NewDashboardUsecase(db, log, doctorRepo, patientRepo, appointmentRepo),
	}
}

func (f *fixture) createDoctor(t *testing.T, lastName string) *dto.DoctorResponse {
	t.Helper()
	doctor, err := f.doctors.CreateDoctor(context.Background(), &dto.DoctorRequest{
		LastName:  lastName,
		FirstName: "Awa",
		Specialty: "Cardiologie",
		Office:    "Cabinet 3",
	})
	qt.Assert(t, err, qt.IsNil)
	return doctor
}

func (f *fixture) createPatient(t *testing.T, lastName string) *dto.PatientResponse {
	t.Helper()
	patient, err := f.patients.CreatePatient(context.Background(), &dto.PatientRequest{
		LastName:  lastName,
		FirstName: "Yao",
		Age:       34,
		Phone:     "0102030405",
	})
	qt.Assert(t, err, qt.IsNil)
	return patient
}

func (f *fixture) createAppointment(t *testing.T, patientID, doctorID int, date string) *dto.AppointmentResponse {
	t.Helper()
	appointment, err := f.appointments.CreateAppointment(context.Background(), &dto.AppointmentRequest{
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      date,
	})
	qt.Assert(t, err, qt.IsNil)
	return appointment
}
