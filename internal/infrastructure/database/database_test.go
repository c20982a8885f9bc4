package database_test

import (
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"

	"go-clinic-management/config"
	"go-clinic-management/internal/domain/entity"
	"go-clinic-management/internal/infrastructure/database"
)

func TestNewConnectionRejectsUnknownDriver(t *testing.T) {
	c := qt.New(t)
	_, err := database.NewConnection(config.DBConfig{Driver: "oracle"})
	c.Assert(err, qt.ErrorMatches, `unsupported database driver "oracle"`)
}

func TestSQLiteMigrateAndForeignKeys(t *testing.T) {
	c := qt.New(t)
	db, err := database.NewConnection(config.DBConfig{
		Driver:   config.DriverSQLite,
		Path:     filepath.Join(t.TempDir(), "clinic.db"),
		LogLevel: "silent",
	})
	c.Assert(err, qt.IsNil)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	c.Assert(database.Migrate(db), qt.IsNil)
	// running it again on an up to date schema is a no-op
	c.Assert(database.Migrate(db), qt.IsNil)

	days, err := entity.ParseWeekdaySet([]string{"Mardi", "Samedi"})
	c.Assert(err, qt.IsNil)
	doctor := entity.Doctor{LastName: "Diallo", FirstName: "Awa", Specialty: "Cardiologie", Office: "Cabinet 3", Availability: days}
	c.Assert(db.Create(&doctor).Error, qt.IsNil)

	var got entity.Doctor
	c.Assert(db.First(&got, doctor.ID).Error, qt.IsNil)
	c.Assert(got.Availability.Names(), qt.DeepEquals, []string{"Mardi", "Samedi"})

	// appointments must reference an existing patient
	orphan := entity.Appointment{PatientID: 999, DoctorID: doctor.ID}
	c.Assert(db.Omit("Patient", "Doctor").Create(&orphan).Error, qt.Not(qt.IsNil))
}
