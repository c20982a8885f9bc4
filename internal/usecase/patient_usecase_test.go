package usecase_test

import (
	"context"
	"testing"

	qt "github.com/frankban/quicktest"

	"go-clinic-management/internal/delivery/dto"
	"go-clinic-management/internal/usecase"
)

func TestPatientCRUD(t *testing.T) {
	c := qt.New(t)
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.patients.CreatePatient(ctx, &dto.PatientRequest{
		LastName:  "Kouassi",
		FirstName: "Yao",
		Age:       34,
		Email:     "yao@example.com",
	})
	c.Assert(err, qt.IsNil)

	got, err := f.patients.GetPatient(ctx, created.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.DeepEquals, created)
	c.Assert(got.Phone, qt.Equals, "")

	updated, err := f.patients.UpdatePatient(ctx, created.ID, &dto.PatientRequest{
		LastName:  "Kouassi",
		FirstName: "Yao",
		Age:       35,
		Phone:     "0700000000",
	})
	c.Assert(err, qt.IsNil)
	c.Assert(updated.Age, qt.Equals, 35)
	c.Assert(updated.Email, qt.Equals, "")

	list, err := f.patients.GetAllPatients(ctx)
	c.Assert(err, qt.IsNil)
	c.Assert(list.Total, qt.Equals, 1)
	c.Assert(list.Patients[0].Phone, qt.Equals, "0700000000")

	_, err = f.patients.UpdatePatient(ctx, created.ID+1, &dto.PatientRequest{LastName: "A", FirstName: "B", Age: 1})
	c.Assert(err, qt.ErrorIs, usecase.ErrPatientNotFound)
}

func TestDeletePatientCascades(t *testing.T) {
	c := qt.New(t)
	f := newFixture(t)
	ctx := context.Background()

	doctor := f.createDoctor(t, "Diallo")
	patient := f.createPatient(t, "Kouassi")
	other := f.createPatient(t, "Bamba")
	gone := f.createAppointment(t, patient.ID, doctor.ID, "2024-03-10T09:00")
	kept := f.createAppointment(t, other.ID, doctor.ID, "2024-03-10T10:00")

	c.Assert(f.patients.DeletePatient(ctx, patient.ID), qt.IsNil)

	_, err := f.patients.GetPatient(ctx, patient.ID)
	c.Assert(err, qt.ErrorIs, usecase.ErrPatientNotFound)
	_, err = f.appointments.GetAppointment(ctx, gone.ID)
	c.Assert(err, qt.ErrorIs, usecase.ErrAppointmentNotFound)
	_, err = f.appointments.GetAppointment(ctx, kept.ID)
	c.Assert(err, qt.IsNil)

	c.Assert(f.patients.DeletePatient(ctx, patient.ID), qt.ErrorIs, usecase.ErrPatientNotFound)
}
