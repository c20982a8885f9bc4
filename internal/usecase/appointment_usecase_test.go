package usecase_test

import (
	"context"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"

	"go-clinic-management/internal/delivery/dto"
	"go-clinic-management/internal/usecase"
)

func TestParseAppointmentDate(t *testing.T) {
	c := qt.New(t)

	date, err := usecase.ParseAppointmentDate("2024-03-10T14:30")
	c.Assert(err, qt.IsNil)
	c.Assert(date, qt.Equals, time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC))

	for _, value := range []string{"", "2024-03-10", "2024-03-10 14:30", "10/03/2024 14:30", "2024-13-10T14:30", "2024-03-10T14:30:00"} {
		_, err := usecase.ParseAppointmentDate(value)
		c.Assert(err, qt.ErrorIs, usecase.ErrInvalidDateFormat, qt.Commentf("value %q", value))
	}
}

func TestCreateAppointment(t *testing.T) {
	c := qt.New(t)
	f := newFixture(t)
	ctx := context.Background()

	doctor := f.createDoctor(t, "Diallo")
	patient := f.createPatient(t, "Kouassi")

	created, err := f.appointments.CreateAppointment(ctx, &dto.AppointmentRequest{
		PatientID: patient.ID,
		DoctorID:  doctor.ID,
		Date:      "2024-03-10T14:30",
		Notes:     "Contrôle annuel",
	})
	c.Assert(err, qt.IsNil)
	c.Assert(created.Completed, qt.IsFalse)
	c.Assert(created.PatientName, qt.Equals, "Yao Kouassi")
	c.Assert(created.DoctorName, qt.Equals, "Awa Diallo")
	c.Assert(created.DateFormatted, qt.Equals, "10/03/2024 14:30")

	got, err := f.appointments.GetAppointment(ctx, created.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(got.Notes, qt.Equals, "Contrôle annuel")
	c.Assert(got.DateInput, qt.Equals, "2024-03-10T14:30")
	c.Assert(got.PatientName, qt.Equals, "Yao Kouassi")
	c.Assert(got.DoctorName, qt.Equals, "Awa Diallo")
}

func TestCreateAppointmentRejectsBadInput(t *testing.T) {
	c := qt.New(t)
	f := newFixture(t)
	ctx := context.Background()

	doctor := f.createDoctor(t, "Diallo")
	patient := f.createPatient(t, "Kouassi")

	tests := []struct {
		name string
		req  dto.AppointmentRequest
		err  error
	}{{
		name: "unknown patient",
		req:  dto.AppointmentRequest{PatientID: patient.ID + 99, DoctorID: doctor.ID, Date: "2024-03-10T14:30"},
		err:  usecase.ErrUnknownPatient,
	}, {
		name: "unknown doctor",
		req:  dto.AppointmentRequest{PatientID: patient.ID, DoctorID: doctor.ID + 99, Date: "2024-03-10T14:30"},
		err:  usecase.ErrUnknownDoctor,
	}, {
		name: "bad date",
		req:  dto.AppointmentRequest{PatientID: patient.ID, DoctorID: doctor.ID, Date: "10/03/2024"},
		err:  usecase.ErrInvalidDateFormat,
	}}

	for _, test := range tests {
		c.Run(test.name, func(c *qt.C) {
			req := test.req
			_, err := f.appointments.CreateAppointment(ctx, &req)
			c.Assert(err, qt.ErrorIs, test.err)
			c.Assert(err, qt.ErrorIs, usecase.ErrValidation)
		})
	}

	dashboard, err := f.dashboard.GetDashboard(ctx)
	c.Assert(err, qt.IsNil)
	c.Assert(dashboard.AppointmentCount, qt.Equals, int64(0))
}

func TestUpdateAppointment(t *testing.T) {
	c := qt.New(t)
	f := newFixture(t)
	ctx := context.Background()

	doctor := f.createDoctor(t, "Diallo")
	other := f.createDoctor(t, "Traoré")
	patient := f.createPatient(t, "Kouassi")
	appointment := f.createAppointment(t, patient.ID, doctor.ID, "2024-03-10T09:00")

	updated, err := f.appointments.UpdateAppointment(ctx, appointment.ID, &dto.AppointmentRequest{
		PatientID: patient.ID,
		DoctorID:  other.ID,
		Date:      "2024-03-11T10:15",
		Notes:     "Déplacé",
		Completed: true,
	})
	c.Assert(err, qt.IsNil)
	c.Assert(updated.DoctorName, qt.Equals, "Awa Traoré")

	got, err := f.appointments.GetAppointment(ctx, appointment.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(got.DoctorID, qt.Equals, other.ID)
	c.Assert(got.DateInput, qt.Equals, "2024-03-11T10:15")
	c.Assert(got.Notes, qt.Equals, "Déplacé")
	c.Assert(got.Completed, qt.IsTrue)

	// an unchecked box reopens the appointment
	_, err = f.appointments.UpdateAppointment(ctx, appointment.ID, &dto.AppointmentRequest{
		PatientID: patient.ID,
		DoctorID:  other.ID,
		Date:      "2024-03-11T10:15",
	})
	c.Assert(err, qt.IsNil)
	got, err = f.appointments.GetAppointment(ctx, appointment.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(got.Completed, qt.IsFalse)
	c.Assert(got.Notes, qt.Equals, "")

	_, err = f.appointments.UpdateAppointment(ctx, appointment.ID, &dto.AppointmentRequest{
		PatientID: patient.ID + 50,
		DoctorID:  other.ID,
		Date:      "2024-03-11T10:15",
	})
	c.Assert(err, qt.ErrorIs, usecase.ErrUnknownPatient)
	got, err = f.appointments.GetAppointment(ctx, appointment.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(got.PatientID, qt.Equals, patient.ID)

	_, err = f.appointments.UpdateAppointment(ctx, appointment.ID+50, &dto.AppointmentRequest{
		PatientID: patient.ID,
		DoctorID:  other.ID,
		Date:      "2024-03-11T10:15",
	})
	c.Assert(err, qt.ErrorIs, usecase.ErrAppointmentNotFound)
}

func TestDeleteAppointment(t *testing.T) {
	c := qt.New(t)
	f := newFixture(t)
	ctx := context.Background()

	appointment := f.createAppointment(t, f.createPatient(t, "Kouassi").ID, f.createDoctor(t, "Diallo").ID, "2024-03-10T09:00")

	c.Assert(f.appointments.DeleteAppointment(ctx, appointment.ID), qt.IsNil)
	_, err := f.appointments.GetAppointment(ctx, appointment.ID)
	c.Assert(err, qt.ErrorIs, usecase.ErrAppointmentNotFound)
	c.Assert(f.appointments.DeleteAppointment(ctx, appointment.ID), qt.ErrorIs, usecase.ErrAppointmentNotFound)
}

func TestGetRecentAppointments(t *testing.T) {
	c := qt.New(t)
	f := newFixture(t)
	ctx := context.Background()

	doctor := f.createDoctor(t, "Diallo")
	patient := f.createPatient(t, "Kouassi")
	dates := []string{
		"2024-03-04T09:00",
		"2024-03-01T09:00",
		"2024-03-07T09:00",
		"2024-03-02T09:00",
		"2024-03-06T09:00",
		"2024-03-03T09:00",
		"2024-03-05T09:00",
	}
	for _, date := range dates {
		f.createAppointment(t, patient.ID, doctor.ID, date)
	}

	recent, err := f.appointments.GetRecentAppointments(ctx, 5)
	c.Assert(err, qt.IsNil)
	c.Assert(recent.Total, qt.Equals, 5)
	var got []string
	for _, a := range recent.Appointments {
		got = append(got, a.DateInput)
		c.Assert(a.PatientName, qt.Equals, "Yao Kouassi")
		c.Assert(a.DoctorName, qt.Equals, "Awa Diallo")
	}
	c.Assert(got, qt.DeepEquals, []string{
		"2024-03-07T09:00",
		"2024-03-06T09:00",
		"2024-03-05T09:00",
		"2024-03-04T09:00",
		"2024-03-03T09:00",
	})

	all, err := f.appointments.GetRecentAppointments(ctx, 50)
	c.Assert(err, qt.IsNil)
	c.Assert(all.Total, qt.Equals, len(dates))

	none, err := f.appointments.GetRecentAppointments(ctx, 0)
	c.Assert(err, qt.IsNil)
	c.Assert(none.Appointments, qt.HasLen, 0)
}

func TestGetAppointmentsByPatient(t *testing.T) {
	c := qt.New(t)
	f := newFixture(t)
	ctx := context.Background()

	doctor := f.createDoctor(t, "Diallo")
	patient := f.createPatient(t, "Kouassi")
	other := f.createPatient(t, "Bamba")
	f.createAppointment(t, patient.ID, doctor.ID, "2024-03-10T09:00")
	f.createAppointment(t, patient.ID, doctor.ID, "2024-03-12T09:00")
	f.createAppointment(t, other.ID, doctor.ID, "2024-03-11T09:00")

	list, err := f.appointments.GetAppointmentsByPatient(ctx, patient.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(list.Total, qt.Equals, 2)
	for _, a := range list.Appointments {
		c.Assert(a.PatientID, qt.Equals, patient.ID)
		c.Assert(a.DoctorName, qt.Equals, "Awa Diallo")
	}

	empty, err := f.appointments.GetAppointmentsByPatient(ctx, f.createPatient(t, "Touré").ID)
	c.Assert(err, qt.IsNil)
	c.Assert(empty.Total, qt.Equals, 0)

	_, err = f.appointments.GetAppointmentsByPatient(ctx, 999)
	c.Assert(err, qt.ErrorIs, usecase.ErrPatientNotFound)
}
