package usecase_test

import (
	"context"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestDashboardEmpty(t *testing.T) {
	c := qt.New(t)
	f := newFixture(t)

	dashboard, err := f.dashboard.GetDashboard(context.Background())
	c.Assert(err, qt.IsNil)
	c.Assert(dashboard.DoctorCount, qt.Equals, int64(0))
	c.Assert(dashboard.PatientCount, qt.Equals, int64(0))
	c.Assert(dashboard.AppointmentCount, qt.Equals, int64(0))
	c.Assert(dashboard.RecentAppointments, qt.HasLen, 0)
}

func TestDashboardCountsAndRecent(t *testing.T) {
	c := qt.New(t)
	f := newFixture(t)
	ctx := context.Background()

	first := f.createDoctor(t, "Diallo")
	f.createDoctor(t, "Traoré")
	patient := f.createPatient(t, "Kouassi")
	for _, date := range []string{
		"2024-03-01T09:00",
		"2024-03-02T09:00",
		"2024-03-03T09:00",
		"2024-03-04T09:00",
		"2024-03-05T09:00",
		"2024-03-06T09:00",
	} {
		f.createAppointment(t, patient.ID, first.ID, date)
	}

	dashboard, err := f.dashboard.GetDashboard(ctx)
	c.Assert(err, qt.IsNil)
	c.Assert(dashboard.DoctorCount, qt.Equals, int64(2))
	c.Assert(dashboard.PatientCount, qt.Equals, int64(1))
	c.Assert(dashboard.AppointmentCount, qt.Equals, int64(6))
	c.Assert(dashboard.RecentAppointments, qt.HasLen, 5)
	c.Assert(dashboard.RecentAppointments[0].DateInput, qt.Equals, "2024-03-06T09:00")

	// deleting the doctor takes the appointments with it
	c.Assert(f.doctors.DeleteDoctor(ctx, first.ID), qt.IsNil)
	dashboard, err = f.dashboard.GetDashboard(ctx)
	c.Assert(err, qt.IsNil)
	c.Assert(dashboard.DoctorCount, qt.Equals, int64(1))
	c.Assert(dashboard.AppointmentCount, qt.Equals, int64(0))
	c.Assert(dashboard.RecentAppointments, qt.HasLen, 0)
}
