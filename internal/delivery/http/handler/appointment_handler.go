package handler

import (
	"errors"
	"fmt"
	"net/http"

	"go-clinic-management/internal/delivery/dto"
	"go-clinic-management/internal/delivery/http/view"
	"go-clinic-management/internal/usecase"
	"go-clinic-management/pkg/flash"
	"go-clinic-management/pkg/response"
	"go-clinic-management/pkg/validator"
)

const (
	msgAppointmentCreated = "Rendez-vous ajouté avec succès"
	msgAppointmentUpdated = "Rendez-vous modifié avec succès"
	msgAppointmentDeleted = "Rendez-vous supprimé avec succès"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	patientUsecase     usecase.PatientUsecase
	doctorUsecase      usecase.DoctorUsecase
	validator          *validator.CustomValidator
	view               *view.Renderer
}

func NewAppointmentHandler(
	appointmentUsecase usecase.AppointmentUsecase,
	patientUsecase usecase.PatientUsecase,
	doctorUsecase usecase.DoctorUsecase,
	validator *validator.CustomValidator,
	view *view.Renderer,
) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		patientUsecase:     patientUsecase,
		doctorUsecase:      doctorUsecase,
		validator:          validator,
		view:               view,
	}
}

func bindAppointment(r *http.Request) dto.AppointmentRequest {
	return dto.AppointmentRequest{
		PatientID: formInt(r, "patient_id"),
		DoctorID:  formInt(r, "medecin_id"),
		Date:      formString(r, "date"),
		Notes:     formString(r, "notes"),
		Completed: formBool(r, "effectue"),
	}
}

// validationMessage renders an appointment validation failure for the flash banner
func validationMessage(err error) string {
	switch {
	case errors.Is(err, usecase.ErrInvalidDateFormat):
		return "Format de date invalide, utilisez AAAA-MM-JJTHH:MM"
	case errors.Is(err, usecase.ErrUnknownPatient):
		return "Le patient sélectionné n'existe pas"
	case errors.Is(err, usecase.ErrUnknownDoctor):
		return "Le médecin sélectionné n'existe pas"
	default:
		return "Le patient ou le médecin sélectionné n'existe pas"
	}
}

func (h *AppointmentHandler) CreateAppointmentPage(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, http.StatusOK, h.createForm(dto.AppointmentRequest{}))
}

func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderForm(w, r, http.StatusBadRequest, h.createForm(dto.AppointmentRequest{}))
		return
	}

	req := bindAppointment(r)
	// creation always starts open
	req.Completed = false
	if err := h.validator.Validate(&req); err != nil {
		flash.Add(w, r, flash.Danger, h.validator.Summary(err))
		h.renderForm(w, r, http.StatusBadRequest, h.createForm(req))
		return
	}

	if _, err := h.appointmentUsecase.CreateAppointment(r.Context(), &req); err != nil {
		if errors.Is(err, usecase.ErrValidation) {
			flash.Add(w, r, flash.Danger, validationMessage(err))
			h.renderForm(w, r, http.StatusBadRequest, h.createForm(req))
			return
		}
		h.view.Error(w, r)
		return
	}

	flash.Add(w, r, flash.Success, msgAppointmentCreated)
	response.Redirect(w, r, "/dashboard")
}

func (h *AppointmentHandler) UpdateAppointmentPage(w http.ResponseWriter, r *http.Request) {
	appointmentID, ok := pathID(r)
	if !ok {
		h.view.NotFound(w, r)
		return
	}

	appointment, err := h.appointmentUsecase.GetAppointment(r.Context(), appointmentID)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	req := dto.AppointmentRequest{
		PatientID: appointment.PatientID,
		DoctorID:  appointment.DoctorID,
		Date:      appointment.DateInput,
		Notes:     appointment.Notes,
		Completed: appointment.Completed,
	}
	h.renderForm(w, r, http.StatusOK, h.updateForm(appointmentID, req))
}

func (h *AppointmentHandler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID, ok := pathID(r)
	if !ok {
		h.view.NotFound(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.renderForm(w, r, http.StatusBadRequest, h.updateForm(appointmentID, dto.AppointmentRequest{}))
		return
	}

	req := bindAppointment(r)
	if err := h.validator.Validate(&req); err != nil {
		flash.Add(w, r, flash.Danger, h.validator.Summary(err))
		h.renderForm(w, r, http.StatusBadRequest, h.updateForm(appointmentID, req))
		return
	}

	if _, err := h.appointmentUsecase.UpdateAppointment(r.Context(), appointmentID, &req); err != nil {
		if errors.Is(err, usecase.ErrValidation) {
			flash.Add(w, r, flash.Danger, validationMessage(err))
			h.renderForm(w, r, http.StatusBadRequest, h.updateForm(appointmentID, req))
			return
		}
		h.renderError(w, r, err)
		return
	}

	flash.Add(w, r, flash.Success, msgAppointmentUpdated)
	response.Redirect(w, r, "/dashboard")
}

func (h *AppointmentHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID, ok := pathID(r)
	if !ok {
		h.view.NotFound(w, r)
		return
	}

	if err := h.appointmentUsecase.DeleteAppointment(r.Context(), appointmentID); err != nil {
		h.renderError(w, r, err)
		return
	}

	flash.Add(w, r, flash.Success, msgAppointmentDeleted)
	response.Redirect(w, r, "/dashboard")
}

// renderForm fills the patient and doctor choices before rendering
func (h *AppointmentHandler) renderForm(w http.ResponseWriter, r *http.Request, status int, form view.AppointmentForm) {
	patients, err := h.patientUsecase.GetAllPatients(r.Context())
	if err != nil {
		h.view.Error(w, r)
		return
	}
	doctors, err := h.doctorUsecase.GetAllDoctors(r.Context())
	if err != nil {
		h.view.Error(w, r)
		return
	}

	form.Patients = patients.Patients
	form.Doctors = doctors.Doctors
	h.view.Render(w, r, status, view.PageAppointmentForm, form)
}

func (h *AppointmentHandler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, usecase.ErrAppointmentNotFound) {
		h.view.NotFound(w, r)
		return
	}
	h.view.Error(w, r)
}

func (h *AppointmentHandler) createForm(req dto.AppointmentRequest) view.AppointmentForm {
	return view.AppointmentForm{Title: "Ajouter un rendez-vous", Action: "/ajouter_rendez_vous", Form: req}
}

func (h *AppointmentHandler) updateForm(appointmentID int, req dto.AppointmentRequest) view.AppointmentForm {
	return view.AppointmentForm{
		Title:   "Modifier le rendez-vous",
		Action:  fmt.Sprintf("/modifier_rendez_vous/%d", appointmentID),
		Editing: true,
		Form:    req,
	}
}
