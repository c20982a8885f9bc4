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
	msgPatientCreated = "Patient ajouté avec succès"
	msgPatientUpdated = "Patient modifié avec succès"
	msgPatientDeleted = "Patient supprimé avec succès"
)

type PatientHandler struct {
	patientUsecase     usecase.PatientUsecase
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
	view               *view.Renderer
}

func NewPatientHandler(
	patientUsecase usecase.PatientUsecase,
	appointmentUsecase usecase.AppointmentUsecase,
	validator *validator.CustomValidator,
	view *view.Renderer,
) *PatientHandler {
	return &PatientHandler{
		patientUsecase:     patientUsecase,
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
		view:               view,
	}
}

func bindPatient(r *http.Request) dto.PatientRequest {
	return dto.PatientRequest{
		LastName:  formString(r, "nom"),
		FirstName: formString(r, "prenom"),
		Age:       formInt(r, "age"),
		Phone:     formString(r, "telephone"),
		Email:     formString(r, "email"),
	}
}

func (h *PatientHandler) GetAllPatients(w http.ResponseWriter, r *http.Request) {
	patients, err := h.patientUsecase.GetAllPatients(r.Context())
	if err != nil {
		h.view.Error(w, r)
		return
	}

	h.view.Render(w, r, http.StatusOK, view.PagePatients, patients)
}

// GetPatient shows the patient with the appointment history
func (h *PatientHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	patientID, ok := pathID(r)
	if !ok {
		h.view.NotFound(w, r)
		return
	}

	patient, err := h.patientUsecase.GetPatient(r.Context(), patientID)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	appointments, err := h.appointmentUsecase.GetAppointmentsByPatient(r.Context(), patientID)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	h.view.Render(w, r, http.StatusOK, view.PagePatient, dto.PatientDetailResponse{
		Patient:      *patient,
		Appointments: *appointments,
	})
}

func (h *PatientHandler) CreatePatientPage(w http.ResponseWriter, r *http.Request) {
	h.view.Render(w, r, http.StatusOK, view.PagePatientForm, h.createForm(dto.PatientRequest{}))
}

func (h *PatientHandler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.view.Render(w, r, http.StatusBadRequest, view.PagePatientForm, h.createForm(dto.PatientRequest{}))
		return
	}

	req := bindPatient(r)
	if err := h.validator.Validate(&req); err != nil {
		flash.Add(w, r, flash.Danger, h.validator.Summary(err))
		h.view.Render(w, r, http.StatusBadRequest, view.PagePatientForm, h.createForm(req))
		return
	}

	if _, err := h.patientUsecase.CreatePatient(r.Context(), &req); err != nil {
		h.view.Error(w, r)
		return
	}

	flash.Add(w, r, flash.Success, msgPatientCreated)
	response.Redirect(w, r, "/patients")
}

func (h *PatientHandler) UpdatePatientPage(w http.ResponseWriter, r *http.Request) {
	patientID, ok := pathID(r)
	if !ok {
		h.view.NotFound(w, r)
		return
	}

	patient, err := h.patientUsecase.GetPatient(r.Context(), patientID)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	req := dto.PatientRequest{
		LastName:  patient.LastName,
		FirstName: patient.FirstName,
		Age:       patient.Age,
		Phone:     patient.Phone,
		Email:     patient.Email,
	}
	h.view.Render(w, r, http.StatusOK, view.PagePatientForm, h.updateForm(patientID, req))
}

func (h *PatientHandler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	patientID, ok := pathID(r)
	if !ok {
		h.view.NotFound(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.view.Render(w, r, http.StatusBadRequest, view.PagePatientForm, h.updateForm(patientID, dto.PatientRequest{}))
		return
	}

	req := bindPatient(r)
	if err := h.validator.Validate(&req); err != nil {
		flash.Add(w, r, flash.Danger, h.validator.Summary(err))
		h.view.Render(w, r, http.StatusBadRequest, view.PagePatientForm, h.updateForm(patientID, req))
		return
	}

	if _, err := h.patientUsecase.UpdatePatient(r.Context(), patientID, &req); err != nil {
		h.renderError(w, r, err)
		return
	}

	flash.Add(w, r, flash.Success, msgPatientUpdated)
	response.Redirect(w, r, "/patients")
}

func (h *PatientHandler) DeletePatient(w http.ResponseWriter, r *http.Request) {
	patientID, ok := pathID(r)
	if !ok {
		h.view.NotFound(w, r)
		return
	}

	if err := h.patientUsecase.DeletePatient(r.Context(), patientID); err != nil {
		h.renderError(w, r, err)
		return
	}

	flash.Add(w, r, flash.Success, msgPatientDeleted)
	response.Redirect(w, r, "/patients")
}

func (h *PatientHandler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, usecase.ErrPatientNotFound) {
		h.view.NotFound(w, r)
		return
	}
	h.view.Error(w, r)
}

func (h *PatientHandler) createForm(req dto.PatientRequest) view.PatientForm {
	return view.PatientForm{Title: "Ajouter un patient", Action: "/ajouter_patient", Form: req}
}

func (h *PatientHandler) updateForm(patientID int, req dto.PatientRequest) view.PatientForm {
	return view.PatientForm{Title: "Modifier le patient", Action: fmt.Sprintf("/modifier_patient/%d", patientID), Form: req}
}
