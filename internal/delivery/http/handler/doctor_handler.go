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
	msgDoctorCreated       = "Médecin ajouté avec succès"
	msgDoctorUpdated       = "Médecin modifié avec succès"
	msgDoctorDeleted       = "Médecin supprimé avec succès"
	msgAvailabilityUpdated = "Disponibilités mises à jour avec succès"
	msgInvalidWeekday      = "Jour de disponibilité invalide"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
	view          *view.Renderer
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator, view *view.Renderer) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
		view:          view,
	}
}

func bindDoctor(r *http.Request) dto.DoctorRequest {
	return dto.DoctorRequest{
		LastName:  formString(r, "nom"),
		FirstName: formString(r, "prenom"),
		Specialty: formString(r, "specialite"),
		Office:    formString(r, "cabinet"),
	}
}

func (h *DoctorHandler) GetAllDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.doctorUsecase.GetAllDoctors(r.Context())
	if err != nil {
		h.view.Error(w, r)
		return
	}

	h.view.Render(w, r, http.StatusOK, view.PageDoctors, doctors)
}

func (h *DoctorHandler) CreateDoctorPage(w http.ResponseWriter, r *http.Request) {
	h.view.Render(w, r, http.StatusOK, view.PageDoctorForm, h.createForm(dto.DoctorRequest{}))
}

func (h *DoctorHandler) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.view.Render(w, r, http.StatusBadRequest, view.PageDoctorForm, h.createForm(dto.DoctorRequest{}))
		return
	}

	req := bindDoctor(r)
	if err := h.validator.Validate(&req); err != nil {
		flash.Add(w, r, flash.Danger, h.validator.Summary(err))
		h.view.Render(w, r, http.StatusBadRequest, view.PageDoctorForm, h.createForm(req))
		return
	}

	if _, err := h.doctorUsecase.CreateDoctor(r.Context(), &req); err != nil {
		h.view.Error(w, r)
		return
	}

	flash.Add(w, r, flash.Success, msgDoctorCreated)
	response.Redirect(w, r, "/medecins")
}

func (h *DoctorHandler) UpdateDoctorPage(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := pathID(r)
	if !ok {
		h.view.NotFound(w, r)
		return
	}

	doctor, err := h.doctorUsecase.GetDoctor(r.Context(), doctorID)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	req := dto.DoctorRequest{
		LastName:  doctor.LastName,
		FirstName: doctor.FirstName,
		Specialty: doctor.Specialty,
		Office:    doctor.Office,
	}
	h.view.Render(w, r, http.StatusOK, view.PageDoctorForm, h.updateForm(doctorID, req))
}

func (h *DoctorHandler) UpdateDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := pathID(r)
	if !ok {
		h.view.NotFound(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.view.Render(w, r, http.StatusBadRequest, view.PageDoctorForm, h.updateForm(doctorID, dto.DoctorRequest{}))
		return
	}

	req := bindDoctor(r)
	if err := h.validator.Validate(&req); err != nil {
		flash.Add(w, r, flash.Danger, h.validator.Summary(err))
		h.view.Render(w, r, http.StatusBadRequest, view.PageDoctorForm, h.updateForm(doctorID, req))
		return
	}

	if _, err := h.doctorUsecase.UpdateDoctor(r.Context(), doctorID, &req); err != nil {
		h.renderError(w, r, err)
		return
	}

	flash.Add(w, r, flash.Success, msgDoctorUpdated)
	response.Redirect(w, r, "/medecins")
}

func (h *DoctorHandler) DeleteDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := pathID(r)
	if !ok {
		h.view.NotFound(w, r)
		return
	}

	if err := h.doctorUsecase.DeleteDoctor(r.Context(), doctorID); err != nil {
		h.renderError(w, r, err)
		return
	}

	flash.Add(w, r, flash.Success, msgDoctorDeleted)
	response.Redirect(w, r, "/medecins")
}

func (h *DoctorHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := pathID(r)
	if !ok {
		h.view.NotFound(w, r)
		return
	}

	availability, err := h.doctorUsecase.GetAvailability(r.Context(), doctorID)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	h.view.Render(w, r, http.StatusOK, view.PageAvailability, availability)
}

// SetAvailability replaces the doctor's days with the ticked boxes
func (h *DoctorHandler) SetAvailability(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := pathID(r)
	if !ok {
		h.view.NotFound(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		flash.Add(w, r, flash.Danger, msgInvalidWeekday)
		h.renderAvailability(w, r, doctorID, http.StatusBadRequest)
		return
	}

	req := dto.AvailabilityRequest{Days: r.PostForm["jours"]}
	if _, err := h.doctorUsecase.SetAvailability(r.Context(), doctorID, &req); err != nil {
		if errors.Is(err, usecase.ErrInvalidWeekday) {
			flash.Add(w, r, flash.Danger, msgInvalidWeekday)
			h.renderAvailability(w, r, doctorID, http.StatusBadRequest)
			return
		}
		h.renderError(w, r, err)
		return
	}

	flash.Add(w, r, flash.Success, msgAvailabilityUpdated)
	response.Redirect(w, r, fmt.Sprintf("/disponibilite/%d", doctorID))
}

func (h *DoctorHandler) renderAvailability(w http.ResponseWriter, r *http.Request, doctorID, status int) {
	availability, err := h.doctorUsecase.GetAvailability(r.Context(), doctorID)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	h.view.Render(w, r, status, view.PageAvailability, availability)
}

func (h *DoctorHandler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, usecase.ErrDoctorNotFound) {
		h.view.NotFound(w, r)
		return
	}
	h.view.Error(w, r)
}

func (h *DoctorHandler) createForm(req dto.DoctorRequest) view.DoctorForm {
	return view.DoctorForm{Title: "Ajouter un médecin", Action: "/ajouter_medecin", Form: req}
}

func (h *DoctorHandler) updateForm(doctorID int, req dto.DoctorRequest) view.DoctorForm {
	return view.DoctorForm{Title: "Modifier le médecin", Action: fmt.Sprintf("/modifier_medecin/%d", doctorID), Form: req}
}
