package view

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"go-clinic-management/internal/delivery/dto"
	"go-clinic-management/internal/delivery/http/middleware"
	"go-clinic-management/pkg/flash"

	"github.com/sirupsen/logrus"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page names, one per template file
const (
	PageLogin           = "login.html"
	PageDashboard       = "dashboard.html"
	PageDoctors         = "medecins.html"
	PageAvailability    = "disponibilite.html"
	PagePatients        = "patients.html"
	PagePatient         = "patient.html"
	PageDoctorForm      = "medecin_form.html"
	PagePatientForm     = "patient_form.html"
	PageAppointmentForm = "rendez_vous_form.html"
	PageNotFound        = "not_found.html"
	PageError           = "error.html"
)

var pages = []string{
	PageLogin,
	PageDashboard,
	PageDoctors,
	PageAvailability,
	PagePatients,
	PagePatient,
	PageDoctorForm,
	PagePatientForm,
	PageAppointmentForm,
	PageNotFound,
	PageError,
}

// DoctorForm backs both the add and the edit doctor pages
type DoctorForm struct {
	Title  string
	Action string
	Form   dto.DoctorRequest
}

// PatientForm backs both the add and the edit patient pages
type PatientForm struct {
	Title  string
	Action string
	Form   dto.PatientRequest
}

// AppointmentForm lists every patient and doctor for selection
type AppointmentForm struct {
	Title    string
	Action   string
	Editing  bool
	Form     dto.AppointmentRequest
	Patients []dto.PatientResponse
	Doctors  []dto.DoctorResponse
}

type pageData struct {
	Username string
	Flashes  []flash.Message
	Data     interface{}
}

type Renderer struct {
	templates map[string]*template.Template
	log       *logrus.Logger
}

func NewRenderer(log *logrus.Logger) (*Renderer, error) {
	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		tmpl, err := template.New("layout.html").ParseFS(templateFS, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, err
		}
		templates[page] = tmpl
	}

	return &Renderer{
		templates: templates,
		log:       log,
	}, nil
}

// Render executes page into a buffer first, so a template failure never leaves
// a half written response. Pending flash messages are consumed here.
func (v *Renderer) Render(w http.ResponseWriter, r *http.Request, status int, page string, data interface{}) {
	tmpl, ok := v.templates[page]
	if !ok {
		v.log.Errorf("Unknown page template: %s", page)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	username, _ := middleware.GetUsernameFromContext(r.Context())
	payload := pageData{
		Username: username,
		Flashes:  flash.Pop(w, r),
		Data:     data,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, payload); err != nil {
		v.log.Errorf("Failed to render %s: %+v", page, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

func (v *Renderer) NotFound(w http.ResponseWriter, r *http.Request) {
	v.Render(w, r, http.StatusNotFound, PageNotFound, nil)
}

func (v *Renderer) Error(w http.ResponseWriter, r *http.Request) {
	v.Render(w, r, http.StatusInternalServerError, PageError, nil)
}
