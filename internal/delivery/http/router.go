package http

import (
	"net/http"

	"go-clinic-management/internal/delivery/http/handler"
	"go-clinic-management/internal/delivery/http/middleware"
	"go-clinic-management/internal/delivery/http/view"
	"go-clinic-management/pkg/response"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	dashboardHandler   *handler.DashboardHandler
	doctorHandler      *handler.DoctorHandler
	patientHandler     *handler.PatientHandler
	appointmentHandler *handler.AppointmentHandler
	authMiddleware     *middleware.AuthMiddleware
	rateLimiter        *middleware.RateLimiter
	view               *view.Renderer
	log                *logrus.Logger
}

// NewRouter wires the handlers. rateLimiter may be nil, login is then unthrottled.
func NewRouter(
	authHandler *handler.AuthHandler,
	dashboardHandler *handler.DashboardHandler,
	doctorHandler *handler.DoctorHandler,
	patientHandler *handler.PatientHandler,
	appointmentHandler *handler.AppointmentHandler,
	authMiddleware *middleware.AuthMiddleware,
	rateLimiter *middleware.RateLimiter,
	view *view.Renderer,
	log *logrus.Logger,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		dashboardHandler:   dashboardHandler,
		doctorHandler:      doctorHandler,
		patientHandler:     patientHandler,
		appointmentHandler: appointmentHandler,
		authMiddleware:     authMiddleware,
		rateLimiter:        rateLimiter,
		view:               view,
		log:                log,
	}
}

func (r *Router) Setup() *mux.Router {
	r.router.Use(middleware.Recover(r.log, r.view.Error))
	r.router.Use(middleware.Logging(r.log))

	// Public routes
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)
	r.router.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodGet)

	var login http.Handler = http.HandlerFunc(r.authHandler.Login)
	if r.rateLimiter != nil {
		login = r.rateLimiter.Limit(login)
	}
	r.router.HandleFunc("/login", r.authHandler.LoginPage).Methods(http.MethodGet)
	r.router.Handle("/login", login).Methods(http.MethodPost)

	// Everything else requires a session
	protected := r.router.PathPrefix("/").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	protected.HandleFunc("/", r.authHandler.Home).Methods(http.MethodGet)
	protected.HandleFunc("/dashboard", r.dashboardHandler.GetDashboard).Methods(http.MethodGet)

	// Doctors
	protected.HandleFunc("/medecins", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	protected.HandleFunc("/ajouter_medecin", r.doctorHandler.CreateDoctorPage).Methods(http.MethodGet)
	protected.HandleFunc("/ajouter_medecin", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	protected.HandleFunc("/modifier_medecin/{id:[0-9]+}", r.doctorHandler.UpdateDoctorPage).Methods(http.MethodGet)
	protected.HandleFunc("/modifier_medecin/{id:[0-9]+}", r.doctorHandler.UpdateDoctor).Methods(http.MethodPost)
	protected.HandleFunc("/supprimer_medecin/{id:[0-9]+}", r.doctorHandler.DeleteDoctor).Methods(http.MethodGet)
	protected.HandleFunc("/disponibilite/{id:[0-9]+}", r.doctorHandler.GetAvailability).Methods(http.MethodGet)
	protected.HandleFunc("/disponibilite/{id:[0-9]+}", r.doctorHandler.SetAvailability).Methods(http.MethodPost)

	// Patients
	protected.HandleFunc("/patients", r.patientHandler.GetAllPatients).Methods(http.MethodGet)
	protected.HandleFunc("/patient/{id:[0-9]+}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	protected.HandleFunc("/ajouter_patient", r.patientHandler.CreatePatientPage).Methods(http.MethodGet)
	protected.HandleFunc("/ajouter_patient", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	protected.HandleFunc("/modifier_patient/{id:[0-9]+}", r.patientHandler.UpdatePatientPage).Methods(http.MethodGet)
	protected.HandleFunc("/modifier_patient/{id:[0-9]+}", r.patientHandler.UpdatePatient).Methods(http.MethodPost)
	protected.HandleFunc("/supprimer_patient/{id:[0-9]+}", r.patientHandler.DeletePatient).Methods(http.MethodGet)

	// Appointments
	protected.HandleFunc("/ajouter_rendez_vous", r.appointmentHandler.CreateAppointmentPage).Methods(http.MethodGet)
	protected.HandleFunc("/ajouter_rendez_vous", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	protected.HandleFunc("/modifier_rendez_vous/{id:[0-9]+}", r.appointmentHandler.UpdateAppointmentPage).Methods(http.MethodGet)
	protected.HandleFunc("/modifier_rendez_vous/{id:[0-9]+}", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPost)
	protected.HandleFunc("/supprimer_rendez_vous/{id:[0-9]+}", r.appointmentHandler.DeleteAppointment).Methods(http.MethodGet)

	r.router.NotFoundHandler = http.HandlerFunc(r.view.NotFound)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
