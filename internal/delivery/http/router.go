package http

import (
	"net/http"

	"caresync-backend/internal/delivery/http/handler"
	"caresync-backend/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	authHandler       *handler.AuthHandler
	patientHandler    *handler.PatientHandler
	clinicianHandler  *handler.ClinicianHandler
	queryHandler      *handler.QueryHandler
	userHandler       *handler.UserHandler
	reviewHandler     *handler.ReviewHandler
	corsMiddleware    *middleware.CORSMiddleware
	loggingMiddleware *middleware.LoggingMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientHandler,
	clinicianHandler *handler.ClinicianHandler,
	queryHandler *handler.QueryHandler,
	userHandler *handler.UserHandler,
	reviewHandler *handler.ReviewHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		authHandler:       authHandler,
		patientHandler:    patientHandler,
		clinicianHandler:  clinicianHandler,
		queryHandler:      queryHandler,
		userHandler:       userHandler,
		reviewHandler:     reviewHandler,
		corsMiddleware:    corsMiddleware,
		loggingMiddleware: loggingMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	api := r.router.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth
	api.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)

	// Patients
	api.HandleFunc("/patient/signup", r.patientHandler.Signup).Methods(http.MethodPost)
	api.HandleFunc("/patients", r.patientHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/patients", r.patientHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id}", r.patientHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id}/queries", r.queryHandler.ListByPatient).Methods(http.MethodGet)

	// Clinicians
	api.HandleFunc("/clinician/signup", r.clinicianHandler.Signup).Methods(http.MethodPost)
	api.HandleFunc("/clinicians", r.clinicianHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/clinicians", r.clinicianHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/clinicians/{id}", r.clinicianHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/clinicians/{id}/queries", r.queryHandler.ListByClinician).Methods(http.MethodGet)

	// Queries and assistant messaging
	api.HandleFunc("/ai_query", r.queryHandler.SubmitAIQuery).Methods(http.MethodPost)
	api.HandleFunc("/queries", r.queryHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/queries", r.queryHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/queries/{id}", r.queryHandler.Get).Methods(http.MethodGet)

	// Clinician review
	api.HandleFunc("/chat_history", r.reviewHandler.ChatHistory).Methods(http.MethodGet)
	api.HandleFunc("/verify_response", r.reviewHandler.VerifyResponse).Methods(http.MethodPost)
	api.HandleFunc("/edit_response", r.reviewHandler.EditResponse).Methods(http.MethodPost)

	// Admin views
	api.HandleFunc("/users", r.userHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/db-summary", r.userHandler.Summary).Methods(http.MethodGet)

	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
