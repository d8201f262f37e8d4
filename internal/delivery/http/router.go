package http

import (
	"net/http"

	"github.com/Paarth01/lifelink-ui-connect/internal/delivery/http/handler"
	"github.com/Paarth01/lifelink-ui-connect/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	router            *mux.Router
	authHandler       *handler.AuthHandler
	donorHandler      *handler.DonorHandler
	hospitalHandler   *handler.HospitalHandler
	ngoHandler        *handler.NGOHandler
	mapHandler        *handler.MapHandler
	adminHandler      *handler.AdminHandler
	authMiddleware    *middleware.AuthMiddleware
	corsMiddleware    *middleware.CORSMiddleware
	metricsMiddleware *middleware.MetricsMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	donorHandler *handler.DonorHandler,
	hospitalHandler *handler.HospitalHandler,
	ngoHandler *handler.NGOHandler,
	mapHandler *handler.MapHandler,
	adminHandler *handler.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	metricsMiddleware *middleware.MetricsMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		authHandler:       authHandler,
		donorHandler:      donorHandler,
		hospitalHandler:   hospitalHandler,
		ngoHandler:        ngoHandler,
		mapHandler:        mapHandler,
		adminHandler:      adminHandler,
		authMiddleware:    authMiddleware,
		corsMiddleware:    corsMiddleware,
		metricsMiddleware: metricsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// Prometheus scrape endpoint sits outside the versioned API.
	r.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)
	auth.HandleFunc("/confirm", r.authHandler.ConfirmEmail).Methods(http.MethodPost)
	auth.HandleFunc("/reset-password", r.authHandler.ResetPassword).Methods(http.MethodPost)
	auth.HandleFunc("/reset-password/confirm", r.authHandler.ResetPasswordConfirm).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Donor routes (protected - donor only)
	donor := api.PathPrefix("/donor").Subrouter()
	donor.Use(r.authMiddleware.Authenticate)
	donor.Use(middleware.RequireDonor)
	donor.HandleFunc("/dashboard", r.donorHandler.GetDashboard).Methods(http.MethodGet)
	donor.HandleFunc("/availability", r.donorHandler.UpdateAvailability).Methods(http.MethodPut)
	donor.HandleFunc("/requests/{id}/respond", r.donorHandler.RespondToRequest).Methods(http.MethodPost)

	// Hospital routes (protected - hospital only)
	hospital := api.PathPrefix("/hospital").Subrouter()
	hospital.Use(r.authMiddleware.Authenticate)
	hospital.Use(middleware.RequireHospital)
	hospital.HandleFunc("/dashboard", r.hospitalHandler.GetDashboard).Methods(http.MethodGet)
	hospital.HandleFunc("/requests", r.hospitalHandler.CreateRequest).Methods(http.MethodPost)

	// NGO routes (protected - NGO only)
	ngo := api.PathPrefix("/ngo").Subrouter()
	ngo.Use(r.authMiddleware.Authenticate)
	ngo.Use(middleware.RequireNGO)
	ngo.HandleFunc("/dashboard", r.ngoHandler.GetDashboard).Methods(http.MethodGet)

	// Map markers (any authenticated role)
	mapRoutes := api.PathPrefix("/map").Subrouter()
	mapRoutes.Use(r.authMiddleware.Authenticate)
	mapRoutes.HandleFunc("/markers", r.mapHandler.GetMarkers).Methods(http.MethodGet)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/overview", r.adminHandler.GetOverview).Methods(http.MethodGet)

	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(r.metricsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
