package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	adminapp "github.com/muhammadheryan/roadside-assistance/application/admin"
	geocodeapp "github.com/muhammadheryan/roadside-assistance/application/geocode"
	notificationapp "github.com/muhammadheryan/roadside-assistance/application/notification"
	requestapp "github.com/muhammadheryan/roadside-assistance/application/request"
	userapp "github.com/muhammadheryan/roadside-assistance/application/user"
	"github.com/muhammadheryan/roadside-assistance/cmd/config"
	"github.com/muhammadheryan/roadside-assistance/constant"
	"github.com/muhammadheryan/roadside-assistance/model"
	utilsContext "github.com/muhammadheryan/roadside-assistance/utils/context"
	"github.com/muhammadheryan/roadside-assistance/utils/errors"
	"github.com/muhammadheryan/roadside-assistance/utils/metrics"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	UserApp         userapp.UserApp
	RequestApp      requestapp.RequestApp
	AdminApp        adminapp.AdminApp
	NotificationApp notificationapp.NotificationApp
	GeocodeApp      geocodeapp.GeocodeApp
}

func NewTransport(cfg *config.Config, rh *RestHandler, m *metrics.Metrics) http.Handler {
	mux := mux.NewRouter()

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	metricsPath := ""
	if cfg.Metrics.Enabled {
		metricsPath = cfg.Metrics.Path
		mux.Handle(metricsPath, m.Handler()).Methods(http.MethodGet)
	}

	// Public routes
	api := mux.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", rh.Health).Methods(http.MethodGet)
	api.HandleFunc("/auth/signup", rh.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", rh.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/create-admin", rh.CreateAdmin).Methods(http.MethodPost)

	// protected routes
	api.HandleFunc("/auth/me", rh.Me).Methods(http.MethodGet)
	api.HandleFunc("/auth/logout", rh.Logout).Methods(http.MethodPost)
	api.HandleFunc("/users/me", rh.UpdateProfile).Methods(http.MethodPatch)
	api.HandleFunc("/notifications", rh.ListNotifications).Methods(http.MethodGet)
	api.HandleFunc("/geocode/reverse", rh.ReverseGeocode).Methods(http.MethodGet)

	api.HandleFunc("/requests", rh.ListRequests).Methods(http.MethodGet)
	api.HandleFunc("/requests", rh.CreateRequest).Methods(http.MethodPost)
	api.HandleFunc("/requests/{id:[0-9]+}", rh.GetRequest).Methods(http.MethodGet)
	api.HandleFunc("/requests/{id:[0-9]+}/cancel", rh.CancelRequest).Methods(http.MethodPatch)

	mechanic := api.PathPrefix("/mechanic").Subrouter()
	mechanic.Use(RoleMiddleware(constant.RoleMechanic))
	mechanic.HandleFunc("/requests", rh.ListRequests).Methods(http.MethodGet)
	mechanic.HandleFunc("/requests/{id:[0-9]+}/accept", rh.AcceptRequest).Methods(http.MethodPatch)
	mechanic.HandleFunc("/requests/{id:[0-9]+}/reject", rh.RejectRequest).Methods(http.MethodPatch)
	mechanic.HandleFunc("/requests/{id:[0-9]+}/complete", rh.CompleteRequest).Methods(http.MethodPatch)
	mechanic.HandleFunc("/availability", rh.UpdateAvailability).Methods(http.MethodPatch)

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(RoleMiddleware(constant.RoleAdmin))
	admin.HandleFunc("/users", rh.AdminListUsers).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id:[0-9]+}/block", rh.AdminBlockUser).Methods(http.MethodPatch)
	admin.HandleFunc("/users/{id:[0-9]+}/unblock", rh.AdminUnblockUser).Methods(http.MethodPatch)
	admin.HandleFunc("/requests", rh.AdminListRequests).Methods(http.MethodGet)
	admin.HandleFunc("/stats", rh.AdminStats).Methods(http.MethodGet)

	// service-to-service routes, guarded by the internal API key
	internal := mux.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(cfg.Internal.APIKey))
	internal.HandleFunc("/notifications", rh.RecordNotification).Methods(http.MethodPost)

	// middleware
	mux.Use(LoggingMiddleware(m))
	mux.Use(AuthMiddleware(rh.UserApp, metricsPath))

	return mux
}

func callerFrom(r *http.Request) (model.Identity, error) {
	id, ok := utilsContext.GetIdentity(r.Context())
	if !ok {
		return model.Identity{}, errors.SetCustomError(constant.ErrUnauthorize)
	}
	return id, nil
}

// Health handler
// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} model.HealthResponse
// @Router /api/health [get]
func (s *RestHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, model.HealthResponse{Status: "OK", Message: "Roadside Assistance API Running"})
}

// Register handler
// @Summary Register user
// @Description Register a new client or mechanic
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 201 {object} model.AuthResponse
// @Failure 400 {object} transport.ErrorResponse
// @Router /api/auth/signup [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := decodeAndValidate(r, &req, false); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.Register(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// Login handler
// @Summary Login user
// @Description Login with email and password and receive JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.AuthResponse
// @Failure 401 {object} transport.ErrorResponse
// @Failure 403 {object} transport.ErrorResponse
// @Router /api/auth/login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := decodeAndValidate(r, &req, false); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.Login(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CreateAdmin handler
// @Summary Create the first admin
// @Description One-time admin bootstrap guarded by the configured secret key
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.CreateAdminRequest true "Create Admin Request"
// @Success 201 {object} model.AuthResponse
// @Failure 400 {object} transport.ErrorResponse
// @Failure 403 {object} transport.ErrorResponse
// @Router /api/auth/create-admin [post]
func (s *RestHandler) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	var req model.CreateAdminRequest
	if err := decodeAndValidate(r, &req, false); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.CreateAdmin(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// Me handler
// @Summary Current user
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.User
// @Failure 401 {object} transport.ErrorResponse
// @Router /api/auth/me [get]
func (s *RestHandler) Me(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.Me(r.Context(), caller)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Logout handler
// @Summary Logout
// @Description Deletes the session of the presented token
// @Tags Auth
// @Security BearerAuth
// @Success 204
// @Router /api/auth/logout [post]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	tokenID, ok := utilsContext.GetTokenID(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	if err := s.UserApp.Logout(r.Context(), tokenID); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UpdateProfile handler
// @Summary Update own profile
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} model.User
// @Failure 400 {object} transport.ErrorResponse
// @Router /api/users/me [patch]
func (s *RestHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.UpdateProfileRequest
	if err := decodeAndValidate(r, &req, false); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.UpdateProfile(r.Context(), caller, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateAvailability handler
// @Summary Toggle mechanic availability
// @Tags Mechanic
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.AvailabilityRequest true "Availability"
// @Success 200 {object} model.AvailabilityResponse
// @Failure 403 {object} transport.ErrorResponse
// @Router /api/mechanic/availability [patch]
func (s *RestHandler) UpdateAvailability(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.AvailabilityRequest
	if err := decodeAndValidate(r, &req, false); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.UpdateAvailability(r.Context(), caller, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
