package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
	authapp "github.com/takatrack/waste-monitoring/application/auth"
	collectionapp "github.com/takatrack/waste-monitoring/application/collection"
	"github.com/takatrack/waste-monitoring/constant"
	"github.com/takatrack/waste-monitoring/model"
	utilsContext "github.com/takatrack/waste-monitoring/utils/context"
	"github.com/takatrack/waste-monitoring/utils/errors"
	validatorx "github.com/takatrack/waste-monitoring/utils/validator"
)

type RestHandler struct {
	AuthApp       authapp.AuthApp
	CollectionApp collectionapp.CollectionApp
}

func NewTransport(AuthApp authapp.AuthApp, CollectionApp collectionapp.CollectionApp) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		AuthApp:       AuthApp,
		CollectionApp: CollectionApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	api := mux.PathPrefix("/api").Subrouter()

	// auth namespace
	api.HandleFunc("/auth/register", rh.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", rh.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/verify", rh.VerifyToken).Methods(http.MethodPost)
	api.HandleFunc("/auth/me", rh.Me).Methods(http.MethodGet)
	api.HandleFunc("/auth/logout", rh.Logout).Methods(http.MethodPost)

	// collections namespace; submit and my-records need a session, the rest
	// are public dashboard reads
	api.HandleFunc("/collections/submit", rh.SubmitCollection).Methods(http.MethodPost)
	api.HandleFunc("/collections/my-records", rh.MyRecords).Methods(http.MethodGet)
	api.HandleFunc("/collections/filtered", rh.FilteredCollections).Methods(http.MethodPost)
	api.HandleFunc("/collections/summary", rh.CollectionSummary).Methods(http.MethodGet)
	api.HandleFunc("/collections/dashboard", rh.DashboardData).Methods(http.MethodGet)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(SessionMiddleware(AuthApp))

	return mux
}

// Register handler
// @Summary Register account
// @Description Register a collector account with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 200 {object} model.AuthResponse
// @Failure 400 {object} transport.Response
// @Router /api/auth/register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AuthApp.Register(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Login handler
// @Summary Login
// @Description Login with email and password and receive a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.AuthResponse
// @Failure 401 {object} transport.Response
// @Router /api/auth/login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AuthApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// VerifyToken handler
// @Summary Verify token
// @Description Verify a session token and return its payload
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.VerifyRequest true "Verify Request"
// @Success 200 {object} model.VerifyResponse
// @Failure 401 {object} transport.Response
// @Router /api/auth/verify [post]
func (s *RestHandler) VerifyToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AuthApp.Verify(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Me handler
// @Summary Current account
// @Description Return the public fields of the authenticated account
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.PublicUser
// @Failure 401 {object} transport.Response
// @Router /api/auth/me [get]
func (s *RestHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := utilsContext.GetSessionUser(r.Context())
	if user == nil {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorized))
		return
	}

	writeSuccess(w, user.PublicProfile())
}

// Logout handler. Tokens are stateless, so logout is a client-side operation
// acknowledged here for completeness.
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, model.LogoutResponse{Success: true})
}

// SubmitCollection handler
// @Summary Submit collection record
// @Description Store a waste-collection record (collector or admin only)
// @Tags Collections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.SubmitCollectionRequest true "Collection Record"
// @Success 200 {object} model.SubmitCollectionResponse
// @Failure 400 {object} transport.Response
// @Failure 401 {object} transport.Response
// @Failure 403 {object} transport.Response
// @Router /api/collections/submit [post]
func (s *RestHandler) SubmitCollection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user := utilsContext.GetSessionUser(ctx)
	if user == nil {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorized))
		return
	}

	var req model.SubmitCollectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CollectionApp.Submit(ctx, user, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// MyRecords handler
// @Summary Own records
// @Description List the records submitted by the authenticated collector
// @Tags Collections
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.CollectionEntity
// @Failure 401 {object} transport.Response
// @Failure 403 {object} transport.Response
// @Router /api/collections/my-records [get]
func (s *RestHandler) MyRecords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user := utilsContext.GetSessionUser(ctx)
	if user == nil {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorized))
		return
	}

	res, err := s.CollectionApp.MyRecords(ctx, user)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// FilteredCollections handler
// @Summary Filtered records
// @Description List records matching the criteria, all criteria optional
// @Tags Collections
// @Accept json
// @Produce json
// @Param request body model.FilterCollectionsRequest true "Filter Criteria"
// @Success 200 {array} model.CollectionEntity
// @Failure 400 {object} transport.Response
// @Router /api/collections/filtered [post]
func (s *RestHandler) FilteredCollections(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.FilterCollectionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CollectionApp.Filtered(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CollectionSummary handler
// @Summary Summary statistics
// @Description Aggregate the full record set for the public dashboard
// @Tags Collections
// @Produce json
// @Success 200 {object} model.SummaryResponse
// @Router /api/collections/summary [get]
func (s *RestHandler) CollectionSummary(w http.ResponseWriter, r *http.Request) {
	res, err := s.CollectionApp.Summary(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DashboardData handler
// @Summary Dashboard data
// @Description Trend buckets, map markers and headline totals in one call
// @Tags Collections
// @Produce json
// @Success 200 {object} model.DashboardResponse
// @Router /api/collections/dashboard [get]
func (s *RestHandler) DashboardData(w http.ResponseWriter, r *http.Request) {
	res, err := s.CollectionApp.DashboardData(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
