package transport_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/muhammadheryan/roadside-assistance/cmd/config"
	"github.com/muhammadheryan/roadside-assistance/constant"
	adminmocks "github.com/muhammadheryan/roadside-assistance/mocks/application/admin"
	geocodemocks "github.com/muhammadheryan/roadside-assistance/mocks/application/geocode"
	notificationmocks "github.com/muhammadheryan/roadside-assistance/mocks/application/notification"
	requestmocks "github.com/muhammadheryan/roadside-assistance/mocks/application/request"
	usermocks "github.com/muhammadheryan/roadside-assistance/mocks/application/user"
	"github.com/muhammadheryan/roadside-assistance/model"
	"github.com/muhammadheryan/roadside-assistance/transport"
	cerr "github.com/muhammadheryan/roadside-assistance/utils/errors"
	"github.com/muhammadheryan/roadside-assistance/utils/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const internalKey = "internal-key"

var (
	clientSession   = &model.Session{Identity: model.Identity{UserID: 1, Role: constant.RoleClient}, TokenID: "jti-client"}
	mechanicSession = &model.Session{Identity: model.Identity{UserID: 7, Role: constant.RoleMechanic}, TokenID: "jti-mechanic"}
	adminSession    = &model.Session{Identity: model.Identity{UserID: 9, Role: constant.RoleAdmin}, TokenID: "jti-admin"}
)

type apps struct {
	user         *usermocks.UserApp
	request      *requestmocks.RequestApp
	admin        *adminmocks.AdminApp
	notification *notificationmocks.NotificationApp
	geocode      *geocodemocks.GeocodeApp
}

func newServer(t *testing.T) (http.Handler, apps) {
	t.Helper()
	a := apps{
		user:         usermocks.NewUserApp(t),
		request:      requestmocks.NewRequestApp(t),
		admin:        adminmocks.NewAdminApp(t),
		notification: notificationmocks.NewNotificationApp(t),
		geocode:      geocodemocks.NewGeocodeApp(t),
	}
	cfg := &config.Config{
		Metrics:  config.MetricsConfig{Enabled: true, Path: "/metrics"},
		Internal: config.InternalConfig{APIKey: internalKey},
	}
	h := transport.NewTransport(cfg, &transport.RestHandler{
		UserApp:         a.user,
		RequestApp:      a.request,
		AdminApp:        a.admin,
		NotificationApp: a.notification,
		GeocodeApp:      a.geocode,
	}, metrics.New("test"))
	return h, a
}

func withSession(a apps, token string, session *model.Session) {
	a.user.On("ValidateToken", mock.Anything, token).Return(session, nil).Once()
}

func TestTransport(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		header     map[string]string
		mockCall   func(a apps)
		wantStatus int
		wantCode   string
		wantInBody string
	}{
		{
			name:       "health is public",
			method:     http.MethodGet,
			path:       "/api/health",
			wantStatus: http.StatusOK,
			wantInBody: "Roadside Assistance API Running",
		},
		{
			name:       "missing token",
			method:     http.MethodGet,
			path:       "/api/requests",
			wantStatus: http.StatusUnauthorized,
			wantCode:   "0004",
			wantInBody: "Not authorized, no token",
		},
		{
			name:   "blocked account keeps its own message",
			method: http.MethodGet,
			path:   "/api/requests",
			header: map[string]string{"Authorization": "Bearer blocked"},
			mockCall: func(a apps) {
				a.user.On("ValidateToken", mock.Anything, "blocked").
					Return(nil, cerr.SetCustomError(constant.ErrAccountBlocked)).Once()
			},
			wantStatus: http.StatusForbidden,
			wantCode:   "0006",
			wantInBody: "Your account has been blocked by admin",
		},
		{
			name:   "signup",
			method: http.MethodPost,
			path:   "/api/auth/signup",
			body:   `{"name":"Sari","email":"sari@example.com","phone":"0812","password":"secret1","role":"client"}`,
			mockCall: func(a apps) {
				a.user.On("Register", mock.Anything, mock.MatchedBy(func(r *model.RegisterRequest) bool {
					return r.Email == "sari@example.com" && r.Role == "client"
				})).Return(&model.AuthResponse{Token: "tok", User: &model.User{ID: 1}}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantInBody: `"token":"tok"`,
		},
		{
			name:       "signup as admin is a validation failure",
			method:     http.MethodPost,
			path:       "/api/auth/signup",
			body:       `{"name":"Sari","email":"sari@example.com","phone":"0812","password":"secret1","role":"admin"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "0003",
			wantInBody: "Invalid role. Only client or mechanic allowed",
		},
		{
			name:       "malformed json",
			method:     http.MethodPost,
			path:       "/api/auth/login",
			body:       `{`,
			wantStatus: http.StatusBadRequest,
			wantInBody: "Invalid request body",
		},
		{
			name:   "client creates request",
			method: http.MethodPost,
			path:   "/api/requests",
			header: map[string]string{"Authorization": "Bearer c"},
			body:   `{"title":"Flat tire","description":"rear left","service_type":"flat_tire","vehicle_type":"car","location":{"latitude":-6.2,"longitude":106.8,"address":"Jl. Sudirman"}}`,
			mockCall: func(a apps) {
				withSession(a, "c", clientSession)
				a.request.On("Create", mock.Anything, clientSession.Identity, mock.AnythingOfType("*model.CreateRequestRequest")).
					Return(&model.RequestResponse{Request: &model.Request{ID: 10, Status: constant.RequestStatusPending}, Message: "Request created successfully"}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantInBody: "Request created successfully",
		},
		{
			name:   "create without location",
			method: http.MethodPost,
			path:   "/api/requests",
			header: map[string]string{"Authorization": "Bearer c"},
			body:   `{"title":"Flat tire","description":"rear left","service_type":"flat_tire","vehicle_type":"car"}`,
			mockCall: func(a apps) {
				withSession(a, "c", clientSession)
			},
			wantStatus: http.StatusBadRequest,
			wantInBody: "location is required",
		},
		{
			name:   "client cannot reach mechanic routes",
			method: http.MethodPatch,
			path:   "/api/mechanic/requests/5/accept",
			header: map[string]string{"Authorization": "Bearer c"},
			body:   `{"estimated_cost":50}`,
			mockCall: func(a apps) {
				withSession(a, "c", clientSession)
			},
			wantStatus: http.StatusForbidden,
			wantCode:   "0005",
		},
		{
			name:   "mechanic accepts",
			method: http.MethodPatch,
			path:   "/api/mechanic/requests/5/accept",
			header: map[string]string{"Authorization": "Bearer m"},
			body:   `{"estimated_cost":50,"mechanic_note":"on my way"}`,
			mockCall: func(a apps) {
				withSession(a, "m", mechanicSession)
				a.request.On("Accept", mock.Anything, mechanicSession.Identity, uint64(5), &model.AcceptRequestRequest{EstimatedCost: 50, MechanicNote: "on my way"}).
					Return(&model.RequestResponse{Request: &model.Request{ID: 5, Status: constant.RequestStatusAccepted}, Message: "Request accepted successfully"}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantInBody: `"status":"accepted"`,
		},
		{
			name:   "accept after another mechanic won",
			method: http.MethodPatch,
			path:   "/api/mechanic/requests/5/accept",
			header: map[string]string{"Authorization": "Bearer m"},
			body:   `{"estimated_cost":50}`,
			mockCall: func(a apps) {
				withSession(a, "m", mechanicSession)
				a.request.On("Accept", mock.Anything, mechanicSession.Identity, uint64(5), mock.Anything).
					Return(nil, cerr.SetCustomErrorMessage(constant.ErrInvalidTransition, "Request is no longer pending")).Once()
			},
			wantStatus: http.StatusConflict,
			wantCode:   "0007",
			wantInBody: `"kind":"InvalidTransition"`,
		},
		{
			name:   "accept with zero cost",
			method: http.MethodPatch,
			path:   "/api/mechanic/requests/5/accept",
			header: map[string]string{"Authorization": "Bearer m"},
			body:   `{"estimated_cost":0}`,
			mockCall: func(a apps) {
				withSession(a, "m", mechanicSession)
			},
			wantStatus: http.StatusBadRequest,
			wantInBody: "estimated_cost must be greater than 0",
		},
		{
			name:   "cancel with empty body",
			method: http.MethodPatch,
			path:   "/api/requests/5/cancel",
			header: map[string]string{"Authorization": "Bearer c"},
			mockCall: func(a apps) {
				withSession(a, "c", clientSession)
				a.request.On("Cancel", mock.Anything, clientSession.Identity, uint64(5), &model.CancelRequestRequest{}).
					Return(&model.RequestResponse{Request: &model.Request{ID: 5, Status: constant.RequestStatusCancelled}}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantInBody: `"status":"cancelled"`,
		},
		{
			name:   "request detail not found",
			method: http.MethodGet,
			path:   "/api/requests/404",
			header: map[string]string{"Authorization": "Bearer c"},
			mockCall: func(a apps) {
				withSession(a, "c", clientSession)
				a.request.On("Get", mock.Anything, clientSession.Identity, uint64(404)).
					Return(nil, cerr.SetCustomErrorMessage(constant.ErrNotFound, "Request not found")).Once()
			},
			wantStatus: http.StatusNotFound,
			wantInBody: "Request not found",
		},
		{
			name:   "admin blocks user",
			method: http.MethodPatch,
			path:   "/api/admin/users/3/block",
			header: map[string]string{"Authorization": "Bearer a"},
			mockCall: func(a apps) {
				withSession(a, "a", adminSession)
				a.admin.On("BlockUser", mock.Anything, adminSession.Identity, uint64(3)).
					Return(&model.UserActionResponse{Message: "Budi has been blocked"}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantInBody: "Budi has been blocked",
		},
		{
			name:   "admin lists requests by status",
			method: http.MethodGet,
			path:   "/api/admin/requests?status=pending",
			header: map[string]string{"Authorization": "Bearer a"},
			mockCall: func(a apps) {
				withSession(a, "a", adminSession)
				a.admin.On("ListRequests", mock.Anything, adminSession.Identity, "pending").
					Return(&model.RequestListResponse{Requests: []*model.Request{}}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "mechanic cannot reach admin routes",
			method: http.MethodGet,
			path:   "/api/admin/stats",
			header: map[string]string{"Authorization": "Bearer m"},
			mockCall: func(a apps) {
				withSession(a, "m", mechanicSession)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:   "logout uses the session id",
			method: http.MethodPost,
			path:   "/api/auth/logout",
			header: map[string]string{"Authorization": "Bearer c"},
			mockCall: func(a apps) {
				withSession(a, "c", clientSession)
				a.user.On("Logout", mock.Anything, "jti-client").Return(nil).Once()
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:   "notifications bad limit",
			method: http.MethodGet,
			path:   "/api/notifications?limit=abc",
			header: map[string]string{"Authorization": "Bearer c"},
			mockCall: func(a apps) {
				withSession(a, "c", clientSession)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "geocode",
			method: http.MethodGet,
			path:   "/api/geocode/reverse?lat=-6.2&lon=106.8",
			header: map[string]string{"Authorization": "Bearer c"},
			mockCall: func(a apps) {
				withSession(a, "c", clientSession)
				a.geocode.On("Reverse", mock.Anything, -6.2, 106.8).
					Return(&model.ReverseGeocodeResponse{Latitude: -6.2, Longitude: 106.8, Address: "Jakarta"}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantInBody: "Jakarta",
		},
		{
			name:       "internal route without key",
			method:     http.MethodPost,
			path:       "/internal/v1/notifications",
			body:       `{"request_id":1,"client_id":1,"status":"pending"}`,
			wantStatus: http.StatusForbidden,
		},
		{
			name:   "internal route records notification",
			method: http.MethodPost,
			path:   "/internal/v1/notifications",
			header: map[string]string{"Authorization": "Bearer " + internalKey},
			body:   `{"request_id":1,"client_id":1,"status":"pending","title":"Flat tire"}`,
			mockCall: func(a apps) {
				a.notification.On("Record", mock.Anything, mock.MatchedBy(func(e *model.RequestStatusEvent) bool {
					return e.RequestID == 1 && e.Status == constant.RequestStatusPending
				})).Return(nil).Once()
			},
			wantStatus: http.StatusNoContent,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			h, a := newServer(t)
			if tt.mockCall != nil {
				tt.mockCall(a)
			}

			var body io.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			}
			req := httptest.NewRequest(tt.method, tt.path, body)
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantCode != "" {
				var got transport.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Equal(t, tt.wantCode, got.Code)
			}
			if tt.wantInBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantInBody)
			}
		})
	}
}

func TestTransport_Metrics(t *testing.T) {
	h, _ := newServer(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `test_http_requests_total{method="GET",route="/api/health",status="200"} 1`)
}
