package transport

import (
	"net/http"
)

// AdminListUsers handler
// @Summary List clients and mechanics
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param role query string false "client or mechanic"
// @Success 200 {object} model.UserListResponse
// @Failure 403 {object} transport.ErrorResponse
// @Router /api/admin/users [get]
func (s *RestHandler) AdminListUsers(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AdminApp.ListUsers(r.Context(), caller, r.URL.Query().Get("role"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// AdminBlockUser handler
// @Summary Block a user
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} model.UserActionResponse
// @Failure 400 {object} transport.ErrorResponse
// @Failure 404 {object} transport.ErrorResponse
// @Router /api/admin/users/{id}/block [patch]
func (s *RestHandler) AdminBlockUser(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AdminApp.BlockUser(r.Context(), caller, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// AdminUnblockUser handler
// @Summary Unblock a user
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} model.UserActionResponse
// @Failure 404 {object} transport.ErrorResponse
// @Router /api/admin/users/{id}/unblock [patch]
func (s *RestHandler) AdminUnblockUser(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AdminApp.UnblockUser(r.Context(), caller, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// AdminListRequests handler
// @Summary List all requests
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Request status"
// @Success 200 {object} model.RequestListResponse
// @Failure 400 {object} transport.ErrorResponse
// @Router /api/admin/requests [get]
func (s *RestHandler) AdminListRequests(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AdminApp.ListRequests(r.Context(), caller, r.URL.Query().Get("status"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// AdminStats handler
// @Summary Platform statistics
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.PlatformStats
// @Router /api/admin/stats [get]
func (s *RestHandler) AdminStats(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AdminApp.Stats(r.Context(), caller)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
