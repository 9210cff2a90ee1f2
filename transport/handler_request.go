package transport

import (
	"net/http"

	"github.com/muhammadheryan/roadside-assistance/model"
)

// ListRequests handler
// @Summary List requests visible to the caller
// @Description Clients see their own requests, mechanics see pending requests plus the ones assigned to them, admins see all
// @Tags Requests
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.RequestListResponse
// @Failure 401 {object} transport.ErrorResponse
// @Router /api/requests [get]
// @Router /api/mechanic/requests [get]
func (s *RestHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.RequestApp.List(r.Context(), caller)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CreateRequest handler
// @Summary File a service request
// @Tags Requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateRequestRequest true "Service request"
// @Success 201 {object} model.RequestResponse
// @Failure 400 {object} transport.ErrorResponse
// @Failure 403 {object} transport.ErrorResponse
// @Router /api/requests [post]
func (s *RestHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.CreateRequestRequest
	if err := decodeAndValidate(r, &req, false); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.RequestApp.Create(r.Context(), caller, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// GetRequest handler
// @Summary Request detail
// @Tags Requests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Success 200 {object} model.RequestResponse
// @Failure 403 {object} transport.ErrorResponse
// @Failure 404 {object} transport.ErrorResponse
// @Router /api/requests/{id} [get]
func (s *RestHandler) GetRequest(w http.ResponseWriter, r *http.Request) {
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

	res, err := s.RequestApp.Get(r.Context(), caller, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CancelRequest handler
// @Summary Cancel a pending or accepted request
// @Tags Requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Param request body model.CancelRequestRequest false "Reason"
// @Success 200 {object} model.RequestResponse
// @Failure 403 {object} transport.ErrorResponse
// @Failure 409 {object} transport.ErrorResponse
// @Router /api/requests/{id}/cancel [patch]
func (s *RestHandler) CancelRequest(w http.ResponseWriter, r *http.Request) {
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

	var req model.CancelRequestRequest
	if err := decodeAndValidate(r, &req, true); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.RequestApp.Cancel(r.Context(), caller, id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// AcceptRequest handler
// @Summary Accept a pending request
// @Tags Mechanic
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Param request body model.AcceptRequestRequest true "Estimate"
// @Success 200 {object} model.RequestResponse
// @Failure 400 {object} transport.ErrorResponse
// @Failure 409 {object} transport.ErrorResponse
// @Router /api/mechanic/requests/{id}/accept [patch]
func (s *RestHandler) AcceptRequest(w http.ResponseWriter, r *http.Request) {
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

	var req model.AcceptRequestRequest
	if err := decodeAndValidate(r, &req, false); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.RequestApp.Accept(r.Context(), caller, id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// RejectRequest handler
// @Summary Reject a pending request
// @Tags Mechanic
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Param request body model.RejectRequestRequest false "Reason"
// @Success 200 {object} model.RequestResponse
// @Failure 409 {object} transport.ErrorResponse
// @Router /api/mechanic/requests/{id}/reject [patch]
func (s *RestHandler) RejectRequest(w http.ResponseWriter, r *http.Request) {
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

	var req model.RejectRequestRequest
	if err := decodeAndValidate(r, &req, true); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.RequestApp.Reject(r.Context(), caller, id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CompleteRequest handler
// @Summary Complete an assigned request
// @Tags Mechanic
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Param request body model.CompleteRequestRequest false "Final cost, defaults to the estimate"
// @Success 200 {object} model.RequestResponse
// @Failure 403 {object} transport.ErrorResponse
// @Failure 409 {object} transport.ErrorResponse
// @Router /api/mechanic/requests/{id}/complete [patch]
func (s *RestHandler) CompleteRequest(w http.ResponseWriter, r *http.Request) {
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

	var req model.CompleteRequestRequest
	if err := decodeAndValidate(r, &req, true); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.RequestApp.Complete(r.Context(), caller, id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
