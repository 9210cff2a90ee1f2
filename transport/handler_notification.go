package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/muhammadheryan/roadside-assistance/constant"
	"github.com/muhammadheryan/roadside-assistance/model"
	"github.com/muhammadheryan/roadside-assistance/utils/errors"
)

// ListNotifications handler
// @Summary Newest notifications of the caller
// @Tags Notifications
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max entries (default 20)"
// @Success 200 {object} model.NotificationListResponse
// @Router /api/notifications [get]
func (s *RestHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var limit int64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.ParseInt(raw, 10, 64)
		if err != nil || limit < 0 {
			writeError(w, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "limit must be a positive number"))
			return
		}
	}

	res, err := s.NotificationApp.List(r.Context(), caller, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// RecordNotification is called by the notifier with a consumed status event.
func (s *RestHandler) RecordNotification(w http.ResponseWriter, r *http.Request) {
	var event model.RequestStatusEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		writeError(w, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "Invalid status event"))
		return
	}

	if err := s.NotificationApp.Record(r.Context(), &event); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ReverseGeocode handler
// @Summary Resolve coordinates to an address
// @Tags Geocode
// @Produce json
// @Security BearerAuth
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Success 200 {object} model.ReverseGeocodeResponse
// @Failure 400 {object} transport.ErrorResponse
// @Router /api/geocode/reverse [get]
func (s *RestHandler) ReverseGeocode(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lat, latErr := strconv.ParseFloat(q.Get("lat"), 64)
	lon, lonErr := strconv.ParseFloat(q.Get("lon"), 64)
	if latErr != nil || lonErr != nil {
		writeError(w, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "lat and lon are required"))
		return
	}

	res, err := s.GeocodeApp.Reverse(r.Context(), lat, lon)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
