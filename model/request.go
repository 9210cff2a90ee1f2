package model

import (
	"time"

	"github.com/muhammadheryan/roadside-assistance/constant"
)

// RequestEntity is a request row joined with the summaries of its client and mechanic.
type RequestEntity struct {
	ID                uint64                 `db:"id"`
	ClientID          uint64                 `db:"client_id"`
	MechanicID        *uint64                `db:"mechanic_id"`
	Title             string                 `db:"title"`
	Description       string                 `db:"description"`
	ServiceType       constant.ServiceType   `db:"service_type"`
	VehicleType       constant.VehicleType   `db:"vehicle_type"`
	VehicleModel      *string                `db:"vehicle_model"`
	VehiclePlate      *string                `db:"vehicle_plate"`
	LocationLatitude  float64                `db:"location_latitude"`
	LocationLongitude float64                `db:"location_longitude"`
	LocationAddress   string                 `db:"location_address"`
	Status            constant.RequestStatus `db:"status"`
	EstimatedCost     *float64               `db:"estimated_cost"`
	FinalCost         *float64               `db:"final_cost"`
	MechanicNote      *string                `db:"mechanic_note"`
	ClientNote        *string                `db:"client_note"`
	CancelledBy       *constant.CancelledBy  `db:"cancelled_by"`
	CancelReason      *string                `db:"cancel_reason"`
	CreatedAt         time.Time              `db:"created_at"`
	UpdatedAt         *time.Time             `db:"updated_at"`

	ClientName             *string  `db:"client_name"`
	ClientEmail            *string  `db:"client_email"`
	ClientPhone            *string  `db:"client_phone"`
	MechanicName           *string  `db:"mechanic_name"`
	MechanicEmail          *string  `db:"mechanic_email"`
	MechanicPhone          *string  `db:"mechanic_phone"`
	MechanicSpecialization *string  `db:"mechanic_specialization"`
	MechanicRating         *float64 `db:"mechanic_rating"`
}

// Location of a request. Address is free text supplied by the client.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

// UserSummary is the embedded view of a user on a request.
type UserSummary struct {
	ID             uint64   `json:"id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Specialization string   `json:"specialization,omitempty"`
	Rating         *float64 `json:"rating,omitempty"`
}

// Request is the public shape of a service request.
type Request struct {
	ID            uint64                 `json:"id"`
	Client        *UserSummary           `json:"client"`
	Mechanic      *UserSummary           `json:"mechanic"`
	Title         string                 `json:"title"`
	Description   string                 `json:"description"`
	ServiceType   constant.ServiceType   `json:"service_type"`
	VehicleType   constant.VehicleType   `json:"vehicle_type"`
	VehicleModel  *string                `json:"vehicle_model,omitempty"`
	VehiclePlate  *string                `json:"vehicle_plate,omitempty"`
	Location      Location               `json:"location"`
	Status        constant.RequestStatus `json:"status"`
	EstimatedCost *float64               `json:"estimated_cost"`
	FinalCost     *float64               `json:"final_cost"`
	MechanicNote  *string                `json:"mechanic_note,omitempty"`
	ClientNote    *string                `json:"client_note,omitempty"`
	CancelledBy   *constant.CancelledBy  `json:"cancelled_by"`
	CancelReason  *string                `json:"cancel_reason,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     *time.Time             `json:"updated_at,omitempty"`
}

func (e *RequestEntity) ToRequest() *Request {
	if e == nil {
		return nil
	}
	r := &Request{
		ID:            e.ID,
		Client:        &UserSummary{ID: e.ClientID},
		Title:         e.Title,
		Description:   e.Description,
		ServiceType:   e.ServiceType,
		VehicleType:   e.VehicleType,
		VehicleModel:  e.VehicleModel,
		VehiclePlate:  e.VehiclePlate,
		Location:      Location{Latitude: e.LocationLatitude, Longitude: e.LocationLongitude, Address: e.LocationAddress},
		Status:        e.Status,
		EstimatedCost: e.EstimatedCost,
		FinalCost:     e.FinalCost,
		MechanicNote:  e.MechanicNote,
		ClientNote:    e.ClientNote,
		CancelledBy:   e.CancelledBy,
		CancelReason:  e.CancelReason,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
	r.Client.Name = deref(e.ClientName)
	r.Client.Email = deref(e.ClientEmail)
	r.Client.Phone = deref(e.ClientPhone)
	if e.MechanicID != nil {
		r.Mechanic = &UserSummary{
			ID:             *e.MechanicID,
			Name:           deref(e.MechanicName),
			Email:          deref(e.MechanicEmail),
			Phone:          deref(e.MechanicPhone),
			Specialization: deref(e.MechanicSpecialization),
			Rating:         e.MechanicRating,
		}
	}
	return r
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// RequestFilter narrows a request listing. Zero fields do not filter.
// When both ClientID and VisibleToMechanicID are zero every request matches.
type RequestFilter struct {
	ClientID uint64
	// VisibleToMechanicID selects requests that are pending OR assigned to this mechanic.
	VisibleToMechanicID uint64
	Status              constant.RequestStatus
}

// RequestTransition is a conditional write produced by the lifecycle engine.
// The store applies it only if the row still matches every guard.
type RequestTransition struct {
	RequestID uint64
	From      []constant.RequestStatus
	To        constant.RequestStatus

	// guards
	ClientID   *uint64
	MechanicID *uint64

	// effects
	AssignMechanicID *uint64
	EstimatedCost    *float64
	MechanicNote     *string
	// FinalCost nil with FinalCostFromEstimate set copies estimated_cost in the same write.
	FinalCost             *float64
	FinalCostFromEstimate bool
	CancelledBy           *constant.CancelledBy
	CancelReason          *string
}

type LocationRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
	Address   string   `json:"address" validate:"required"`
}

type CreateRequestRequest struct {
	Title        string           `json:"title" validate:"required"`
	Description  string           `json:"description" validate:"required"`
	ServiceType  string           `json:"service_type" validate:"required,oneof=flat_tire battery_jump fuel_delivery towing lockout engine_trouble accident other"`
	VehicleType  string           `json:"vehicle_type" validate:"required,oneof=car motorcycle truck van bus other"`
	VehicleModel string           `json:"vehicle_model"`
	VehiclePlate string           `json:"vehicle_plate"`
	Location     *LocationRequest `json:"location" validate:"required"`
	ClientNote   string           `json:"client_note"`
}

type AcceptRequestRequest struct {
	EstimatedCost float64 `json:"estimated_cost" validate:"gt=0"`
	MechanicNote  string  `json:"mechanic_note"`
}

type RejectRequestRequest struct {
	Reason string `json:"reason"`
}

type CompleteRequestRequest struct {
	FinalCost *float64 `json:"final_cost" validate:"omitempty,gte=0"`
}

type CancelRequestRequest struct {
	Reason string `json:"reason"`
}

type RequestResponse struct {
	Request *Request `json:"request"`
	Message string   `json:"message,omitempty"`
}

type RequestListResponse struct {
	Requests []*Request `json:"requests"`
}

// PlatformStats is the admin dashboard summary.
type PlatformStats struct {
	TotalClients      int64 `json:"total_clients" db:"total_clients"`
	TotalMechanics    int64 `json:"total_mechanics" db:"total_mechanics"`
	TotalRequests     int64 `json:"total_requests" db:"total_requests"`
	PendingRequests   int64 `json:"pending_requests" db:"pending_requests"`
	CompletedRequests int64 `json:"completed_requests" db:"completed_requests"`
	BlockedUsers      int64 `json:"blocked_users" db:"blocked_users"`
}
