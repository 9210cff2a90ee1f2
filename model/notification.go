package model

import (
	"time"

	"github.com/muhammadheryan/roadside-assistance/constant"
)

// RequestStatusEvent is published after every committed lifecycle change.
type RequestStatusEvent struct {
	RequestID  uint64                 `json:"request_id"`
	ClientID   uint64                 `json:"client_id"`
	MechanicID *uint64                `json:"mechanic_id,omitempty"`
	Status     constant.RequestStatus `json:"status"`
	ActorID    uint64                 `json:"actor_id"`
	ActorRole  constant.Role          `json:"actor_role" swaggertype:"string"`
	Title      string                 `json:"title"`
	OccurredAt time.Time              `json:"occurred_at"`
}

// Notification is one entry in a user's feed.
type Notification struct {
	RequestID uint64                 `json:"request_id"`
	Status    constant.RequestStatus `json:"status"`
	Message   string                 `json:"message"`
	CreatedAt time.Time              `json:"created_at"`
}

type NotificationListResponse struct {
	Notifications []Notification `json:"notifications"`
}

type ReverseGeocodeResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
