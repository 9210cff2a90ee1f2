package model

import (
	"time"

	"github.com/muhammadheryan/roadside-assistance/constant"
)

// UserEntity represents the user table entity
type UserEntity struct {
	ID                uint64        `db:"id"`
	Name              string        `db:"name"`
	Email             string        `db:"email"`
	Phone             string        `db:"phone"`
	PasswordHash      string        `db:"password_hash"`
	Role              constant.Role `db:"role"`
	IsBlocked         bool          `db:"is_blocked"`
	Specialization    string        `db:"specialization"`
	VehicleType       string        `db:"vehicle_type"`
	LicenseNumber     string        `db:"license_number"`
	Rating            float64       `db:"rating"`
	TotalRatings      int64         `db:"total_ratings"`
	IsAvailable       bool          `db:"is_available"`
	LocationLatitude  *float64      `db:"location_latitude"`
	LocationLongitude *float64      `db:"location_longitude"`
	LocationAddress   *string       `db:"location_address"`
	CreatedAt         time.Time     `db:"created_at"`
	UpdatedAt         *time.Time    `db:"updated_at"`
}

// User is the public shape of a user, without the password hash.
type User struct {
	ID             uint64        `json:"id"`
	Name           string        `json:"name"`
	Email          string        `json:"email"`
	Phone          string        `json:"phone"`
	Role           constant.Role `json:"role" swaggertype:"string"`
	IsBlocked      bool          `json:"is_blocked"`
	Specialization string        `json:"specialization,omitempty"`
	VehicleType    string        `json:"vehicle_type,omitempty"`
	LicenseNumber  string        `json:"license_number,omitempty"`
	Rating         float64       `json:"rating"`
	TotalRatings   int64         `json:"total_ratings"`
	IsAvailable    bool          `json:"is_available"`
	Location       *UserLocation `json:"location,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      *time.Time    `json:"updated_at,omitempty"`
}

// UserLocation is the last known position of a mechanic or client. All parts are optional.
type UserLocation struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Address   *string  `json:"address,omitempty"`
}

func (e *UserEntity) ToUser() *User {
	if e == nil {
		return nil
	}
	u := &User{
		ID:           e.ID,
		Name:         e.Name,
		Email:        e.Email,
		Phone:        e.Phone,
		Role:         e.Role,
		IsBlocked:    e.IsBlocked,
		Rating:       e.Rating,
		TotalRatings: e.TotalRatings,
		IsAvailable:  e.IsAvailable,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
	if e.Role == constant.RoleMechanic {
		u.Specialization = e.Specialization
		u.VehicleType = e.VehicleType
		u.LicenseNumber = e.LicenseNumber
	}
	if e.LocationLatitude != nil || e.LocationLongitude != nil || e.LocationAddress != nil {
		u.Location = &UserLocation{
			Latitude:  e.LocationLatitude,
			Longitude: e.LocationLongitude,
			Address:   e.LocationAddress,
		}
	}
	return u
}

// Identity is the resolved caller of an operation.
type Identity struct {
	UserID    uint64
	Role      constant.Role
	IsBlocked bool
}

// Session is a validated bearer token: who is calling and which session it belongs to.
type Session struct {
	Identity Identity
	TokenID  string
}

// UserFilter for querying a single user
type UserFilter struct {
	ID    uint64
	Email string
	Role  constant.Role
}

// UserListFilter for listing users. A zero Role lists every non-admin user.
type UserListFilter struct {
	Role constant.Role
}

// ProfileUpdate carries the self-editable user fields. Nil fields are left untouched.
type ProfileUpdate struct {
	Name           *string
	Phone          *string
	Specialization *string
	VehicleType    *string
	LicenseNumber  *string
	Location       *UserLocation
}

// RegisterRequest for user signup
type RegisterRequest struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"required"`
	Password       string `json:"password" validate:"required,min=6"`
	Role           string `json:"role" validate:"required,signup_role"`
	Specialization string `json:"specialization"`
	VehicleType    string `json:"vehicle_type"`
	LicenseNumber  string `json:"license_number"`
}

// LoginRequest for user login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CreateAdminRequest for the one-time admin bootstrap
type CreateAdminRequest struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required"`
	Password  string `json:"password" validate:"required,min=6"`
	SecretKey string `json:"secret_key" validate:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

type UpdateProfileRequest struct {
	Name           *string          `json:"name" validate:"omitempty,min=1"`
	Phone          *string          `json:"phone" validate:"omitempty,min=1"`
	Specialization *string          `json:"specialization"`
	VehicleType    *string          `json:"vehicle_type"`
	LicenseNumber  *string          `json:"license_number"`
	Location       *LocationRequest `json:"location"`
}

type AvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" validate:"required"`
}

type AvailabilityResponse struct {
	Message     string `json:"message"`
	IsAvailable bool   `json:"is_available"`
}

type UserListResponse struct {
	Users []*User `json:"users"`
}

type UserActionResponse struct {
	Message string `json:"message"`
	User    *User  `json:"user"`
}
