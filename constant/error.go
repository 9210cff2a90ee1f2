package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrForbidden
	ErrAccountBlocked
	ErrInvalidTransition
	ErrCredentialExists
	ErrInvalidCredential
	ErrAdminExists
	ErrInvalidSecretKey
	ErrCannotBlockAdmin
	ErrInvalidRole
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:           "success",
	ErrInternal:          "error internal",
	ErrNotFound:          "data not found",
	ErrInvalidRequest:    "invalid request",
	ErrUnauthorize:       "unauthorize request",
	ErrForbidden:         "Not authorized",
	ErrAccountBlocked:    "Your account has been blocked by admin",
	ErrInvalidTransition: "invalid request status transition",
	ErrCredentialExists:  "Email already registered",
	ErrInvalidCredential: "Invalid credentials",
	ErrAdminExists:       "Admin already exists",
	ErrInvalidSecretKey:  "Invalid secret key",
	ErrCannotBlockAdmin:  "Cannot block admin",
	ErrInvalidRole:       "Invalid role. Only client or mechanic allowed",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:           http.StatusOK,
	ErrInternal:          http.StatusInternalServerError,
	ErrNotFound:          http.StatusNotFound,
	ErrInvalidRequest:    http.StatusBadRequest,
	ErrUnauthorize:       http.StatusUnauthorized,
	ErrForbidden:         http.StatusForbidden,
	ErrAccountBlocked:    http.StatusForbidden,
	ErrInvalidTransition: http.StatusConflict,
	ErrCredentialExists:  http.StatusBadRequest,
	ErrInvalidCredential: http.StatusUnauthorized,
	ErrAdminExists:       http.StatusBadRequest,
	ErrInvalidSecretKey:  http.StatusForbidden,
	ErrCannotBlockAdmin:  http.StatusBadRequest,
	ErrInvalidRole:       http.StatusBadRequest,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:           "0000",
	ErrInternal:          "0001",
	ErrNotFound:          "0002",
	ErrInvalidRequest:    "0003",
	ErrUnauthorize:       "0004",
	ErrForbidden:         "0005",
	ErrAccountBlocked:    "0006",
	ErrInvalidTransition: "0007",
	ErrCredentialExists:  "0008",
	ErrInvalidCredential: "0009",
	ErrAdminExists:       "0010",
	ErrInvalidSecretKey:  "0011",
	ErrCannotBlockAdmin:  "0012",
	ErrInvalidRole:       "0013",
}

// ErrorKind groups error types into the categories reported to callers.
type ErrorKind string

const (
	KindNone              ErrorKind = ""
	KindInternal          ErrorKind = "Internal"
	KindNotAuthenticated  ErrorKind = "NotAuthenticated"
	KindNotAuthorized     ErrorKind = "NotAuthorized"
	KindNotFound          ErrorKind = "NotFound"
	KindInvalidTransition ErrorKind = "InvalidTransition"
	KindValidationFailure ErrorKind = "ValidationFailure"
)

var ErrorTypeKind = map[ErrorType]ErrorKind{
	Successful:           KindNone,
	ErrInternal:          KindInternal,
	ErrNotFound:          KindNotFound,
	ErrInvalidRequest:    KindValidationFailure,
	ErrUnauthorize:       KindNotAuthenticated,
	ErrForbidden:         KindNotAuthorized,
	ErrAccountBlocked:    KindNotAuthenticated,
	ErrInvalidTransition: KindInvalidTransition,
	ErrCredentialExists:  KindValidationFailure,
	ErrInvalidCredential: KindNotAuthenticated,
	ErrAdminExists:       KindValidationFailure,
	ErrInvalidSecretKey:  KindNotAuthorized,
	ErrCannotBlockAdmin:  KindValidationFailure,
	ErrInvalidRole:       KindValidationFailure,
}
