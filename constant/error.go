package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorized
	ErrForbidden
	ErrEmailExists
	ErrInvalidCredentials
	ErrInvalidToken
	ErrVolumeExceeded
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:            "success",
	ErrInternal:           "error internal",
	ErrNotFound:           "data not found",
	ErrInvalidRequest:     "invalid request",
	ErrUnauthorized:       "Authentication required",
	ErrForbidden:          "Only collectors can submit data",
	ErrEmailExists:        "Email already registered",
	ErrInvalidCredentials: "Invalid email or password",
	ErrInvalidToken:       "Invalid or expired token",
	ErrVolumeExceeded:     "Separated volumes cannot exceed total volume",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:            http.StatusOK,
	ErrInternal:           http.StatusInternalServerError,
	ErrNotFound:           http.StatusNotFound,
	ErrInvalidRequest:     http.StatusBadRequest,
	ErrUnauthorized:       http.StatusUnauthorized,
	ErrForbidden:          http.StatusForbidden,
	ErrEmailExists:        http.StatusBadRequest,
	ErrInvalidCredentials: http.StatusUnauthorized,
	ErrInvalidToken:       http.StatusUnauthorized,
	ErrVolumeExceeded:     http.StatusBadRequest,
}

// ErrorTypeCode carries the machine-readable kind exposed on the wire.
var ErrorTypeCode = map[ErrorType]string{
	Successful:            "SUCCESS",
	ErrInternal:           "INTERNAL_SERVER_ERROR",
	ErrNotFound:           "NOT_FOUND",
	ErrInvalidRequest:     "BAD_REQUEST",
	ErrUnauthorized:       "UNAUTHORIZED",
	ErrForbidden:          "FORBIDDEN",
	ErrEmailExists:        "BAD_REQUEST",
	ErrInvalidCredentials: "UNAUTHORIZED",
	ErrInvalidToken:       "UNAUTHORIZED",
	ErrVolumeExceeded:     "BAD_REQUEST",
}
