package internal

import "errors"

// AppError is the error payload carried in API responses.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) Error() string { return e.Message }

func NewAppError(code int, msg string) *AppError {
	return &AppError{Code: code, Message: msg}
}

// Referential errors on the fixed enumerations.
var (
	ErrUnknownDoctor   = errors.New("unknown doctor")
	ErrUnknownCategory = errors.New("unknown bed category")
	ErrUnknownTier     = errors.New("unknown risk tier")
	ErrUserNotFound    = errors.New("user not found")
)

// ErrModelUnavailable means the risk model could not be loaded or invoked.
// It is fatal to the triggering operation only; no state is mutated.
var ErrModelUnavailable = errors.New("risk model unavailable")

// RejectionReason tags a business-rule rejection. Rejections are outcomes,
// not faults: no error escapes, no state changes.
type RejectionReason string

const (
	DoctorUnavailable RejectionReason = "doctor_unavailable"
	NoBedsAvailable   RejectionReason = "no_beds_available"
)

type Rejection struct {
	Reason  RejectionReason `json:"reason"`
	Message string          `json:"message"`
}
