package errors

import (
	stderrors "errors"

	"github.com/sentinelhq/sentinel/jsonx"
)

// OracleErrorCode represents standardized error codes for oracle operations
type OracleErrorCode string

const (
	// General errors
	ErrCodeInternal OracleErrorCode = "internal_error"

	// Validation errors
	ErrCodeInvalidRequest   OracleErrorCode = "invalid_request"
	ErrCodeInvalidAddress   OracleErrorCode = "invalid_address"
	ErrCodeInvalidSignature OracleErrorCode = "invalid_signature"
	ErrCodeInvalidScore     OracleErrorCode = "invalid_score"
	ErrCodeStalePayload     OracleErrorCode = "stale_payload"

	// Lifecycle errors
	ErrCodeNotInitialized     OracleErrorCode = "not_initialized"
	ErrCodeAlreadyInitialized OracleErrorCode = "already_initialized"
)

// OracleError represents a standardized oracle error
type OracleError struct {
	Code    OracleErrorCode `json:"code"`
	Message string          `json:"message"`
}

// Error implements the error interface
func (e *OracleError) Error() string {
	msg, _ := jsonx.Marshal(OracleError{
		Code:    e.Code,
		Message: e.Message,
	})
	return string(msg)
}

// Error message constants - user-friendly and concise
const (
	ErrMsgInternal           = "Server error, please try again"
	ErrMsgInvalidRequest     = "Request format is invalid"
	ErrMsgInvalidAddress     = "Wallet address is invalid"
	ErrMsgInvalidSignature   = "Oracle signature is invalid"
	ErrMsgInvalidScore       = "Risk score must be between 0 and 100"
	ErrMsgStalePayload       = "Payload is older than the replay window"
	ErrMsgNotInitialized     = "Oracle public key has not been registered"
	ErrMsgAlreadyInitialized = "Oracle public key is already registered"
)

// NewError creates a new OracleError and returns it as error interface
func NewError(code OracleErrorCode, message string) error {
	return &OracleError{
		Code:    code,
		Message: message,
	}
}

func NewNotInitialized() error     { return NewError(ErrCodeNotInitialized, ErrMsgNotInitialized) }
func NewAlreadyInitialized() error { return NewError(ErrCodeAlreadyInitialized, ErrMsgAlreadyInitialized) }
func NewInvalidSignature() error   { return NewError(ErrCodeInvalidSignature, ErrMsgInvalidSignature) }
func NewInvalidScore() error       { return NewError(ErrCodeInvalidScore, ErrMsgInvalidScore) }
func NewStalePayload() error       { return NewError(ErrCodeStalePayload, ErrMsgStalePayload) }
func NewInvalidAddress() error     { return NewError(ErrCodeInvalidAddress, ErrMsgInvalidAddress) }

// CodeOf extracts the oracle error code from err, or ErrCodeInternal when
// the error did not originate from this package.
func CodeOf(err error) OracleErrorCode {
	var oe *OracleError
	if stderrors.As(err, &oe) {
		return oe.Code
	}
	return ErrCodeInternal
}

// HasCode reports whether err carries the given oracle error code.
func HasCode(err error, code OracleErrorCode) bool {
	return err != nil && CodeOf(err) == code
}
