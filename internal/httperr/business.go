package httperr

import "errors"

const (
	CodeValidation         = "validation_error"
	CodeUnauthorized       = "unauthorized"
	CodeNotFound           = "not_found"
	CodeNotConnected       = "not_connected"
	CodeInvalidCredentials = "invalid_credentials"
)

// BusinessError carries a stable code for classification and the message
// that is shown to the API caller as-is.
type BusinessError struct {
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

func NewBusiness(code, message string) error {
	return BusinessError{Code: code, Message: message}
}

func ErrValidation(message string) error {
	return NewBusiness(CodeValidation, message)
}

func ErrUnauthorized(message string) error {
	return NewBusiness(CodeUnauthorized, message)
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// CodeOf returns the business code of err, or "" for any other error.
func CodeOf(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
