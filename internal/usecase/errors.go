package usecase

import "errors"

const (
	CodeMissingParameter = "MISSING_PARAMETER"
	CodeDeliveryFailure  = "DELIVERY_FAILURE"
)

// MissingParameterMessage is the body returned for any absent required field.
const MissingParameterMessage = "Faltan parámetros"

// DomainError is caused by the caller's input; nothing was attempted.
type DomainError struct {
	Code    string
	Message string
	Fields  []string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

// TechnicalError wraps a failure from the messaging client. Err is for logs only.
type TechnicalError struct {
	Code    string
	Message string
	Err     error
}

func (e *TechnicalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *TechnicalError) Unwrap() error {
	return e.Err
}

func IsTechnicalError(err error) bool {
	var te *TechnicalError
	return errors.As(err, &te)
}
