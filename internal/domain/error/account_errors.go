// Package error defines domain-specific errors for the Centavo application.
package error

import "errors"

// Account domain errors.
var (
	// ErrAccountNotFound is returned when an account is not found in the system.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInvalidAccountCategory is returned when the account category is not one of the known kinds.
	ErrInvalidAccountCategory = errors.New("invalid account category")

	// ErrCardDaysRequired is returned when a credit card account is missing its statement days.
	ErrCardDaysRequired = errors.New("credit card account requires closing and due days")

	// ErrCardDaysNotAllowed is returned when statement days are set on a non-card account.
	ErrCardDaysNotAllowed = errors.New("closing and due days are only valid for credit card accounts")

	// ErrInvalidCardDay is returned when a statement day is outside the 1-31 range.
	ErrInvalidCardDay = errors.New("statement day must be between 1 and 31")

	// ErrAccountNotCard is returned when a card-only operation targets a non-card account.
	ErrAccountNotCard = errors.New("account is not a credit card")
)

// AccountErrorCode defines error codes for account errors.
// Format: ACC-XXYYYY where XX is category and YYYY is specific error.
type AccountErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeAccountNotFound        AccountErrorCode = "ACC-010001"
	ErrCodeInvalidAccountCategory AccountErrorCode = "ACC-010002"
	ErrCodeCardDaysRequired       AccountErrorCode = "ACC-010003"
	ErrCodeCardDaysNotAllowed     AccountErrorCode = "ACC-010004"
	ErrCodeInvalidCardDay         AccountErrorCode = "ACC-010005"
	ErrCodeMissingAccountFields   AccountErrorCode = "ACC-010006"
	ErrCodeAccountNotCard         AccountErrorCode = "ACC-010007"
)

// AccountError represents an account error with code and message.
type AccountError struct {
	Code    AccountErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AccountError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AccountError) Unwrap() error {
	return e.Err
}

// NewAccountError creates a new AccountError with the given code and message.
func NewAccountError(code AccountErrorCode, message string, err error) *AccountError {
	return &AccountError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
