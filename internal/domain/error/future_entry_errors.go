package error

import "errors"

// Future entry domain errors.
var (
	// ErrFutureEntryNotFound is returned when a future entry is not found in the system.
	ErrFutureEntryNotFound = errors.New("future entry not found")

	// ErrInvalidFutureEntryKind is returned when the future entry kind is invalid.
	ErrInvalidFutureEntryKind = errors.New("invalid future entry kind")

	// ErrInvalidFutureEntryAmount is returned when the future entry amount is not positive.
	ErrInvalidFutureEntryAmount = errors.New("future entry amount must be positive")

	// ErrFutureEntryAlreadyPaid is returned when paying an entry that is already settled.
	ErrFutureEntryAlreadyPaid = errors.New("future entry already paid")

	// ErrPaymentAccountRequired is returned when paying an entry that has no account
	// of its own and no payment account was provided.
	ErrPaymentAccountRequired = errors.New("payment account required")

	// ErrPaymentAccountIsCard is returned when the settlement would land on a
	// credit card account. Settlements are cash movements and must be recorded
	// on a cash account, never on the card itself.
	ErrPaymentAccountIsCard = errors.New("payment account must not be a credit card")
)

// FutureEntryErrorCode defines error codes for future entry errors.
// Format: FUT-XXYYYY where XX is category and YYYY is specific error.
type FutureEntryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeFutureEntryNotFound      FutureEntryErrorCode = "FUT-010001"
	ErrCodeInvalidFutureEntryKind   FutureEntryErrorCode = "FUT-010002"
	ErrCodeInvalidFutureEntryAmount FutureEntryErrorCode = "FUT-010003"
	ErrCodeFutureEntryAlreadyPaid   FutureEntryErrorCode = "FUT-010004"
	ErrCodePaymentAccountRequired   FutureEntryErrorCode = "FUT-010005"
	ErrCodePaymentAccountIsCard     FutureEntryErrorCode = "FUT-010006"
)

// FutureEntryError represents a future entry error with code and message.
type FutureEntryError struct {
	Code    FutureEntryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *FutureEntryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *FutureEntryError) Unwrap() error {
	return e.Err
}

// NewFutureEntryError creates a new FutureEntryError with the given code and message.
func NewFutureEntryError(code FutureEntryErrorCode, message string, err error) *FutureEntryError {
	return &FutureEntryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
