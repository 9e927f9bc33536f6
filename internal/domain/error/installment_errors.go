package error

import "errors"

// Installment purchase domain errors.
var (
	// ErrPurchaseNotFound is returned when an installment purchase is not found.
	ErrPurchaseNotFound = errors.New("installment purchase not found")

	// ErrCardNotConfigured is returned when an installment purchase targets a
	// credit card account whose closing/due days are not configured. The
	// purchase is rejected before any write reaches the store.
	ErrCardNotConfigured = errors.New("credit card statement days not configured")

	// ErrPurchaseAccountNotCard is returned when the owning account is not a
	// credit card account.
	ErrPurchaseAccountNotCard = errors.New("installment purchases require a credit card account")

	// ErrInvalidInstallmentCount is returned when the installment count is less than one.
	ErrInvalidInstallmentCount = errors.New("installment count must be at least 1")

	// ErrInvalidPurchaseAmount is returned when the total amount is not positive.
	ErrInvalidPurchaseAmount = errors.New("purchase amount must be positive")

	// ErrPurchaseCreateIncomplete is returned when the purchase row was
	// written but its generated installment entries were not.
	ErrPurchaseCreateIncomplete = errors.New("installment purchase create incomplete")

	// ErrPurchaseDeleteIncomplete is returned when the compound delete of an
	// installment purchase succeeded only partially: the installment entries
	// were removed but the purchase row (or the reverse) was not. The store is
	// inconsistent until the next refresh and the caller must not treat the
	// operation as successful.
	ErrPurchaseDeleteIncomplete = errors.New("installment purchase delete incomplete")
)

// InstallmentErrorCode defines error codes for installment purchase errors.
// Format: INS-XXYYYY where XX is category and YYYY is specific error.
type InstallmentErrorCode string

const (
	// Validation / configuration errors (01XXXX)
	ErrCodePurchaseNotFound        InstallmentErrorCode = "INS-010001"
	ErrCodeCardNotConfigured       InstallmentErrorCode = "INS-010002"
	ErrCodePurchaseAccountNotCard  InstallmentErrorCode = "INS-010003"
	ErrCodeInvalidInstallmentCount InstallmentErrorCode = "INS-010004"
	ErrCodeInvalidPurchaseAmount   InstallmentErrorCode = "INS-010005"
	ErrCodePurchaseAccountNotFound InstallmentErrorCode = "INS-010006"

	// Partial failure errors (02XXXX)
	ErrCodePurchaseDeleteIncomplete InstallmentErrorCode = "INS-020001"
	ErrCodePurchaseCreateIncomplete InstallmentErrorCode = "INS-020002"
)

// InstallmentError represents an installment purchase error with code and message.
type InstallmentError struct {
	Code    InstallmentErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *InstallmentError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *InstallmentError) Unwrap() error {
	return e.Err
}

// NewInstallmentError creates a new InstallmentError with the given code and message.
func NewInstallmentError(code InstallmentErrorCode, message string, err error) *InstallmentError {
	return &InstallmentError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
