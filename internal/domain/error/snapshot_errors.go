package error

import (
	"errors"
	"fmt"
)

// Snapshot domain errors.
var (
	// ErrMalformedRecord is returned when a persisted row cannot be converted
	// into a valid domain entity at the snapshot boundary. The row is rejected
	// instead of letting invalid values propagate into arithmetic.
	ErrMalformedRecord = errors.New("malformed record")
)

// SnapshotErrorCode defines error codes for snapshot loading errors.
// Format: SNP-XXYYYY where XX is category and YYYY is specific error.
type SnapshotErrorCode string

const (
	// Record validation errors (01XXXX)
	ErrCodeMalformedAccount     SnapshotErrorCode = "SNP-010001"
	ErrCodeMalformedTransaction SnapshotErrorCode = "SNP-010002"
	ErrCodeMalformedFutureEntry SnapshotErrorCode = "SNP-010003"
	ErrCodeMalformedPurchase    SnapshotErrorCode = "SNP-010004"
)

// MalformedRecordError reports a row that failed validation while building a
// ledger snapshot, identifying the table, record and offending field.
type MalformedRecordError struct {
	Code     SnapshotErrorCode
	Table    string
	RecordID string
	Field    string
	Err      error
}

// Error implements the error interface.
func (e *MalformedRecordError) Error() string {
	msg := fmt.Sprintf("malformed %s record %s: invalid %s", e.Table, e.RecordID, e.Field)
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *MalformedRecordError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrMalformedRecord
}

// Is allows errors.Is matching against ErrMalformedRecord.
func (e *MalformedRecordError) Is(target error) bool {
	return target == ErrMalformedRecord
}

// NewMalformedRecordError creates a new MalformedRecordError.
func NewMalformedRecordError(code SnapshotErrorCode, table, recordID, field string, err error) *MalformedRecordError {
	return &MalformedRecordError{
		Code:     code,
		Table:    table,
		RecordID: recordID,
		Field:    field,
		Err:      err,
	}
}
