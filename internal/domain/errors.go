package domain

import "errors"

// Error taxonomy shared by every layer. Layer-specific sentinels wrap one of these
// so callers can classify failures with errors.Is.
var (
	// ErrValidation marks malformed input: date, time, party size, table id
	ErrValidation = errors.New("validation error")

	// ErrNotFound marks unknown users, bookings, restaurants and missing files
	ErrNotFound = errors.New("not found")

	// ErrDataIntegrity marks malformed catalog or ledger rows and unparsable embedded fields
	ErrDataIntegrity = errors.New("data integrity error")

	// ErrIO marks underlying storage failures
	ErrIO = errors.New("io error")
)
