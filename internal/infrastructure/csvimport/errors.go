package csvimport

import "errors"

// Common sampling errors
var (
	// ErrEmptyFile is returned when the uploaded file has no content
	ErrEmptyFile = errors.New("CSV file is empty")

	// ErrMissingHeader is returned when the CSV file has no header row
	ErrMissingHeader = errors.New("CSV file missing header row")

	// ErrNoColumns is returned when the header row contains no columns
	ErrNoColumns = errors.New("CSV header row contains no columns")

	// ErrTooManyColumns is returned when the header row exceeds the
	// configured column limit
	ErrTooManyColumns = errors.New("CSV file has too many columns")
)
