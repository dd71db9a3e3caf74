package schedstore

import "errors"

var (
	// Store errors.
	ErrStoreClosed = errors.New("schedstore: store closed")

	// Not found errors.
	ErrFrameworkIDNotFound = errors.New("schedstore: framework id not set")
	ErrJobNotFound         = errors.New("schedstore: job not found")
	ErrTaskNotFound        = errors.New("schedstore: task not found")
	ErrUpdateNotFound      = errors.New("schedstore: job update not found")
	ErrQuotaNotFound       = errors.New("schedstore: quota not found")
	ErrHostNotFound        = errors.New("schedstore: host attributes not found")

	// Validation errors.
	ErrInvalidFrameworkID = errors.New("schedstore: invalid framework id")
	ErrInvalidJobKey      = errors.New("schedstore: invalid job key")
	ErrInvalidQuota       = errors.New("schedstore: invalid quota")
	ErrInvalidTask        = errors.New("schedstore: invalid task")
	ErrInvalidHost        = errors.New("schedstore: invalid host attributes")
)
