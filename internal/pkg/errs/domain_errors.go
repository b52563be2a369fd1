package errs

import "errors"

// Category markers shared by the usecase and handler layers. Domain packages
// keep their own sentinels; usecases Mark them with one of these so the HTTP
// layer can map a whole class of failures without knowing every sentinel.
var (
	// Invalid input: zero/negative day counts, malformed codes, offers out of range.
	ErrInvalidInput = errors.New("invalid input")

	// Policy rejection: the request was well formed but declined by a pricing rule.
	ErrPolicyRejected = errors.New("policy rejection")

	// Collaborator data is missing or inconsistent (rate schedule, catalogs).
	ErrCollaboratorData = errors.New("collaborator data error")

	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")

	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
