package domain

import "errors"

// Sentinel errors returned by services and repositories. Controllers map
// these to transport status codes; wrapping is done with %w so errors.Is
// keeps working across layers.
var (
	// ErrInvalidToken covers missing, malformed, tampered, and expired tokens.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrInvalidCredentials is the single login failure. Unknown email and
	// wrong password must be indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrForbidden    = errors.New("forbidden")
	ErrNotInvited   = errors.New("not invited")
	ErrInvalidInput = errors.New("invalid input")

	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already in use")

	ErrRSVPNotFound = errors.New("rsvp not found")
	ErrRSVPExists   = errors.New("rsvp already submitted")

	// ErrPartialOutcome reports a multi-step write whose final state is
	// unknown (e.g. ambiguous commit). It must be surfaced, never swallowed.
	ErrPartialOutcome = errors.New("write left in indeterminate state")
)
