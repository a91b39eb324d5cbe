package adapter

import "errors"

var (
	// ErrNotMember is mapped from 404: the user has no membership in the
	// workspace.
	ErrNotMember = errors.New("user is not a workspace member")

	// ErrUnauthorized is mapped from 401 and 403: the service token was
	// rejected.
	ErrUnauthorized = errors.New("membership service rejected service token")

	// ErrMembershipUnavailable is mapped from any 5xx response.
	ErrMembershipUnavailable = errors.New("membership service unavailable")

	// ErrUnexpectedStatus covers every other non-2xx response.
	ErrUnexpectedStatus = errors.New("unexpected membership service response")

	ErrInvalidBaseURL = errors.New("invalid adapter base url")
)
