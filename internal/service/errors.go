package service

import (
	"errors"
	"fmt"

	"github.com/Art-of-Technology/collab-sub012/models"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")

	ErrAccessDenied     = errors.New("access denied")
	ErrVariableNotFound = errors.New("secret variable was not found")
	ErrNotSecretNote    = errors.New("note type does not hold secret variables")

	ErrValidationNoUserID = errors.New("no user ID was given")
)

// AccessDeniedError carries the decision behind a refused operation.
// It matches [ErrAccessDenied] with [errors.Is].
type AccessDeniedError struct {
	Decision models.AccessDecision
	Reason   string
}

func (e *AccessDeniedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrAccessDenied, e.Reason)
}

func (e *AccessDeniedError) Unwrap() error {
	return ErrAccessDenied
}
