package errs

import "errors"

// IsValidation reports whether err stems from bad input or a forbidden
// state change. Joined errors count when any member matches.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValueIsInvalid) || errors.Is(err, ErrValueIsRequired)
}

// IsNotFound reports whether err stems from a missing object.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrObjectNotFound)
}

// IsAlreadyExists reports whether err stems from an identity collision.
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrObjectAlreadyExists)
}
