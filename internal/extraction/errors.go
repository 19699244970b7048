package extraction

import "errors"

var (
	// ErrEmptyEmailBody is returned when the input email body is blank.
	ErrEmptyEmailBody = errors.New("email body is empty")
)
