package impl

import "errors"

var (
	ErrEmptyPassword   = errors.New("empty password")
	ErrEmptyCredential = errors.New("empty credential(s)")
	ErrInvalidToken    = errors.New("invalid or expired token")
)
