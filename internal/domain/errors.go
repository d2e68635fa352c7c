package domain

import "errors"

var (
	ErrUnsupportedRuntime = errors.New("unsupported runtime version")
	ErrInterrupted        = errors.New("setup interrupted by user")
	ErrVerificationFailed = errors.New("installation verification failed")
)
