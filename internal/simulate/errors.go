package simulate

import "errors"

// Sentinel error kinds for this package.
var (
	ErrVerification  = errors.New("ranking verification failed")
	ErrInvalidConfig = errors.New("invalid simulation config")
	ErrRejected      = errors.New("submission rejected")
)
