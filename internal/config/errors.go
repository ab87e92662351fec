package config

import "errors"

// Errors returned by Load and Validate; match them with errors.Is.
var (
	ErrInvalidConfig = errors.New("huntersfinds: invalid configuration")
	ErrLoadConfig    = errors.New("huntersfinds: cannot load configuration")
)
