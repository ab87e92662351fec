package service

import "errors"

// Sentinel kinds for controller errors.
var (
	ErrUnknownCategory     = errors.New("unknown category")
	ErrInvalidPrice        = errors.New("invalid price")
	ErrScoreOutOfRange     = errors.New("score out of range")
	ErrUnknownModal        = errors.New("unknown modal")
	ErrUnknownEvent        = errors.New("unknown event kind")
	ErrInvalidFrame        = errors.New("invalid modal frame")
	ErrInvalidGroupView    = errors.New("invalid group view")
	ErrConfirmationShowing = errors.New("confirmation is showing")
)
