package domain

import "errors"

var (
	ErrCancelFailed      = errors.New("cancel scheduled notifications failed")
	ErrSubmitFailed      = errors.New("submit notification failed")
	ErrEventSourceFailed = errors.New("fetch upcoming events failed")
	ErrInvalidCategory   = errors.New("invalid category")
	ErrDeviceTokenEmpty  = errors.New("device token is empty")
)
