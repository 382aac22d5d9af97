package messenger

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrSendFailed = errors.New("messenger send failed")
)
