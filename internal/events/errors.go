package events

import "errors"

var (
	ErrEncodingEvent   = errors.New("error encoding product event")
	ErrPublishingEvent = errors.New("error publishing product event")
)
