package adapter

import "errors"

var (
	ErrUnhealthy      = errors.New("gateway unhealthy")
	ErrUnexpectedBody = errors.New("unexpected health response body")
)
