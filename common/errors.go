package common

import "errors"

var (
	ErrorInvalidValue   = errors.New("invalid value")
	ErrorInvalidConfig  = errors.New("invalid config")
	ErrorInvalidSegment = errors.New("invalid segment")
	ErrorInvalidSample  = errors.New("invalid sample")
)
