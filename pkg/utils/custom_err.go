package utils

import "errors"

var (
	ErrCityNotFound           = errors.New("city not found")
	ErrInvalidCoordinate      = errors.New("coordinate out of range")
	ErrInvalidInput           = errors.New("invalid input")
	ErrInterestsRequired      = errors.New("at least one interest is required")
	ErrUnsupportedMode        = errors.New("unsupported travel mode")
	ErrUnexpectedBehaviorOfAI = errors.New("unexpected behavior of AI")
	ErrMalformedAIResponse    = errors.New("malformed AI response")
	ErrPremiumLimitReached    = errors.New("premium model limit reached")
)
