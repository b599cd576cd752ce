package domain

import "errors"

var (
	ErrNotFound          = errors.New("entity not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidTerms      = errors.New("invalid terms")
	ErrConflict          = errors.New("contract already has an active escrow")

	// Chat-completion failures. Missing credentials must be
	// distinguishable from a retryable upstream failure.
	ErrUpstreamConfig    = errors.New("chat completion is not configured")
	ErrUpstreamTransient = errors.New("chat completion temporarily unavailable")
)
