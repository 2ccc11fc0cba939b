package domain

import "errors"

var (
	ErrProviderNotConfigured  = errors.New("provider not configured")
	ErrProviderNotImplemented = errors.New("provider not implemented")
)
