package service

import "errors"

var (
	// Provisioning errors
	ErrDuplicateAccount   = errors.New("an account with this email already exists")
	ErrAuthProvider       = errors.New("failed to create account identity")
	ErrTenantSetupFailed  = errors.New("failed to set up tenant")
	ErrProfileSetupFailed = errors.New("failed to set up user profile")

	// Auth errors
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Lookup errors
	ErrTenantNotFound     = errors.New("tenant not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrClientNotFound     = errors.New("client not found")
	ErrOnboardingNotFound = errors.New("onboarding record not found")

	// ErrOnboardingConflict means a concurrent checklist update won the
	// revision race; the caller should re-read and retry.
	ErrOnboardingConflict = errors.New("onboarding record was modified concurrently")
)
