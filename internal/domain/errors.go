// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")

	// User-related errors
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailAlreadyExists  = errors.New("email already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrPasswordTooWeak     = errors.New("password too weak")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrPasswordsDoNotMatch = errors.New("passwords do not match")
	ErrInvalidPassword     = errors.New("invalid password")

	// Verification-related errors
	ErrInvalidVerificationCode = errors.New("invalid verification code")
	ErrVerificationExpired     = errors.New("verification code expired")
	ErrAlreadyVerified         = errors.New("already verified")

	// Organization-related errors
	ErrOrganizationNotFound = errors.New("company with this ID does not exist")
	ErrSignupTarget         = errors.New("signup needs either a company name or a company id")

	// Entitlement-related errors
	ErrEntitlementLapsed = errors.New("trial has ended, activate a subscription to continue")

	// Profile-related errors
	ErrProfileNotFound = errors.New("profile not found")
	ErrProfileActive   = errors.New("only archived members can be deleted")
	ErrProfileInactive = errors.New("member is archived")
	ErrAdminOnly       = errors.New("only administrators can do this")

	// Site-related errors
	ErrSiteNotFound = errors.New("site not found")
	ErrSiteInactive = errors.New("site is not active")

	// Quote-related errors
	ErrQuoteNotFound = errors.New("quote not found")

	// Ledger-related errors
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrMaterialNotFound    = errors.New("material not found")
	ErrAttendanceNotFound  = errors.New("attendance log not found")
	ErrNothingOwed         = errors.New("no outstanding wage balance")

	// Task-related errors
	ErrTaskNotFound = errors.New("task not found")
	ErrTaskRange    = errors.New("task end must not be before its start")

	// Factor-related errors
	ErrFactorNotFound    = errors.New("factor not found")
	ErrInvalidFactorType = errors.New("invalid factor type")
	ErrInactiveFactor    = errors.New("factor is inactive")
)
