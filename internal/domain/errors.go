package domain

import "errors"

var (
	ErrEventNotFound   = errors.New("event not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrEnquiryNotFound = errors.New("enquiry not found")
	ErrPaymentNotFound = errors.New("payment not found")
	ErrSessionNotFound = errors.New("session not found")
)

var (
	ErrAlreadyRegistered = errors.New("user already registered for this event")
	ErrNotRegistered     = errors.New("user is not registered for this event")
	ErrConflict          = errors.New("concurrent modification, reload and retry")
	ErrAmbiguousEnquiry  = errors.New("more than one enquiry matches the timestamp")
	ErrFeedbackClosed    = errors.New("feedback opens after the event has ended")
	ErrPaymentNotPending = errors.New("payment is not awaiting confirmation")
)

var (
	ErrRegistrationBlocked = errors.New("registration blocked")
	ErrPaymentRequired     = errors.New("payment required")
	ErrPaymentVerification = errors.New("payment signature mismatch")
)

var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")
)

var (
	ErrFetchFailed = errors.New("events could not be fetched")
)

var (
	ErrValidation = errors.New("validation error")
)
