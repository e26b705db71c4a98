package domain

import "errors"

var (
	ErrNotFound              = errors.New("not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrForbidden             = errors.New("forbidden")
	ErrAlreadyCompleted      = errors.New("ad view already completed")
	ErrViewTooEarly          = errors.New("ad view completed before its duration elapsed")
	ErrBelowMinimum          = errors.New("amount is below the minimum withdrawal")
	ErrInsufficientBalance   = errors.New("insufficient balance")
	ErrInvalidPaymentDetails = errors.New("invalid payment details")
	ErrInvalidStatus         = errors.New("invalid withdrawal status")
	ErrInvalidAd             = errors.New("invalid ad")
	ErrAccountExists         = errors.New("username or email already taken")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrInvalidRole           = errors.New("invalid account role")
)
