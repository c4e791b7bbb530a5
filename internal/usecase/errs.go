package usecase

import "errors"

// Tagged error variants so handlers can distinguish failure causes instead
// of matching message substrings.
var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("account is deactivated")
	ErrEmailOrPhoneTaken  = errors.New("email or phone already registered")

	ErrUserNotFound    = errors.New("user not found")
	ErrCarNotFound     = errors.New("car not found")
	ErrPackageNotFound = errors.New("package not found")
	ErrBranchNotFound  = errors.New("branch not found")
	ErrPaymentNotFound = errors.New("payment not found")
	ErrWashNotFound    = errors.New("wash not found")
	ErrContentNotFound = errors.New("content not found")

	ErrNotificationNotFound = errors.New("notification not found")

	ErrInvalidCarSize = errors.New("invalid car size")
	ErrNotOwner       = errors.New("resource belongs to another user")

	// Redemption variants. A scan failure names its cause.
	ErrBarcodeNotFound  = errors.New("barcode not found")
	ErrPackageExpired   = errors.New("package expired")
	ErrPackageExhausted = errors.New("package exhausted")

	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
)
