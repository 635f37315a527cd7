package usecase

import "errors"

var (
	ErrNotFound             = errors.New("not found")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrEmailTaken           = errors.New("email already registered")
	ErrUsernameTaken        = errors.New("username already taken")
	ErrForbidden            = errors.New("forbidden")
	ErrSelfAction           = errors.New("action targets own account")
	ErrNotCreator           = errors.New("target is not a creator")
	ErrAlreadySubscribed    = errors.New("already subscribed")
	ErrNotSubscribed        = errors.New("not subscribed")
	ErrPriceNotAcknowledged = errors.New("price must be acknowledged")
	ErrPostNotLocked        = errors.New("post is not locked")
	ErrDepositTooSmall      = errors.New("deposit below minimum")
	ErrInvalidAmount        = errors.New("amount must be positive")
	ErrInsufficientBalance  = errors.New("insufficient balance")
	ErrPendingRequest       = errors.New("a pending request already exists")
	ErrRequestDecided       = errors.New("request already decided")
	ErrBlocked              = errors.New("conversation is blocked")
	ErrInvalidResetToken    = errors.New("invalid or expired reset token")
)
