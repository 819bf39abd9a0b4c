package domain

import "errors"

// Persistence errors
var (
	ErrTenantNotFound       = errors.New("tenant not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrStaffNotFound        = errors.New("staff not found")
	ErrMenuNotFound         = errors.New("lesson menu not found")
	ErrBusinessHourNotFound = errors.New("business hour not found")
	ErrReservationNotFound  = errors.New("reservation not found")
)

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrSessionExpired     = errors.New("session expired")
	ErrIdentityNotFound   = errors.New("identity not found")
)
