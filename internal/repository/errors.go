// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios without
// inspecting driver-specific errors. ErrEmailExists maps to the
// duplicate-email conflict at signup or enrollment, while the *NotFound
// values translate to HTTP 404 responses.
package repository

import "errors"

// ErrEmailExists is returned when an insert violates the unique email
// index of the users or affiliates table.
var ErrEmailExists = errors.New("email already exists")

// ErrCodeExists is returned when an affiliate insert collides on the
// unique referral code. Callers regenerate the code and retry.
var ErrCodeExists = errors.New("affiliate code already exists")

// ErrUserNotFound is returned when no user row matches the lookup key.
var ErrUserNotFound = errors.New("user not found")

// ErrAffiliateNotFound is returned when no affiliate row matches the
// referral code.
var ErrAffiliateNotFound = errors.New("affiliate not found")
