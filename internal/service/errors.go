package service

import "errors"

// Sentinel errors the handler layer maps onto HTTP statuses. Anything
// else returned from an input-validating method is a plain validation
// error and surfaces as 400.
var (
	ErrNotFound            = errors.New("not found")
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("incorrect email or password")
	ErrInsufficientBalance = errors.New("insufficient eco points")
	ErrSelfRating          = errors.New("cannot rate yourself")
	ErrSameRoleRating      = errors.New("cannot rate a user with the same role")
)
