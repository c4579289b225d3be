package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// User errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Admin errors
var (
	ErrAdminNotFound = errors.New("admin not found")
)

// Group errors
var (
	ErrGroupNotFound  = errors.New("group not found")
	ErrNotGroupMember = errors.New("user is not a member of this group")
)

// Resource errors
var (
	ErrStudyResourceNotFound = errors.New("study resource not found")
)

// Matching errors
var (
	ErrMatchNotFound   = errors.New("match not found")
	ErrSelfMatch       = errors.New("cannot match a user with themselves")
	ErrNoSuitableMatch = errors.New("no suitable matches")
	ErrSessionNotFound = errors.New("study session not found")
)
