package domain

import (
	"errors"
	"fmt"
)

// Common domain errors
var (
	ErrNotFound        = errors.New("resource not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrForgeryRejected = errors.New("csrf token mismatch")
	ErrInternalServer  = errors.New("internal server error")
	ErrInvalidRole     = errors.New("invalid role")
)

// Account errors
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrDuplicateUsername   = errors.New("username already exists")
	ErrPasswordMismatch    = errors.New("password confirmation does not match")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUserInactive        = errors.New("user account is inactive")
	ErrActiveOfficerExists = errors.New("another officer of this role is already active")
)

// Officer detail errors
var (
	ErrDetailNotFound = errors.New("officer details not found")
	ErrDetailExists   = errors.New("officer details already exist for this account")
	ErrRoleMismatch   = errors.New("account role does not match the requested detail type")
)

// Voucher errors
var (
	ErrVoucherNotFound = errors.New("voucher not found")
	ErrVoucherDecided  = errors.New("voucher has already been decided")
)

// ActiveOfficerConflictError pauses officer provisioning when another account
// of the same role is already active. It carries the conflicting account so
// the operator can decide whether to deactivate it.
type ActiveOfficerConflictError struct {
	Role     Role
	UserID   uint
	Username string
}

func (e *ActiveOfficerConflictError) Error() string {
	return fmt.Sprintf("active %s already exists: %s (id=%d)", e.Role, e.Username, e.UserID)
}

func (e *ActiveOfficerConflictError) Unwrap() error {
	return ErrActiveOfficerExists
}

// FieldError is one failed validation check, addressed by field path.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates field-level failures. Handlers return the whole
// list so forms can annotate every bad field at once.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 1 {
		return fmt.Sprintf("validation failed: %s %s", e.Fields[0].Field, e.Fields[0].Message)
	}
	return fmt.Sprintf("validation failed on %d fields", len(e.Fields))
}

// Add records a failed check.
func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// HasErrors reports whether any check failed.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// Err returns the error itself when any check failed, nil otherwise.
func (e *ValidationError) Err() error {
	if e.HasErrors() {
		return e
	}
	return nil
}
