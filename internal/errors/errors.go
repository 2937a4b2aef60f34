package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "for this date"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrDepartmentNotFound = &NotFoundError{Entity: "department"}
	ErrSoldierNotFound    = &NotFoundError{Entity: "soldier"}
	ErrConstraintNotFound = &NotFoundError{Entity: "constraint"}
	ErrExemptionNotFound  = &NotFoundError{Entity: "exemption"}
	ErrDutyTypeNotFound   = &NotFoundError{Entity: "duty type"}
	ErrDutyEventNotFound  = &NotFoundError{Entity: "duty event"}
	ErrAssignmentNotFound = &NotFoundError{Entity: "assignment"}
	ErrAttendanceNotFound = &NotFoundError{Entity: "attendance record"}
)

// Already Exists Errors
var (
	ErrDepartmentExists = &AlreadyExistsError{Entity: "department", Context: "with this name"}
	ErrExemptionExists  = &AlreadyExistsError{Entity: "exemption", Context: "for this soldier"}
	ErrSoldierAssigned  = &AlreadyExistsError{Entity: "assignment", Context: "for this soldier on this event"}
)

// Business Logic Errors
var (
	ErrInvalidStatus        = errors.New("invalid status")
	ErrInvalidDateRange     = errors.New("invalid date range")
	ErrMissingDateRange     = errors.New("date range is required")
	ErrNoActiveSoldiers     = errors.New("no active soldiers available for scheduling")
	ErrEventAlreadyDone     = errors.New("event is already marked done")
	ErrInvalidRotation      = errors.New("invalid rotation configuration")
	ErrInvalidExemptionCode = errors.New("invalid exemption code")
	ErrInvalidConstraint    = errors.New("constraint needs a day of week or a date range")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}
