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
	Context string // Additional context like "for this date and room"
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

// ConflictError represents a concurrent-update conflict on a versioned record
type ConflictError struct {
	Entity  string
	Message string
}

func (e *ConflictError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s conflict: %s", e.Entity, e.Message)
	}
	return fmt.Sprintf("%s conflict", e.Entity)
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// TransitionError represents a rejected case lifecycle transition
type TransitionError struct {
	From    string
	To      string
	Message string
}

func (e *TransitionError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("transition %s -> %s rejected: %s", e.From, e.To, e.Message)
	}
	return fmt.Sprintf("transition %s -> %s rejected", e.From, e.To)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrCaseNotFound      = &NotFoundError{Entity: "case"}
	ErrRoomNotFound      = &NotFoundError{Entity: "operating room"}
	ErrSnapshotNotFound  = &NotFoundError{Entity: "board snapshot"}
	ErrCaseEventNotFound = &NotFoundError{Entity: "case event"}
)

// Already Exists Errors
var (
	ErrCaseExists = &AlreadyExistsError{Entity: "case", Context: "for this room, patient, time and date"}
	ErrRoomExists = &AlreadyExistsError{Entity: "operating room", Context: "with this name"}
)

// Concurrency Errors
var (
	ErrVersionConflict = &ConflictError{Entity: "case", Message: "record was modified by another writer"}
)

// Lifecycle Errors
var (
	ErrReturningWithoutEndTime = &TransitionError{To: "returning_to_ward", Message: "operation end time is not recorded"}
	ErrBackwardTransition      = errors.New("state transition would move the case backwards")
	ErrUnknownSignal           = errors.New("unknown monitor signal")
)

// Business Logic Errors
var (
	ErrInvalidState            = errors.New("invalid case state")
	ErrInvalidUrgency          = errors.New("invalid urgency")
	ErrInvalidPeriod           = errors.New("invalid period")
	ErrInvalidRoomName         = errors.New("invalid operating room name")
	ErrInvalidDateFormat       = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrInvalidTimeFormat       = errors.New("invalid time format, expected HH:MM or TF")
	ErrEndBeforeStart          = errors.New("operation end time is before start time")
	ErrFieldNotPatchable       = errors.New("field is not patchable")
	ErrEmptySnapshot           = errors.New("snapshot contains no records")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
)

// Dispatch Errors
var (
	ErrRunnerUnavailable = errors.New("runner service is unavailable")
	ErrRunnerRejected    = errors.New("runner service rejected the request")
	ErrMissingPickupID   = errors.New("pickup id is required")
)

// Authentication Errors
var (
	ErrInvalidBoardSecret = &AuthenticationError{Message: "invalid board secret"}
	ErrInvalidToken       = &AuthenticationError{Message: "invalid or expired token"}
	ErrMissingToken       = &AuthenticationError{Message: "authorization token is missing"}
)

// Configuration Errors
var (
	ErrRosterFileInvalid  = &ConfigurationError{Message: "roster file could not be parsed"}
	ErrRunnerURLMissing   = &ConfigurationError{Message: "RUNNER_BASE_URL is not set"}
	ErrNoRoomsConfigured  = errors.New("no operating rooms configured")
	ErrCounterUnavailable = errors.New("board counter row is missing")
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

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsTransition checks if an error is a TransitionError
func IsTransition(err error) bool {
	var transitionErr *TransitionError
	return errors.As(err, &transitionErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewTransitionError creates a new TransitionError
func NewTransitionError(from, to, message string) error {
	return &TransitionError{From: from, To: to, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
