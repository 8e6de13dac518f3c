package errors

import (
	"errors"
	"fmt"
)

// Conflict reasons reported to voters and admins
const (
	ReasonDuplicateVote = "DUPLICATE_VOTE"
	ReasonNameLocked    = "NAME_LOCKED"
	ReasonVotingClosed  = "VOTING_CLOSED"
	ReasonProjectExists = "PROJECT_EXISTS"
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

// ConflictError represents a request that collides with existing state
type ConflictError struct {
	Reason  string
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for ConflictError by reason
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return e.Reason == t.Reason
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

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrProjectNotFound = &NotFoundError{Entity: "project"}
	ErrVoteNotFound    = &NotFoundError{Entity: "vote"}
)

// Conflict Errors
var (
	ErrDuplicateVote = &ConflictError{
		Reason:  ReasonDuplicateVote,
		Message: "You have already voted for this project from this device.",
	}
	ErrNameLocked = &ConflictError{
		Reason:  ReasonNameLocked,
		Message: "This device is already registered with a different name.",
	}
	ErrVotingClosed = &ConflictError{
		Reason:  ReasonVotingClosed,
		Message: "Voting is currently closed.",
	}
	ErrProjectExists = &ConflictError{
		Reason:  ReasonProjectExists,
		Message: "A project with this team number already exists.",
	}
)

// Validation Errors
var (
	ErrMissingIdentifiers = &ValidationError{Message: "projectId and deviceHash are required"}
	ErrInvalidScore       = &ValidationError{Field: "score", Message: "score must be an integer between 0 and 10"}
	ErrVoterNameRequired  = &ValidationError{Field: "voterName", Message: "voterName is required for the first vote from a device"}
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid email or password"}
	ErrInvalidToken       = &AuthenticationError{Message: "invalid or expired token"}
)

// Configuration Errors
var (
	ErrNoAdminCredentials = &ConfigurationError{Message: "no admin credentials configured: set ADMIN_USERS or LDAP_HOST"}
	ErrInvalidAdminUsers  = &ConfigurationError{Message: "ADMIN_USERS must be a comma separated list of email:password pairs"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// ConflictReason returns the reason of a wrapped ConflictError, or "" when err is not a conflict
func ConflictReason(err error) string {
	var conflictErr *ConflictError
	if errors.As(err, &conflictErr) {
		return conflictErr.Reason
	}
	return ""
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

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewConflictError creates a new ConflictError
func NewConflictError(reason, message string) error {
	return &ConflictError{Reason: reason, Message: message}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
