// Package shared contains common domain types, errors and events
// that are used across all domain packages. This package has zero external dependencies.
package shared

import (
	"errors"
	"fmt"
)

// Base domain errors that can be used for error checking with errors.Is().
var (
	// Entity errors
	ErrNotFound      = errors.New("entity not found")
	ErrAlreadyExists = errors.New("entity already exists")
	ErrInvalidEntity = errors.New("invalid entity")

	// Validation errors
	ErrValidation      = errors.New("validation error")
	ErrInvalidID       = errors.New("invalid ID")
	ErrInvalidInput    = errors.New("invalid input")
	ErrEmptyValue      = errors.New("value cannot be empty")
	ErrNegativeValue   = errors.New("value cannot be negative")
	ErrValueOutOfRange = errors.New("value out of range")
	ErrInvalidFormat   = errors.New("invalid format")

	// State errors
	ErrInvalidState    = errors.New("invalid state")
	ErrStateTransition = errors.New("invalid state transition")
)

// DomainError represents a domain-specific error with context.
type DomainError struct {
	Domain  string // e.g., "student", "person", "character"
	Op      string // Operation that failed, e.g., "Create", "Average"
	Kind    error  // Base error type for errors.Is() checking
	Message string // Human-readable message
	Err     error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s.%s: %s: %v", e.Domain, e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s.%s: %s", e.Domain, e.Op, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap().
func (e *DomainError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return e.Kind
}

// Is implements errors.Is() matching.
func (e *DomainError) Is(target error) bool {
	if e.Kind != nil && errors.Is(e.Kind, target) {
		return true
	}
	if e.Err != nil && errors.Is(e.Err, target) {
		return true
	}
	return false
}

// NewDomainError creates a new domain error.
func NewDomainError(domain, op string, kind error, message string) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
	}
}

// WrapError wraps an existing error with domain context.
func WrapError(domain, op string, kind error, message string, err error) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// Student domain errors
var (
	ErrStudentNotFound   = NewDomainError("student", "Find", ErrNotFound, "student not found")
	ErrInvalidStudentID  = NewDomainError("student", "Validate", ErrInvalidID, "student ID must be positive")
	ErrStudentIDTaken    = NewDomainError("student", "Create", ErrAlreadyExists, "student ID already exists")
	ErrEmptyStudentName  = NewDomainError("student", "Validate", ErrEmptyValue, "student name cannot be empty")
	ErrInvalidStudentAge = NewDomainError("student", "Validate", ErrNegativeValue, "student age must be positive")
	ErrInvalidGrade      = NewDomainError("student", "AddGrade", ErrValueOutOfRange, "grade must be between 0 and 10")

	// ErrNoGrades is returned by every derivation of the average
	// (Average, IsApproved, describe) when the grade list is empty.
	ErrNoGrades = NewDomainError("student", "Average", ErrInvalidState, "student has no grades")
)

// Person domain errors
var (
	ErrPersonNotFound    = NewDomainError("person", "Find", ErrNotFound, "person not found")
	ErrEmptyPersonName   = NewDomainError("person", "Validate", ErrEmptyValue, "person name cannot be empty")
	ErrInvalidPersonAge  = NewDomainError("person", "SetAge", ErrNegativeValue, "age must be positive")
	ErrInvalidHeight     = NewDomainError("person", "Validate", ErrNegativeValue, "height must be positive")
	ErrInvalidGrowth     = NewDomainError("person", "Grow", ErrNegativeValue, "growth must be positive")
	ErrPersonAlreadyDead = NewDomainError("person", "Die", ErrStateTransition, "person is already dead")
	ErrPersonNotAlive    = NewDomainError("person", "Birthday", ErrInvalidState, "person is not alive")
)

// Character domain errors
var (
	ErrNegativePower      = NewDomainError("character", "SetPower", ErrNegativeValue, "power cannot be negative")
	ErrInvalidLevel       = NewDomainError("character", "SetLevel", ErrNegativeValue, "level must be positive")
	ErrInvalidMaxHealth   = NewDomainError("character", "Validate", ErrNegativeValue, "max health must be positive")
	ErrNegativeBaseDamage = NewDomainError("character", "SetBaseDamage", ErrNegativeValue, "base damage cannot be negative")
	ErrNegativeHealBonus  = NewDomainError("character", "SetHealingBonus", ErrNegativeValue, "healing bonus cannot be negative")
	ErrNegativeAmount     = NewDomainError("character", "Validate", ErrNegativeValue, "amount cannot be negative")
	ErrNoWeapon           = NewDomainError("character", "Attack", ErrInvalidState, "no weapon equipped")
	ErrNilWeapon          = NewDomainError("character", "EquipWeapon", ErrInvalidInput, "invalid weapon")
	ErrNilTarget          = NewDomainError("character", "Attack", ErrInvalidInput, "invalid target")
	ErrCharacterDefeated  = NewDomainError("character", "Act", ErrInvalidState, "character is defeated")
	ErrAlreadyFullHealth  = NewDomainError("character", "Heal", ErrInvalidState, "already at full health")
)

// Vehicle domain errors
var (
	ErrEmptyBrand           = NewDomainError("vehicle", "Validate", ErrEmptyValue, "brand cannot be empty")
	ErrEmptyModel           = NewDomainError("vehicle", "Validate", ErrEmptyValue, "model cannot be empty")
	ErrEmptyColor           = NewDomainError("vehicle", "Validate", ErrEmptyValue, "color cannot be empty")
	ErrInvalidDisplacement  = NewDomainError("vehicle", "Validate", ErrNegativeValue, "engine displacement must be positive")
	ErrInvalidLoadCapacity  = NewDomainError("vehicle", "Validate", ErrNegativeValue, "load capacity must be positive")
	ErrInvalidBatteryCharge = NewDomainError("vehicle", "Validate", ErrNegativeValue, "battery capacity must be positive")
)

// Media domain errors
var (
	ErrEmptyTitle     = NewDomainError("media", "Validate", ErrEmptyValue, "title cannot be empty")
	ErrEmptyAuthor    = NewDomainError("media", "Validate", ErrEmptyValue, "author cannot be empty")
	ErrInvalidYear    = NewDomainError("media", "Validate", ErrNegativeValue, "publication year must be positive")
	ErrInvalidPages   = NewDomainError("media", "Validate", ErrNegativeValue, "page count must be positive")
	ErrNilMediaItem   = NewDomainError("media", "Add", ErrInvalidInput, "invalid media item")
	ErrItemNotShelved = NewDomainError("media", "Remove", ErrNotFound, "item is not in the library")
)

// Payment domain errors
var (
	ErrInvalidAmount     = NewDomainError("payment", "Pay", ErrValueOutOfRange, "amount must be a positive number")
	ErrInvalidCardNumber = NewDomainError("payment", "Validate", ErrInvalidFormat, "card number must be 12 to 19 digits")
	ErrInvalidCVV        = NewDomainError("payment", "Validate", ErrInvalidFormat, "cvv must be 3 or 4 digits")
	ErrInvalidExpiry     = NewDomainError("payment", "Validate", ErrInvalidFormat, "expiration date must look like MM/YYYY")
	ErrEmptyCardholder   = NewDomainError("payment", "Validate", ErrEmptyValue, "cardholder name cannot be empty")
	ErrInvalidEmail      = NewDomainError("payment", "Validate", ErrInvalidFormat, "invalid email address")
	ErrNilCredential     = NewDomainError("payment", "Validate", ErrInvalidInput, "credential is required")
	ErrCardExpired       = NewDomainError("payment", "Pay", ErrInvalidState, "card has expired")
	ErrNotSignedIn       = NewDomainError("payment", "Pay", ErrInvalidState, "account is not signed in")
	ErrWrongPassword     = NewDomainError("payment", "SignIn", ErrInvalidInput, "wrong password")
)

// IsNotFound checks if the error is a "not found" error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if the error is an "already exists" error.
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidation checks if the error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrInvalidID) ||
		errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrEmptyValue) ||
		errors.Is(err, ErrNegativeValue) ||
		errors.Is(err, ErrValueOutOfRange)
}

// IsInvalidState checks if the error reports an operation that the entity's
// current state does not allow.
func IsInvalidState(err error) bool {
	return errors.Is(err, ErrInvalidState) || errors.Is(err, ErrStateTransition)
}
