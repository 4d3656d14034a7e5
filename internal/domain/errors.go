package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	ErrInternal     ErrorCode = "INTERNAL_ERROR"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrValidation   ErrorCode = "VALIDATION_ERROR"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Passport specific errors
	ErrBookmarkNotFound    ErrorCode = "BOOKMARK_NOT_FOUND"
	ErrContentUnavailable  ErrorCode = "CONTENT_UNAVAILABLE"
	ErrInvalidQuizState    ErrorCode = "INVALID_QUIZ_STATE"
	ErrStorage             ErrorCode = "STORAGE_ERROR"
	ErrUnknownInterest     ErrorCode = "UNKNOWN_INTEREST"
	ErrUnsupportedResource ErrorCode = "UNSUPPORTED_RESOURCE"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode         `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
	Err     error             `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details,omitempty"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
		Details: e.Details,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Helper functions for common errors
func NewNotFoundError(message string) *DomainError {
	return NewError(ErrNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(ErrInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(ErrInternal, message, err)
}

func NewValidationError(message string, details map[string]string) *DomainError {
	e := NewError(ErrValidation, message, nil)
	e.Details = details
	return e
}

func NewBookmarkNotFoundError(id string) *DomainError {
	return NewError(ErrBookmarkNotFound, fmt.Sprintf("Bookmark not found with ID: %s", id), nil)
}

func NewContentUnavailableError(resource Resource, err error) *DomainError {
	return NewError(ErrContentUnavailable, fmt.Sprintf("Failed to load %s", resource), err)
}

func NewInvalidQuizStateError(message string) *DomainError {
	return NewError(ErrInvalidQuizState, message, nil)
}

func NewStorageError(message string, err error) *DomainError {
	return NewError(ErrStorage, message, err)
}

func NewUnknownInterestError(interestID string) *DomainError {
	return NewError(ErrUnknownInterest, fmt.Sprintf("No quiz available for interest: %s", interestID), nil)
}

func NewUnsupportedResourceError(name string) *DomainError {
	return NewError(ErrUnsupportedResource, fmt.Sprintf("Unsupported content resource: %s", name), nil)
}

// CodeOf returns the ErrorCode carried by err, or ErrInternal.
func CodeOf(err error) ErrorCode {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return ErrInternal
}
