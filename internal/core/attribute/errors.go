// Copyright (c) 2026 Mercata. All rights reserved.
// Author: quang.damminh@gmail.com

package attribute

import (
	"errors"
	"strings"

	"github.com/quangdam/mercata/internal/platform/apperr"
)

// ErrorCode classifies one kind of assignment failure.
type ErrorCode string

const (
	// ErrRequired fires when a value-required attribute received no usable
	// value, or was missing from input at instance creation.
	ErrRequired ErrorCode = "REQUIRED"

	// ErrInvalid fires on wrong arity, non-numeric content, oversized
	// select values, or a malformed reference set.
	ErrInvalid ErrorCode = "INVALID"

	// ErrNotFound fires when an attribute address does not resolve within
	// the allowed scope.
	ErrNotFound ErrorCode = "NOT_FOUND"

	// ErrInvalidID fires on a malformed or wrong-type global ID.
	ErrInvalidID ErrorCode = "INVALID_ID"

	// ErrDuplicatedInputItem fires when the same attribute (or, under the
	// reject policy, the same value) is supplied twice in one request.
	ErrDuplicatedInputItem ErrorCode = "DUPLICATED_INPUT_ITEM"
)

// violationKey groups identical failures across attributes, so the caller
// sees one "values cannot be blank" entry naming three attributes instead
// of three entries.
type violationKey struct {
	code    ErrorCode
	message string
}

// Violation is one user-facing error entry: an error code, a message, and
// every attribute address the failure applies to.
type Violation struct {
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	Attributes []string  `json:"attributes,omitempty"`
}

// Errors accumulates violations across all validation phases. Validators
// never fail fast; the engine inspects the accumulator once, after every
// check has run, so callers always receive the complete set of problems.
//
// The zero value is ready to use.
type Errors struct {
	order []violationKey
	attrs map[violationKey][]string
}

// Add records a violation for the given attribute addresses. Identical
// (code, message) pairs merge their address lists, preserving first-seen
// ordering of both entries and addresses.
func (e *Errors) Add(code ErrorCode, message string, attributes ...string) {
	if e.attrs == nil {
		e.attrs = make(map[violationKey][]string)
	}

	key := violationKey{code: code, message: message}
	if _, ok := e.attrs[key]; !ok {
		e.order = append(e.order, key)
	}

	for _, attr := range attributes {
		if !contains(e.attrs[key], attr) {
			e.attrs[key] = append(e.attrs[key], attr)
		}
	}
}

// Empty reports whether no violation has been recorded.
func (e *Errors) Empty() bool {
	return len(e.order) == 0
}

// Violations returns the accumulated entries in first-seen order.
func (e *Errors) Violations() []Violation {
	out := make([]Violation, 0, len(e.order))
	for _, key := range e.order {
		out = append(out, Violation{
			Code:       key.code,
			Message:    key.message,
			Attributes: e.attrs[key],
		})
	}
	return out
}

// Error implements the error interface.
func (e *Errors) Error() string {
	parts := make([]string, 0, len(e.order))
	for _, key := range e.order {
		parts = append(parts, string(key.code)+": "+key.message)
	}
	return "attribute: " + strings.Join(parts, "; ")
}

// Err is the finishing step: nil when clean, the accumulator itself otherwise.
func (e *Errors) Err() error {
	if e.Empty() {
		return nil
	}
	return e
}

// AppError converts the accumulated violations into the API error shape.
// Each detail entry carries the engine code and the offending addresses.
func (e *Errors) AppError() *apperr.AppError {
	details := make([]apperr.FieldError, 0, len(e.order))
	for _, v := range e.Violations() {
		details = append(details, apperr.FieldError{
			Field:   strings.Join(v.Attributes, ", "),
			Code:    string(v.Code),
			Message: v.Message,
		})
	}
	return apperr.ValidationError("Attribute validation failed", details...)
}

// AsErrors unwraps err into the engine's accumulator, or nil when err is
// of another kind. Callers use it to decide between a validation response
// and an internal one.
func AsErrors(err error) *Errors {
	var e *Errors
	if errors.As(err, &e) {
		return e
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
