// Package errors provides structured error types for skill-transfer.
package errors

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Error codes for skill-transfer operations.
const (
	// Config errors
	CodeConfigRead  = "CONFIG_001" // Config file unreadable or corrupt
	CodeConfigWrite = "CONFIG_002" // Config file could not be persisted

	// Scan errors
	CodeScanSourceMissing = "SCAN_001" // Source directory does not exist
	CodeScanRead          = "SCAN_002" // Source directory could not be listed

	// Adapter errors
	CodeAdapterUnknown     = "ADAPTER_001" // No adapter registered for tool id
	CodeAdapterUnavailable = "ADAPTER_002" // Tool is listed but not yet supported
	CodeAdapterCapability  = "ADAPTER_003" // Adapter lacks the requested capability

	// Operation errors
	CodeImportFailed       = "IMPORT_001" // Copy into target layout failed
	CodeDeleteNotInstalled = "DELETE_001" // Skill is not present in the global location
	CodeDeleteFailed       = "DELETE_002" // Removal failed

	// Path validation errors
	CodePathEmpty        = "PATH_001" // Empty path input
	CodePathNotDirectory = "PATH_002" // Path missing or not a directory
)

// Error is the structured error type for skill-transfer operations.
type Error struct {
	Code    string         `json:"code"`              // Error code (e.g., "SCAN_001")
	Message string         `json:"message"`           // Human-readable message
	Details map[string]any `json:"details,omitempty"` // Context (skill, tool, path)
	Cause   error          `json:"-"`                 // Wrapped error (not serialized)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause wraps an underlying error.
func (e *Error) WithCause(err error) *Error {
	e.Cause = err
	return e
}

// MarshalJSON implements json.Marshaler with cause error message.
func (e *Error) MarshalJSON() ([]byte, error) {
	type alias Error
	aux := struct {
		*alias
		CauseMsg string `json:"cause,omitempty"`
	}{
		alias: (*alias)(e),
	}
	if e.Cause != nil {
		aux.CauseMsg = e.Cause.Error()
	}
	return json.Marshal(aux)
}

// New creates a new Error.
func New(code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new Error with formatted message.
func Newf(code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with an Error.
func Wrap(code, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with a formatted Error.
func Wrapf(code string, err error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   err,
	}
}

// --- Config Errors ---

// ConfigRead creates an error for an unreadable config file.
func ConfigRead(path string, err error) *Error {
	return Wrap(CodeConfigRead, "failed to read config", err).
		WithDetail("path", path)
}

// ConfigWrite creates an error for a config file that could not be saved.
func ConfigWrite(path string, err error) *Error {
	return Wrap(CodeConfigWrite, "failed to write config", err).
		WithDetail("path", path)
}

// --- Scan Errors ---

// ScanSourceMissing creates an error for a missing skill source directory.
func ScanSourceMissing(dir string) *Error {
	return Newf(CodeScanSourceMissing, "skill source directory does not exist: %s", dir).
		WithDetail("path", dir)
}

// ScanRead creates an error for a source directory that could not be listed.
func ScanRead(dir string, err error) *Error {
	return Wrap(CodeScanRead, "failed to read skill source directory", err).
		WithDetail("path", dir)
}

// --- Adapter Errors ---

// AdapterUnknown creates an error for an unregistered tool id.
func AdapterUnknown(tool string, supported []string) *Error {
	return Newf(CodeAdapterUnknown, "unsupported target tool %q (supported: %v)", tool, supported).
		WithDetail("tool", tool).
		WithDetail("supported", supported)
}

// AdapterUnavailable creates an error for a tool that is listed but disabled.
func AdapterUnavailable(tool string) *Error {
	return Newf(CodeAdapterUnavailable, "target tool %q is not available yet", tool).
		WithDetail("tool", tool)
}

// AdapterCapability creates an error for an adapter missing an operation.
func AdapterCapability(tool, capability string) *Error {
	return Newf(CodeAdapterCapability, "target tool %q does not support %s", tool, capability).
		WithDetail("tool", tool).
		WithDetail("capability", capability)
}

// --- Operation Errors ---

// ImportFailed creates an error for a failed import of one skill.
func ImportFailed(skillName string, err error) *Error {
	return Wrapf(CodeImportFailed, err, "failed to import skill %s", skillName).
		WithDetail("skill", skillName)
}

// DeleteNotInstalled creates an error for deleting a skill that is absent.
func DeleteNotInstalled(skillName string) *Error {
	return Newf(CodeDeleteNotInstalled, "skill %q is not installed", skillName).
		WithDetail("skill", skillName)
}

// DeleteFailed creates an error for a failed removal.
func DeleteFailed(skillName string, err error) *Error {
	return Wrapf(CodeDeleteFailed, err, "failed to delete skill %s", skillName).
		WithDetail("skill", skillName)
}

// --- Path Errors ---

// PathEmpty creates an error for empty path input.
func PathEmpty() *Error {
	return New(CodePathEmpty, "Path cannot be empty")
}

// PathNotDirectory creates an error for a path that is missing or not a directory.
func PathNotDirectory(path string) *Error {
	return New(CodePathNotDirectory, "Path does not exist or is not a directory").
		WithDetail("path", path)
}

// HasCode checks if an error is an *Error with the given code.
// It handles wrapped errors by unwrapping to find an *Error.
func HasCode(err error, code string) bool {
	var serr *Error
	if errors.As(err, &serr) {
		return serr.Code == code
	}
	return false
}

// Code returns the error code if err is an *Error, empty string otherwise.
// It handles wrapped errors by unwrapping to find an *Error.
func Code(err error) string {
	var serr *Error
	if errors.As(err, &serr) {
		return serr.Code
	}
	return ""
}

// Message returns the human-readable message of an *Error without its code
// prefix, or err.Error() for any other error.
func Message(err error) string {
	var serr *Error
	if errors.As(err, &serr) {
		if serr.Cause != nil {
			return fmt.Sprintf("%s: %v", serr.Message, serr.Cause)
		}
		return serr.Message
	}
	return err.Error()
}
