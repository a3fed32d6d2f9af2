// Package errors provides standardized error handling for the viewd
// application. It defines common error types, constants, and helper
// functions for consistent error creation, wrapping, and handling across
// the application.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package errors that we re-export for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// File error kinds
	FileNotFound
	FileAccessDenied
	InvalidPath
	DecodeFailed
	// Catalog error kinds
	EmptyCatalog
	EndOfCatalog
	// Config error kinds
	InvalidConfig
	// Display error kinds
	DisplayFailed
)

// Common error constants for frequently occurring errors
var (
	// ErrEndOfCatalog signals that the catalog ran out of entries. It is
	// a normal termination signal, not a fault.
	ErrEndOfCatalog = &ApplicationError{msg: "end of catalog", kind: EndOfCatalog}
	// ErrEmptyCatalog means no files were found anywhere under the root.
	ErrEmptyCatalog = &ApplicationError{msg: "no files found under root", kind: EmptyCatalog}
)

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// FileError represents errors related to file and catalog operations
type FileError struct {
	ApplicationError
	path string
}

// NewFileError creates a new file error
func NewFileError(msg string, path string, kind ErrorKind, err error) *FileError {
	return &FileError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		path: path,
	}
}

// Error returns the file error message
func (e *FileError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the file path associated with the error
func (e *FileError) Path() string {
	return e.path
}

// ConfigError represents errors related to configuration
type ConfigError struct {
	ApplicationError
	param string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, param string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		param: param,
	}
}

// Error returns the config error message
func (e *ConfigError) Error() string {
	if e.param != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	}
	return e.ApplicationError.Error()
}

// Param returns the configuration parameter associated with the error
func (e *ConfigError) Param() string {
	return e.param
}

// DisplayError represents errors raised by a display surface. These are
// always fatal; the path identifies the frame being shown when the
// surface failed.
type DisplayError struct {
	ApplicationError
	backend string
	path    string
}

// NewDisplayError creates a new display error
func NewDisplayError(msg, backend, path string, err error) *DisplayError {
	return &DisplayError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: DisplayFailed,
		},
		backend: backend,
		path:    path,
	}
}

// Error returns the display error message
func (e *DisplayError) Error() string {
	msg := e.msg
	if e.backend != "" {
		msg = fmt.Sprintf("%s (%s)", e.msg, e.backend)
	}
	if e.path != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.path)
	}
	if e.err != nil {
		return fmt.Sprintf("%s: %v", msg, e.err)
	}
	return msg
}

// Backend returns the display backend name associated with the error
func (e *DisplayError) Backend() string {
	return e.backend
}

// Path returns the path of the frame being shown when the surface failed
func (e *DisplayError) Path() string {
	return e.path
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Unknown,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: Unknown,
	}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: Unknown,
	}
}

// kindOf extracts the ErrorKind from the first application error in the
// chain, Unknown if there is none.
func kindOf(err error) ErrorKind {
	var fileErr *FileError
	if errors.As(err, &fileErr) {
		return fileErr.Kind()
	}
	var cfgErr *ConfigError
	if errors.As(err, &cfgErr) {
		return cfgErr.Kind()
	}
	var dispErr *DisplayError
	if errors.As(err, &dispErr) {
		return dispErr.Kind()
	}
	var appErr *ApplicationError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}
	return Unknown
}

// IsFileNotFound checks if the error is a file not found error
func IsFileNotFound(err error) bool {
	return kindOf(err) == FileNotFound
}

// IsFileAccessDenied checks if the error is a file access denied error
func IsFileAccessDenied(err error) bool {
	return kindOf(err) == FileAccessDenied
}

// IsDecodeFailed checks if the error is an image decode failure
func IsDecodeFailed(err error) bool {
	return kindOf(err) == DecodeFailed
}

// IsEmptyCatalog checks if the error means no files were found at start
func IsEmptyCatalog(err error) bool {
	return kindOf(err) == EmptyCatalog
}

// IsEndOfCatalog checks if the error is the normal end-of-catalog signal
func IsEndOfCatalog(err error) bool {
	return kindOf(err) == EndOfCatalog
}

// IsDisplayFailed checks if the error came from a display surface
func IsDisplayFailed(err error) bool {
	return kindOf(err) == DisplayFailed
}

// IsInvalidConfig checks if the error is an invalid configuration error
func IsInvalidConfig(err error) bool {
	return kindOf(err) == InvalidConfig
}
