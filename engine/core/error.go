package core

import (
	"errors"
	"fmt"
)

// Error codes shared across engine packages.
const (
	CodeConfigNotFound    = "ConfigNotFound"
	CodeInvalidConfig     = "InvalidConfig"
	CodeUnknownAgent      = "UnknownAgent"
	CodeUnknownTask       = "UnknownTask"
	CodeUnknownTemplate   = "UnknownTemplate"
	CodeInvalidCategory   = "InvalidCategory"
	CodeToolNotFound      = "ToolNotFound"
	CodeToolLoopExhausted = "ToolLoopExhausted"
	CodeInvalidArgument   = "InvalidArgument"
)

// Error carries a stable code and optional details alongside the cause.
type Error struct {
	Code    string
	Message string
	Details map[string]any
	Cause   error
}

func NewError(err error, code string, details map[string]any) *Error {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return &Error{Code: code, Message: msg, Details: details, Cause: err}
}

func Errorf(code string, format string, args ...any) *Error {
	return NewError(fmt.Errorf(format, args...), code, nil)
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches another *Error by code.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	return other.Code != "" && other.Code == e.Code
}

// HasCode reports whether err wraps an *Error with the given code.
func HasCode(err error, code string) bool {
	var coreErr *Error
	if !errors.As(err, &coreErr) {
		return false
	}
	return coreErr.Code == code
}
