package helpers

import (
	"errors"
	"fmt"
)

// CLI error codes.
const (
	CodeFileNotFound = "FILE_NOT_FOUND"
	CodeMissingFlag  = "MISSING_FLAG"
)

// CliError is a user-facing failure. Its message is printed as is.
type CliError struct {
	Code    string
	Message string
	Details string
}

func (e *CliError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s (%s)", e.Message, e.Details)
	}
	return e.Message
}

func NewCliError(code, message string, details ...string) *CliError {
	err := &CliError{Code: code, Message: message}
	if len(details) > 0 {
		err.Details = details[0]
	}
	return err
}

// IsCode reports whether err is a CliError with the given code.
func IsCode(err error, code string) bool {
	var cliErr *CliError
	return errors.As(err, &cliErr) && cliErr.Code == code
}
