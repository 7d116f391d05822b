package unconflict

import (
	stderrors "errors"

	"github.com/arthur-debert/unconflict/pkg/errors"
)

// Process exit codes
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = -1
)

// ExitCode maps the error returned by the root command to a process exit
// code. Argument problems exit with -1, every other failure with 1.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	switch errors.GetErrorCode(err) {
	case errors.ErrUsage, errors.ErrInvalidMode:
		return ExitUsage
	default:
		return ExitFailure
	}
}

// IsUsageError reports whether the usage block should follow the error
func IsUsageError(err error) bool {
	return errors.IsErrorCode(err, errors.ErrUsage)
}

// ErrorMessage returns the text shown to the user for err: the message of
// the outermost coded error, without its code.
func ErrorMessage(err error) string {
	var uerr *errors.UnconflictError
	if stderrors.As(err, &uerr) {
		if uerr.Wrapped != nil {
			return uerr.Message + ": " + ErrorMessage(uerr.Wrapped)
		}
		return uerr.Message
	}
	return err.Error()
}
