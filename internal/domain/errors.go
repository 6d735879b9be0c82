package domain

// ExitCodeWarnings signals to a calling workflow that style violations were
// found and printed.
const ExitCodeWarnings = 99

// ExitError carries a specific process exit code up to main.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string { return e.Message }

// NewExitError builds an ExitError.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}
