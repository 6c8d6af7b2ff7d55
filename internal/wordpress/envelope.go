package wordpress

import (
	apierrors "github.com/olgasafonova/wordpress-mcp-server/internal/errors"
)

// Envelope is embedded in every tool result. On failure only the envelope
// fields are populated.
type Envelope struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
	ErrorKind string `json:"error_kind,omitempty"`
}

// OK builds a success envelope.
func OK(message string) Envelope {
	return Envelope{Success: true, Message: message}
}

// Fail converts any error into a failure envelope, keeping its classification.
func Fail(err error) Envelope {
	if err == nil {
		return Envelope{Success: false, Error: "unknown error", ErrorKind: string(apierrors.KindUnknown)}
	}
	return Envelope{
		Success:   false,
		Error:     err.Error(),
		ErrorKind: string(apierrors.KindOf(err)),
	}
}

// Succeeded reports the outcome.
func (e Envelope) Succeeded() bool { return e.Success }

// FailureKind returns the error classification of a failed envelope.
func (e Envelope) FailureKind() string { return e.ErrorKind }
