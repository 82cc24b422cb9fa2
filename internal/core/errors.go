package core

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures by how the caller must react to them.
type ErrorKind string

const (
	KindInvalidInput   ErrorKind = "invalid_input"
	KindConfiguration  ErrorKind = "configuration"
	KindProtocol       ErrorKind = "protocol"
	KindUpstream       ErrorKind = "upstream"
	KindTransientBatch ErrorKind = "transient_batch"
)

// Error is the typed failure returned by generation and availability checks.
type Error struct {
	Kind    ErrorKind
	Op      string
	Message string
	Hint    string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Message
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// InvalidInput reports a caller mistake such as a missing keyword.
func InvalidInput(op, message string) *Error {
	return &Error{
		Kind:    KindInvalidInput,
		Op:      op,
		Message: message,
		Hint:    "provide a keyword and a bare top-level domain such as \"com\"",
	}
}

// ConfigurationError reports absent or placeholder registrar settings.
func ConfigurationError(op, message string, err error) *Error {
	return &Error{
		Kind:    KindConfiguration,
		Op:      op,
		Message: message,
		Hint:    "check the registrar API credentials (api user, api key, username, client ip)",
		Err:     err,
	}
}

// ProtocolError reports an empty or malformed registrar response.
func ProtocolError(op, message string, err error) *Error {
	return &Error{
		Kind:    KindProtocol,
		Op:      op,
		Message: message,
		Hint:    "the registrar response could not be read; verify the API credentials and endpoint",
		Err:     err,
	}
}

// UpstreamError reports an error the registrar returned explicitly.
func UpstreamError(op, message string) *Error {
	return &Error{
		Kind:    KindUpstream,
		Op:      op,
		Message: message,
		Hint:    "the registrar rejected the request; check the API key and allow-listed IP",
	}
}

// TransientBatchError reports a single batch failure that must not abort
// the whole check.
func TransientBatchError(op string, err error) *Error {
	return &Error{
		Kind:    KindTransientBatch,
		Op:      op,
		Message: "batch lookup failed",
		Err:     err,
	}
}

// KindOf returns the kind of the first *Error in the chain, or "" when err
// carries none.
func KindOf(err error) ErrorKind {
	var coreErr *Error
	if errors.As(err, &coreErr) && coreErr != nil {
		return coreErr.Kind
	}
	return ""
}

// IsFatal reports whether err must abort an availability check. Untyped
// errors are treated as transient.
func IsFatal(err error) bool {
	switch KindOf(err) {
	case KindInvalidInput, KindConfiguration, KindProtocol, KindUpstream:
		return true
	default:
		return false
	}
}

// HintOf returns the remediation hint attached to err, if any.
func HintOf(err error) string {
	var coreErr *Error
	if errors.As(err, &coreErr) && coreErr != nil {
		return coreErr.Hint
	}
	return ""
}
