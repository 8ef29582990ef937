// internal/commerce/errors.go
package commerce

import "fmt"

// FailureKind classifies why a gateway call did not apply.
type FailureKind string

const (
	// FailureNetwork means the request never reached the platform or no
	// response came back. Safe to retry.
	FailureNetwork FailureKind = "network_failure"
	// FailureRejected means the platform received the request and refused it
	// (out of stock, unknown variant, quantity cap).
	FailureRejected FailureKind = "remote_rejection"
	// FailureInvariant flags a local programming error, e.g. a line item
	// referencing a variant that no longer exists in the cached product.
	FailureInvariant FailureKind = "invariant_violation"
)

type Error struct {
	Kind    FailureKind
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("commerce: %s (%s): %s", e.Kind, e.Code, e.Message)
	}
	return fmt.Sprintf("commerce: %s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NetworkError(err error) *Error {
	return &Error{Kind: FailureNetwork, Message: "commerce platform unreachable", Err: err}
}

func RejectionError(code, message string) *Error {
	return &Error{Kind: FailureRejected, Code: code, Message: message}
}

func InvariantError(message string) *Error {
	return &Error{Kind: FailureInvariant, Message: message}
}

// KindOf extracts the failure kind from an error returned by this package.
// Unknown errors are treated as network failures, the recoverable default.
func KindOf(err error) FailureKind {
	if ce, ok := err.(*Error); ok {
		return ce.Kind
	}
	return FailureNetwork
}
