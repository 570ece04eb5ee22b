package failure

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"google.golang.org/api/googleapi"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Error carries a Kind, the message shown to users and the underlying cause.
type Error struct {
	Kind Kind
	// Code is the raw vendor code, when one was reported.
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, err error) *Error {
	return &Error{Kind: kind, Message: kind.Message(), Err: err}
}

// WithCode builds an error for a vendor-reported code.
func WithCode(kind Kind, code string, err error) *Error {
	return &Error{Kind: kind, Code: code, Message: kind.Message(), Err: err}
}

// Validation reports input rejected before any network call.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// NotFound reports a missing record with a specific message.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// TooLarge reports an upload over limit bytes, naming the limit in whole MB
// (KB below one megabyte).
func TooLarge(limit int64) *Error {
	label := fmt.Sprintf("%dMB", limit/(1<<20))
	if limit < 1<<20 {
		label = fmt.Sprintf("%dKB", limit/(1<<10))
	}
	return &Error{Kind: KindFileTooLarge, Message: "File size exceeds " + label + " limit"}
}

// Is reports whether err classifies as kind.
func Is(err error, kind Kind) bool {
	if err == nil {
		return false
	}
	return From(err).Kind == kind
}

// From classifies any error chain. A *Error anywhere in the chain wins; then
// gRPC status codes, Google API HTTP errors and transport failures are mapped.
func From(err error) *Error {
	if err == nil {
		return nil
	}

	var fe *Error
	if errors.As(err, &fe) {
		return fe
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return New(KindUnavailable, err)
	}

	if st, ok := status.FromError(err); ok && st.Code() != codes.Unknown {
		return WithCode(kindFromGRPC(st.Code()), st.Code().String(), err)
	}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return WithCode(kindFromHTTPStatus(gerr.Code), http.StatusText(gerr.Code), err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return New(KindUnavailable, err)
	}

	return New(KindUnknown, err)
}

func kindFromGRPC(code codes.Code) Kind {
	switch code {
	case codes.PermissionDenied:
		return KindPermissionDenied
	case codes.Unauthenticated:
		return KindUnauthenticated
	case codes.NotFound:
		return KindNotFound
	case codes.Unavailable, codes.DeadlineExceeded, codes.Aborted:
		return KindUnavailable
	case codes.ResourceExhausted:
		return KindTooManyRequests
	case codes.InvalidArgument, codes.FailedPrecondition, codes.OutOfRange:
		return KindValidation
	default:
		return KindUnknown
	}
}

func kindFromHTTPStatus(code int) Kind {
	switch {
	case code == http.StatusUnauthorized:
		return KindUnauthenticated
	case code == http.StatusForbidden:
		return KindPermissionDenied
	case code == http.StatusNotFound:
		return KindNotFound
	case code == http.StatusRequestEntityTooLarge:
		return KindFileTooLarge
	case code == http.StatusTooManyRequests:
		return KindTooManyRequests
	case code >= 500:
		return KindUnavailable
	default:
		return KindUnknown
	}
}
