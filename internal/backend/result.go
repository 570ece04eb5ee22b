package backend

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/cyberhouse-gh/cyberhouse-portal/internal/failure"
)

// Result is the uniform outcome of every adapter operation.
type Result[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`

	kind failure.Kind
}

// MarshalJSON leaves data out of failed results.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	out := struct {
		Success bool   `json:"success"`
		Data    *T     `json:"data,omitempty"`
		Error   string `json:"error,omitempty"`
		Code    string `json:"code,omitempty"`
	}{Success: r.Success, Error: r.Error, Code: r.Code}
	if r.Success {
		out.Data = &r.Data
	}
	return json.Marshal(out)
}

func (r Result[T]) Kind() failure.Kind {
	return r.kind
}

// HTTPStatus maps the result to a status code for JSON responses.
func (r Result[T]) HTTPStatus() int {
	if r.Success {
		return http.StatusOK
	}
	switch r.kind {
	case failure.KindValidation, failure.KindInvalidEmail, failure.KindWeakPassword, failure.KindFileTooLarge:
		return http.StatusBadRequest
	case failure.KindEmailInUse:
		return http.StatusConflict
	case failure.KindUserNotFound, failure.KindWrongPassword, failure.KindInvalidCredentials, failure.KindUnauthenticated:
		return http.StatusUnauthorized
	case failure.KindUserDisabled, failure.KindPermissionDenied, failure.KindOperationNotAllowed:
		return http.StatusForbidden
	case failure.KindNotFound:
		return http.StatusNotFound
	case failure.KindTooManyRequests:
		return http.StatusTooManyRequests
	case failure.KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func ok[T any](v T) Result[T] {
	return Result[T]{Success: true, Data: v}
}

// Failed classifies err into a failed Result without logging it.
func Failed[T any](err error) Result[T] {
	fe := failure.From(err)
	if fe == nil {
		fe = failure.New(failure.KindUnknown, nil)
	}
	return Result[T]{Error: fe.Message, Code: fe.Kind.String(), kind: fe.Kind}
}

// fail absorbs err into a Result. Unknown errors show fallback when given.
func fail[T any](a *Adapter, ctx context.Context, op string, err error, fallback string) Result[T] {
	fe := failure.From(err)
	msg := fe.Message
	if fe.Kind == failure.KindUnknown && fallback != "" {
		msg = fallback
	}

	log := a.log.FromContext(ctx)
	if fe.Kind == failure.KindValidation {
		log.Debug().Str("operation", op).Str("reason", fe.Message).Msg("rejected input")
	} else {
		log.Error().Str("operation", op).Str("kind", fe.Kind.String()).Str("code", fe.Code).Err(err).Send()
	}

	res := Failed[T](fe)
	res.Error = msg
	return res
}
