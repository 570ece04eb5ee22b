package identity

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/cyberhouse-gh/cyberhouse-portal/internal/failure"
)

// apiError is the error envelope shared by both REST endpoints.
type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

var vendorKinds = map[string]failure.Kind{
	"EMAIL_EXISTS":                failure.KindEmailInUse,
	"INVALID_EMAIL":               failure.KindInvalidEmail,
	"MISSING_EMAIL":               failure.KindInvalidEmail,
	"OPERATION_NOT_ALLOWED":       failure.KindOperationNotAllowed,
	"ADMIN_ONLY_OPERATION":        failure.KindOperationNotAllowed,
	"WEAK_PASSWORD":               failure.KindWeakPassword,
	"MISSING_PASSWORD":            failure.KindWeakPassword,
	"USER_DISABLED":               failure.KindUserDisabled,
	"EMAIL_NOT_FOUND":             failure.KindUserNotFound,
	"USER_NOT_FOUND":              failure.KindUserNotFound,
	"INVALID_PASSWORD":            failure.KindWrongPassword,
	"INVALID_LOGIN_CREDENTIALS":   failure.KindInvalidCredentials,
	"TOO_MANY_ATTEMPTS_TRY_LATER": failure.KindTooManyRequests,
	"TOKEN_EXPIRED":               failure.KindUnauthenticated,
	"INVALID_ID_TOKEN":            failure.KindUnauthenticated,
	"INVALID_REFRESH_TOKEN":       failure.KindUnauthenticated,
}

// vendorCode extracts the leading code from messages such as
// "WEAK_PASSWORD : Password should be at least 6 characters".
func vendorCode(message string) string {
	fields := strings.Fields(message)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// KindForCode maps a REST vendor code to a failure kind.
func KindForCode(code string) failure.Kind {
	if k, ok := vendorKinds[code]; ok {
		return k
	}
	return failure.KindUnknown
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	var body apiError
	if err := json.Unmarshal(resp.Body(), &body); err != nil || body.Error.Message == "" {
		kind := failure.KindUnknown
		if resp.StatusCode() >= http.StatusInternalServerError {
			kind = failure.KindUnavailable
		}
		return failure.New(kind, fmt.Errorf("http %d: %s", resp.StatusCode(), http.StatusText(resp.StatusCode())))
	}

	code := vendorCode(body.Error.Message)
	return failure.WithCode(KindForCode(code), code,
		fmt.Errorf("http %d: %s", resp.StatusCode(), body.Error.Message))
}
