// Package failure normalizes platform, transport and validation errors into a
// closed set of kinds, each with a stable user-facing message.
package failure

type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindEmailInUse
	KindInvalidEmail
	KindOperationNotAllowed
	KindWeakPassword
	KindUserDisabled
	KindUserNotFound
	KindWrongPassword
	KindInvalidCredentials
	KindTooManyRequests
	KindUnauthenticated
	KindPermissionDenied
	KindNotFound
	KindFileTooLarge
	KindUnavailable

	kindCount
)

var kindNames = [kindCount]string{
	KindUnknown:             "unknown",
	KindValidation:          "validation",
	KindEmailInUse:          "email_in_use",
	KindInvalidEmail:        "invalid_email",
	KindOperationNotAllowed: "operation_not_allowed",
	KindWeakPassword:        "weak_password",
	KindUserDisabled:        "user_disabled",
	KindUserNotFound:        "user_not_found",
	KindWrongPassword:       "wrong_password",
	KindInvalidCredentials:  "invalid_credentials",
	KindTooManyRequests:     "too_many_requests",
	KindUnauthenticated:     "unauthenticated",
	KindPermissionDenied:    "permission_denied",
	KindNotFound:            "not_found",
	KindFileTooLarge:        "file_too_large",
	KindUnavailable:         "unavailable",
}

var kindMessages = [kindCount]string{
	KindUnknown:             "An unexpected error occurred. Please try again.",
	KindValidation:          "Please check the form and try again.",
	KindEmailInUse:          "This email is already registered. Please try logging in instead.",
	KindInvalidEmail:        "Please enter a valid email address.",
	KindOperationNotAllowed: "Email/password accounts are not enabled. Please contact support.",
	KindWeakPassword:        "Please choose a stronger password (at least 6 characters).",
	KindUserDisabled:        "This account has been disabled. Please contact support.",
	KindUserNotFound:        "No account found with this email. Please register first.",
	KindWrongPassword:       "Incorrect password. Please try again.",
	KindInvalidCredentials:  "Invalid email or password. Please try again.",
	KindTooManyRequests:     "Too many attempts. Please wait a moment and try again.",
	KindUnauthenticated:     "Please log in to continue.",
	KindPermissionDenied:    "Permission denied. Please try again or contact support.",
	KindNotFound:            "The requested item could not be found.",
	KindFileTooLarge:        "File size exceeds 50MB limit",
	KindUnavailable:         "Service temporarily unavailable. Please try again later.",
}

// Kinds lists every kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, int(kindCount))
	for k := KindUnknown; k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

func (k Kind) valid() bool {
	return k >= KindUnknown && k < kindCount
}

func (k Kind) String() string {
	if !k.valid() {
		return kindNames[KindUnknown]
	}
	return kindNames[k]
}

// Message is the stable user-facing text for k.
func (k Kind) Message() string {
	if !k.valid() {
		return kindMessages[KindUnknown]
	}
	return kindMessages[k]
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
