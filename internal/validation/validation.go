package validation

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode"
)

// consumerMailDomains are public mail providers that cannot anchor a
// bureau tenant: allowed_domains is seeded from the admin's email domain,
// and a shared provider domain would admit strangers.
var consumerMailDomains = map[string]struct{}{
	"gmail.com":      {},
	"googlemail.com": {},
	"outlook.com":    {},
	"hotmail.com":    {},
	"live.com":       {},
	"yahoo.com":      {},
	"yahoo.co.uk":    {},
	"icloud.com":     {},
	"aol.com":        {},
	"protonmail.com": {},
	"gmx.com":        {},
	"mail.com":       {},
}

const maxNameLength = 255

// Error reports the first registration field that failed validation.
type Error struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateRegistration checks registration input in order, returning the
// first failure. It has no side effects; callers run it before any write.
func ValidateRegistration(email, password, companyName, adminName string) *Error {
	if err := validateEmail(email); err != nil {
		return err
	}
	if err := validatePassword(password); err != nil {
		return err
	}
	if err := validateName("company_name", companyName); err != nil {
		return err
	}
	return validateName("admin_name", adminName)
}

func validateEmail(email string) *Error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return &Error{Field: "email", Message: "must be a valid email address"}
	}
	domain := EmailDomain(email)
	if domain == "" {
		return &Error{Field: "email", Message: "must be a valid email address"}
	}
	if _, blocked := consumerMailDomains[domain]; blocked {
		return &Error{Field: "email", Message: "please use your company email address"}
	}
	return nil
}

func validatePassword(password string) *Error {
	if len(password) < 8 {
		return &Error{Field: "password", Message: "must be at least 8 characters"}
	}
	var hasLower, hasUpper, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLower || !hasUpper || !hasDigit {
		return &Error{Field: "password", Message: "must contain a lowercase letter, an uppercase letter and a digit"}
	}
	return nil
}

func validateName(field, value string) *Error {
	if strings.TrimSpace(value) == "" {
		return &Error{Field: field, Message: "must not be empty"}
	}
	if len(value) > maxNameLength {
		return &Error{Field: field, Message: fmt.Sprintf("must be at most %d characters", maxNameLength)}
	}
	return nil
}

// EmailDomain returns the lowercased part after the last @, or "" when the
// address has none.
func EmailDomain(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return ""
	}
	return strings.ToLower(email[at+1:])
}

// EmailLocalPart returns the part before the last @.
func EmailLocalPart(email string) string {
	at := strings.LastIndex(email, "@")
	if at <= 0 {
		return ""
	}
	return email[:at]
}
