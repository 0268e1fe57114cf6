// Package validate checks raw form input for the public submission
// endpoints. Validation runs in two ordered stages: normalization (trim,
// lowercase email, escape markup) and value validation. All violations are
// collected into a single ordered error list; nothing short-circuits at the
// first failure.
//
// Defaults for absent optional fields (subject, package, status, source)
// are not applied here. They belong to the service layer, so a
// present-but-invalid value is always rejected instead of silently
// replaced.
package validate

import (
	"encoding/json"
	"html"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/nkdbuilders/backend/internal/model"
)

// FieldError describes a single violated rule on a named input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var (
	nameRe  = regexp.MustCompile(`^[a-zA-Z\s\-'.]+$`)
	phoneRe = regexp.MustCompile(`^[0-9+\-\s()]*$`)
	// The single canonical email rule for both forms.
	emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// ContactInput is the raw contact form payload before validation.
type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// QuoteInput is the raw quote form payload before validation. Area is
// decoded as a json.Number so a non-integer value becomes a field error
// instead of a decode failure.
type QuoteInput struct {
	Name    string      `json:"name"`
	Email   string      `json:"email"`
	Phone   string      `json:"phone"`
	Package string      `json:"package"`
	Area    json.Number `json:"area"`
	Message string      `json:"message"`
}

// Contact normalizes and validates a contact form payload. It returns the
// normalized input alongside the collected errors; the input is only
// meaningful when the error list is empty.
func Contact(in ContactInput) (ContactInput, []FieldError) {
	var errs []FieldError

	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)
	in.Subject = strings.TrimSpace(in.Subject)
	in.Message = strings.TrimSpace(in.Message)

	errs = append(errs, checkName(in.Name)...)
	errs = append(errs, checkEmail(in.Email)...)

	// Phone is optional on the contact form; an empty value is absent.
	if in.Phone != "" {
		if !phoneRe.MatchString(in.Phone) {
			errs = append(errs, FieldError{"phone", "Please enter a valid phone number"})
		}
		if utf8.RuneCountInString(in.Phone) > 20 {
			errs = append(errs, FieldError{"phone", "Phone number cannot exceed 20 characters"})
		}
	}

	switch {
	case in.Subject == "":
		errs = append(errs, FieldError{"subject", "Subject is required"})
	case !model.ValidContactSubject(in.Subject):
		errs = append(errs, FieldError{"subject", "Invalid subject selection"})
	}

	switch n := utf8.RuneCountInString(in.Message); {
	case in.Message == "":
		errs = append(errs, FieldError{"message", "Message is required"})
	case n < 10 || n > 2000:
		errs = append(errs, FieldError{"message", "Message must be between 10 and 2000 characters"})
	}

	in.Message = html.EscapeString(in.Message)
	return in, errs
}

// Quote normalizes and validates a quote form payload. The parsed area is
// returned separately since QuoteInput carries it as a raw json.Number.
func Quote(in QuoteInput) (QuoteInput, int, []FieldError) {
	var errs []FieldError

	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)
	in.Package = strings.TrimSpace(in.Package)
	in.Message = strings.TrimSpace(in.Message)

	errs = append(errs, checkName(in.Name)...)
	errs = append(errs, checkEmail(in.Email)...)

	switch n := utf8.RuneCountInString(in.Phone); {
	case in.Phone == "":
		errs = append(errs, FieldError{"phone", "Phone number is required"})
	case !phoneRe.MatchString(in.Phone):
		errs = append(errs, FieldError{"phone", "Invalid phone number format"})
	case n < 10 || n > 20:
		errs = append(errs, FieldError{"phone", "Phone number must be between 10 and 20 characters"})
	}

	switch {
	case in.Package == "":
		errs = append(errs, FieldError{"package", "Package selection is required"})
	case !model.ValidQuotePackage(in.Package):
		errs = append(errs, FieldError{"package", "Invalid package selection"})
	}

	area := 0
	if in.Area.String() == "" {
		errs = append(errs, FieldError{"area", "Construction area is required"})
	} else if n, err := in.Area.Int64(); err != nil || n < 100 || n > 100000 {
		errs = append(errs, FieldError{"area", "Area must be between 100 and 100,000 sq.ft"})
	} else {
		area = int(n)
	}

	// Message is optional on the quote form.
	if utf8.RuneCountInString(in.Message) > 2000 {
		errs = append(errs, FieldError{"message", "Message cannot exceed 2000 characters"})
	}

	in.Message = html.EscapeString(in.Message)
	return in, area, errs
}

// Status validates an admin status-update value against the given enum.
func Status(status string, allowed []string) []FieldError {
	status = strings.TrimSpace(status)
	if status == "" {
		return []FieldError{{"status", "Status is required"}}
	}
	for _, v := range allowed {
		if status == v {
			return nil
		}
	}
	return []FieldError{{"status", "Invalid status value"}}
}

func checkName(name string) []FieldError {
	var errs []FieldError
	switch n := utf8.RuneCountInString(name); {
	case name == "":
		errs = append(errs, FieldError{"name", "Name is required"})
	case n < 2 || n > 100:
		errs = append(errs, FieldError{"name", "Name must be between 2 and 100 characters"})
	}
	if name != "" && !nameRe.MatchString(name) {
		errs = append(errs, FieldError{"name", "Name can only contain letters, spaces, hyphens, apostrophes, and periods"})
	}
	return errs
}

func checkEmail(email string) []FieldError {
	var errs []FieldError
	switch {
	case email == "":
		errs = append(errs, FieldError{"email", "Email is required"})
	case !emailRe.MatchString(email):
		errs = append(errs, FieldError{"email", "Please enter a valid email address"})
	}
	if utf8.RuneCountInString(email) > 255 {
		errs = append(errs, FieldError{"email", "Email cannot exceed 255 characters"})
	}
	return errs
}
