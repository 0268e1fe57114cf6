package validate

import (
	"encoding/json"
	"strings"
	"testing"
)

func validContact() ContactInput {
	return ContactInput{
		Name:    "Alice Smith",
		Email:   "alice@example.com",
		Phone:   "+91 98765 43210",
		Subject: "Consultation",
		Message: "I would like to discuss a project.",
	}
}

func validQuote() QuoteInput {
	return QuoteInput{
		Name:    "Bob O'Brien",
		Email:   "bob@example.com",
		Phone:   "9876543210",
		Package: "Gold",
		Area:    json.Number("1000"),
	}
}

func hasFieldError(errs []FieldError, field string) bool {
	for _, e := range errs {
		if e.Field == field {
			return true
		}
	}
	return false
}

// ---------------------------------------------------------------------------
// Contact validation
// ---------------------------------------------------------------------------

func TestContact_Valid(t *testing.T) {
	out, errs := Contact(validContact())
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if out.Email != "alice@example.com" {
		t.Errorf("unexpected email: %q", out.Email)
	}
}

func TestContact_NormalizesEmailCase(t *testing.T) {
	in := validContact()
	in.Email = "  Alice@Example.COM "
	out, errs := Contact(in)
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if out.Email != "alice@example.com" {
		t.Errorf("expected lowercased email, got %q", out.Email)
	}
}

// TestContact_InvalidEmails covers the shapes the API must reject: missing
// "@" and missing domain dot.
func TestContact_InvalidEmails(t *testing.T) {
	for _, email := range []string{"aliceexample.com", "alice@example", "@example.com", "alice@"} {
		in := validContact()
		in.Email = email
		_, errs := Contact(in)
		if !hasFieldError(errs, "email") {
			t.Errorf("email %q: expected an email field error, got %v", email, errs)
		}
	}
}

func TestContact_NameRules(t *testing.T) {
	in := validContact()
	in.Name = "A"
	if _, errs := Contact(in); !hasFieldError(errs, "name") {
		t.Error("expected name error for 1-char name")
	}

	in = validContact()
	in.Name = "Alice123"
	if _, errs := Contact(in); !hasFieldError(errs, "name") {
		t.Error("expected name error for digits in name")
	}

	in = validContact()
	in.Name = "Mary-Jane O'Neill Jr."
	if _, errs := Contact(in); hasFieldError(errs, "name") {
		t.Errorf("hyphen/apostrophe/period should be allowed, got %v", errs)
	}
}

func TestContact_PhoneOptional(t *testing.T) {
	in := validContact()
	in.Phone = ""
	if _, errs := Contact(in); len(errs) != 0 {
		t.Errorf("empty phone should be accepted on contact form, got %v", errs)
	}

	in = validContact()
	in.Phone = "call-me-maybe"
	if _, errs := Contact(in); !hasFieldError(errs, "phone") {
		t.Error("expected phone error for letters in phone")
	}
}

func TestContact_SubjectEnum(t *testing.T) {
	in := validContact()
	in.Subject = ""
	if _, errs := Contact(in); !hasFieldError(errs, "subject") {
		t.Error("expected subject error when subject absent")
	}

	// A present-but-invalid subject is rejected, never defaulted to "Other".
	in = validContact()
	in.Subject = "Complaint"
	if _, errs := Contact(in); !hasFieldError(errs, "subject") {
		t.Error("expected subject error for value outside the enum")
	}
}

func TestContact_MessageBounds(t *testing.T) {
	in := validContact()
	in.Message = "too short"
	if _, errs := Contact(in); !hasFieldError(errs, "message") {
		t.Error("expected message error for 9-char message")
	}

	in = validContact()
	in.Message = strings.Repeat("x", 2001)
	if _, errs := Contact(in); !hasFieldError(errs, "message") {
		t.Error("expected message error for 2001-char message")
	}
}

func TestContact_MessageEscaped(t *testing.T) {
	in := validContact()
	in.Message = "<script>alert('hi')</script> please call"
	out, errs := Contact(in)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if strings.Contains(out.Message, "<script>") {
		t.Errorf("expected markup to be escaped, got %q", out.Message)
	}
}

// TestContact_CollectsAllErrors verifies validation reports every violated
// rule, not just the first.
func TestContact_CollectsAllErrors(t *testing.T) {
	_, errs := Contact(ContactInput{})
	for _, field := range []string{"name", "email", "subject", "message"} {
		if !hasFieldError(errs, field) {
			t.Errorf("expected an error for field %q in %v", field, errs)
		}
	}
}

// ---------------------------------------------------------------------------
// Quote validation
// ---------------------------------------------------------------------------

func TestQuote_Valid(t *testing.T) {
	_, area, errs := Quote(validQuote())
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if area != 1000 {
		t.Errorf("expected area 1000, got %d", area)
	}
}

func TestQuote_PhoneRequired(t *testing.T) {
	in := validQuote()
	in.Phone = ""
	if _, _, errs := Quote(in); !hasFieldError(errs, "phone") {
		t.Error("expected phone error when phone absent on quote form")
	}

	in = validQuote()
	in.Phone = "123456"
	if _, _, errs := Quote(in); !hasFieldError(errs, "phone") {
		t.Error("expected phone error for phone shorter than 10 chars")
	}
}

func TestQuote_PackageEnum(t *testing.T) {
	in := validQuote()
	in.Package = "Diamond"
	if _, _, errs := Quote(in); !hasFieldError(errs, "package") {
		t.Error("expected package error for value outside the enum")
	}
}

func TestQuote_AreaBounds(t *testing.T) {
	for _, area := range []string{"99", "100001", "-5"} {
		in := validQuote()
		in.Area = json.Number(area)
		if _, _, errs := Quote(in); !hasFieldError(errs, "area") {
			t.Errorf("area %s: expected an area field error", area)
		}
	}

	for _, area := range []string{"100", "100000"} {
		in := validQuote()
		in.Area = json.Number(area)
		if _, _, errs := Quote(in); hasFieldError(errs, "area") {
			t.Errorf("area %s: boundary value should be accepted", area)
		}
	}
}

func TestQuote_AreaMustBeInteger(t *testing.T) {
	in := validQuote()
	in.Area = json.Number("1500.5")
	if _, _, errs := Quote(in); !hasFieldError(errs, "area") {
		t.Error("expected area error for non-integer value")
	}
}

func TestQuote_AreaRequired(t *testing.T) {
	in := validQuote()
	in.Area = json.Number("")
	if _, _, errs := Quote(in); !hasFieldError(errs, "area") {
		t.Error("expected area error when area absent")
	}
}

func TestQuote_MessageOptional(t *testing.T) {
	in := validQuote()
	in.Message = ""
	if _, _, errs := Quote(in); len(errs) != 0 {
		t.Errorf("empty message should be accepted on quote form, got %v", errs)
	}

	in = validQuote()
	in.Message = strings.Repeat("x", 2001)
	if _, _, errs := Quote(in); !hasFieldError(errs, "message") {
		t.Error("expected message error for 2001-char message")
	}
}

// ---------------------------------------------------------------------------
// Status validation
// ---------------------------------------------------------------------------

func TestStatus(t *testing.T) {
	allowed := []string{"new", "read"}
	if errs := Status("read", allowed); len(errs) != 0 {
		t.Errorf("expected no errors for allowed value, got %v", errs)
	}
	if errs := Status("bogus", allowed); !hasFieldError(errs, "status") {
		t.Error("expected status error for value outside the enum")
	}
	if errs := Status("", allowed); !hasFieldError(errs, "status") {
		t.Error("expected status error for empty value")
	}
}
