package validator

import "testing"

type sample struct {
	Phone    string `validate:"omitempty,phone"`
	Password string `validate:"omitempty,complexity"`
}

func firstTag(errs []*ErrorResponse) string {
	if len(errs) == 0 {
		return ""
	}
	return errs[0].Tag
}

func TestPhoneTag(t *testing.T) {
	valid := []string{
		"+880 1711-123456",
		"01711123456",
		"+8801711123456",
		"1711-123-456",
	}
	for _, phone := range valid {
		if errs := ValidateStruct(&sample{Phone: phone}); len(errs) != 0 {
			t.Errorf("phone %q should be valid, got %s", phone, firstTag(errs))
		}
	}

	invalid := []string{
		"12345",             // too short
		"phone",             // not numeric
		"+880 1711-12345x",  // trailing letter
		"-880 1711-123456",  // bad leading character
		"+880 1711 123456 ", // trailing space
	}
	for _, phone := range invalid {
		if errs := ValidateStruct(&sample{Phone: phone}); len(errs) == 0 {
			t.Errorf("phone %q should be rejected", phone)
		}
	}
}

func TestComplexityTag(t *testing.T) {
	valid := []string{"Str0ng!Pass", "aB3$", "Pa55+word"}
	for _, pw := range valid {
		if errs := ValidateStruct(&sample{Password: pw}); len(errs) != 0 {
			t.Errorf("password %q should satisfy complexity", pw)
		}
	}

	invalid := map[string]string{
		"str0ng!pass": "missing uppercase",
		"STR0NG!PASS": "missing lowercase",
		"Strong!Pass": "missing digit",
		"Str0ngPass1": "missing special character",
	}
	for pw, reason := range invalid {
		if errs := ValidateStruct(&sample{Password: pw}); len(errs) == 0 {
			t.Errorf("password %q should fail (%s)", pw, reason)
		}
	}
}

func TestValidateStructReportsFieldAndTag(t *testing.T) {
	type login struct {
		Email string `validate:"required,email"`
	}
	errs := ValidateStruct(&login{Email: "nope"})
	if len(errs) != 1 {
		t.Fatalf("len(errs) = %d", len(errs))
	}
	if errs[0].FailedField != "Email" || errs[0].Tag != "email" {
		t.Fatalf("unexpected error: %+v", errs[0])
	}
}
