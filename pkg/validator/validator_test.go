package validator

import "testing"

type sampleRequest struct {
	Email  string `validate:"required,email"`
	Name   string `validate:"required,min=2"`
	Gender string `validate:"omitempty,oneof=male female other"`
}

func TestValidatePasses(t *testing.T) {
	v := NewValidator()
	err := v.Validate(&sampleRequest{Email: "a@b.com", Name: "Jo", Gender: "other"})
	if err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestValidateFailsAndFormats(t *testing.T) {
	v := NewValidator()
	err := v.Validate(&sampleRequest{Email: "not-an-email", Name: "J", Gender: "robot"})
	if err == nil {
		t.Fatal("expected validation errors")
	}

	formatted := v.FormatValidationErrors(err)
	if formatted["Email"] == "" {
		t.Error("expected an Email error message")
	}
	if formatted["Name"] == "" {
		t.Error("expected a Name error message")
	}
	if formatted["Gender"] == "" {
		t.Error("expected a Gender error message")
	}
}
