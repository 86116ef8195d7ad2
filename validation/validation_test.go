package validation

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/kbukum/conduit/errors"
)

func TestValidatorRequired(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{"conduit", false},
		{"", true},
		{"   ", true},
	}
	for _, tc := range tests {
		v := New().Required("name", tc.value)
		if v.HasErrors() != tc.wantErr {
			t.Errorf("Required(%q): got errors=%v, want %v", tc.value, v.HasErrors(), tc.wantErr)
		}
	}
}

func TestValidatorOptionalUUID(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{"", false},
		{uuid.New().String(), false},
		{"not-a-uuid", true},
	}
	for _, tc := range tests {
		v := New().OptionalUUID("run_id", tc.value)
		if v.HasErrors() != tc.wantErr {
			t.Errorf("OptionalUUID(%q): got errors=%v, want %v", tc.value, v.HasErrors(), tc.wantErr)
		}
	}
}

func TestValidatorRange(t *testing.T) {
	if New().Range("n", 5, 1, 10).HasErrors() {
		t.Error("5 is within [1, 10]")
	}
	if !New().Range("n", 11, 1, 10).HasErrors() {
		t.Error("11 is outside [1, 10]")
	}
	if !New().Range("n", 0, 1, 10).HasErrors() {
		t.Error("0 is outside [1, 10]")
	}
}

func TestValidatorOneOf(t *testing.T) {
	allowed := []string{"text", "json"}
	if New().OneOf("format", "json", allowed).HasErrors() {
		t.Error("json is allowed")
	}
	if New().OneOf("format", "", allowed).HasErrors() {
		t.Error("empty is skipped")
	}
	v := New().OneOf("format", "xml", allowed)
	if !v.HasErrors() {
		t.Fatal("xml is not allowed")
	}
	if got := v.Errors()[0].Message; got != "must be one of: text, json" {
		t.Errorf("got %q", got)
	}
}

func TestValidatorValidate(t *testing.T) {
	if New().Validate() != nil {
		t.Error("empty validator should return nil")
	}
	if New().Err() != nil {
		t.Error("Err should be a nil interface when there are no errors")
	}

	appErr := New().
		Required("name", "").
		Custom(false, "chunk", "must be positive").
		Validate()
	if appErr == nil {
		t.Fatal("expected an error")
	}
	if appErr.Code != errors.ErrCodeInvalidInput {
		t.Errorf("got code %s, want %s", appErr.Code, errors.ErrCodeInvalidInput)
	}
	if appErr.Message != "name: is required; chunk: must be positive" {
		t.Errorf("got message %q", appErr.Message)
	}
	fields, ok := appErr.Details["fields"].([]FieldError)
	if !ok || len(fields) != 2 {
		t.Errorf("expected 2 field errors in details, got %v", appErr.Details["fields"])
	}
}

type runSettings struct {
	MaxSteps   int64  `mapstructure:"max_steps" validate:"gte=0"`
	CheckEvery int    `mapstructure:"check_every" validate:"gte=1,lte=1000000"`
	Format     string `json:"format" validate:"required,oneof=text json"`
	RunName    string `validate:"max=8"`
}

func TestStructValidateValid(t *testing.T) {
	s := runSettings{MaxSteps: 0, CheckEvery: 10, Format: "json", RunName: "short"}
	if err := Validate(s); err != nil {
		t.Errorf("expected valid, got %v", err)
	}
}

func TestStructValidateInvalid(t *testing.T) {
	s := runSettings{MaxSteps: -1, CheckEvery: 0, Format: "xml", RunName: "much-too-long"}
	err := Validate(s)
	if err == nil {
		t.Fatal("expected validation error")
	}
	appErr, ok := errors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	for _, want := range []string{
		"max_steps: must be at least 0",
		"check_every: must be at least 1",
		"format: must be one of: text json",
		"run_name: must be at most 8 characters",
	} {
		if !strings.Contains(appErr.Message, want) {
			t.Errorf("expected %q in %q", want, appErr.Message)
		}
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := map[string]string{
		"MaxSteps": "max_steps",
		"name":     "name",
		"RunID":    "run_i_d",
	}
	for in, want := range tests {
		if got := toSnakeCase(in); got != want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}
