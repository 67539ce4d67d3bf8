package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	err := New(CodeInvalidAngle, "angle must be strictly between 0° and 90°")

	if got := err.Error(); got != "angle must be strictly between 0° and 90°" {
		t.Errorf("Error() = %q, want plain message", got)
	}
	if got := err.Code(); got != CodeInvalidAngle {
		t.Errorf("Code() = %v, want %v", got, CodeInvalidAngle)
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CodeInvalidGeometry, "hypotenuse %g must exceed the leg %g", 5.0, 7.0)

	want := "hypotenuse 5 must exceed the leg 7"
	if got := err.Error(); got != want {
		t.Errorf("Newf message = %q, want %q", got, want)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("open failed")
	err := Wrap(cause, CodeConfig, "loading config")

	if got := err.Error(); got != "loading config: open failed" {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(err, cause) {
		t.Error("wrapped error should match its cause via errors.Is")
	}
	if got := err.Message(); got != "loading config" {
		t.Errorf("Message() = %q, want message without cause", got)
	}
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(nil, CodeConfig, "ignored"); err != nil {
		t.Errorf("Wrap(nil) = %v, want nil", err)
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"direct", New(CodeInvalidAngle, "bad angle"), CodeInvalidAngle},
		{"wrapped by fmt", fmt.Errorf("outer: %w", New(CodeInvalidGeometry, "bad sides")), CodeInvalidGeometry},
		{"foreign", errors.New("plain"), CodeUnknown},
		{"nil", nil, CodeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.want {
				t.Errorf("GetCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHasCode(t *testing.T) {
	err := fmt.Errorf("context: %w", New(CodeInvalidInput, "not a number"))

	if !HasCode(err, CodeInvalidInput) {
		t.Error("HasCode should find the code through wrapping")
	}
	if HasCode(err, CodeInvalidAngle) {
		t.Error("HasCode matched the wrong code")
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"app error", New(CodeInvalidAngle, "angle out of range"), "angle out of range"},
		{"wrapped app error", Wrap(errors.New("cause"), CodeConfig, "bad config"), "bad config"},
		{"foreign", errors.New("plain failure"), "plain failure"},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
