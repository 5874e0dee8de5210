package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestKindStatusMapping(t *testing.T) {
	cases := []struct {
		err    *Error
		status int
	}{
		{NotFound("", nil), http.StatusNotFound},
		{Validation("", nil), http.StatusUnprocessableEntity},
		{Unauthorized("", nil), http.StatusUnauthorized},
		{Forbidden("", nil), http.StatusForbidden},
		{Internal("", nil), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := tc.err.Status(); got != tc.status {
			t.Errorf("%s: status = %d, want %d", tc.err.Kind, got, tc.status)
		}
	}
}

func TestDefaultMessages(t *testing.T) {
	if got := NotFound("", nil).Message; got != "Resource not found" {
		t.Errorf("NotFound default message = %q", got)
	}
	if got := Validation("", nil).Message; got != "Validation error" {
		t.Errorf("Validation default message = %q", got)
	}
	if got := Unauthorized("", nil).Message; got != "Unauthorized" {
		t.Errorf("Unauthorized default message = %q", got)
	}
	if got := Forbidden("", nil).Message; got != "Forbidden" {
		t.Errorf("Forbidden default message = %q", got)
	}
	if got := Internal("", nil).Message; got != "Internal server error" {
		t.Errorf("Internal default message = %q", got)
	}
}

func TestExplicitMessageWins(t *testing.T) {
	e := NotFound("Item 42 not found", nil)
	if e.Message != "Item 42 not found" {
		t.Fatalf("message = %q", e.Message)
	}
	if e.Error() != e.Message {
		t.Fatalf("Error() = %q, want %q", e.Error(), e.Message)
	}
}

func TestDetailsNeverNil(t *testing.T) {
	e := Validation("", nil)
	if e.Details() == nil {
		t.Fatal("Details() returned nil")
	}
	if len(e.Details()) != 0 {
		t.Fatalf("expected empty details, got %v", e.Details())
	}

	e = Validation("", map[string]any{"price": "must be greater than zero"})
	if e.Details()["price"] != "must be greater than zero" {
		t.Fatalf("details = %v", e.Details())
	}
}

func TestErrorsAsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("service call: %w", Forbidden("", nil))

	var ae *Error
	if !errors.As(wrapped, &ae) {
		t.Fatal("errors.As failed to unwrap *Error")
	}
	if ae.Kind != KindForbidden {
		t.Fatalf("kind = %s, want %s", ae.Kind, KindForbidden)
	}
}

func TestUnknownKindFallsBackTo500(t *testing.T) {
	e := &Error{Kind: Kind("mystery"), Message: "?"}
	if got := e.Status(); got != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", got)
	}
}
