package registry

import (
	"errors"
	"regexp"
	"testing"
)

func TestRegisterDuplicateFails(t *testing.T) {
	r := New()
	d := Detector{Name: "email", Pattern: regexp.MustCompile(`x`)}
	if err := r.Register(d); err != nil {
		t.Fatalf("first register: %v", err)
	}
	err := r.Register(d)
	if !errors.Is(err, ErrDuplicateDetector) {
		t.Fatalf("expected ErrDuplicateDetector, got %v", err)
	}
}

func TestAllPreservesRegistrationOrder(t *testing.T) {
	r := New()
	for _, name := range []string{"c", "a", "b"} {
		if err := r.Register(Detector{Name: name, Pattern: regexp.MustCompile(`x`)}); err != nil {
			t.Fatal(err)
		}
	}
	got := r.Names()
	want := []string{"c", "a", "b"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestBuiltinNamesAndShape(t *testing.T) {
	r := Builtin()
	want := []string{"email", "ssn", "phone", "credit_card", "aws_key", "api_key"}
	got := r.Names()
	if len(got) != len(want) {
		t.Fatalf("builtin detectors = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("builtin order = %v, want %v", got, want)
		}
	}

	card, _, ok := r.Lookup("credit_card")
	if !ok || card.Validator == nil {
		t.Fatal("credit_card must carry a validator")
	}
	email, _, ok := r.Lookup("email")
	if !ok || email.Validator != nil {
		t.Fatal("email must not carry a validator")
	}
	if card.BaseWeight <= email.BaseWeight {
		t.Fatal("credit_card must outweigh email")
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, _, ok := Builtin().Lookup("nope"); ok {
		t.Fatal("unknown detector should not resolve")
	}
}
