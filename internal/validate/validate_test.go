package validate

import "testing"

func TestLuhnKnownNumbers(t *testing.T) {
	cases := []struct {
		in    string
		valid bool
	}{
		{"4111111111111111", true},
		{"4111111111111112", false},
		{"4111-1111-1111-1111", true},
		{"4111 1111 1111 1111", true},
		{"5555555555554444", true},
		{"378282246310005", true}, // 15-digit Amex
		{"1234", false},           // too short
		{"41111111111111111111", false}, // too long
		{"4111a11111111111", false},     // residual non-digit
	}
	for _, c := range cases {
		if got := Luhn(c.in); got.Valid != c.valid {
			t.Errorf("Luhn(%q) = %v (%s), want valid=%v", c.in, got.Valid, got.Reason, c.valid)
		}
	}
}

func TestLuhnIdenticalDigitsNotSpecialCased(t *testing.T) {
	// All zeros sums to zero, which the checksum accepts. The validator must
	// not carve out an exception.
	if v := Luhn("0000000000000000"); !v.Valid {
		t.Fatalf("all-zero candidate should pass on checksum alone, got %s", v.Reason)
	}
	if v := Luhn("1111111111111111"); v.Valid {
		t.Fatalf("all-ones candidate should fail on checksum alone")
	}
}

func TestSSNReservedRanges(t *testing.T) {
	cases := []struct {
		in    string
		valid bool
	}{
		{"123-45-6789", true},
		{"123456789", true},
		{"000-45-6789", false}, // area 000
		{"666-45-6789", false}, // area 666
		{"900-45-6789", false}, // area 900+
		{"999-45-6789", false},
		{"123-00-6789", false}, // group 00
		{"123-45-0000", false}, // serial 0000
		{"12-345-6789", true},  // digits regroup to a plausible 9
		{"1234", false},
	}
	for _, c := range cases {
		if got := SSN(c.in); got.Valid != c.valid {
			t.Errorf("SSN(%q) = %v (%s), want valid=%v", c.in, got.Valid, got.Reason, c.valid)
		}
	}
}

func TestDigitsOnly(t *testing.T) {
	if got := DigitsOnly("a1b2-3 4"); got != "1234" {
		t.Fatalf("DigitsOnly = %q", got)
	}
}
