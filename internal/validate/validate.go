package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reID     = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	reCoupon = regexp.MustCompile(`^[A-Z0-9]{1,20}$`)
)

// ID validates a simple resource identifier (product ids, uuids).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Qty parses a quantity form value. Bad input defaults to 1; clamped to
// avoid abuse.
func Qty(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	if n > 50 {
		return 50
	}
	return n
}

// QtyExact parses a quantity without the >=1 floor, for update forms where
// zero means "remove".
func QtyExact(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, true
}

// Q trims a search query and caps its length. Matching is substring-based
// downstream, so no character class is enforced here.
func Q(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 50 {
		s = s[:50]
	}
	return s
}

// Coupon validates the shape of a coupon code before the table lookup.
func Coupon(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reCoupon.MatchString(s)
}

// Price parses a required positive price field.
func Price(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

// OptionalPrice parses an optional price field. Empty means "not set".
func OptionalPrice(s string) (*float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return nil, false
	}
	return &v, true
}

// OptionalPercent parses an optional 0-100 integer field.
func OptionalPercent(s string) (*int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, true
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 100 {
		return nil, false
	}
	return &n, true
}

// Required trims a text field and caps it at a displayable length.
func Required(s string, max int) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > max {
		return "", false
	}
	return s, true
}
