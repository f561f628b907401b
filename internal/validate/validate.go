// Package validate holds the shared input-validation rules. All functions are
// pure: no state, deterministic, safe to call concurrently.
package validate

import (
	"regexp"
	"strings"

	"pcof-site-backend/internal/apperr"

	"github.com/shopspring/decimal"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// Amount parses raw as a positive amount in major currency units.
func Amount(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || !d.IsPositive() {
		return decimal.Zero, apperr.New(apperr.ErrInvalidRequest, "invalid amount")
	}
	return d, nil
}

// Email trims and lowercases raw, then checks it against a simple
// local@domain.tld shape. Returns the normalized address.
func Email(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if !emailPattern.MatchString(email) {
		return "", apperr.New(apperr.ErrInvalidRequest, "invalid email")
	}
	return email, nil
}

// RequiredText trims raw and rejects it if nothing remains.
func RequiredText(raw, field string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", apperr.New(apperr.ErrInvalidRequest, "missing "+field)
	}
	return s, nil
}
