package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/sbilibin2017/hbnb/internal/repositories"
)

// Fields is a decoded JSON object. Numbers are expected as json.Number.
type Fields map[string]any

// Has reports whether key is present with a non-null, non-blank value.
func (f Fields) Has(key string) bool {
	v, ok := f[key]
	if !ok || v == nil {
		return false
	}
	if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
		return false
	}
	return true
}

// Require fails with ErrMissingField unless every key is present.
func (f Fields) Require(keys ...string) error {
	for _, k := range keys {
		if !f.Has(k) {
			return ErrMissingField
		}
	}
	return nil
}

// Only returns the subset of f whose keys are listed.
func (f Fields) Only(keys ...string) Fields {
	out := Fields{}
	for _, k := range keys {
		if v, ok := f[k]; ok {
			out[k] = v
		}
	}
	return out
}

// String returns the value of key as a string.
func (f Fields) String(key string) (string, error) {
	s, ok := f[key].(string)
	if !ok {
		return "", validation(key + " must be a string.")
	}
	return s, nil
}

// Int returns the value of key as an integer. Fractional numbers are rejected.
func (f Fields) Int(key string) (int, error) {
	var n int
	if err := f.number(key, &n); err != nil {
		return 0, validation(key + " must be an integer.")
	}
	return n, nil
}

// Float returns the value of key as a number.
func (f Fields) Float(key string) (float64, error) {
	var n float64
	if err := f.number(key, &n); err != nil {
		return 0, validation(key + " must be a number.")
	}
	return n, nil
}

func (f Fields) number(key string, dst any) error {
	switch v := f[key].(type) {
	case json.Number:
		return json.Unmarshal([]byte(v), dst)
	case float64, int:
		raw, _ := json.Marshal(v)
		return json.Unmarshal(raw, dst)
	default:
		return fmt.Errorf("%s is not a number", key)
	}
}

// Strings returns the value of key as a list of strings.
func (f Fields) Strings(key string) ([]string, error) {
	list, ok := f[key].([]any)
	if !ok {
		return nil, ErrInvalidAmenity
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		s, ok := item.(string)
		if !ok {
			return nil, ErrInvalidAmenity
		}
		out = append(out, s)
	}
	return out, nil
}

// validEmail accepts a bare address such as "a@b.com".
func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}
	at := strings.LastIndex(email, "@")
	return at > 0 && strings.Contains(email[at:], ".")
}

// asciiAlpha reports whether s is non-empty and made only of ASCII letters.
func asciiAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			return false
		}
	}
	return true
}

// storeError reports a unique violation raced past the existence checks as
// conflict, and a vanished foreign key referent as not found.
func storeError(err error, conflict *Error) error {
	switch {
	case errors.Is(err, repositories.ErrUniqueViolation):
		return conflict
	case errors.Is(err, repositories.ErrForeignKeyViolation):
		return ErrReferenceGone
	}
	return fieldError(err)
}

// fieldError converts a gateway type error into a validation error.
func fieldError(err error) error {
	var fe *repositories.FieldError
	if errors.As(err, &fe) {
		return validation(fmt.Sprintf("%s has an invalid type.", fe.Field))
	}
	return err
}
