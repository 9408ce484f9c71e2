package models

import "github.com/go-playground/validator/v10"

// validate is the single shared validator instance for this module, per
// the go-playground/validator convention of caching one instance and
// reusing it (it builds an internal struct-tag cache keyed by type).
var validate = validator.New()

// Validate runs struct-tag validation on v using the shared instance.
func Validate(v interface{}) error {
	if err := validate.Struct(v); err != nil {
		return &ModelError{Kind: ErrInput, Message: "validation failed", Cause: err}
	}
	return nil
}
