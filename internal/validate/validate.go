package validate

import "github.com/go-playground/validator/v10"

var structValidator = validator.New()

// StructFields runs the `validate` tags declared on s.
func StructFields(s any) error {
	return structValidator.Struct(s)
}
