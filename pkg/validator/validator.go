package validator

import (
	"github.com/go-playground/validator/v10"
)

// FieldError describe un campo que no pasó la validación del struct.
type FieldError struct {
	Field string
	Tag   string
	Param string
}

var validate = validator.New()

// ValidateStruct valida los tags `validate` de un struct y devuelve los campos fallidos.
// Slice vacío (nil) significa que el struct es válido.
func ValidateStruct(data interface{}) []*FieldError {
	var fails []*FieldError
	err := validate.Struct(data)
	if err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			fails = append(fails, &FieldError{
				Field: fe.StructNamespace(),
				Tag:   fe.Tag(),
				Param: fe.Param(),
			})
		}
	}
	return fails
}
