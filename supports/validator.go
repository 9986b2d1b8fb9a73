package supports

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type (
	XValidator struct{}

	// ValidationError lists failed fields keyed by their json name.
	ValidationError struct {
		Message string            `json:"message"`
		Errors  map[string]string `json:"errors"`
	}
)

var validate = validator.New()

func (e *ValidationError) Error() string {
	errorJSON, err := json.Marshal(e)
	if err != nil {
		return fmt.Sprintf("Message: %s, Errors: %v", e.Message, e.Errors)
	}
	return string(errorJSON)
}

func jsonFieldName(structType reflect.Type, fieldName string) string {
	for structType.Kind() == reflect.Ptr {
		structType = structType.Elem()
	}
	if structType.Kind() != reflect.Struct {
		return fieldName
	}

	field, ok := structType.FieldByName(fieldName)
	if !ok {
		return fieldName
	}

	tag := field.Tag.Get("json")
	if tag == "" {
		return field.Name
	}
	name := strings.Split(tag, ",")[0]
	if name == "" || name == "-" {
		return field.Name
	}
	return name
}

// Validate checks data against its `validate` struct tags and returns a
// *ValidationError describing every failed field.
func (v XValidator) Validate(data any) error {
	errs := validate.Struct(data)
	if errs == nil {
		return nil
	}

	fieldErrs, ok := errs.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("could not validate %T: %w", data, errs)
	}

	result := &ValidationError{Errors: make(map[string]string, len(fieldErrs))}
	for index, err := range fieldErrs {
		name := jsonFieldName(reflect.TypeOf(data), err.Field())
		result.Errors[name] = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", name, err.Tag())
		if index == 0 {
			result.Message = result.Errors[name]
		}
	}
	return result
}
