package types

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their wire names so messages match the payload.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			return ""
		case "":
			return f.Name
		}
		return name
	})
	return v
}

// ValidateResponse checks a decoded response against its contract tags.
// Values that are not structs (raw JSON, maps, scalars) pass through.
func ValidateResponse(v any) error {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}
	err := validate.Struct(rv.Interface())
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	root := rv.Type().Name() + "."
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(strings.TrimPrefix(fe.Namespace(), root), fe.Tag()))
	}
	return fmt.Errorf("invalid response: %s", strings.Join(msgs, "; "))
}

func describe(field, tag string) string {
	if tag == "required" {
		return fmt.Sprintf("missing required field %q", field)
	}
	return fmt.Sprintf("field %q failed %q", field, tag)
}
