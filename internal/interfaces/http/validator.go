package http

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/evcharge-admin-api/internal/domain"
)

// Validator envuelve validator/v10 y reporta los campos con su nombre de la API.
type Validator struct {
	v *validator.Validate
}

// NewValidator registra los tags propios y el nombre de campo (json, params o query).
func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "params", "query"} {
			name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return f.Name
	})
	_ = v.RegisterValidation("privilege", isPrivilege)
	return &Validator{v: v}
}

// isPrivilege acepta solo 0 o 1.
func isPrivilege(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := fl.Field().Int()
		return n == 0 || n == 1
	default:
		return false
	}
}

// Struct valida s y devuelve un *domain.ValidationError con los problemas por campo.
func (val *Validator) Struct(s any) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}
	if fields := fromValidationError(err); fields != nil {
		return &domain.ValidationError{Fields: fields}
	}
	return err
}

func fromValidationError(err error) map[string][]string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil
	}

	problems := map[string][]string{}
	for _, fe := range ve {
		field := fieldPath(fe.Namespace())

		switch fe.Tag() {
		case "required":
			problems[field] = append(problems[field], "This field is required")
		case "min":
			problems[field] = append(problems[field], "Value is too short, min: "+fe.Param())
		case "max":
			problems[field] = append(problems[field], "Value is too long, max: "+fe.Param())
		case "len":
			problems[field] = append(problems[field], "Value must have length "+fe.Param())
		case "gt":
			problems[field] = append(problems[field], "Value must be greater than "+fe.Param())
		case "oneof":
			problems[field] = append(problems[field], "Value must be one of: "+fe.Param())
		case "email":
			problems[field] = append(problems[field], "Value must be a valid email address")
		case "privilege":
			problems[field] = append(problems[field], "Value must be 0 or 1")

		default:
			problems[field] = append(problems[field], "Invalid value provided")
		}
	}
	return problems
}

// fieldPath quita el nombre del struct raíz: "RegisterEVSERequest.connectors[0].standard" → "connectors[0].standard".
func fieldPath(ns string) string {
	if _, rest, found := strings.Cut(ns, "."); found {
		return rest
	}
	return ns
}

// bindBody decodifica el cuerpo JSON en dst y lo valida.
func (val *Validator) bindBody(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Malformed JSON body")
	}
	return val.Struct(dst)
}

// bindParams decodifica los parámetros de ruta en dst y los valida.
func (val *Validator) bindParams(c *fiber.Ctx, dst any) error {
	if err := c.ParamsParser(dst); err != nil {
		return domain.NewValidationError("params", "Invalid path parameters")
	}
	return val.Struct(dst)
}

// bindQuery decodifica la query string en dst y la valida.
func (val *Validator) bindQuery(c *fiber.Ctx, dst any) error {
	if err := c.QueryParser(dst); err != nil {
		return domain.NewValidationError("query", "Invalid query parameters")
	}
	return val.Struct(dst)
}

// paramID lee un parámetro de ruta entero positivo.
func paramID(c *fiber.Ctx, name string) (int64, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(name, "Value must be a positive integer")
	}
	return int64(id), nil
}
