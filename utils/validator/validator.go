package validatorx

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
	"github.com/muhammadheryan/roadside-assistance/constant"
)

var (
	v    *gpvalidator.Validate
	once sync.Once
)

// Init initializes the validator singleton (idempotent, safe for concurrent use)
func Init() {
	once.Do(build)
}

func build() {
	v = gpvalidator.New()

	// report json field names, not Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// signup_role accepts only the roles open to self-registration
	_ = v.RegisterValidation("signup_role", func(fl gpvalidator.FieldLevel) bool {
		role, ok := constant.ParseRole(fl.Field().String())
		return ok && role != constant.RoleAdmin
	})
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	Init()
	return v.Struct(s)
}

// Message turns a validation error into a short sentence for the first failing field.
func Message(err error) string {
	var verrs gpvalidator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid request body"
	}

	fe := verrs[0]
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "latitude", "longitude":
		return fmt.Sprintf("%s is out of range", field)
	case "signup_role":
		return constant.ErrorTypeMessage[constant.ErrInvalidRole]
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
