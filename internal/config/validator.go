package config

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	glerrors "github.com/alexisbeaulieu97/glasslab/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "" || name == "-" {
				return strings.ToLower(field.Name)
			}
			return name
		})

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidateSettings performs schema and cross-field validation.
func ValidateSettings(s *Settings) error {
	if s == nil {
		return glerrors.NewValidationError("", "settings are nil", nil)
	}

	if err := validatorInstance().Struct(s); err != nil {
		return convertValidationError(err)
	}

	for _, r := range s.Studio.ranges() {
		if r.Default < r.Min || r.Default > r.Max {
			field := fmt.Sprintf("studio.%s.default", r.name)
			msg := fmt.Sprintf("%v is outside range [%v, %v]", r.Default, r.Min, r.Max)
			return glerrors.NewValidationError(field, msg, nil)
		}
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return glerrors.NewValidationError(field, msg, err)
	}

	return glerrors.NewValidationError("settings", err.Error(), err)
}

// yamlishFieldName drops the root struct name from the namespace, leaving
// the dotted YAML key path (studio.blur.max).
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
