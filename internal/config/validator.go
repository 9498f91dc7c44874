package config

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/materialfield/internal/colors"
	"github.com/alexisbeaulieu97/materialfield/internal/model"
	fielderrors "github.com/alexisbeaulieu97/materialfield/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	easings       = map[string]struct{}{
		string(model.EasingAccelerateDecelerate): {},
		string(model.EasingLinear):               {},
		string(model.EasingSpring):               {},
	}
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// Report fields by their document key rather than the Go name.
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
			if name == "" || name == "-" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		// Colors are read by colors.Parse, alpha first.
		_ = v.RegisterValidation("argbcolor", func(fl validator.FieldLevel) bool {
			_, err := colors.Parse(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("easing", func(fl validator.FieldLevel) bool {
			_, ok := easings[fl.Field().String()]
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns the shared validator instance.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// ValidateDocument performs schema validation and the checks that need more
// than one field.
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return fielderrors.NewValidationError("document", "document is nil", nil)
	}

	if err := validatorInstance().Struct(doc); err != nil {
		return convertValidationError(err)
	}

	for i, spec := range doc.Validators {
		if spec.Type == "length" && spec.Min == 0 && spec.Max == 0 {
			return fielderrors.NewValidationError(fieldForValidator(i, "max"), "length validator needs min or max", nil)
		}
		if spec.Type == "length" && spec.Max > 0 && spec.Max < spec.Min {
			return fielderrors.NewValidationError(fieldForValidator(i, "max"), "max is below min", nil)
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
		field := documentFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return fielderrors.NewValidationError(field, msg, err)
	}

	return fielderrors.NewValidationError("document", err.Error(), err)
}

// documentFieldName drops the root type from the namespace, leaving a path
// such as "colors.primary" or "validators[1].type".
func documentFieldName(fe validator.FieldError) string {
	_, rest, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		return fe.Field()
	}
	return rest
}

func fieldForValidator(index int, field string) string {
	return fmt.Sprintf("validators[%d].%s", index, field)
}
