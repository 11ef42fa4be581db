package config

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"github.com/alexisbeaulieu97/tinte/internal/provider"
	"github.com/alexisbeaulieu97/tinte/internal/theme"
	tinteerrors "github.com/alexisbeaulieu97/tinte/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	providerIDs   = lo.Map(provider.Builtins(), func(p provider.Provider, _ int) string {
		return p.Metadata().ID
	})
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("provider_id", func(fl validator.FieldLevel) bool {
			return lo.Contains(providerIDs, fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns the document validator for use outside the package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// ValidateDocument checks document metadata, then the canonical theme.
// Overrides are not validated here; malformed ones degrade when normalized.
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return tinteerrors.NewValidationError("document", "document is nil", nil)
	}

	if err := validatorInstance().Struct(doc); err != nil {
		return convertValidationError(err)
	}

	for id := range doc.Overrides {
		if !lo.Contains(providerIDs, id) {
			return tinteerrors.NewValidationError(
				"overrides."+id,
				fmt.Sprintf("unknown provider %q (known: %s)", id, strings.Join(providerIDs, ", ")),
				nil,
			)
		}
	}

	t := doc.Theme()
	return theme.Validate(&t)
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Tag() == "provider_id" {
			msg = fmt.Sprintf("unknown provider %q (known: %s)", fmt.Sprint(ve.Value()), strings.Join(providerIDs, ", "))
		}
		return tinteerrors.NewValidationError(field, msg, err)
	}

	return tinteerrors.NewValidationError("document", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	lowered := lo.Map(parts, func(part string, _ int) string {
		return strings.ToLower(part)
	})
	return strings.Join(lowered, ".")
}
