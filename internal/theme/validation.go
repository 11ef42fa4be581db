package theme

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/tinte/internal/color"
	tinteerrors "github.com/alexisbeaulieu97/tinte/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("tinte_hex", func(fl validator.FieldLevel) bool {
			return color.IsHex(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator exposes the shared validator with the tinte_hex tag registered.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// ValidateBlock checks every token of b holds a #RGB or #RRGGBB color.
func ValidateBlock(mode Mode, b Block) error {
	if err := validatorInstance().Struct(b); err != nil {
		return convertValidationError(mode, err)
	}
	return nil
}

// Validate checks both blocks. It is the single boundary check: adapters
// assume a theme that passed it.
func Validate(t *Theme) error {
	if t == nil {
		return tinteerrors.NewInvalidThemeError("", "", "", "theme is nil", nil)
	}
	if err := ValidateBlock(Light, t.Light); err != nil {
		return err
	}
	return ValidateBlock(Dark, t.Dark)
}

func convertValidationError(mode Mode, err error) error {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		value := fmt.Sprint(fe.Value())
		msg := fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
		switch fe.Tag() {
		case "required":
			msg = "missing token"
		case "tinte_hex":
			msg = fmt.Sprintf("%q is not a hex color (#RGB or #RRGGBB)", value)
		}
		return tinteerrors.NewInvalidThemeError(string(mode), fe.Field(), value, msg, err)
	}
	return tinteerrors.NewInvalidThemeError(string(mode), "", "", err.Error(), err)
}
