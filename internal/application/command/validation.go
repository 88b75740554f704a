// Package command contains write operations (CQRS - Commands).
package command

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/alem-hub/gradebook/internal/domain/shared"
)

// validate is safe for concurrent use and caches struct metadata.
var validate = validator.New(validator.WithRequiredStructEnabled())

// fieldErrors maps a struct field name to the domain error reported when
// its validation tag fails.
type fieldErrors map[string]error

// validateStruct runs the struct tags of cmd and translates the first
// failing field into its domain error.
func validateStruct(op string, cmd any, mapping fieldErrors) error {
	err := validate.Struct(cmd)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%s: %w", op, err)
	}

	for _, fe := range verrs {
		if mapped, ok := mapping[fe.Field()]; ok {
			return fmt.Errorf("%s: %w", op, mapped)
		}
	}

	fe := verrs[0]
	return fmt.Errorf("%s: %w", op, shared.NewDomainError(op, "Validate", shared.ErrValidation,
		fmt.Sprintf("field %s failed %q", fe.Field(), fe.Tag())))
}
