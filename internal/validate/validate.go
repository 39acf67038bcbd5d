package validate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var v = validator.New(validator.WithRequiredStructEnabled())

// Struct runs validator/v10 tag validation and flattens the first failure
// into a client-facing message.
func Struct(s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
		switch fe.Tag() {
		case "required":
			return fmt.Errorf("%s is required", field)
		case "email":
			return fmt.Errorf("%s must be a valid email address", field)
		case "min", "max", "gt", "gte", "lte":
			return fmt.Errorf("%s fails constraint %s=%s", field, fe.Tag(), fe.Param())
		case "oneof":
			return fmt.Errorf("%s must be one of: %s", field, fe.Param())
		case "uuid":
			return fmt.Errorf("%s must be a valid id", field)
		}
		return fmt.Errorf("%s is invalid", field)
	}
	return err
}

// UUID reports whether s parses as a canonical UUID.
func UUID(s string) bool {
	_, err := uuid.Parse(strings.TrimSpace(s))
	return err == nil
}

// Password enforces the bcrypt-compatible length window. The message is part
// of the API contract (register rejects short passwords naming the length).
func Password(s string) error {
	if len(s) < 8 || len(s) > 72 {
		return errors.New("password must be between 8 and 72 characters")
	}
	return nil
}

// Page clamps a page query parameter: anything below 1 becomes 1.
func Page(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// PageSize clamps a pageSize query parameter into [1, max], defaulting when
// absent or below 1.
func PageSize(s string, def, max int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return def
	}
	if n > max {
		return max
	}
	return n
}

// Qty clamps an order/cart quantity to [1, 500].
func Qty(n int) int {
	if n < 1 {
		return 1
	}
	if n > 500 {
		return 500
	}
	return n
}
