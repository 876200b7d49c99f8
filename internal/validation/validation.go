package validation

import (
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"katalog/internal/models"
)

// Error is a client-input validation failure. Handlers map it to a 400.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NewError creates a validation error with the given message.
func NewError(message string) *Error {
	return &Error{Message: message}
}

var validate = validator.New()

// Name trims the raw value and requires a non-empty string.
func Name(raw interface{}) (string, error) {
	s, ok := raw.(string)
	if !ok {
		return "", NewError("name required")
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", NewError("name required")
	}
	return s, nil
}

// Number parses the raw value as a finite floating-point number.
// JSON numbers arrive as float64; numeric strings are also accepted.
func Number(raw interface{}) (float64, error) {
	switch v := raw.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, NewError("must be numeric")
		}
		return v, nil
	case int:
		return float64(v), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, NewError("must be numeric")
		}
		return f, nil
	default:
		return 0, NewError("must be numeric")
	}
}

// Integer parses the raw value as a whole number.
func Integer(raw interface{}) (int, error) {
	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) || math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, NewError("must be numeric")
		}
		// int(v) is implementation-defined once v leaves the int64 range
		if v < math.MinInt64 || v >= math.MaxInt64 {
			return 0, NewError("must be numeric")
		}
		return int(v), nil
	case int:
		return v, nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, NewError("must be numeric")
		}
		return n, nil
	default:
		return 0, NewError("must be numeric")
	}
}

// ID parses a route or body value as an integer identifier. Any integer is
// accepted, including negative ones; those simply never resolve to a row.
func ID(raw interface{}) (int, error) {
	id, err := Integer(raw)
	if err != nil {
		return 0, NewError("invalid id")
	}
	return id, nil
}

// Product converts an untyped request payload into a typed product value.
// The name is checked first; price and quantity are both checked before
// failing so a single error covers every bad numeric field. A missing
// description defaults to the empty string.
func Product(payload map[string]interface{}) (*models.Product, error) {
	name, err := Name(payload["name"])
	if err != nil {
		return nil, err
	}

	price, priceErr := Number(payload["price"])
	quantity, quantityErr := Integer(payload["quantity"])
	switch {
	case priceErr != nil && quantityErr != nil:
		return nil, NewError("price and quantity must be numeric")
	case priceErr != nil:
		return nil, NewError("price must be numeric")
	case quantityErr != nil:
		return nil, NewError("quantity must be numeric")
	}

	description := ""
	if s, ok := payload["description"].(string); ok {
		description = s
	}

	product := &models.Product{
		Name:        name,
		Price:       price,
		Description: description,
		Quantity:    quantity,
	}
	if err := validate.Struct(product); err != nil {
		return nil, NewError(err.Error())
	}
	return product, nil
}
