package validation

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
)

// Kind is the wire type a field must arrive as.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	// KindDate is an ISO 8601 string, returned parsed as a time.Time
	KindDate
)

// Rule binds one input key to its expected type and validator tags.
type Rule struct {
	Field string
	Kind  Kind
	Tag   string
}

// Schema is evaluated rule by rule; a failing rule never hides another.
type Schema []Rule

// Validate checks input against every rule and returns the typed values
// keyed by field. Errors come back in schema order.
func (s Schema) Validate(v *validator.Validate, input map[string]any) (map[string]any, []FieldError) {
	values := make(map[string]any, len(s))
	var errs []FieldError

	for _, rule := range s {
		raw, ok := input[rule.Field]
		if !ok || raw == nil {
			errs = append(errs, FieldError{Field: rule.Field, Message: "Required"})
			continue
		}

		var value any
		switch rule.Kind {
		case KindString:
			str, ok := raw.(string)
			if !ok {
				fe := typeMismatch("string", raw)
				fe.Field = rule.Field
				errs = append(errs, fe)
				continue
			}
			value = str
		case KindNumber:
			n, ok := asNumber(raw)
			if !ok {
				fe := typeMismatch("number", raw)
				fe.Field = rule.Field
				errs = append(errs, fe)
				continue
			}
			value = n
		case KindDate:
			str, ok := raw.(string)
			if !ok {
				fe := typeMismatch("string", raw)
				fe.Field = rule.Field
				errs = append(errs, fe)
				continue
			}
			t, err := ParseISODate(str)
			if err != nil {
				errs = append(errs, FieldError{Field: rule.Field, Message: invalidDateMessage})
				continue
			}
			value = t
		}

		if rule.Tag != "" {
			if err := v.Var(value, rule.Tag); err != nil {
				errs = append(errs, FormatValidationErrors(rule.Field, err)...)
				continue
			}
		}
		values[rule.Field] = value
	}

	return values, errs
}

// asNumber accepts the numeric types a JSON decoder can produce.
func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}
