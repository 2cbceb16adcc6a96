package validation

import (
	"fmt"
	"net/mail"
	"slices"
	"strings"
	"time"
)

// Violation is a single field-level validation failure.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Rule declares the constraints for one field of a raw submission.
// Format constraints (Email, Enum, ISODate) only apply when the field
// carries a non-empty value; Required alone rejects absent fields.
type Rule struct {
	Field    string
	Required bool
	Email    bool
	Enum     []string
	ISODate  bool
}

// Validate checks a raw field-value mapping against the declared rules and
// returns violations in rule declaration order. It never touches the
// datastore and never mutates fields; normalization (trimming, lowercasing)
// is the record constructor's job, not the validator's.
func Validate(fields map[string]any, rules []Rule) []Violation {
	var violations []Violation

	for _, rule := range rules {
		raw, present := fields[rule.Field]

		value, isString := "", false
		if present && raw != nil {
			value, isString = raw.(string)
			if !isString {
				violations = append(violations, Violation{
					Field:   rule.Field,
					Message: fmt.Sprintf("%s must be a string", rule.Field),
				})
				continue
			}
		}

		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			if rule.Required {
				violations = append(violations, Violation{
					Field:   rule.Field,
					Message: fmt.Sprintf("%s is required", rule.Field),
				})
			}
			continue
		}

		if rule.Email {
			if _, err := mail.ParseAddress(trimmed); err != nil {
				violations = append(violations, Violation{
					Field:   rule.Field,
					Message: fmt.Sprintf("%s must be a valid email address", rule.Field),
				})
				continue
			}
		}

		if len(rule.Enum) > 0 && !slices.Contains(rule.Enum, trimmed) {
			violations = append(violations, Violation{
				Field:   rule.Field,
				Message: fmt.Sprintf("%s must be one of: %s", rule.Field, strings.Join(rule.Enum, ", ")),
			})
			continue
		}

		if rule.ISODate {
			if _, err := time.Parse("2006-01-02", trimmed); err != nil {
				violations = append(violations, Violation{
					Field:   rule.Field,
					Message: fmt.Sprintf("%s must be an ISO date (YYYY-MM-DD)", rule.Field),
				})
			}
		}
	}

	return violations
}
