package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// 검증 규칙 종류
const (
	RuleRequired = "required"
	RuleString   = "string"
	RuleInteger  = "integer"
	RuleMin      = "min"
	RuleMax      = "max"
	RuleExists   = "exists"
	RuleIn       = "in"
	RuleEmail    = "email"
	RuleUnique   = "unique"
)

// validate reports struct failures under the json field names.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// FieldError는 한 필드에서 실패한 규칙 하나를 나타냅니다.
type FieldError struct {
	Field   string
	Rule    string
	Message string
}

// ValidationError는 요청 검증 실패 목록을 담습니다. 필드 순서는 추가된 순서를 따릅니다.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) add(field, rule, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Rule: rule, Message: message})
}

func (e *ValidationError) addf(field, rule, format string, args ...any) {
	e.add(field, rule, fmt.Sprintf(format, args...))
}

// Has reports whether field failed any rule.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// HasRule reports whether field failed the given rule.
func (e *ValidationError) HasRule(field, rule string) bool {
	for _, f := range e.Fields {
		if f.Field == field && f.Rule == rule {
			return true
		}
	}
	return false
}

// Messages groups the messages by field.
func (e *ValidationError) Messages() map[string][]string {
	out := make(map[string][]string, len(e.Fields))
	for _, f := range e.Fields {
		out[f.Field] = append(out[f.Field], f.Message)
	}
	return out
}

// Summary returns the first message followed by a count of the remaining ones,
// e.g. "The selected status is invalid. (and 1 more error)".
func (e *ValidationError) Summary() string {
	if len(e.Fields) == 0 {
		return "The given data was invalid."
	}

	msg := e.Fields[0].Message
	switch rest := len(e.Fields) - 1; {
	case rest == 1:
		msg += " (and 1 more error)"
	case rest > 1:
		msg += fmt.Sprintf(" (and %d more errors)", rest)
	}
	return msg
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		fields = append(fields, f.Field+":"+f.Rule)
	}
	return "validation failed: " + strings.Join(fields, ", ")
}

// errOrNil returns e as an error only when it holds failures.
func (e *ValidationError) errOrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// attributeName turns a field key into the wording used in messages ("per_page" -> "per page").
func attributeName(field string) string {
	return strings.ReplaceAll(field, "_", " ")
}

// messageOverrides replaces default messages, keyed by "field.rule".
type messageOverrides map[string]string

// addValidatorErrors converts validator failures into field errors. field names
// the value for single-variable checks, which carry no field name of their own.
// Errors other than validator.ValidationErrors are returned unchanged.
func (e *ValidationError) addValidatorErrors(err error, field string, overrides messageOverrides) error {
	if err == nil {
		return nil
	}
	var failures validator.ValidationErrors
	if !errors.As(err, &failures) {
		return err
	}

	for _, fe := range failures {
		name := fe.Field()
		if name == "" {
			name = field
		}
		rule := ruleForTag(fe.Tag())
		msg, ok := overrides[name+"."+rule]
		if !ok {
			msg = defaultMessage(name, rule, fe.Param())
		}
		e.add(name, rule, msg)
	}
	return nil
}

func ruleForTag(tag string) string {
	switch tag {
	case "required":
		return RuleRequired
	case "email":
		return RuleEmail
	case "min":
		return RuleMin
	case "max":
		return RuleMax
	case "oneof":
		return RuleIn
	default:
		return tag
	}
}

func defaultMessage(field, rule, param string) string {
	attr := attributeName(field)
	switch rule {
	case RuleRequired:
		return fmt.Sprintf("The %s field is required.", attr)
	case RuleEmail:
		return fmt.Sprintf("The %s field must be a valid email address.", attr)
	case RuleMin:
		return fmt.Sprintf("The %s field must be at least %s characters.", attr, param)
	case RuleMax:
		return fmt.Sprintf("The %s field must not be greater than %s characters.", attr, param)
	case RuleIn:
		return fmt.Sprintf("The selected %s is invalid.", attr)
	default:
		return fmt.Sprintf("The %s field is invalid.", attr)
	}
}
