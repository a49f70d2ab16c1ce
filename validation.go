package main

import (
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Report validation failures using JSON field names ("account.email") rather
// than Go struct field names.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// validationIssues converts a binding error into per-field issues. ok is false
// when err isn't a validation failure (e.g. malformed JSON).
func validationIssues(err error) (issues []validationIssue, ok bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}
	for _, fe := range verrs {
		issues = append(issues, validationIssue{
			Field:   fieldPath(fe),
			Tag:     fe.Tag(),
			Message: issueMessage(fe),
		})
	}
	return issues, true
}

// fieldPath drops the root struct name from the namespace:
// "signUpRequest.account.email" -> "account.email".
func fieldPath(fe validator.FieldError) string {
	if _, rest, found := strings.Cut(fe.Namespace(), "."); found {
		return rest
	}
	return fe.Field()
}

func issueMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "email":
		return "must be a valid email address"
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	case "min":
		if fe.Kind() == reflect.String {
			return "must be at least " + fe.Param() + " characters"
		}
		return "must be at least " + fe.Param()
	case "max", "lte":
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	}
	return "is invalid"
}
