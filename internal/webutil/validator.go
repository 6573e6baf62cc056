// internal/webutil/validator.go
package webutil

import (
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// Validator is the validator instance shared by the handlers and the services.
var Validator *validator.Validate

// Trans is the translator that renders validation errors as English messages.
var Trans ut.Translator

// fieldNameTranslations maps json field names to the words used in messages.
// Fields missing here are shown by their json name.
var fieldNameTranslations = map[string]string{
	"rating":           "rating",
	"response_time_ms": "response time",
	"hints_used":       "hints used",
	"next_due":         "next due time",
	"interval_days":    "interval",
	"correct_streak":   "correct streak",
	"error_count":      "error count",
}

func init() {
	// Validator instance
	Validator = validator.New()

	// Report fields by their json tag name
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// --- English messages ---

	// English locale and translator
	english := en.New()
	uni := ut.New(english, english)
	var found bool
	Trans, found = uni.GetTranslator("en")
	if !found {
		log.Fatal("translator not found")
	}

	// Register the default English translations
	if err := en_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	// Override the messages the API returns most often.
	// registerTranslation registers a template and renders it with the
	// display name of the field and the tag parameter.
	registerTranslation := func(tag string, msg string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			// json tag name (e.g. "interval_days") -> display name (e.g. "interval")
			t, _ := ut.T(tag, displayName(fe.Field()), fe.Param())
			return t
		})
	}

	// e.g. "next due time is required"
	registerTranslation("required", "{0} is required")
	registerTranslation("oneof", "{0} must be one of [{1}]")
	// Bounds of the counters and interval_days
	registerTranslation("gte", "{0} must be at least {1}")
	registerTranslation("lte", "{0} must be at most {1}")
}

// displayName returns the message name of a json field.
func displayName(field string) string {
	if name, ok := fieldNameTranslations[field]; ok {
		return name
	}
	return field
}
