// Package bind decodes request bodies into typed inputs and validates them
// with go-playground/validator, reporting failures as project errors
package bind

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"
	"unicode/utf8"

	perr "leetgen/internal/platform/errors"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entrans "github.com/go-playground/validator/v10/translations/en"
)

// MaxBody caps how much of a request body ParseJSON reads
const MaxBody = 1 << 20

var (
	once  sync.Once
	valid *validator.Validate
	trans ut.Translator
)

// Validator returns the shared validator, english messages and json field names included
func Validator() (*validator.Validate, ut.Translator) {
	once.Do(func() {
		loc := en.New()
		trans, _ = ut.New(loc, loc).GetTranslator("en")

		valid = validator.New(validator.WithRequiredStructEnabled())
		valid.RegisterTagNameFunc(jsonName)
		_ = entrans.RegisterDefaultTranslations(valid, trans)

		_ = valid.RegisterValidation("single_char", func(fl validator.FieldLevel) bool {
			f := fl.Field()
			return f.Kind() == reflect.String && utf8.RuneCountInString(f.String()) == 1
		})
		message("single_char", "{0} must be a single character", false)
		message("min", "{0} must be at least {1}", true)
		message("max", "{0} must be at most {1}", true)
	})
	return valid, trans
}

// message overrides the english text for tag; withParam passes the tag's parameter as {1}
func message(tag, text string, withParam bool) {
	_ = valid.RegisterTranslation(tag, trans,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			params := []string{fe.Field()}
			if withParam {
				params = append(params, fe.Param())
			}
			s, _ := t.T(tag, params...)
			return s
		},
	)
}

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}

// ParseJSON decodes exactly one JSON value from r's body into T and validates it.
// Unknown fields, trailing data and empty bodies are JSON errors; a body over MaxBody is TooLarge
func ParseJSON[T any](r *http.Request) (T, error) {
	var zero, dst T
	defer r.Body.Close()

	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, MaxBody))
	dec.DisallowUnknownFields()

	if err := dec.Decode(&dst); err != nil {
		var tooBig *http.MaxBytesError
		switch {
		case errors.As(err, &tooBig):
			return zero, perr.TooLargef("request body exceeds %d bytes", tooBig.Limit)
		case errors.Is(err, io.EOF):
			return zero, perr.JSONErrf("empty body")
		default:
			return zero, perr.JSONErrf("invalid JSON: %v", err)
		}
	}
	if dec.More() {
		return zero, perr.JSONErrf("unexpected trailing data")
	}

	if err := Struct(dst); err != nil {
		return zero, err
	}
	return dst, nil
}

// Struct validates v, reporting the first failing field as a Validation error
func Struct(v any) error {
	vd, _ := Validator()
	err := vd.Struct(v)
	if err == nil {
		return nil
	}
	field, msg := FieldAndMessage(err)
	return perr.WithField(perr.Validationf("%s", msg), field)
}

// FieldAndMessage returns the first failing field and its translated message.
// Errors that did not come from the validator pass through with no field
func FieldAndMessage(err error) (field, msg string) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		_, t := Validator()
		return verrs[0].Field(), verrs[0].Translate(t)
	}
	return "", err.Error()
}
