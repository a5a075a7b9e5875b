package apperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/2beens/gymlog/pkg"
)

// DecodeBody decodes the JSON request body into dst and validates it. Any
// failure is a KindValidation error.
func DecodeBody(r *http.Request, validate *validator.Validate, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, pkg.MaxRequestBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return Validation("request body is required")
		}
		return Validation(fmt.Sprintf("invalid request body: %s", err))
	}

	if err := validate.Struct(dst); err != nil {
		return Validation(describeValidationErr(err))
	}
	return nil
}

func describeValidationErr(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			parts = append(parts, fmt.Sprintf("%s: field required", fe.Field()))
		case "max":
			parts = append(parts, fmt.Sprintf("%s: must be at most %s", fe.Field(), fe.Param()))
		case "min", "gte":
			parts = append(parts, fmt.Sprintf("%s: must be at least %s", fe.Field(), fe.Param()))
		default:
			parts = append(parts, fmt.Sprintf("%s: failed on %s", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(parts, "; ")
}

// PathInt reads an integer route variable. Malformed values are
// KindValidation errors.
func PathInt(r *http.Request, name string) (int, error) {
	raw, ok := mux.Vars(r)[name]
	if !ok || raw == "" {
		return 0, Validation(fmt.Sprintf("%s: path parameter missing", name))
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, Validation(fmt.Sprintf("%s: value is not a valid integer", name))
	}
	return v, nil
}

// NewValidator returns a validator reporting JSON field names.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}
