package shared

import (
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/acme-services/catalog-api/internal/domain"
)

// Validate is the global validator instance, shared across handlers.
// It reports wire-level field names (taken from json tags) and carries
// the custom "image_url" tag, which enforces absolute URLs (scheme and
// host) for image fields.
var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report the json field name so validation errors match the request
	// body, not the Go struct.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Registration only fails for an empty tag name.
	if err := v.RegisterValidation("image_url", func(fl validator.FieldLevel) bool {
		return domain.IsValidImageURL(fl.Field().String())
	}); err != nil {
		// ALLOW-PANIC: static registration at package init
		panic(fmt.Sprintf("failed to register image_url validation: %v", err))
	}
	return v
}

// MaxRequestBodyBytes caps how much of a request body DecodeJSON will
// read before rejecting the request.
const MaxRequestBodyBytes = 100 * 1024

// DecodeJSON decodes the request body into the given struct. The body is
// capped at MaxRequestBodyBytes; a larger body fails decoding and closes
// the connection.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxRequestBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return err
	}
	return nil
}
