package api_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acme-services/catalog-api/internal/api"
	"github.com/acme-services/catalog-api/internal/api/shared"
	"github.com/acme-services/catalog-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"product not found", store.ErrProductNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("lookup: %w", store.ErrProductNotFound), http.StatusNotFound},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, api.MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("known errors map to friendly messages", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Product not found", api.GetSafeErrorMessage(store.ErrProductNotFound))
		assert.Equal(t, "Invalid product data", api.GetSafeErrorMessage(store.ErrInvalidEntity))
	})

	t.Run("unknown errors never leak detail", func(t *testing.T) {
		t.Parallel()

		msg := api.GetSafeErrorMessage(errors.New("postgres://user:secret@db:5432 failed"))
		assert.Equal(t, "An unexpected error occurred", msg)
	})

	t.Run("nil error has a fallback", func(t *testing.T) {
		t.Parallel()

		assert.NotEmpty(t, api.GetSafeErrorMessage(nil))
	})
}

func TestValidationFieldErrors(t *testing.T) {
	t.Parallel()

	t.Run("reports json field names in declaration order", func(t *testing.T) {
		t.Parallel()

		req := api.CreateProductRequest{ImageURLs: []string{}}
		err := shared.Validate.Struct(req)
		require.Error(t, err)

		errs := api.ValidationFieldErrors(err)
		require.Len(t, errs, 4)
		assert.Equal(t, "name", errs[0].Field)
		assert.Equal(t, "is required", errs[0].Message)
		assert.Equal(t, "description", errs[1].Field)
		assert.Equal(t, "price", errs[2].Field)
		assert.Equal(t, "category", errs[3].Field)
	})

	t.Run("non-validator errors collapse to a generic descriptor", func(t *testing.T) {
		t.Parallel()

		errs := api.ValidationFieldErrors(errors.New("boom"))
		require.Len(t, errs, 1)
		assert.Equal(t, "request", errs[0].Field)
	})
}
