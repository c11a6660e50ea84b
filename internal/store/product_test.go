package store_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/acme-services/catalog-api/internal/store"
)

func TestListFilterOffset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		filter store.ListFilter
		want   int
	}{
		{"first page", store.ListFilter{Page: 1, Limit: 20}, 0},
		{"second page", store.ListFilter{Page: 2, Limit: 20}, 20},
		{"custom limit", store.ListFilter{Page: 3, Limit: 7}, 14},
		{"zero page defaults to first", store.ListFilter{Page: 0, Limit: 10}, 0},
		{"zero limit defaults", store.ListFilter{Page: 2, Limit: 0}, store.DefaultLimit},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, tc.filter.Offset())
		})
	}
}

func TestErrorDefinitions(t *testing.T) {
	t.Parallel()

	t.Run("ErrProductNotFound wraps ErrNotFound", func(t *testing.T) {
		t.Parallel()

		assert.True(t, errors.Is(store.ErrProductNotFound, store.ErrNotFound))
		assert.True(t, store.IsNotFoundError(store.ErrProductNotFound))
	})

	t.Run("IsNotFoundError rejects other errors", func(t *testing.T) {
		t.Parallel()

		assert.False(t, store.IsNotFoundError(store.ErrInvalidEntity))
		assert.False(t, store.IsNotFoundError(errors.New("boom")))
	})
}
