package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"ordertracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want int
	}{
		{"invalid value", errs.NewValueIsInvalidError("status"), http.StatusBadRequest},
		{"required value", errs.NewValueIsRequiredError("item_name"), http.StatusBadRequest},
		{"joined validation", errors.Join(errs.NewValueIsRequiredError("a"), errs.NewValueIsInvalidError("b")), http.StatusBadRequest},
		{"not found", errs.NewObjectNotFoundError("order", "1"), http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("lookup: %w", errs.NewObjectNotFoundError("order", "1")), http.StatusNotFound},
		{"duplicate id", errs.NewObjectAlreadyExistsError("order", "1"), http.StatusInternalServerError},
		{"unexpected", errors.New("disk full"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, statusFor(tc.err))
		})
	}
}

func TestErrorMessage(t *testing.T) {
	t.Run("single error", func(t *testing.T) {
		assert.Equal(t, "value is required: item_name", errorMessage(errs.NewValueIsRequiredError("item_name")))
	})

	t.Run("joined errors on one line", func(t *testing.T) {
		err := errors.Join(errs.NewValueIsRequiredError("item_name"), errs.NewValueIsRequiredError("customer_id"))
		assert.Equal(t, "value is required: item_name; value is required: customer_id", errorMessage(err))
	})
}
