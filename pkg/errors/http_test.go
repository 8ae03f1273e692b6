package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	pkgErrors "web3-todo-list/pkg/errors"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"http error", pkgErrors.NewHTTPError(http.StatusNotFound, "task not found"), http.StatusNotFound},
		{"wrapped http error", fmt.Errorf("detail: %w", pkgErrors.ErrTooManyRequests), http.StatusTooManyRequests},
		{"plain error", errors.New("boom"), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pkgErrors.StatusCode(tt.err, http.StatusBadRequest); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}
