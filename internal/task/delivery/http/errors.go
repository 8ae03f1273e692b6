package http

import (
	"errors"
	"net/http"

	"web3-todo-list/internal/task"
	pkgErrors "web3-todo-list/pkg/errors"
)

// mapError translates use-case errors into HTTP errors. Validation and chain
// errors are both 400 and keep their original message.
func (h *handler) mapError(err error) error {
	if errors.Is(err, task.ErrTaskNotFound) {
		return pkgErrors.NewHTTPError(http.StatusNotFound, task.ErrTaskNotFound.Error())
	}
	return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
}
