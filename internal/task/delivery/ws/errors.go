package ws

import (
	"net/http"

	pkgErrors "web3-todo-list/pkg/errors"
)

var errStopped = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "event stream stopped")
