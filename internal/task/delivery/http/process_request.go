package http

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var (
	errInvalidID      = errors.New("invalid task id")
	errInvalidPayload = errors.New("invalid payload")
)

// processCreateReq binds and validates the create task request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processIDParam parses the :id path parameter. A malformed id is a 400,
// unlike an unreadable task which Detail reports as 404.
func (h *handler) processIDParam(c *gin.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, errInvalidID
	}
	return id, nil
}

// fieldErrors flattens validator errors into field -> message.
// Returns nil when err is not a validation error.
func fieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			fields[fe.Field()] = "is required"
		case "oneof":
			fields[fe.Field()] = fmt.Sprintf("must be one of: %s", fe.Param())
		case "min", "max":
			fields[fe.Field()] = "must be between 0 and 3"
		default:
			fields[fe.Field()] = fmt.Sprintf("failed on %s validation", fe.Tag())
		}
	}
	return fields
}
