package http

import (
	"github.com/gin-gonic/gin"

	"web3-todo-list/internal/task"
	"web3-todo-list/pkg/response"
)

// Count godoc
// @Summary     Count tasks
// @Description Returns the number of tasks stored in the contract.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} countResp
// @Failure     400 {object} response.Resp "Chain error"
// @Router      /tasks/count [GET]
func (h *handler) Count(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Count(ctx)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCountResp(output))
}

// Detail godoc
// @Summary     Get a task
// @Description Reads a single task by its contract index.
// @Tags        Tasks
// @Produce     json
// @Param       id path int true "Task ID"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Invalid id"
// @Failure     404 {object} response.Resp "Task not found"
// @Router      /tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Create godoc
// @Summary     Create a task
// @Description Submits a createTask transaction with the stake of the chosen priority and waits until it is mined.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     201 {object} txResp
// @Failure     400 {object} response.Resp "Invalid data or chain error"
// @Failure     429 {object} response.Resp "Too many requests"
// @Router      /tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		h.l.Warnf(ctx, "task.delivery.http.Create: %v", err)
		if fields := fieldErrors(err); fields != nil {
			response.ValidationError(c, errInvalidPayload, fields)
			return
		}
		response.Error(c, errInvalidPayload, nil)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		if task.IsValidationError(err) {
			h.l.Warnf(ctx, "task.delivery.http.Create: rejected: %v", err)
		}
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.Created(c, h.newCreateResp(output))
}

// Complete godoc
// @Summary     Complete a task
// @Description Submits a completeTask transaction and waits until it is mined. Contract errors are returned as is.
// @Tags        Tasks
// @Produce     json
// @Param       id path int true "Task ID"
// @Success     200 {object} txResp
// @Failure     400 {object} response.Resp "Invalid id or chain error"
// @Failure     429 {object} response.Resp "Too many requests"
// @Router      /tasks/{id}/complete [POST]
func (h *handler) Complete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Complete(ctx, id)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCompleteResp(output))
}

// List godoc
// @Summary     List tasks
// @Description Reads every task in id order. Tasks that fail to load are left out.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Chain error"
// @Router      /tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Stats godoc
// @Summary     Task statistics
// @Description Completed and pending counts, and the stake held for pending tasks in wei.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} statsResp
// @Failure     400 {object} response.Resp "Chain error"
// @Router      /tasks/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Stats(ctx)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newStatsResp(output))
}
