package ws

import (
	"github.com/gin-gonic/gin"

	"web3-todo-list/pkg/response"
)

// Serve godoc
// @Summary     Task event stream
// @Description Upgrades to a websocket that receives task.created and task.completed events as JSON {type, data}.
// @Tags        Tasks
// @Success     101
// @Failure     503 {object} response.Resp "Event stream stopped"
// @Router      /tasks/events [GET]
func (h *Hub) Serve(c *gin.Context) {
	ctx := c.Request.Context()

	select {
	case <-h.done:
		response.Error(c, errStopped, nil)
		return
	default:
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		h.l.Warnf(ctx, "task.delivery.ws.Serve.Upgrade: %v", err)
		return
	}

	cl := &client{
		hub:    h,
		conn:   conn,
		send:   make(chan []byte, sendBuffer),
		remote: c.ClientIP(),
	}
	if !h.add(cl) {
		conn.Close()
		return
	}

	go cl.writePump()
	go cl.readPump()
}
