package ws

import (
	"context"
	"encoding/json"

	"web3-todo-list/internal/model"
)

// message is the frame sent to clients.
type message struct {
	Type model.TaskEventType `json:"type"`
	Data eventData           `json:"data"`
}

type eventData struct {
	Task       taskData `json:"task"`
	TxHash     string   `json:"txHash,omitempty"`
	Block      uint64   `json:"block,omitempty"`
	OccurredAt int64    `json:"occurredAt"`
}

type taskData struct {
	ID            uint64 `json:"id"`
	Title         string `json:"title,omitempty"`
	Description   string `json:"description,omitempty"`
	DueDate       int64  `json:"dueDate,omitempty"`
	Priority      int    `json:"priority"`
	PriorityLabel string `json:"priorityLabel"`
	IsCompleted   bool   `json:"isCompleted"`
	Owner         string `json:"owner,omitempty"`
	Value         string `json:"value,omitempty"`
}

func newMessage(evt model.TaskEvent) message {
	t := evt.Task
	return message{
		Type: evt.Type,
		Data: eventData{
			Task: taskData{
				ID:            t.ID,
				Title:         t.Title,
				Description:   t.Description,
				DueDate:       t.DueDate,
				Priority:      int(t.Priority),
				PriorityLabel: t.Priority.Label(),
				IsCompleted:   t.IsCompleted,
				Owner:         t.Owner,
				Value:         t.Stake(),
			},
			TxHash:     evt.TxHash,
			Block:      evt.Block,
			OccurredAt: evt.OccurredAt.Unix(),
		},
	}
}

// Publish queues evt for every connected client. It drops the event once the
// hub has stopped or ctx is done.
func (h *Hub) Publish(ctx context.Context, evt model.TaskEvent) {
	payload, err := json.Marshal(newMessage(evt))
	if err != nil {
		h.l.Errorf(ctx, "task.delivery.ws.Publish.Marshal: %v", err)
		return
	}

	select {
	case h.broadcast <- payload:
	case <-h.done:
		h.l.Debugf(ctx, "task.delivery.ws.Publish: hub stopped, dropping %s", evt.Type)
	case <-ctx.Done():
	}
}

// Run owns the client set until ctx is cancelled, then disconnects everyone.
func (h *Hub) Run(ctx context.Context) {
	defer func() {
		close(h.done)
		for c := range h.clients {
			h.drop(c)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case c := <-h.register:
			h.clients[c] = struct{}{}
			h.connected.Add(1)
			h.l.Debugf(ctx, "task.delivery.ws: client connected from %s", c.remote)
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				h.drop(c)
				h.l.Debugf(ctx, "task.delivery.ws: client disconnected from %s", c.remote)
			}
		case payload := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- payload:
				default:
					h.l.Warnf(ctx, "task.delivery.ws: send buffer full, dropping client %s", c.remote)
					h.drop(c)
				}
			}
		}
	}
}

func (h *Hub) drop(c *client) {
	delete(h.clients, c)
	close(c.send)
	h.connected.Add(-1)
}

func (h *Hub) add(c *client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) remove(c *client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}
