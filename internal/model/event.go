package model

import "time"

// TaskEventType names a task lifecycle notification.
type TaskEventType string

const (
	TaskEventCreated   TaskEventType = "task.created"
	TaskEventCompleted TaskEventType = "task.completed"
)

// TaskEvent is pushed to live subscribers when a task changes on-chain.
type TaskEvent struct {
	Type       TaskEventType
	Task       Task
	TxHash     string
	Block      uint64
	OccurredAt time.Time
}
