package repository

import (
	"context"

	"web3-todo-list/internal/model"
)

// Repository is the composed interface for the task domain data store.
type Repository interface {
	TaskRepository
	EventRepository
}

// TaskRepository reads and writes tasks. Writes return once the transaction is mined.
type TaskRepository interface {
	CountTasks(ctx context.Context) (uint64, error)
	GetTask(ctx context.Context, id uint64) (model.Task, error)
	CreateTask(ctx context.Context, opt CreateTaskOptions) (TxResult, error)
	CompleteTask(ctx context.Context, id uint64) (TxResult, error)
}

// EventRepository reads task lifecycle logs.
type EventRepository interface {
	LatestBlock(ctx context.Context) (uint64, error)
	ListCreatedEvents(ctx context.Context, opt ListEventsOptions) ([]model.TaskEvent, error)
}
