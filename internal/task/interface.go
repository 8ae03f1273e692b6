package task

import (
	"context"

	"web3-todo-list/internal/model"
)

// UseCase defines the business logic of the task domain.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// Count returns the number of tasks stored in the contract.
	Count(ctx context.Context) (CountOutput, error)
	// Detail reads one task. Returns ErrTaskNotFound when it cannot be read.
	Detail(ctx context.Context, id uint64) (DetailOutput, error)
	// Create validates the input and submits a createTask transaction.
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	// Complete submits a completeTask transaction.
	Complete(ctx context.Context, id uint64) (CompleteOutput, error)
	// List reads every task in id order, skipping entries that fail to load.
	List(ctx context.Context) (ListOutput, error)
	// Stats summarizes List.
	Stats(ctx context.Context) (StatsOutput, error)
	// Watch publishes TaskCreated events until ctx is cancelled.
	Watch(ctx context.Context) error
}

// Publisher delivers task events to live subscribers.
type Publisher interface {
	Publish(ctx context.Context, evt model.TaskEvent)
}
