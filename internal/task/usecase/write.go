package usecase

import (
	"context"
	"strings"

	"web3-todo-list/internal/model"
	"web3-todo-list/internal/task"
	"web3-todo-list/internal/task/repository"
)

// Create validates the input and submits a createTask transaction.
// Nothing reaches the chain when validation fails.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateInput) (task.CreateOutput, error) {
	if err := uc.validateCreate(input); err != nil {
		return task.CreateOutput{}, err
	}

	uc.l.Infof(ctx, "uc.Create: title=%q due=%d priority=%d value=%s", input.Title, input.DueDate, input.Priority, input.Value)

	res, err := uc.repo.CreateTask(ctx, repository.CreateTaskOptions{
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		Priority:    input.Priority,
		Value:       input.Value,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.CreateOutput{}, err
	}

	return task.CreateOutput{TxHash: res.TxHash, Block: res.Block}, nil
}

func (uc *implUseCase) validateCreate(input task.CreateInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return task.ErrEmptyTitle
	}
	if strings.TrimSpace(input.Description) == "" {
		return task.ErrEmptyDescription
	}
	if input.DueDate <= uc.now().Unix() {
		return task.ErrDueDateNotInFuture
	}
	if !model.Priority(input.Priority).Valid() {
		return task.ErrInvalidPriority
	}
	if !model.IsWhitelistedStake(input.Value) {
		return task.ErrInvalidStake
	}
	return nil
}

// Complete submits a completeTask transaction. A task that is already
// completed is left to the contract to reject; its error is returned as is.
func (uc *implUseCase) Complete(ctx context.Context, id uint64) (task.CompleteOutput, error) {
	res, err := uc.repo.CompleteTask(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Complete CompleteTask %d: %v", id, err)
		return task.CompleteOutput{}, err
	}

	uc.publisher.Publish(ctx, model.TaskEvent{
		Type:       model.TaskEventCompleted,
		Task:       model.Task{ID: id, IsCompleted: true, Priority: model.PriorityUnknown},
		TxHash:     res.TxHash,
		Block:      res.Block,
		OccurredAt: uc.now(),
	})

	return task.CompleteOutput{TxHash: res.TxHash, Block: res.Block}, nil
}
