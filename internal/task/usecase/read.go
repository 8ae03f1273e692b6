package usecase

import (
	"context"
	"fmt"

	"web3-todo-list/internal/task"
)

// Count returns the on-chain task count.
func (uc *implUseCase) Count(ctx context.Context) (task.CountOutput, error) {
	count, err := uc.repo.CountTasks(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Count CountTasks: %v", err)
		return task.CountOutput{}, err
	}
	return task.CountOutput{Count: count}, nil
}

// Detail reads a single task. Any read failure is reported as ErrTaskNotFound,
// as is an entry that has never been written (no owner).
func (uc *implUseCase) Detail(ctx context.Context, id uint64) (task.DetailOutput, error) {
	t, err := uc.repo.GetTask(ctx, id)
	if err != nil {
		uc.l.Warnf(ctx, "uc.Detail GetTask %d: %v", id, err)
		return task.DetailOutput{}, fmt.Errorf("%w: %v", task.ErrTaskNotFound, err)
	}
	if t.Owner == "" {
		return task.DetailOutput{}, task.ErrTaskNotFound
	}
	return task.DetailOutput{Task: t}, nil
}
