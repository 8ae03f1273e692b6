package usecase

import (
	"context"
	"math/big"

	"web3-todo-list/internal/model"
	"web3-todo-list/internal/task"
)

// List reads ids 0..count-1 one by one. Entries that fail to load or have
// no title are left out and the listing carries on.
func (uc *implUseCase) List(ctx context.Context) (task.ListOutput, error) {
	count, err := uc.repo.CountTasks(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List CountTasks: %v", err)
		return task.ListOutput{}, err
	}

	out := task.ListOutput{Count: count, Tasks: []model.Task{}}
	for id := uint64(0); id < count; id++ {
		if err := ctx.Err(); err != nil {
			return task.ListOutput{}, err
		}

		t, err := uc.repo.GetTask(ctx, id)
		if err != nil {
			uc.l.Warnf(ctx, "uc.List GetTask %d: %v", id, err)
			out.Skipped = append(out.Skipped, id)
			continue
		}
		if t.Title == "" {
			out.Skipped = append(out.Skipped, id)
			continue
		}
		out.Tasks = append(out.Tasks, t)
	}

	if len(out.Skipped) > 0 {
		uc.l.Warnf(ctx, "uc.List: %d of %d tasks left out: %v", len(out.Skipped), count, out.Skipped)
	}
	return out, nil
}

// Stats aggregates the listed tasks.
func (uc *implUseCase) Stats(ctx context.Context) (task.StatsOutput, error) {
	list, err := uc.List(ctx)
	if err != nil {
		return task.StatsOutput{}, err
	}

	custody := new(big.Int)
	out := task.StatsOutput{Total: len(list.Tasks)}
	for _, t := range list.Tasks {
		if t.IsCompleted {
			out.Completed++
			continue
		}
		out.Pending++
		if stake, ok := model.StakeWei(t.Stake()); ok {
			custody.Add(custody, stake)
		}
	}
	out.StakeInCustody = custody.String()

	return out, nil
}
