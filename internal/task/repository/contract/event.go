package contract

import (
	"context"
	"time"

	"web3-todo-list/internal/model"
	"web3-todo-list/internal/task/repository"
)

func (r *implRepository) LatestBlock(ctx context.Context) (uint64, error) {
	return r.contract.BlockNumber(ctx)
}

func (r *implRepository) ListCreatedEvents(ctx context.Context, opt repository.ListEventsOptions) ([]model.TaskEvent, error) {
	logs, err := r.contract.TaskCreatedEvents(ctx, opt.FromBlock, opt.ToBlock)
	if err != nil {
		r.l.Errorf(ctx, "%s: blocks %d-%d: %v", r.scope("ListCreatedEvents"), opt.FromBlock, opt.ToBlock, err)
		return nil, err
	}

	events := make([]model.TaskEvent, 0, len(logs))
	for _, lg := range logs {
		var id uint64
		if lg.Id != nil && lg.Id.IsUint64() {
			id = lg.Id.Uint64()
		}
		events = append(events, model.TaskEvent{
			Type: model.TaskEventCreated,
			Task: model.Task{
				ID:          id,
				Title:       lg.Title,
				Description: lg.Description,
				DueDate:     bigToInt64(lg.DueDate),
				Priority:    model.PriorityUnknown,
				IsCompleted: lg.Completed,
				Owner:       lg.Owner.Hex(),
			},
			TxHash:     lg.Raw.TxHash.Hex(),
			Block:      lg.Raw.BlockNumber,
			OccurredAt: time.Now(),
		})
	}
	return events, nil
}
