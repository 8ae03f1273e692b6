package usecase

import (
	"context"
	"time"

	"web3-todo-list/internal/task/repository"
)

// Watch follows TaskCreated logs from the block after the first head it
// reads and publishes one event per log. Head and poll failures are logged
// and retried on the next tick; Watch only returns once ctx is cancelled.
func (uc *implUseCase) Watch(ctx context.Context) error {
	next, started := uc.startBlock(ctx)

	ticker := time.NewTicker(uc.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if !started {
				next, started = uc.startBlock(ctx)
				continue
			}
			n, err := uc.pollCreated(ctx, next)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				uc.l.Warnf(ctx, "uc.Watch poll from block %d: %v", next, err)
				continue
			}
			next = n
		}
	}
}

// startBlock reads the head and returns the block to follow from.
// It reports false when the head could not be read.
func (uc *implUseCase) startBlock(ctx context.Context) (uint64, bool) {
	head, err := uc.repo.LatestBlock(ctx)
	if err != nil {
		if ctx.Err() == nil {
			uc.l.Warnf(ctx, "uc.Watch LatestBlock: %v, retrying in %s", err, uc.pollInterval)
		}
		return 0, false
	}

	uc.l.Infof(ctx, "uc.Watch: following TaskCreated from block %d every %s", head+1, uc.pollInterval)
	return head + 1, true
}

// pollCreated publishes the TaskCreated events in [from, head] and returns
// the next block to read.
func (uc *implUseCase) pollCreated(ctx context.Context, from uint64) (uint64, error) {
	head, err := uc.repo.LatestBlock(ctx)
	if err != nil {
		return from, err
	}
	if head < from {
		return from, nil
	}

	events, err := uc.repo.ListCreatedEvents(ctx, repository.ListEventsOptions{FromBlock: from, ToBlock: head})
	if err != nil {
		return from, err
	}

	for _, evt := range events {
		// The log does not carry the priority; the stored task does.
		if t, err := uc.repo.GetTask(ctx, evt.Task.ID); err == nil && t.Title != "" {
			evt.Task = t
		}
		uc.publisher.Publish(ctx, evt)
	}

	return head + 1, nil
}
