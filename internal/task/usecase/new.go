package usecase

import (
	"context"
	"time"

	"web3-todo-list/internal/model"
	"web3-todo-list/internal/task"
	"web3-todo-list/internal/task/repository"
	pkgLog "web3-todo-list/pkg/log"
)

const defaultPollInterval = 2 * time.Second

type implUseCase struct {
	l            pkgLog.Logger
	repo         repository.Repository
	publisher    task.Publisher
	pollInterval time.Duration
	now          func() time.Time
}

// Option customizes the use case.
type Option func(*implUseCase)

// WithPublisher sets the sink for task events.
func WithPublisher(p task.Publisher) Option {
	return func(uc *implUseCase) {
		if p != nil {
			uc.publisher = p
		}
	}
}

// WithPollInterval sets how often Watch looks for new blocks.
func WithPollInterval(d time.Duration) Option {
	return func(uc *implUseCase) {
		if d > 0 {
			uc.pollInterval = d
		}
	}
}

// WithClock overrides the time source used for due date validation.
func WithClock(now func() time.Time) Option {
	return func(uc *implUseCase) {
		if now != nil {
			uc.now = now
		}
	}
}

// New creates a new task UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository, opts ...Option) task.UseCase {
	uc := &implUseCase{
		l:            l,
		repo:         repo,
		publisher:    nopPublisher{},
		pollInterval: defaultPollInterval,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, model.TaskEvent) {}
