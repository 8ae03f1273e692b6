package contract

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/core/types"

	"web3-todo-list/internal/task/repository"
	"web3-todo-list/pkg/log"
	"web3-todo-list/pkg/todolist"
)

// Contract is the subset of *todolist.Client used by the repository.
type Contract interface {
	TaskCount(ctx context.Context) (uint64, error)
	Task(ctx context.Context, id uint64) (todolist.Task, error)
	CreateTask(ctx context.Context, p todolist.CreateTaskParams) (*types.Receipt, error)
	CompleteTask(ctx context.Context, id uint64) (*types.Receipt, error)
	BlockNumber(ctx context.Context) (uint64, error)
	TaskCreatedEvents(ctx context.Context, from, to uint64) ([]todolist.TaskCreated, error)
}

type implRepository struct {
	contract Contract
	l        log.Logger
}

// New creates a contract-backed Repository for the task domain.
func New(contract Contract, l log.Logger) repository.Repository {
	if contract == nil {
		panic("task/repository/contract: contract is required")
	}
	return &implRepository{contract: contract, l: l}
}

func (r *implRepository) scope(method string) string {
	return fmt.Sprintf("task/repository/contract.%s", method)
}
