package contract

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"web3-todo-list/internal/model"
	"web3-todo-list/internal/task/repository"
	"web3-todo-list/pkg/todolist"
)

func (r *implRepository) CountTasks(ctx context.Context) (uint64, error) {
	count, err := r.contract.TaskCount(ctx)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.scope("CountTasks"), err)
		return 0, err
	}
	return count, nil
}

func (r *implRepository) GetTask(ctx context.Context, id uint64) (model.Task, error) {
	t, err := r.contract.Task(ctx, id)
	if err != nil {
		return model.Task{}, err
	}
	return toModel(id, t), nil
}

func (r *implRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (repository.TxResult, error) {
	value, ok := new(big.Int).SetString(opt.Value, 10)
	if !ok || value.Sign() < 0 {
		return repository.TxResult{}, fmt.Errorf("%w: %q", repository.ErrInvalidValue, opt.Value)
	}
	if opt.Priority < 0 {
		return repository.TxResult{}, repository.ErrInvalidPriority
	}
	if opt.DueDate < 0 {
		return repository.TxResult{}, repository.ErrInvalidDueDate
	}

	receipt, err := r.contract.CreateTask(ctx, todolist.CreateTaskParams{
		Title:       opt.Title,
		Description: opt.Description,
		DueDate:     big.NewInt(opt.DueDate),
		Priority:    big.NewInt(int64(opt.Priority)),
		Value:       value,
	})
	if err != nil {
		r.logWriteError(ctx, "CreateTask", err)
		return repository.TxResult{}, err
	}

	r.l.Infof(ctx, "%s: mined tx %s in block %v", r.scope("CreateTask"), receipt.TxHash.Hex(), receipt.BlockNumber)
	return toTxResult(receipt), nil
}

func (r *implRepository) CompleteTask(ctx context.Context, id uint64) (repository.TxResult, error) {
	receipt, err := r.contract.CompleteTask(ctx, id)
	if err != nil {
		r.logWriteError(ctx, "CompleteTask", err)
		return repository.TxResult{}, err
	}

	r.l.Infof(ctx, "%s: task %d completed in tx %s", r.scope("CompleteTask"), id, receipt.TxHash.Hex())
	return toTxResult(receipt), nil
}

func (r *implRepository) logWriteError(ctx context.Context, method string, err error) {
	if name := todolist.RevertName(err); name != "" {
		r.l.Warnf(ctx, "%s: contract reverted with %s: %v", r.scope(method), name, err)
		return
	}
	r.l.Errorf(ctx, "%s: %v", r.scope(method), err)
}

func toModel(id uint64, t todolist.Task) model.Task {
	owner := ""
	if t.Owner != (common.Address{}) {
		owner = t.Owner.Hex()
	}
	return model.Task{
		ID:          id,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     bigToInt64(t.DueDate),
		Priority:    model.Priority(bigToInt64(t.Priority)),
		IsCompleted: t.IsCompleted,
		Owner:       owner,
	}
}

func toTxResult(receipt *types.Receipt) repository.TxResult {
	res := repository.TxResult{TxHash: receipt.TxHash.Hex()}
	if receipt.BlockNumber != nil {
		res.Block = receipt.BlockNumber.Uint64()
	}
	return res
}

// bigToInt64 maps values outside the int64 range to -1.
func bigToInt64(v *big.Int) int64 {
	if v == nil {
		return 0
	}
	if !v.IsInt64() {
		return -1
	}
	return v.Int64()
}
