package http

import (
	"web3-todo-list/internal/model"
	"web3-todo-list/internal/task"
	"web3-todo-list/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Title       string `json:"title"       binding:"required"`
	Description string `json:"description" binding:"required"`
	// DueDate is a Unix timestamp in seconds.
	DueDate  int64  `json:"dueDate"     binding:"required"`
	Priority *int   `json:"priority"    binding:"required,min=0,max=3"`
	Value    string `json:"value"       binding:"required,oneof=100000 50000 10000 1000"`
}

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		Priority:    *r.Priority,
		Value:       r.Value,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID            uint64            `json:"id"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	DueDate       int64             `json:"dueDate"`
	DueAt         response.DateTime `json:"dueAt"`
	Priority      int               `json:"priority"`
	PriorityLabel string            `json:"priorityLabel"`
	IsCompleted   bool              `json:"isCompleted"`
	Owner         string            `json:"owner"`
	Value         string            `json:"value"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:            t.ID,
		Title:         t.Title,
		Description:   t.Description,
		DueDate:       t.DueDate,
		DueAt:         response.UnixDateTime(t.DueDate),
		Priority:      int(t.Priority),
		PriorityLabel: t.Priority.Label(),
		IsCompleted:   t.IsCompleted,
		Owner:         t.Owner,
		Value:         t.Stake(),
	}
}

type countResp struct {
	Count uint64 `json:"count"`
}

func (h *handler) newCountResp(out task.CountOutput) countResp {
	return countResp{Count: out.Count}
}

type detailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newDetailResp(out task.DetailOutput) detailResp {
	return detailResp{Task: newTaskResp(out.Task)}
}

type txResp struct {
	TxHash string `json:"txHash"`
	Block  uint64 `json:"block"`
}

func (h *handler) newCreateResp(out task.CreateOutput) txResp {
	return txResp{TxHash: out.TxHash, Block: out.Block}
}

func (h *handler) newCompleteResp(out task.CompleteOutput) txResp {
	return txResp{TxHash: out.TxHash, Block: out.Block}
}

type listResp struct {
	Items []taskResp `json:"items"`
	// Count is the on-chain task count; it exceeds len(items) when entries were left out.
	Count uint64 `json:"count"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	items := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		items[i] = newTaskResp(t)
	}
	return listResp{Items: items, Count: out.Count}
}

type statsResp struct {
	Total          int    `json:"total"`
	Completed      int    `json:"completed"`
	Pending        int    `json:"pending"`
	StakeInCustody string `json:"stakeInCustody"`
}

func (h *handler) newStatsResp(out task.StatsOutput) statsResp {
	return statsResp{
		Total:          out.Total,
		Completed:      out.Completed,
		Pending:        out.Pending,
		StakeInCustody: out.StakeInCustody,
	}
}
