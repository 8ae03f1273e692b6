package task

import "web3-todo-list/internal/model"

// --- UseCase Inputs ---

type CreateInput struct {
	Title       string
	Description string
	DueDate     int64
	Priority    int
	Value       string
}

// --- UseCase Outputs ---

type CountOutput struct {
	Count uint64
}

type DetailOutput struct {
	Task model.Task
}

type CreateOutput struct {
	TxHash string
	Block  uint64
}

type CompleteOutput struct {
	TxHash string
	Block  uint64
}

type ListOutput struct {
	Tasks []model.Task
	// Count is the on-chain task count the listing was based on.
	Count uint64
	// Skipped holds the ids that failed to load or had no title.
	Skipped []uint64
}

type StatsOutput struct {
	Total     int
	Completed int
	Pending   int
	// StakeInCustody is the sum of the stakes of pending tasks, in wei.
	StakeInCustody string
}
