package repository

// CreateTaskOptions holds the parameters of a createTask transaction.
type CreateTaskOptions struct {
	Title       string
	Description string
	DueDate     int64
	Priority    int
	// Value is the stake in wei, as a decimal string.
	Value string
}

// ListEventsOptions selects an inclusive block range.
type ListEventsOptions struct {
	FromBlock uint64
	ToBlock   uint64
}

// TxResult identifies a mined transaction.
type TxResult struct {
	TxHash string
	Block  uint64
}
