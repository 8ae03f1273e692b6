package model

import "time"

// Task is a to-do entry stored in the TodoList contract.
type Task struct {
	ID          uint64
	Title       string
	Description string
	// DueDate is a Unix timestamp in seconds.
	DueDate     int64
	Priority    Priority
	IsCompleted bool
	// Owner is the hex address of the creator.
	Owner string
}

// Stake returns the stake implied by the task priority, in wei.
// Unknown priorities have no stake.
func (t Task) Stake() string {
	stake, err := StakeForPriority(t.Priority)
	if err != nil {
		return ""
	}
	return stake
}

// Due returns the due date as time.
func (t Task) Due() time.Time {
	return time.Unix(t.DueDate, 0)
}
