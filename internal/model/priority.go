package model

import (
	"errors"
	"math/big"
)

// Priority is the Eisenhower tier of a task, 0 being the most urgent.
type Priority int

const (
	PriorityDoNow Priority = iota
	PrioritySchedule
	PriorityDelegate
	PriorityEliminate

	// PriorityUnknown marks a task read from a source that does not carry the tier.
	PriorityUnknown Priority = -1
)

var ErrUnknownPriority = errors.New("priority must be between 0 and 3")

// Stake amounts attached to a task at creation, in wei.
const (
	StakeDoNow     = "100000"
	StakeSchedule  = "50000"
	StakeDelegate  = "10000"
	StakeEliminate = "1000"
)

var priorityStakes = [...]string{
	PriorityDoNow:     StakeDoNow,
	PrioritySchedule:  StakeSchedule,
	PriorityDelegate:  StakeDelegate,
	PriorityEliminate: StakeEliminate,
}

var priorityLabels = [...]string{
	PriorityDoNow:     "do_now",
	PrioritySchedule:  "schedule",
	PriorityDelegate:  "delegate",
	PriorityEliminate: "eliminate",
}

// Valid reports whether p is one of the four tiers.
func (p Priority) Valid() bool {
	return p >= PriorityDoNow && p <= PriorityEliminate
}

// Label returns the tier name, or "unknown".
func (p Priority) Label() string {
	if !p.Valid() {
		return "unknown"
	}
	return priorityLabels[p]
}

// StakeForPriority maps a priority to its stake in wei.
func StakeForPriority(p Priority) (string, error) {
	if !p.Valid() {
		return "", ErrUnknownPriority
	}
	return priorityStakes[p], nil
}

// IsWhitelistedStake reports whether v is one of the accepted stake literals.
func IsWhitelistedStake(v string) bool {
	for _, s := range priorityStakes {
		if s == v {
			return true
		}
	}
	return false
}

// StakeWei parses a whitelisted stake literal.
func StakeWei(v string) (*big.Int, bool) {
	if !IsWhitelistedStake(v) {
		return nil, false
	}
	return new(big.Int).SetString(v, 10)
}
