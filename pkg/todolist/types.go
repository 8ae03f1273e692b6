package todolist

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Config is the connection and signing configuration of a Client.
type Config struct {
	RPCURL          string
	ContractAddress string
	// PrivateKey is hex encoded, with or without the 0x prefix.
	PrivateKey string
	// ChainID is read from the node when zero.
	ChainID int64
}

// Task mirrors the output tuple of tasks(uint256).
type Task struct {
	Title       string
	Description string
	DueDate     *big.Int
	Priority    *big.Int
	IsCompleted bool
	Owner       common.Address
}

// CreateTaskParams are the arguments of a createTask transaction.
type CreateTaskParams struct {
	Title       string
	Description string
	DueDate     *big.Int
	Priority    *big.Int
	// Value is the stake attached to the transaction, in wei.
	Value *big.Int
}

// TaskCreated is a decoded TaskCreated log.
type TaskCreated struct {
	Id          *big.Int
	Title       string
	Description string
	DueDate     *big.Int
	Completed   bool
	Owner       common.Address
	Raw         types.Log
}
