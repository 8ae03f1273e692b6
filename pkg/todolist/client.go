package todolist

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
)

// Backend is the subset of an Ethereum node API the Client needs.
// *ethclient.Client satisfies it.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	BlockNumber(ctx context.Context) (uint64, error)
	ChainID(ctx context.Context) (*big.Int, error)
}

// Client reads from and writes to one deployed TodoList contract.
type Client struct {
	backend  Backend
	address  common.Address
	abi      *abi.ABI
	contract *bind.BoundContract
	auth     *bind.TransactOpts

	// txMu serializes nonce assignment and submission of this key's transactions.
	txMu sync.Mutex
}

// Dial connects to cfg.RPCURL and returns a Client for the configured contract.
func Dial(ctx context.Context, cfg Config) (*Client, error) {
	ec, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("todolist: dial %s: %w", cfg.RPCURL, err)
	}

	c, err := New(ctx, ec, cfg)
	if err != nil {
		ec.Close()
		return nil, err
	}
	return c, nil
}

// New builds a Client on top of an existing backend.
func New(ctx context.Context, backend Backend, cfg Config) (*Client, error) {
	if !common.IsHexAddress(cfg.ContractAddress) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAddress, cfg.ContractAddress)
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}

	chainID := big.NewInt(cfg.ChainID)
	if cfg.ChainID == 0 {
		chainID, err = backend.ChainID(ctx)
		if err != nil {
			return nil, fmt.Errorf("todolist: read chain id: %w", err)
		}
	}

	auth, err := bind.NewKeyedTransactorWithChainID(key, chainID)
	if err != nil {
		return nil, fmt.Errorf("todolist: build transactor: %w", err)
	}

	parsed, err := TodoListMetaData.GetAbi()
	if err != nil {
		return nil, fmt.Errorf("todolist: parse abi: %w", err)
	}

	address := common.HexToAddress(cfg.ContractAddress)
	return &Client{
		backend:  backend,
		address:  address,
		abi:      parsed,
		contract: bind.NewBoundContract(address, *parsed, backend, backend, backend),
		auth:     auth,
	}, nil
}

// Close releases the underlying RPC connection when the backend owns one.
func (c *Client) Close() {
	if closer, ok := c.backend.(interface{ Close() }); ok {
		closer.Close()
	}
}

// Address returns the contract address.
func (c *Client) Address() common.Address {
	return c.address
}

// Sender returns the address that signs write transactions.
func (c *Client) Sender() common.Address {
	return c.auth.From
}

// TaskCount calls getTaskCount().
func (c *Client) TaskCount(ctx context.Context) (uint64, error) {
	var out []interface{}
	if err := c.contract.Call(&bind.CallOpts{Context: ctx}, &out, MethodGetTaskCount); err != nil {
		return 0, err
	}
	if len(out) != 1 {
		return 0, ErrUnexpectedOutput
	}

	count := *abi.ConvertType(out[0], new(*big.Int)).(**big.Int)
	if !count.IsUint64() {
		return 0, fmt.Errorf("%w: task count %s overflows uint64", ErrUnexpectedOutput, count)
	}
	return count.Uint64(), nil
}

// Task calls tasks(id).
func (c *Client) Task(ctx context.Context, id uint64) (Task, error) {
	var out []interface{}
	if err := c.contract.Call(&bind.CallOpts{Context: ctx}, &out, MethodTasks, new(big.Int).SetUint64(id)); err != nil {
		return Task{}, err
	}
	if len(out) != 6 {
		return Task{}, ErrUnexpectedOutput
	}

	return Task{
		Title:       *abi.ConvertType(out[0], new(string)).(*string),
		Description: *abi.ConvertType(out[1], new(string)).(*string),
		DueDate:     *abi.ConvertType(out[2], new(*big.Int)).(**big.Int),
		Priority:    *abi.ConvertType(out[3], new(*big.Int)).(**big.Int),
		IsCompleted: *abi.ConvertType(out[4], new(bool)).(*bool),
		Owner:       *abi.ConvertType(out[5], new(common.Address)).(*common.Address),
	}, nil
}

// CreateTask submits createTask with the stake attached and waits until the
// transaction is mined.
func (c *Client) CreateTask(ctx context.Context, p CreateTaskParams) (*types.Receipt, error) {
	return c.transactAndWait(ctx, p.Value, MethodCreateTask, p.Title, p.Description, p.DueDate, p.Priority, false)
}

// CompleteTask submits completeTask(id) and waits until the transaction is mined.
func (c *Client) CompleteTask(ctx context.Context, id uint64) (*types.Receipt, error) {
	return c.transactAndWait(ctx, nil, MethodCompleteTask, new(big.Int).SetUint64(id))
}

func (c *Client) transactAndWait(ctx context.Context, value *big.Int, method string, params ...interface{}) (*types.Receipt, error) {
	tx, err := c.transact(ctx, value, method, params...)
	if err != nil {
		return nil, err
	}

	receipt, err := bind.WaitMined(ctx, c.backend, tx)
	if err != nil {
		return nil, fmt.Errorf("todolist: wait for %s: %w", tx.Hash().Hex(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return receipt, fmt.Errorf("%w: %s %s", ErrTransactionFailed, method, tx.Hash().Hex())
	}
	return receipt, nil
}

func (c *Client) transact(ctx context.Context, value *big.Int, method string, params ...interface{}) (*types.Transaction, error) {
	c.txMu.Lock()
	defer c.txMu.Unlock()

	opts := *c.auth
	opts.Context = ctx
	opts.Value = value
	return c.contract.Transact(&opts, method, params...)
}

// BlockNumber returns the current head block number.
func (c *Client) BlockNumber(ctx context.Context) (uint64, error) {
	return c.backend.BlockNumber(ctx)
}

// TaskCreatedEvents returns the TaskCreated logs emitted in blocks [from, to].
func (c *Client) TaskCreatedEvents(ctx context.Context, from, to uint64) ([]TaskCreated, error) {
	query := ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(from),
		ToBlock:   new(big.Int).SetUint64(to),
		Addresses: []common.Address{c.address},
		Topics:    [][]common.Hash{{c.abi.Events[EventTaskCreated].ID}},
	}

	logs, err := c.backend.FilterLogs(ctx, query)
	if err != nil {
		return nil, err
	}

	events := make([]TaskCreated, 0, len(logs))
	for _, lg := range logs {
		var ev TaskCreated
		if err := c.contract.UnpackLog(&ev, EventTaskCreated, lg); err != nil {
			return nil, fmt.Errorf("todolist: unpack %s log in tx %s: %w", EventTaskCreated, lg.TxHash.Hex(), err)
		}
		ev.Raw = lg
		events = append(events, ev)
	}
	return events, nil
}
