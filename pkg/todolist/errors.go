package todolist

import (
	"bytes"
	"errors"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
)

var (
	ErrInvalidAddress    = errors.New("todolist: invalid contract address")
	ErrInvalidPrivateKey = errors.New("todolist: invalid private key")
	ErrTransactionFailed = errors.New("todolist: transaction reverted")
	ErrUnexpectedOutput  = errors.New("todolist: unexpected call output")
)

// RevertName returns the name of the custom contract error encoded in err's
// revert data, or an empty string when err carries none.
func RevertName(err error) string {
	var dataErr rpc.DataError
	if !errors.As(err, &dataErr) {
		return ""
	}
	hexData, ok := dataErr.ErrorData().(string)
	if !ok {
		return ""
	}
	data, decErr := hexutil.Decode(hexData)
	if decErr != nil || len(data) < 4 {
		return ""
	}

	parsed, abiErr := TodoListMetaData.GetAbi()
	if abiErr != nil {
		return ""
	}
	for name, e := range parsed.Errors {
		if bytes.Equal(e.ID[:4], data[:4]) {
			return name
		}
	}
	return ""
}
