package evm

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cast"

	"github.com/smartcontractkit/scaffold/internal/utils/safecast"
)

// coerceArgs converts string arguments, as they arrive from the command line or from chain
// agnostic callers, into the Go types the ABI encoder expects for inputs. Non string arguments
// are passed through unchanged.
func coerceArgs(inputs abi.Arguments, args []any) ([]any, error) {
	if len(args) != len(inputs) {
		return nil, fmt.Errorf("argument count mismatch: got %d, expected %d", len(args), len(inputs))
	}

	out := make([]any, len(args))
	for i, input := range inputs {
		v, err := coerceArg(input.Type, args[i])
		if err != nil {
			return nil, fmt.Errorf("argument %d (%s %s): %w", i, input.Type.String(), input.Name, err)
		}
		out[i] = v
	}

	return out, nil
}

func coerceArg(t abi.Type, v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return v, nil
	}

	switch t.T {
	case abi.AddressTy:
		if !common.IsHexAddress(s) {
			return nil, fmt.Errorf("invalid address %q", s)
		}

		return common.HexToAddress(s), nil
	case abi.BoolTy:
		return cast.ToBoolE(s)
	case abi.UintTy:
		if t.Size > 64 {
			return parseBig(s)
		}

		n, err := cast.ToUint64E(s)
		if err != nil {
			return nil, err
		}

		switch t.Size {
		case 8:
			return safecast.Uint64ToUint8(n)
		case 16:
			return safecast.Uint64ToUint16(n)
		case 32:
			return safecast.Uint64ToUint32(n)
		default:
			return n, nil
		}
	case abi.IntTy:
		if t.Size > 64 {
			return parseBig(s)
		}

		n, err := cast.ToInt64E(s)
		if err != nil {
			return nil, err
		}

		switch t.Size {
		case 8:
			return safecast.Int64ToInt8(n)
		case 16:
			return safecast.Int64ToInt16(n)
		case 32:
			return safecast.Int64ToInt32(n)
		default:
			return n, nil
		}
	case abi.BytesTy:
		return hexutil.Decode(s)
	default:
		return v, nil
	}
}

func parseBig(s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return nil, fmt.Errorf("invalid integer %q", s)
	}

	return n, nil
}
