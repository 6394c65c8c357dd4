package bindings

import (
	"context"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

const yourContractABIBody = `
	{"anonymous":false,"inputs":[{"indexed":true,"internalType":"address","name":"greetingSetter","type":"address"},{"indexed":false,"internalType":"string","name":"newGreeting","type":"string"},{"indexed":false,"internalType":"bool","name":"premium","type":"bool"},{"indexed":false,"internalType":"uint256","name":"value","type":"uint256"}],"name":"GreetingChange","type":"event"},
	{"inputs":[],"name":"greeting","outputs":[{"internalType":"string","name":"","type":"string"}],"stateMutability":"view","type":"function"},
	{"inputs":[],"name":"owner","outputs":[{"internalType":"address","name":"","type":"address"}],"stateMutability":"view","type":"function"},
	{"inputs":[],"name":"premium","outputs":[{"internalType":"bool","name":"","type":"bool"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"internalType":"string","name":"_newGreeting","type":"string"}],"name":"setGreeting","outputs":[],"stateMutability":"payable","type":"function"},
	{"inputs":[],"name":"totalCounter","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"inputs":[],"name":"withdraw","outputs":[],"stateMutability":"nonpayable","type":"function"},
	{"stateMutability":"payable","type":"receive"}`

var yourContractBin = mustAssembleYourContract()

// YourContractMetaData contains all meta data concerning the YourContract contract. The
// constructor takes the owner address.
var YourContractMetaData = &bind.MetaData{
	ABI: `[{"inputs":[{"internalType":"address","name":"_owner","type":"address"}],"stateMutability":"nonpayable","type":"constructor"},` +
		yourContractABIBody + `]`,
	Bin: yourContractBin,
}

// YourContractSelfOwnedMetaData is YourContract deployed without constructor arguments; the
// deployer becomes the owner.
var YourContractSelfOwnedMetaData = &bind.MetaData{
	ABI: `[{"inputs":[],"stateMutability":"nonpayable","type":"constructor"},` +
		yourContractABIBody + `]`,
	Bin: yourContractBin,
}

// YourContract is a Go binding around the YourContract contract.
type YourContract struct {
	address  common.Address
	abi      *abi.ABI
	contract *bind.BoundContract
	filterer bind.ContractFilterer
}

// YourContractGreetingChange represents a GreetingChange event raised by the YourContract
// contract.
type YourContractGreetingChange struct {
	GreetingSetter common.Address
	NewGreeting    string
	Premium        bool
	Value          *big.Int
	Raw            types.Log
}

// DeployYourContract deploys a new YourContract owned by owner.
func DeployYourContract(
	auth *bind.TransactOpts, backend bind.ContractBackend, owner common.Address,
) (common.Address, *types.Transaction, *YourContract, error) {
	return deployYourContract(YourContractMetaData, auth, backend, owner)
}

// DeployYourContractSelfOwned deploys a new YourContract owned by the deployer.
func DeployYourContractSelfOwned(
	auth *bind.TransactOpts, backend bind.ContractBackend,
) (common.Address, *types.Transaction, *YourContract, error) {
	return deployYourContract(YourContractSelfOwnedMetaData, auth, backend)
}

func deployYourContract(
	meta *bind.MetaData, auth *bind.TransactOpts, backend bind.ContractBackend, params ...any,
) (common.Address, *types.Transaction, *YourContract, error) {
	parsed, err := meta.GetAbi()
	if err != nil {
		return common.Address{}, nil, nil, err
	}
	if parsed == nil {
		return common.Address{}, nil, nil, errors.New("GetABI returned nil")
	}

	address, tx, contract, err := bind.DeployContract(auth, *parsed, common.FromHex(meta.Bin), backend, params...)
	if err != nil {
		return common.Address{}, nil, nil, err
	}

	return address, tx, &YourContract{address: address, abi: parsed, contract: contract, filterer: backend}, nil
}

// NewYourContract creates a new instance of YourContract, bound to a specific deployed contract.
func NewYourContract(address common.Address, backend bind.ContractBackend) (*YourContract, error) {
	parsed, err := YourContractMetaData.GetAbi()
	if err != nil {
		return nil, err
	}

	return &YourContract{
		address:  address,
		abi:      parsed,
		contract: bind.NewBoundContract(address, *parsed, backend, backend, backend),
		filterer: backend,
	}, nil
}

// Address returns the address of the bound contract.
func (c *YourContract) Address() common.Address {
	return c.address
}

// Greeting is a free data retrieval call binding the contract method 0xef690cc0.
//
// Solidity: function greeting() view returns(string)
func (c *YourContract) Greeting(opts *bind.CallOpts) (string, error) {
	var out []any
	if err := c.contract.Call(opts, &out, "greeting"); err != nil {
		return "", err
	}

	return *abi.ConvertType(out[0], new(string)).(*string), nil
}

// Owner is a free data retrieval call binding the contract method 0x8da5cb5b.
//
// Solidity: function owner() view returns(address)
func (c *YourContract) Owner(opts *bind.CallOpts) (common.Address, error) {
	var out []any
	if err := c.contract.Call(opts, &out, "owner"); err != nil {
		return common.Address{}, err
	}

	return *abi.ConvertType(out[0], new(common.Address)).(*common.Address), nil
}

// Premium is a free data retrieval call binding the contract method premium().
//
// Solidity: function premium() view returns(bool)
func (c *YourContract) Premium(opts *bind.CallOpts) (bool, error) {
	var out []any
	if err := c.contract.Call(opts, &out, "premium"); err != nil {
		return false, err
	}

	return *abi.ConvertType(out[0], new(bool)).(*bool), nil
}

// TotalCounter is a free data retrieval call binding the contract method totalCounter().
//
// Solidity: function totalCounter() view returns(uint256)
func (c *YourContract) TotalCounter(opts *bind.CallOpts) (*big.Int, error) {
	var out []any
	if err := c.contract.Call(opts, &out, "totalCounter"); err != nil {
		return nil, err
	}

	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

// SetGreeting is a paid mutator transaction binding the contract method 0xa4136862.
//
// Solidity: function setGreeting(string _newGreeting) payable returns()
func (c *YourContract) SetGreeting(opts *bind.TransactOpts, newGreeting string) (*types.Transaction, error) {
	return c.contract.Transact(opts, "setGreeting", newGreeting)
}

// Withdraw is a paid mutator transaction binding the contract method 0x3ccfd60b.
//
// Solidity: function withdraw() returns()
func (c *YourContract) Withdraw(opts *bind.TransactOpts) (*types.Transaction, error) {
	return c.contract.Transact(opts, "withdraw")
}

// FilterGreetingChange returns the GreetingChange events in the range given by opts, optionally
// restricted to the given setters.
//
// Solidity: event GreetingChange(address indexed greetingSetter, string newGreeting, bool premium, uint256 value)
func (c *YourContract) FilterGreetingChange(
	opts *bind.FilterOpts, greetingSetter []common.Address,
) ([]*YourContractGreetingChange, error) {
	if opts == nil {
		opts = new(bind.FilterOpts)
	}

	topics := [][]common.Hash{{c.abi.Events["GreetingChange"].ID}}
	if len(greetingSetter) > 0 {
		setters := make([]common.Hash, 0, len(greetingSetter))
		for _, s := range greetingSetter {
			setters = append(setters, common.BytesToHash(s.Bytes()))
		}
		topics = append(topics, setters)
	}

	query := ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(opts.Start),
		Addresses: []common.Address{c.address},
		Topics:    topics,
	}
	if opts.End != nil {
		query.ToBlock = new(big.Int).SetUint64(*opts.End)
	}

	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	logs, err := c.filterer.FilterLogs(ctx, query)
	if err != nil {
		return nil, err
	}

	events := make([]*YourContractGreetingChange, 0, len(logs))
	for _, log := range logs {
		event := new(YourContractGreetingChange)
		if err := c.contract.UnpackLog(event, "GreetingChange", log); err != nil {
			return nil, err
		}
		event.Raw = log
		events = append(events, event)
	}

	return events, nil
}
