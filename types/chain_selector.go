package types //nolint:revive,nolintlint // allow pkg name 'types'

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	chainsel "github.com/smartcontractkit/chain-selectors"
)

// ChainSelector is a unique identifier for a chain.
//
// These values are defined in the chain-selectors dependency.
// https://github.com/smartcontractkit/chain-selectors
type ChainSelector uint64

var (
	// ErrChainFamilyNotFound is returned when the chain family is not found for a selector
	ErrChainFamilyNotFound = errors.New("chain family not found")

	// ErrUnsupportedChainFamily is returned when the chain family is not one scaffold can deploy to
	ErrUnsupportedChainFamily = errors.New("unsupported chain family")

	// ErrChainNotFound is returned when no selector is registered for a chain id
	ErrChainNotFound = errors.New("chain not found")
)

// supportedFamilies is a list of chain families that scaffold supports
var supportedFamilies = []string{
	chainsel.FamilyEVM,
}

// GetChainSelectorFamily returns the family of the chain selector.
func GetChainSelectorFamily(sel ChainSelector) (string, error) {
	family, err := chainsel.GetSelectorFamily(uint64(sel))
	if err != nil {
		return "", fmt.Errorf("%w for selector %d", ErrChainFamilyNotFound, sel)
	}

	if !slices.Contains(supportedFamilies, family) {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedChainFamily, family)
	}

	return family, nil
}

// ChainSelectorFromEVMChainID resolves the selector and registered chain name for an EVM chain
// id, as reported by eth_chainId.
func ChainSelectorFromEVMChainID(chainID uint64) (ChainSelector, string, error) {
	details, err := chainsel.GetChainDetailsByChainIDAndFamily(
		strconv.FormatUint(chainID, 10), chainsel.FamilyEVM,
	)
	if err != nil {
		return 0, "", fmt.Errorf("%w: evm chain id %d", ErrChainNotFound, chainID)
	}

	return ChainSelector(details.ChainSelector), details.ChainName, nil
}
