package bindings

import (
	"fmt"
	"maps"
	"slices"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
)

// Artifact names known to the registry.
const (
	YourContractName          = "YourContract"
	YourContractSelfOwnedName = "YourContractSelfOwned"
)

var artifacts = map[string]*bind.MetaData{
	YourContractName:          YourContractMetaData,
	YourContractSelfOwnedName: YourContractSelfOwnedMetaData,
}

// ArtifactByName returns the ABI and creation code of a deployable contract.
func ArtifactByName(name string) (*bind.MetaData, error) {
	meta, ok := artifacts[name]
	if !ok {
		return nil, fmt.Errorf("unknown contract artifact %q, available: %v", name, ArtifactNames())
	}

	return meta, nil
}

// ArtifactNames returns the sorted names of all registered artifacts.
func ArtifactNames() []string {
	return slices.Sorted(maps.Keys(artifacts))
}
