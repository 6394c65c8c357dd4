package contract

// DeployFunc defines a function type that deploys a contract, returning the deployment result.
//
// The result is defined by the type parameter R and is to be implemented by chain sdk. Typically,
// the address of the deployed contract and it's transaction data are returned in the result to
// provide the caller with the necessary information for interacting with the contract.
type DeployFunc[R any] func() (R, error)

// Deploy implements Deployer.
func (f DeployFunc[R]) Deploy() (R, error) {
	return f()
}

// Deployer is implemented by types which know how to deploy a single contract.
type Deployer[R any] interface {
	Deploy() (R, error)
}

// Deploy deploys a contract by calling the provided function and returns the result.
func Deploy[R any](deployFunc DeployFunc[R]) (R, error) {
	return deployFunc()
}

// DeployAll deploys every contract in order, stopping at the first failure. The results of the
// deployments which succeeded are returned alongside the error.
func DeployAll[R any](deployers ...Deployer[R]) ([]R, error) {
	results := make([]R, 0, len(deployers))
	for _, d := range deployers {
		r, err := d.Deploy()
		if err != nil {
			return results, err
		}
		results = append(results, r)
	}

	return results, nil
}
