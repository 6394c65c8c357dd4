package scaffold

import (
	"errors"
	"fmt"
)

// ErrNoSignerAvailable is returned when the signer provider has no signing identity to offer.
var ErrNoSignerAvailable = errors.New("no signer available")

// ErrVerificationDone is returned when a verifier which has already run its checks is run again.
var ErrVerificationDone = errors.New("verification already done")

// DeploymentFailureError is returned when the chain rejects a deployment or it is not confirmed.
type DeploymentFailureError struct {
	Artifact string
	Err      error
}

// NewDeploymentFailureError creates a new DeploymentFailureError.
func NewDeploymentFailureError(artifact string, err error) *DeploymentFailureError {
	return &DeploymentFailureError{Artifact: artifact, Err: err}
}

func (e *DeploymentFailureError) Error() string {
	return fmt.Sprintf("failed to deploy %s: %v", e.Artifact, e.Err)
}

func (e *DeploymentFailureError) Unwrap() error {
	return e.Err
}

// UnexpectedError is returned for failures outside of the signer and deployment steps, including
// panics raised by a collaborator.
type UnexpectedError struct {
	Cause any
}

func (e *UnexpectedError) Error() string {
	return fmt.Sprintf("unexpected error: %v", e.Cause)
}

// Unwrap returns the cause when it is an error.
func (e *UnexpectedError) Unwrap() error {
	err, _ := e.Cause.(error)

	return err
}

// SetupError is returned when the verification contract could not be deployed. No check runs
// after a setup failure.
type SetupError struct {
	Err error
}

func (e *SetupError) Error() string {
	return fmt.Sprintf("verification setup failed: %v", e.Err)
}

func (e *SetupError) Unwrap() error {
	return e.Err
}

// CheckError describes why a single verification check failed. Either Err is set, or the check
// observed Got where it expected Want.
type CheckError struct {
	Check string
	Want  any
	Got   any
	Err   error
}

func (e *CheckError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("check %q failed: %v", e.Check, e.Err)
	}

	return fmt.Sprintf("check %q failed: expected %q, got %q", e.Check, e.Want, e.Got)
}

func (e *CheckError) Unwrap() error {
	return e.Err
}
