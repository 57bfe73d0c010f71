package container

import (
	"errors"
	"fmt"
	"time"
)

// ErrContainerNotFound is returned for operations referencing an unknown or
// deleted container id
var ErrContainerNotFound = errors.New("container not found")

// ConfigError reports an invalid container configuration field
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid container config: field %q %s", e.Field, e.Reason)
}

// StateError reports a lifecycle operation invalid for the container's
// current state
type StateError struct {
	ID    string
	State State
	Op    string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("cannot %s container %s in state %s", e.Op, e.ID, e.State)
}

// TimeoutError reports an operation that exceeded its bound
type TimeoutError struct {
	ID      string
	Op      string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s on container %s exceeded %s timeout", e.Op, e.ID, e.Timeout)
}

// ProvisioningError reports that the execution environment could not satisfy
// a request
type ProvisioningError struct {
	Reason string
	Err    error
}

func (e *ProvisioningError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("provisioning failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("provisioning failed: %s", e.Reason)
}

func (e *ProvisioningError) Unwrap() error {
	return e.Err
}
