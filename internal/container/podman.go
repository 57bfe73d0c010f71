package container

import (
	"context"
	"fmt"
)

// PodmanRuntime implements the Runtime interface over the Podman socket.
// Podman's API is compatible with Docker's, so the Docker adapter does all
// the work; this type only exists to surface the right runtime name in
// detection and errors.
type PodmanRuntime struct {
	DockerRuntime
}

// NewPodmanRuntime creates a Podman runtime, trying the root socket first
// and falling back to the rootless one
func NewPodmanRuntime() (*PodmanRuntime, error) {
	rt, err := createPodmanRuntimeWithSocket(getDefaultPodmanSocket(false))
	if err != nil {
		rt, err = createPodmanRuntimeWithSocket(getDefaultPodmanSocket(true))
		if err != nil {
			return nil, fmt.Errorf("failed to create Podman runtime: %w", err)
		}
	}

	return rt, nil
}

// Ping checks if Podman is responsive
func (p *PodmanRuntime) Ping(ctx context.Context) error {
	if _, err := p.client.Ping(ctx); err != nil {
		return fmt.Errorf("Podman ping failed: %w", err)
	}
	return nil
}
