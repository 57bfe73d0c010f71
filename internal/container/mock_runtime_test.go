package container

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/arashek/ade/pkg/runtime"
)

// mockRuntime is a mock implementation of runtime.Runtime
type mockRuntime struct {
	mock.Mock
}

func (m *mockRuntime) CreateContainer(ctx context.Context, config *runtime.ContainerConfig) (*runtime.Container, error) {
	args := m.Called(ctx, config)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*runtime.Container), args.Error(1)
}

func (m *mockRuntime) StartContainer(ctx context.Context, containerID string) error {
	args := m.Called(ctx, containerID)
	return args.Error(0)
}

func (m *mockRuntime) StopContainer(ctx context.Context, containerID string) error {
	args := m.Called(ctx, containerID)
	return args.Error(0)
}

func (m *mockRuntime) PauseContainer(ctx context.Context, containerID string) error {
	args := m.Called(ctx, containerID)
	return args.Error(0)
}

func (m *mockRuntime) UnpauseContainer(ctx context.Context, containerID string) error {
	args := m.Called(ctx, containerID)
	return args.Error(0)
}

func (m *mockRuntime) RemoveContainer(ctx context.Context, containerID string, force bool) error {
	args := m.Called(ctx, containerID, force)
	return args.Error(0)
}

func (m *mockRuntime) ListContainers(ctx context.Context, all bool) ([]*runtime.Container, error) {
	args := m.Called(ctx, all)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*runtime.Container), args.Error(1)
}

func (m *mockRuntime) InspectContainer(ctx context.Context, containerID string) (*runtime.Container, error) {
	args := m.Called(ctx, containerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*runtime.Container), args.Error(1)
}

func (m *mockRuntime) ContainerLogs(ctx context.Context, containerID string, tail int) (io.ReadCloser, error) {
	args := m.Called(ctx, containerID, tail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func (m *mockRuntime) ContainerStats(ctx context.Context, containerID string) (*runtime.Stats, error) {
	args := m.Called(ctx, containerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*runtime.Stats), args.Error(1)
}

func (m *mockRuntime) Exec(ctx context.Context, containerID string, cmd []string) (*runtime.ExecResult, error) {
	args := m.Called(ctx, containerID, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*runtime.ExecResult), args.Error(1)
}

func (m *mockRuntime) CopyToContainer(ctx context.Context, containerID, srcPath, dstPath string) error {
	args := m.Called(ctx, containerID, srcPath, dstPath)
	return args.Error(0)
}

func (m *mockRuntime) CopyFromContainer(ctx context.Context, containerID, srcPath, dstPath string) error {
	args := m.Called(ctx, containerID, srcPath, dstPath)
	return args.Error(0)
}

func (m *mockRuntime) UpdateResources(ctx context.Context, containerID string, limits runtime.ResourceLimits) error {
	args := m.Called(ctx, containerID, limits)
	return args.Error(0)
}

func (m *mockRuntime) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockRuntime) Version(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}
