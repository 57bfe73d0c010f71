package runtime

import (
	"context"
	"io"
)

// Container represents a container known to the runtime
type Container struct {
	ID      string
	Image   string
	Name    string
	Status  string
	Ports   []int
	Labels  map[string]string
	Created int64
	Started int64
}

// PortBinding maps a container port to a host port
type PortBinding struct {
	HostPort      int
	ContainerPort int
	Protocol      string
}

// VolumeBinding mounts a source into the container
type VolumeBinding struct {
	Source   string
	Target   string
	Type     string // bind, volume or tmpfs
	ReadOnly bool
}

// ResourceLimits are the hard budgets handed to the runtime
type ResourceLimits struct {
	NanoCPUs    int64
	MemoryBytes int64
	DiskBytes   int64
}

// SecurityOptions mirror the parts of a security policy the runtime enforces
type SecurityOptions struct {
	Privileged      bool
	ReadOnlyRootfs  bool
	NoNewPrivileges bool
	CapDrop         []string
	NetworkMode     string
	SecurityOpt     []string
}

// ContainerConfig holds configuration for creating a container
type ContainerConfig struct {
	Image      string
	Name       string
	Env        []string
	Ports      []PortBinding
	Volumes    []VolumeBinding
	Networks   []string
	Labels     map[string]string
	WorkingDir string
	Cmd        []string
	Resources  ResourceLimits
	Security   SecurityOptions
}

// ExecResult captures the outcome of a command run inside a container
type ExecResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Stats is a point-in-time resource usage sample
type Stats struct {
	CPUNanos    int64 // cumulative cpu time consumed
	CPUPercent  float64
	MemoryBytes int64
	MemoryLimit int64
	DiskBytes   int64
}

// Runtime interface defines the contract for container runtime implementations
type Runtime interface {
	// Container lifecycle
	CreateContainer(ctx context.Context, config *ContainerConfig) (*Container, error)
	StartContainer(ctx context.Context, containerID string) error
	StopContainer(ctx context.Context, containerID string) error
	PauseContainer(ctx context.Context, containerID string) error
	UnpauseContainer(ctx context.Context, containerID string) error
	RemoveContainer(ctx context.Context, containerID string, force bool) error

	// Container inspection
	ListContainers(ctx context.Context, all bool) ([]*Container, error)
	InspectContainer(ctx context.Context, containerID string) (*Container, error)
	ContainerLogs(ctx context.Context, containerID string, tail int) (io.ReadCloser, error)
	ContainerStats(ctx context.Context, containerID string) (*Stats, error)

	// Interaction
	Exec(ctx context.Context, containerID string, cmd []string) (*ExecResult, error)
	CopyToContainer(ctx context.Context, containerID, srcPath, dstPath string) error
	CopyFromContainer(ctx context.Context, containerID, srcPath, dstPath string) error

	// Resource management
	UpdateResources(ctx context.Context, containerID string, limits ResourceLimits) error

	// Runtime information
	Ping(ctx context.Context) error
	Version(ctx context.Context) (string, error)
}
