package container

import (
	"time"

	"github.com/arashek/ade/internal/security"
	"github.com/arashek/ade/internal/template"
)

// Config describes a container to create. Immutable once submitted to Create;
// later changes go through explicit update calls.
type Config struct {
	Name        string                       `json:"name"`
	Image       string                       `json:"image"`
	Resources   *template.ResourceSpec       `json:"resources,omitempty"`
	Environment []template.EnvVar            `json:"environment,omitempty"`
	Ports       []template.PortMapping       `json:"ports,omitempty"`
	Volumes     []template.VolumeMount       `json:"volumes,omitempty"`
	Networks    []template.NetworkAttachment `json:"networks,omitempty"`
	Command     []string                     `json:"command,omitempty"`
	WorkingDir  string                       `json:"workingDir,omitempty"`
	Labels      map[string]string            `json:"labels,omitempty"`
	Security    *security.SecurityPolicy     `json:"security,omitempty"`
}

// Status is a point-in-time view of a managed container
type Status struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	State       State     `json:"state"`
	Health      Health    `json:"health"`
	Uptime      string    `json:"uptime"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// Allocation is the requested/limit resource budget for a container,
// distinct from observed usage
type Allocation struct {
	CPU         float64 `json:"cpu"`
	MemoryBytes int64   `json:"memoryBytes"`
	DiskBytes   int64   `json:"diskBytes"`
}

// Usage is the observed resource consumption with percentages derived from
// the allocation. Percentages above 100 indicate an over-limit condition and
// are surfaced as-is, never clamped.
type Usage struct {
	CPUPercent    float64 `json:"cpuPercent"`
	MemoryBytes   int64   `json:"memoryBytes"`
	MemoryPercent float64 `json:"memoryPercent"`
	DiskBytes     int64   `json:"diskBytes"`
	DiskPercent   float64 `json:"diskPercent"`
	OverLimit     bool    `json:"overLimit"`
}

// Resources pairs a container's allocation with its current usage
type Resources struct {
	Allocation Allocation `json:"allocation"`
	Usage      Usage      `json:"usage"`
	SampledAt  time.Time  `json:"sampledAt"`
}

// ProjectConfig drives InitializeProject: the template for ProjectType is
// resolved and merged with the caller-supplied overrides
type ProjectConfig struct {
	Name        string               `json:"name"`
	ProjectType template.ProjectType `json:"projectType"`
	Overrides   *Config              `json:"overrides,omitempty"`
}

// ExecResult is the outcome of a command executed inside a container
type ExecResult struct {
	ExitCode int    `json:"exitCode"`
	Stdout   string `json:"stdout"`
	Stderr   string `json:"stderr"`
}
