package container

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/docker/go-units"
	"github.com/rs/zerolog/log"

	"github.com/arashek/ade/internal/config"
	"github.com/arashek/ade/internal/events"
	"github.com/arashek/ade/internal/template"
	"github.com/arashek/ade/pkg/runtime"
	"github.com/arashek/ade/pkg/validation"
)

// ManagerInterface is the contract the HTTP layer and project flows program
// against. It exists to enable testing with mocks.
type ManagerInterface interface {
	Create(ctx context.Context, cfg *Config) (string, error)
	Start(ctx context.Context, containerID string) error
	Stop(ctx context.Context, containerID string) error
	Pause(ctx context.Context, containerID string) error
	Resume(ctx context.Context, containerID string) error
	Delete(ctx context.Context, containerID string) error
	Status(ctx context.Context, containerID string) (*Status, error)
	Logs(ctx context.Context, containerID string, tail int) (string, error)
	Resources(ctx context.Context, containerID string) (*Resources, error)
	UpdateAllocation(ctx context.Context, containerID string, alloc Allocation) error
	Exec(ctx context.Context, containerID string, cmd []string) (*ExecResult, error)
	CopyToContainer(ctx context.Context, containerID, srcPath, dstPath string) error
	CopyFromContainer(ctx context.Context, containerID, srcPath, dstPath string) error
	Template(projectType template.ProjectType) (*template.ContainerTemplate, error)
	Templates() []*template.ContainerTemplate
	InitializeProject(ctx context.Context, project *ProjectConfig) (string, error)
	List() []*Status
}

var _ ManagerInterface = (*Manager)(nil)

// managed is the manager's view of one container. Lifecycle operations
// serialize on the container's operation lock; field writes additionally
// hold the manager lock so Status, List and the monitor see consistent
// values.
type managed struct {
	id         string
	name       string
	config     Config
	state      State
	health     Health
	allocation Allocation
	createdAt  time.Time
	startedAt  time.Time
	updatedAt  time.Time
}

// Manager owns the full lifecycle of container instances. Lifecycle
// operations on the same container id serialize in issue order; operations
// on different ids run concurrently.
type Manager struct {
	runtime    runtime.Runtime
	loader     *template.Loader
	cfg        *config.Config
	bus        events.EventBus
	containers map[string]*managed
	locks      map[string]*sync.Mutex
	mu         sync.RWMutex

	ceiling Allocation
}

// NewManager creates a container manager on top of a connected runtime
func NewManager(cfg *config.Config, rt runtime.Runtime, loader *template.Loader, bus events.EventBus) (*Manager, error) {
	ceiling, err := ceilingFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	return &Manager{
		runtime:    rt,
		loader:     loader,
		cfg:        cfg,
		bus:        bus,
		containers: make(map[string]*managed),
		locks:      make(map[string]*sync.Mutex),
		ceiling:    ceiling,
	}, nil
}

func ceilingFromConfig(cfg *config.Config) (Allocation, error) {
	mem, err := units.RAMInBytes(cfg.Resources.MaxMemory)
	if err != nil {
		return Allocation{}, fmt.Errorf("invalid resources.max_memory: %w", err)
	}
	disk, err := units.RAMInBytes(cfg.Resources.MaxDisk)
	if err != nil {
		return Allocation{}, fmt.Errorf("invalid resources.max_disk: %w", err)
	}
	return Allocation{CPU: cfg.Resources.MaxCPU, MemoryBytes: mem, DiskBytes: disk}, nil
}

// lockFor returns the per-container operation mutex, creating it on first use
func (m *Manager) lockFor(containerID string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()

	lock, ok := m.locks[containerID]
	if !ok {
		lock = &sync.Mutex{}
		m.locks[containerID] = lock
	}
	return lock
}

// get returns the managed entry for an id. Deleted containers are tombstoned
// and reported as not found to every operation except Delete.
func (m *Manager) get(containerID string) (*managed, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.containers[containerID]
	if !ok || c.state == StateDeleted {
		return nil, fmt.Errorf("container %s: %w", containerID, ErrContainerNotFound)
	}
	return c, nil
}

func (m *Manager) publish(eventType events.EventType, c *managed) {
	if m.bus == nil {
		return
	}
	if err := m.bus.Publish(events.Event{
		Type:        eventType,
		ContainerID: c.id,
		Name:        c.name,
	}); err != nil {
		log.Warn().Err(err).Str("event_type", string(eventType)).Msg("Failed to publish lifecycle event")
	}
}

// checkCeiling rejects allocations that exceed the configured global ceiling
func (m *Manager) checkCeiling(alloc Allocation) error {
	m.mu.RLock()
	ceiling := m.ceiling
	m.mu.RUnlock()

	if alloc.CPU > ceiling.CPU {
		return &ProvisioningError{Reason: fmt.Sprintf("cpu allocation %.2f exceeds ceiling %.2f", alloc.CPU, ceiling.CPU)}
	}
	if alloc.MemoryBytes > ceiling.MemoryBytes {
		return &ProvisioningError{Reason: fmt.Sprintf("memory allocation %d exceeds ceiling %d", alloc.MemoryBytes, ceiling.MemoryBytes)}
	}
	if alloc.DiskBytes > ceiling.DiskBytes {
		return &ProvisioningError{Reason: fmt.Sprintf("disk allocation %d exceeds ceiling %d", alloc.DiskBytes, ceiling.DiskBytes)}
	}
	return nil
}

// ApplyConfig swaps in a reloaded configuration. The resource ceiling and
// operation timeouts take effect for subsequent calls; in-flight operations
// keep the bounds they started with.
func (m *Manager) ApplyConfig(cfg *config.Config) error {
	ceiling, err := ceilingFromConfig(cfg)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.cfg = cfg
	m.ceiling = ceiling
	m.mu.Unlock()

	log.Info().
		Float64("max_cpu", ceiling.CPU).
		Int64("max_memory_bytes", ceiling.MemoryBytes).
		Int64("max_disk_bytes", ceiling.DiskBytes).
		Msg("Resource ceiling updated")
	return nil
}

// conf returns the current configuration snapshot
func (m *Manager) conf() *config.Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cfg
}

// Create validates the config, provisions a new container in created state
// and returns its id. A failed create leaves no orphaned resources behind.
func (m *Manager) Create(ctx context.Context, cfg *Config) (string, error) {
	if err := ValidateConfig(cfg); err != nil {
		return "", err
	}

	alloc, err := allocationFromSpec(cfg.Resources)
	if err != nil {
		return "", &ConfigError{Field: "resources", Reason: err.Error()}
	}
	if cfg.Resources != nil {
		if err := m.checkCeiling(alloc); err != nil {
			return "", err
		}
	}

	ctx, cancel := context.WithTimeout(ctx, m.conf().LifecycleTimeout())
	defer cancel()

	created, err := m.runtime.CreateContainer(ctx, toRuntimeConfig(cfg, alloc))
	if err != nil {
		if created != nil {
			// Partial provisioning: remove whatever the runtime left behind
			if rmErr := m.runtime.RemoveContainer(context.Background(), created.ID, true); rmErr != nil {
				log.Warn().Err(rmErr).Str("container", created.ID).Msg("Failed to clean up partially created container")
			}
		}
		return "", m.wrapRuntimeErr("create", "", m.conf().LifecycleTimeout(), err)
	}

	now := time.Now()
	c := &managed{
		id:         created.ID,
		name:       cfg.Name,
		config:     *cfg,
		state:      StateCreated,
		health:     HealthUnknown,
		allocation: alloc,
		createdAt:  now,
		updatedAt:  now,
	}

	m.mu.Lock()
	m.containers[c.id] = c
	m.mu.Unlock()

	log.Info().
		Str("container", c.id).
		Str("name", c.name).
		Str("image", cfg.Image).
		Msg("Container created")
	m.publish(events.ContainerCreated, c)

	return c.id, nil
}

// Start drives a container into running state. Starting an already-running
// container is a successful no-op.
func (m *Manager) Start(ctx context.Context, containerID string) error {
	lock := m.lockFor(containerID)
	lock.Lock()
	defer lock.Unlock()

	c, err := m.get(containerID)
	if err != nil {
		return err
	}
	if c.state == StateRunning {
		return nil
	}
	if !CanTransition(c.state, StateRunning) || c.state == StatePaused {
		return &StateError{ID: containerID, State: c.state, Op: "start"}
	}

	ctx, cancel := context.WithTimeout(ctx, m.conf().LifecycleTimeout())
	defer cancel()

	if err := m.runtime.StartContainer(ctx, containerID); err != nil {
		return m.wrapRuntimeErr("start", containerID, m.conf().LifecycleTimeout(), err)
	}

	m.mu.Lock()
	c.state = StateRunning
	c.health = HealthStarting
	c.startedAt = time.Now()
	c.updatedAt = time.Now()
	m.mu.Unlock()

	log.Info().Str("container", containerID).Msg("Container started")
	m.publish(events.ContainerStarted, c)
	return nil
}

// Stop drives a container into stopped state. Stopping an already-stopped
// container is a successful no-op.
func (m *Manager) Stop(ctx context.Context, containerID string) error {
	lock := m.lockFor(containerID)
	lock.Lock()
	defer lock.Unlock()

	c, err := m.get(containerID)
	if err != nil {
		return err
	}
	if c.state == StateStopped {
		return nil
	}
	if !CanTransition(c.state, StateStopped) {
		return &StateError{ID: containerID, State: c.state, Op: "stop"}
	}

	ctx, cancel := context.WithTimeout(ctx, m.conf().LifecycleTimeout())
	defer cancel()

	if err := m.runtime.StopContainer(ctx, containerID); err != nil {
		return m.wrapRuntimeErr("stop", containerID, m.conf().LifecycleTimeout(), err)
	}

	m.mu.Lock()
	c.state = StateStopped
	c.health = HealthUnknown
	c.updatedAt = time.Now()
	m.mu.Unlock()

	log.Info().Str("container", containerID).Msg("Container stopped")
	m.publish(events.ContainerStopped, c)
	return nil
}

// Pause suspends a running container. Only valid from running.
func (m *Manager) Pause(ctx context.Context, containerID string) error {
	lock := m.lockFor(containerID)
	lock.Lock()
	defer lock.Unlock()

	c, err := m.get(containerID)
	if err != nil {
		return err
	}
	if c.state != StateRunning {
		return &StateError{ID: containerID, State: c.state, Op: "pause"}
	}

	ctx, cancel := context.WithTimeout(ctx, m.conf().LifecycleTimeout())
	defer cancel()

	if err := m.runtime.PauseContainer(ctx, containerID); err != nil {
		return m.wrapRuntimeErr("pause", containerID, m.conf().LifecycleTimeout(), err)
	}

	m.mu.Lock()
	c.state = StatePaused
	c.updatedAt = time.Now()
	m.mu.Unlock()

	log.Info().Str("container", containerID).Msg("Container paused")
	m.publish(events.ContainerPaused, c)
	return nil
}

// Resume unpauses a paused container. Only valid from paused.
func (m *Manager) Resume(ctx context.Context, containerID string) error {
	lock := m.lockFor(containerID)
	lock.Lock()
	defer lock.Unlock()

	c, err := m.get(containerID)
	if err != nil {
		return err
	}
	if c.state != StatePaused {
		return &StateError{ID: containerID, State: c.state, Op: "resume"}
	}

	ctx, cancel := context.WithTimeout(ctx, m.conf().LifecycleTimeout())
	defer cancel()

	if err := m.runtime.UnpauseContainer(ctx, containerID); err != nil {
		return m.wrapRuntimeErr("resume", containerID, m.conf().LifecycleTimeout(), err)
	}

	m.mu.Lock()
	c.state = StateRunning
	c.updatedAt = time.Now()
	m.mu.Unlock()

	log.Info().Str("container", containerID).Msg("Container resumed")
	m.publish(events.ContainerResumed, c)
	return nil
}

// Delete removes a container. Deleting an already-deleted container is a
// successful no-op; the id is tombstoned so every other operation reports
// not-found afterwards.
func (m *Manager) Delete(ctx context.Context, containerID string) error {
	lock := m.lockFor(containerID)
	lock.Lock()
	defer lock.Unlock()

	m.mu.RLock()
	c, ok := m.containers[containerID]
	m.mu.RUnlock()

	if !ok {
		return fmt.Errorf("container %s: %w", containerID, ErrContainerNotFound)
	}
	if c.state == StateDeleted {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, m.conf().LifecycleTimeout())
	defer cancel()

	if err := m.runtime.RemoveContainer(ctx, containerID, true); err != nil {
		return m.wrapRuntimeErr("delete", containerID, m.conf().LifecycleTimeout(), err)
	}

	m.mu.Lock()
	c.state = StateDeleted
	c.health = HealthUnknown
	c.updatedAt = time.Now()
	m.mu.Unlock()

	log.Info().Str("container", containerID).Msg("Container deleted")
	m.publish(events.ContainerDeleted, c)
	return nil
}

// Status returns a point-in-time view of a managed container. Bounded by the
// query timeout.
func (m *Manager) Status(ctx context.Context, containerID string) (*Status, error) {
	c, err := m.get(containerID)
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	status := &Status{
		ID:          c.id,
		Name:        c.name,
		State:       c.state,
		Health:      c.health,
		LastUpdated: c.updatedAt,
	}
	startedAt := c.startedAt
	running := c.state == StateRunning || c.state == StatePaused
	m.mu.RUnlock()

	if running && !startedAt.IsZero() {
		status.Uptime = time.Since(startedAt).Round(time.Second).String()
	}

	return status, nil
}

// List returns the status of every non-deleted managed container
func (m *Manager) List() []*Status {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*Status, 0, len(m.containers))
	for _, c := range m.containers {
		if c.state == StateDeleted {
			continue
		}
		result = append(result, &Status{
			ID:          c.id,
			Name:        c.name,
			State:       c.state,
			Health:      c.health,
			LastUpdated: c.updatedAt,
		})
	}
	return result
}

// Logs returns the last tail lines of a container's output. Bounded by the
// query timeout.
func (m *Manager) Logs(ctx context.Context, containerID string, tail int) (string, error) {
	if _, err := m.get(containerID); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, m.conf().QueryTimeout())
	defer cancel()

	rc, err := m.runtime.ContainerLogs(ctx, containerID, tail)
	if err != nil {
		return "", m.wrapRuntimeErr("logs", containerID, m.conf().QueryTimeout(), err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return "", m.wrapRuntimeErr("logs", containerID, m.conf().QueryTimeout(), err)
	}
	return string(data), nil
}

// Resources returns the container's allocation alongside observed usage.
// Usage percentages are derived from the allocation and deliberately not
// clamped: values above 100 surface an over-limit condition.
func (m *Manager) Resources(ctx context.Context, containerID string) (*Resources, error) {
	c, err := m.get(containerID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, m.conf().QueryTimeout())
	defer cancel()

	stats, err := m.runtime.ContainerStats(ctx, containerID)
	if err != nil {
		return nil, m.wrapRuntimeErr("stats", containerID, m.conf().QueryTimeout(), err)
	}

	m.mu.RLock()
	alloc := c.allocation
	m.mu.RUnlock()

	usage := Usage{
		CPUPercent:  stats.CPUPercent,
		MemoryBytes: stats.MemoryBytes,
		DiskBytes:   stats.DiskBytes,
	}
	if alloc.MemoryBytes > 0 {
		usage.MemoryPercent = float64(stats.MemoryBytes) / float64(alloc.MemoryBytes) * 100
	}
	if alloc.DiskBytes > 0 {
		usage.DiskPercent = float64(stats.DiskBytes) / float64(alloc.DiskBytes) * 100
	}
	usage.OverLimit = usage.MemoryPercent > 100 || usage.DiskPercent > 100

	if usage.OverLimit {
		log.Warn().
			Str("container", containerID).
			Float64("memory_percent", usage.MemoryPercent).
			Float64("disk_percent", usage.DiskPercent).
			Msg("Container over resource limit")
	}

	return &Resources{
		Allocation: alloc,
		Usage:      usage,
		SampledAt:  time.Now(),
	}, nil
}

// UpdateAllocation replaces a live container's resource budget. Rejected when
// the new allocation exceeds the configured global ceiling.
func (m *Manager) UpdateAllocation(ctx context.Context, containerID string, alloc Allocation) error {
	lock := m.lockFor(containerID)
	lock.Lock()
	defer lock.Unlock()

	c, err := m.get(containerID)
	if err != nil {
		return err
	}

	if alloc.CPU <= 0 {
		return &ConfigError{Field: "allocation.cpu", Reason: "must be a strictly positive number"}
	}
	if alloc.MemoryBytes <= 0 {
		return &ConfigError{Field: "allocation.memoryBytes", Reason: "must be a strictly positive number"}
	}
	if err := m.checkCeiling(alloc); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, m.conf().LifecycleTimeout())
	defer cancel()

	limits := runtime.ResourceLimits{
		NanoCPUs:    int64(alloc.CPU * 1e9),
		MemoryBytes: alloc.MemoryBytes,
		DiskBytes:   alloc.DiskBytes,
	}
	if err := m.runtime.UpdateResources(ctx, containerID, limits); err != nil {
		return m.wrapRuntimeErr("update resources", containerID, m.conf().LifecycleTimeout(), err)
	}

	m.mu.Lock()
	c.allocation = alloc
	c.updatedAt = time.Now()
	m.mu.Unlock()

	log.Info().
		Str("container", containerID).
		Float64("cpu", alloc.CPU).
		Int64("memory_bytes", alloc.MemoryBytes).
		Msg("Resource allocation updated")
	m.publish(events.ResourcesUpdated, c)
	return nil
}

// Exec runs a command inside a running container and returns its exit code
// with captured stdout and stderr. Each call gets its own isolated streams.
func (m *Manager) Exec(ctx context.Context, containerID string, cmd []string) (*ExecResult, error) {
	c, err := m.get(containerID)
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	state := c.state
	m.mu.RUnlock()
	if state != StateRunning {
		return nil, &StateError{ID: containerID, State: state, Op: "exec"}
	}
	if len(cmd) == 0 {
		return nil, &ConfigError{Field: "command", Reason: "is required"}
	}

	ctx, cancel := context.WithTimeout(ctx, m.conf().ExecTimeout())
	defer cancel()

	res, err := m.runtime.Exec(ctx, containerID, cmd)
	if err != nil {
		return nil, m.wrapRuntimeErr("exec", containerID, m.conf().ExecTimeout(), err)
	}

	return &ExecResult{ExitCode: res.ExitCode, Stdout: res.Stdout, Stderr: res.Stderr}, nil
}

// CopyToContainer copies a host file into the container. Fails with a
// not-found error when the source does not exist.
func (m *Manager) CopyToContainer(ctx context.Context, containerID, srcPath, dstPath string) error {
	if _, err := m.get(containerID); err != nil {
		return err
	}

	if _, err := os.Stat(srcPath); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("source path %s does not exist: %w", srcPath, os.ErrNotExist)
		}
		if os.IsPermission(err) {
			return fmt.Errorf("source path %s is not readable: %w", srcPath, os.ErrPermission)
		}
		return err
	}

	cleanDst, err := validation.ValidateContainerPath(dstPath)
	if err != nil {
		return &ConfigError{Field: "dstPath", Reason: err.Error()}
	}

	ctx, cancel := context.WithTimeout(ctx, m.conf().LifecycleTimeout())
	defer cancel()

	if err := m.runtime.CopyToContainer(ctx, containerID, srcPath, cleanDst); err != nil {
		return m.wrapRuntimeErr("copy to container", containerID, m.conf().LifecycleTimeout(), err)
	}
	return nil
}

// CopyFromContainer copies a file out of the container onto the host. Fails
// with a permission error when the target is not writable.
func (m *Manager) CopyFromContainer(ctx context.Context, containerID, srcPath, dstPath string) error {
	if _, err := m.get(containerID); err != nil {
		return err
	}

	cleanSrc, err := validation.ValidateContainerPath(srcPath)
	if err != nil {
		return &ConfigError{Field: "srcPath", Reason: err.Error()}
	}

	ctx, cancel := context.WithTimeout(ctx, m.conf().LifecycleTimeout())
	defer cancel()

	if err := m.runtime.CopyFromContainer(ctx, containerID, cleanSrc, dstPath); err != nil {
		return m.wrapRuntimeErr("copy from container", containerID, m.conf().LifecycleTimeout(), err)
	}
	return nil
}

// Template delegates to the template loader
func (m *Manager) Template(projectType template.ProjectType) (*template.ContainerTemplate, error) {
	return m.loader.Get(projectType)
}

// Templates delegates to the template loader
func (m *Manager) Templates() []*template.ContainerTemplate {
	return m.loader.All()
}

// InitializeProject resolves the template for the project type, merges the
// caller-supplied overrides and creates the container. Atomic: when Create
// fails nothing is registered.
func (m *Manager) InitializeProject(ctx context.Context, project *ProjectConfig) (string, error) {
	if project == nil || project.Name == "" {
		return "", &ConfigError{Field: "name", Reason: "is required"}
	}
	if project.ProjectType == "" {
		return "", &ConfigError{Field: "projectType", Reason: "is required"}
	}

	tpl, err := m.loader.Get(project.ProjectType)
	if err != nil {
		return "", err
	}

	cfg := MergeTemplate(tpl, project)
	return m.Create(ctx, cfg)
}

// wrapRuntimeErr translates runtime failures into the manager's error
// taxonomy: deadline overruns become timeout errors, everything else is a
// provisioning error.
func (m *Manager) wrapRuntimeErr(op, containerID string, timeout time.Duration, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &TimeoutError{ID: containerID, Op: op, Timeout: timeout}
	}
	return &ProvisioningError{Reason: fmt.Sprintf("%s failed", op), Err: err}
}

// toRuntimeConfig translates a validated manager config into the
// runtime-neutral shape
func toRuntimeConfig(cfg *Config, alloc Allocation) *runtime.ContainerConfig {
	rc := &runtime.ContainerConfig{
		Image:      cfg.Image,
		Name:       cfg.Name,
		Cmd:        cfg.Command,
		WorkingDir: cfg.WorkingDir,
		Labels:     map[string]string{"ade.managed": "true", "ade.name": cfg.Name},
		Resources: runtime.ResourceLimits{
			NanoCPUs:    int64(alloc.CPU * 1e9),
			MemoryBytes: alloc.MemoryBytes,
			DiskBytes:   alloc.DiskBytes,
		},
	}
	for k, v := range cfg.Labels {
		rc.Labels[k] = v
	}

	for _, env := range cfg.Environment {
		rc.Env = append(rc.Env, fmt.Sprintf("%s=%s", env.Name, env.Value))
	}
	for _, p := range cfg.Ports {
		rc.Ports = append(rc.Ports, runtime.PortBinding{
			HostPort:      p.HostPort,
			ContainerPort: p.ContainerPort,
			Protocol:      p.Protocol,
		})
	}
	for _, v := range cfg.Volumes {
		rc.Volumes = append(rc.Volumes, runtime.VolumeBinding{
			Source:   v.Source,
			Target:   v.Target,
			Type:     v.Type,
			ReadOnly: v.ReadOnly,
		})
	}
	for _, n := range cfg.Networks {
		rc.Networks = append(rc.Networks, n.Name)
	}

	if cfg.Security != nil {
		rc.Security = runtime.SecurityOptions{
			Privileged:      cfg.Security.Privileged,
			ReadOnlyRootfs:  cfg.Security.ReadOnlyRootfs,
			NoNewPrivileges: cfg.Security.NoNewPrivileges,
			CapDrop:         cfg.Security.Capabilities.Drop,
			NetworkMode:     cfg.Security.NetworkMode,
			SecurityOpt:     cfg.Security.SecurityOpts,
		}
	}

	return rc
}
