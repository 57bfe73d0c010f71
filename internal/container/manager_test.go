package container

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/arashek/ade/internal/config"
	"github.com/arashek/ade/internal/template"
	"github.com/arashek/ade/pkg/runtime"
)

func testManagerConfig() *config.Config {
	return &config.Config{
		Resources: config.ResourcesConfig{
			MaxCPU:    8.0,
			MaxMemory: "16g",
			MaxDisk:   "100g",
		},
		Timeouts: config.TimeoutsConfig{
			QuerySeconds:     10,
			LifecycleSeconds: 60,
			ExecSeconds:      120,
		},
		Health: config.HealthConfig{IntervalSeconds: 15},
	}
}

func testContainerConfig() *Config {
	return &Config{
		Name:  "myapp",
		Image: "node:20-alpine",
		Resources: &template.ResourceSpec{
			CPU:    template.CPUSpec{Limit: 2.0, Reservation: 0.5},
			Memory: template.SizeSpec{Limit: "4g", Reservation: "512m"},
			Disk:   template.SizeSpec{Limit: "20g", Reservation: "5g"},
		},
	}
}

func newTestManager(t *testing.T, rt runtime.Runtime) *Manager {
	t.Helper()

	loader := template.NewLoader(t.TempDir())
	m, err := NewManager(testManagerConfig(), rt, loader, nil)
	require.NoError(t, err)
	return m
}

func createTestContainer(t *testing.T, m *Manager, rt *mockRuntime, id string) string {
	t.Helper()

	rt.On("CreateContainer", mock.Anything, mock.Anything).Return(&runtime.Container{ID: id}, nil).Once()
	created, err := m.Create(context.Background(), testContainerConfig())
	require.NoError(t, err)
	require.Equal(t, id, created)
	return created
}

func TestManager_Create(t *testing.T) {
	rt := &mockRuntime{}
	m := newTestManager(t, rt)

	id := createTestContainer(t, m, rt, "abc123")

	status, err := m.Status(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, StateCreated, status.State)
	assert.Equal(t, HealthUnknown, status.Health)
	assert.Equal(t, "myapp", status.Name)

	rt.AssertExpectations(t)
}

func TestManager_CreateInvalidConfig(t *testing.T) {
	rt := &mockRuntime{}
	m := newTestManager(t, rt)

	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"missing name", func(c *Config) { c.Name = "" }, "name"},
		{"missing image", func(c *Config) { c.Image = "" }, "image"},
		{"zero cpu limit", func(c *Config) { c.Resources.CPU.Limit = 0 }, "resources.cpu.limit"},
		{"bad memory unit", func(c *Config) { c.Resources.Memory.Limit = "4gb" }, "resources.memory.limit"},
		{"bad protocol", func(c *Config) {
			c.Ports = []template.PortMapping{{HostPort: 8080, ContainerPort: 80, Protocol: "sctp"}}
		}, "ports[0].protocol"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testContainerConfig()
			tt.mutate(cfg)

			_, err := m.Create(context.Background(), cfg)

			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}

	// Validation failures never reach the runtime
	rt.AssertNotCalled(t, "CreateContainer", mock.Anything, mock.Anything)
}

func TestManager_CreateExceedsCeiling(t *testing.T) {
	rt := &mockRuntime{}
	m := newTestManager(t, rt)

	cfg := testContainerConfig()
	cfg.Resources.CPU.Limit = 32.0

	_, err := m.Create(context.Background(), cfg)

	var provErr *ProvisioningError
	require.ErrorAs(t, err, &provErr)
	rt.AssertNotCalled(t, "CreateContainer", mock.Anything, mock.Anything)
}

func TestManager_ApplyConfigRefreshesCeiling(t *testing.T) {
	rt := &mockRuntime{}
	m := newTestManager(t, rt)

	cfg := testContainerConfig()
	cfg.Resources.CPU.Limit = 4.0

	// Lower the ceiling below the requested allocation
	lowered := testManagerConfig()
	lowered.Resources.MaxCPU = 1.0
	require.NoError(t, m.ApplyConfig(lowered))

	_, err := m.Create(context.Background(), cfg)
	var provErr *ProvisioningError
	require.ErrorAs(t, err, &provErr)

	// Raising it again lets the same request through
	require.NoError(t, m.ApplyConfig(testManagerConfig()))

	rt.On("CreateContainer", mock.Anything, mock.Anything).Return(&runtime.Container{ID: "c1"}, nil).Once()
	_, err = m.Create(context.Background(), cfg)
	require.NoError(t, err)

	rt.AssertExpectations(t)
}

func TestManager_ApplyConfigRejectsBadCeiling(t *testing.T) {
	rt := &mockRuntime{}
	m := newTestManager(t, rt)

	bad := testManagerConfig()
	bad.Resources.MaxMemory = "lots"
	require.Error(t, m.ApplyConfig(bad))

	// The previous ceiling stays in effect
	rt.On("CreateContainer", mock.Anything, mock.Anything).Return(&runtime.Container{ID: "c1"}, nil).Once()
	_, err := m.Create(context.Background(), testContainerConfig())
	require.NoError(t, err)
}

func TestManager_CreateRuntimeFailure(t *testing.T) {
	rt := &mockRuntime{}
	m := newTestManager(t, rt)

	rt.On("CreateContainer", mock.Anything, mock.Anything).Return(nil, errors.New("image pull failed")).Once()

	_, err := m.Create(context.Background(), testContainerConfig())

	var provErr *ProvisioningError
	require.ErrorAs(t, err, &provErr)
	assert.Empty(t, m.List())
}

func TestManager_CreateCleansUpPartialContainer(t *testing.T) {
	rt := &mockRuntime{}
	m := newTestManager(t, rt)

	// Runtime created something but the create as a whole failed
	rt.On("CreateContainer", mock.Anything, mock.Anything).
		Return(&runtime.Container{ID: "partial1"}, errors.New("network attach failed")).Once()
	rt.On("RemoveContainer", mock.Anything, "partial1", true).Return(nil).Once()

	_, err := m.Create(context.Background(), testContainerConfig())

	require.Error(t, err)
	assert.Empty(t, m.List())
	rt.AssertExpectations(t)
}

func TestManager_StartIsIdempotent(t *testing.T) {
	rt := &mockRuntime{}
	m := newTestManager(t, rt)
	id := createTestContainer(t, m, rt, "c1")

	rt.On("StartContainer", mock.Anything, id).Return(nil).Once()

	require.NoError(t, m.Start(context.Background(), id))
	require.NoError(t, m.Start(context.Background(), id))

	status, err := m.Status(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, StateRunning, status.State)
	assert.Equal(t, HealthStarting, status.Health)

	rt.AssertExpectations(t)
}

func TestManager_StopIsIdempotent(t *testing.T) {
	rt := &mockRuntime{}
	m := newTestManager(t, rt)
	id := createTestContainer(t, m, rt, "c1")

	rt.On("StartContainer", mock.Anything, id).Return(nil).Once()
	rt.On("StopContainer", mock.Anything, id).Return(nil).Once()

	require.NoError(t, m.Start(context.Background(), id))
	require.NoError(t, m.Stop(context.Background(), id))
	require.NoError(t, m.Stop(context.Background(), id))

	status, err := m.Status(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, StateStopped, status.State)

	rt.AssertExpectations(t)
}

func TestManager_StartAfterStopRejected(t *testing.T) {
	rt := &mockRuntime{}
	m := newTestManager(t, rt)
	id := createTestContainer(t, m, rt, "c1")

	rt.On("StartContainer", mock.Anything, id).Return(nil).Once()
	rt.On("StopContainer", mock.Anything, id).Return(nil).Once()

	require.NoError(t, m.Start(context.Background(), id))
	require.NoError(t, m.Stop(context.Background(), id))

	// Stopped only moves forward to deleted
	err := m.Start(context.Background(), id)
	var stateErr *StateError
	require.ErrorAs(t, err, &stateErr)
	assert.Equal(t, StateStopped, stateErr.State)

	rt.AssertExpectations(t)
}

func TestManager_PauseResume(t *testing.T) {
	rt := &mockRuntime{}
	m := newTestManager(t, rt)
	id := createTestContainer(t, m, rt, "c1")

	// Pause before running is a state error
	err := m.Pause(context.Background(), id)
	var stateErr *StateError
	require.ErrorAs(t, err, &stateErr)
	assert.Equal(t, StateCreated, stateErr.State)

	rt.On("StartContainer", mock.Anything, id).Return(nil).Once()
	rt.On("PauseContainer", mock.Anything, id).Return(nil).Once()
	rt.On("UnpauseContainer", mock.Anything, id).Return(nil).Once()

	require.NoError(t, m.Start(context.Background(), id))
	require.NoError(t, m.Pause(context.Background(), id))

	// Start is not how you leave paused
	err = m.Start(context.Background(), id)
	require.ErrorAs(t, err, &stateErr)

	require.NoError(t, m.Resume(context.Background(), id))

	status, err := m.Status(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, StateRunning, status.State)

	rt.AssertExpectations(t)
}

func TestManager_ResumeOnlyFromPaused(t *testing.T) {
	rt := &mockRuntime{}
	m := newTestManager(t, rt)
	id := createTestContainer(t, m, rt, "c1")

	var stateErr *StateError
	require.ErrorAs(t, m.Resume(context.Background(), id), &stateErr)
	assert.Equal(t, "resume", stateErr.Op)
}

func TestManager_DeleteTombstones(t *testing.T) {
	rt := &mockRuntime{}
	m := newTestManager(t, rt)
	id := createTestContainer(t, m, rt, "c1")

	rt.On("RemoveContainer", mock.Anything, id, true).Return(nil).Once()

	require.NoError(t, m.Delete(context.Background(), id))

	// Deleting again is a no-op
	require.NoError(t, m.Delete(context.Background(), id))

	// Every other operation now reports not found
	_, err := m.Status(context.Background(), id)
	assert.ErrorIs(t, err, ErrContainerNotFound)
	assert.ErrorIs(t, m.Start(context.Background(), id), ErrContainerNotFound)
	assert.ErrorIs(t, m.Stop(context.Background(), id), ErrContainerNotFound)

	assert.Empty(t, m.List())
	rt.AssertExpectations(t)
}

func TestManager_UnknownContainer(t *testing.T) {
	rt := &mockRuntime{}
	m := newTestManager(t, rt)

	ctx := context.Background()
	assert.ErrorIs(t, m.Start(ctx, "nope"), ErrContainerNotFound)
	assert.ErrorIs(t, m.Delete(ctx, "nope"), ErrContainerNotFound)
	_, err := m.Status(ctx, "nope")
	assert.ErrorIs(t, err, ErrContainerNotFound)
	_, err = m.Logs(ctx, "nope", 100)
	assert.ErrorIs(t, err, ErrContainerNotFound)
}

func TestManager_Logs(t *testing.T) {
	rt := &mockRuntime{}
	m := newTestManager(t, rt)
	id := createTestContainer(t, m, rt, "c1")

	rt.On("ContainerLogs", mock.Anything, id, 50).
		Return(io.NopCloser(strings.NewReader("line1\nline2\n")), nil).Once()

	logs, err := m.Logs(context.Background(), id, 50)
	require.NoError(t, err)
	assert.Equal(t, "line1\nline2\n", logs)

	rt.AssertExpectations(t)
}

func TestManager_ResourcesPercentages(t *testing.T) {
	rt := &mockRuntime{}
	m := newTestManager(t, rt)
	id := createTestContainer(t, m, rt, "c1")

	// Allocation is 4g memory; report half used
	rt.On("ContainerStats", mock.Anything, id).Return(&runtime.Stats{
		CPUPercent:  12.5,
		MemoryBytes: 2 * 1024 * 1024 * 1024,
	}, nil).Once()

	res, err := m.Resources(context.Background(), id)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, res.Usage.MemoryPercent, 0.01)
	assert.InDelta(t, 12.5, res.Usage.CPUPercent, 0.01)
	assert.False(t, res.Usage.OverLimit)
	assert.Equal(t, 2.0, res.Allocation.CPU)

	rt.AssertExpectations(t)
}

func TestManager_ResourcesOverLimitNotClamped(t *testing.T) {
	rt := &mockRuntime{}
	m := newTestManager(t, rt)
	id := createTestContainer(t, m, rt, "c1")

	// Report 6g used against a 4g allocation
	rt.On("ContainerStats", mock.Anything, id).Return(&runtime.Stats{
		MemoryBytes: 6 * 1024 * 1024 * 1024,
	}, nil).Once()

	res, err := m.Resources(context.Background(), id)
	require.NoError(t, err)
	assert.InDelta(t, 150.0, res.Usage.MemoryPercent, 0.01)
	assert.True(t, res.Usage.OverLimit)
}

func TestManager_UpdateAllocation(t *testing.T) {
	rt := &mockRuntime{}
	m := newTestManager(t, rt)
	id := createTestContainer(t, m, rt, "c1")

	rt.On("UpdateResources", mock.Anything, id, runtime.ResourceLimits{
		NanoCPUs:    4 * 1e9,
		MemoryBytes: 8 * 1024 * 1024 * 1024,
		DiskBytes:   50 * 1024 * 1024 * 1024,
	}).Return(nil).Once()

	alloc := Allocation{CPU: 4.0, MemoryBytes: 8 * 1024 * 1024 * 1024, DiskBytes: 50 * 1024 * 1024 * 1024}
	require.NoError(t, m.UpdateAllocation(context.Background(), id, alloc))

	rt.On("ContainerStats", mock.Anything, id).Return(&runtime.Stats{}, nil).Once()
	res, err := m.Resources(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, alloc, res.Allocation)

	rt.AssertExpectations(t)
}

func TestManager_UpdateAllocationRejected(t *testing.T) {
	rt := &mockRuntime{}
	m := newTestManager(t, rt)
	id := createTestContainer(t, m, rt, "c1")

	var cfgErr *ConfigError
	err := m.UpdateAllocation(context.Background(), id, Allocation{CPU: 0, MemoryBytes: 1024})
	require.ErrorAs(t, err, &cfgErr)

	var provErr *ProvisioningError
	err = m.UpdateAllocation(context.Background(), id, Allocation{CPU: 64, MemoryBytes: 1024 * 1024})
	require.ErrorAs(t, err, &provErr)

	rt.AssertNotCalled(t, "UpdateResources", mock.Anything, mock.Anything, mock.Anything)
}

func TestManager_Exec(t *testing.T) {
	rt := &mockRuntime{}
	m := newTestManager(t, rt)
	id := createTestContainer(t, m, rt, "c1")

	// Exec requires a running container
	var stateErr *StateError
	_, err := m.Exec(context.Background(), id, []string{"ls"})
	require.ErrorAs(t, err, &stateErr)

	rt.On("StartContainer", mock.Anything, id).Return(nil).Once()
	require.NoError(t, m.Start(context.Background(), id))

	var cfgErr *ConfigError
	_, err = m.Exec(context.Background(), id, nil)
	require.ErrorAs(t, err, &cfgErr)

	rt.On("Exec", mock.Anything, id, []string{"ls", "/app"}).Return(&runtime.ExecResult{
		ExitCode: 0,
		Stdout:   "main.go\n",
	}, nil).Once()

	res, err := m.Exec(context.Background(), id, []string{"ls", "/app"})
	require.NoError(t, err)
	assert.Equal(t, 0, res.ExitCode)
	assert.Equal(t, "main.go\n", res.Stdout)
	assert.Empty(t, res.Stderr)

	rt.AssertExpectations(t)
}

func TestManager_ExecStreamsAreIsolated(t *testing.T) {
	rt := &mockRuntime{}
	m := newTestManager(t, rt)
	id := createTestContainer(t, m, rt, "c1")

	rt.On("StartContainer", mock.Anything, id).Return(nil).Once()
	require.NoError(t, m.Start(context.Background(), id))

	for i := 0; i < 8; i++ {
		out := fmt.Sprintf("output-%d\n", i)
		rt.On("Exec", mock.Anything, id, []string{"echo", fmt.Sprintf("%d", i)}).
			Return(&runtime.ExecResult{Stdout: out}, nil).Once()
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			res, err := m.Exec(context.Background(), id, []string{"echo", fmt.Sprintf("%d", n)})
			assert.NoError(t, err)
			assert.Equal(t, fmt.Sprintf("output-%d\n", n), res.Stdout)
		}(i)
	}
	wg.Wait()

	rt.AssertExpectations(t)
}

func TestManager_ExecTimeout(t *testing.T) {
	rt := &mockRuntime{}
	m := newTestManager(t, rt)
	id := createTestContainer(t, m, rt, "c1")

	rt.On("StartContainer", mock.Anything, id).Return(nil).Once()
	require.NoError(t, m.Start(context.Background(), id))

	rt.On("Exec", mock.Anything, id, []string{"sleep", "999"}).
		Return(nil, fmt.Errorf("exec: %w", context.DeadlineExceeded)).Once()

	_, err := m.Exec(context.Background(), id, []string{"sleep", "999"})

	var timeoutErr *TimeoutError
	require.ErrorAs(t, err, &timeoutErr)
	assert.Equal(t, "exec", timeoutErr.Op)
}

func TestManager_CopyToContainer(t *testing.T) {
	rt := &mockRuntime{}
	m := newTestManager(t, rt)
	id := createTestContainer(t, m, rt, "c1")

	src := filepath.Join(t.TempDir(), "app.conf")
	require.NoError(t, os.WriteFile(src, []byte("key=value\n"), 0644))

	rt.On("CopyToContainer", mock.Anything, id, src, "/etc/app.conf").Return(nil).Once()
	require.NoError(t, m.CopyToContainer(context.Background(), id, src, "/etc/app.conf"))

	// Missing source surfaces as not-exist
	err := m.CopyToContainer(context.Background(), id, filepath.Join(t.TempDir(), "missing"), "/etc/app.conf")
	assert.ErrorIs(t, err, os.ErrNotExist)

	// Traversal in the container path is rejected before the runtime is called
	var cfgErr *ConfigError
	err = m.CopyToContainer(context.Background(), id, src, "/etc/../../root/x")
	require.ErrorAs(t, err, &cfgErr)

	rt.AssertExpectations(t)
}

func TestManager_CopyFromContainer(t *testing.T) {
	rt := &mockRuntime{}
	m := newTestManager(t, rt)
	id := createTestContainer(t, m, rt, "c1")

	dst := filepath.Join(t.TempDir(), "out.log")

	rt.On("CopyFromContainer", mock.Anything, id, "/var/log/app.log", dst).Return(nil).Once()
	require.NoError(t, m.CopyFromContainer(context.Background(), id, "/var/log/app.log", dst))

	var cfgErr *ConfigError
	err := m.CopyFromContainer(context.Background(), id, "relative/path", dst)
	require.ErrorAs(t, err, &cfgErr)

	rt.AssertExpectations(t)
}

func TestManager_InitializeProject(t *testing.T) {
	rt := &mockRuntime{}
	loader := template.NewLoader(t.TempDir())
	require.NoError(t, loader.Save(testProjectTemplate()))

	m, err := NewManager(testManagerConfig(), rt, loader, nil)
	require.NoError(t, err)

	var captured *runtime.ContainerConfig
	rt.On("CreateContainer", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*runtime.ContainerConfig)
		}).
		Return(&runtime.Container{ID: "p1"}, nil).Once()

	id, err := m.InitializeProject(context.Background(), &ProjectConfig{
		Name:        "storefront",
		ProjectType: template.ProjectWebApp,
		Overrides: &Config{
			Image: "node:22-alpine",
			Environment: []template.EnvVar{
				{Name: "NODE_ENV", Value: "staging"},
			},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "p1", id)

	// Overrides win field-wise; the template fills the rest
	require.NotNil(t, captured)
	assert.Equal(t, "node:22-alpine", captured.Image)
	assert.Equal(t, "storefront", captured.Name)
	assert.Contains(t, captured.Env, "NODE_ENV=staging")
	assert.Equal(t, "web-app", captured.Labels["ade.project_type"])

	status, err := m.Status(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, StateCreated, status.State)

	rt.AssertExpectations(t)
}

func TestManager_InitializeProjectUnknownType(t *testing.T) {
	rt := &mockRuntime{}
	m := newTestManager(t, rt)

	_, err := m.InitializeProject(context.Background(), &ProjectConfig{
		Name:        "x",
		ProjectType: template.ProjectMLTraining,
	})
	assert.ErrorIs(t, err, template.ErrTemplateNotFound)
}

func TestManager_InitializeProjectAtomic(t *testing.T) {
	rt := &mockRuntime{}
	loader := template.NewLoader(t.TempDir())
	require.NoError(t, loader.Save(testProjectTemplate()))

	m, err := NewManager(testManagerConfig(), rt, loader, nil)
	require.NoError(t, err)

	rt.On("CreateContainer", mock.Anything, mock.Anything).Return(nil, errors.New("boom")).Once()

	_, err = m.InitializeProject(context.Background(), &ProjectConfig{
		Name:        "storefront",
		ProjectType: template.ProjectWebApp,
	})
	require.Error(t, err)
	assert.Empty(t, m.List())
}

func TestManager_TemplateDelegation(t *testing.T) {
	rt := &mockRuntime{}
	loader := template.NewLoader(t.TempDir())
	require.NoError(t, loader.Save(testProjectTemplate()))

	m, err := NewManager(testManagerConfig(), rt, loader, nil)
	require.NoError(t, err)

	tpl, err := m.Template(template.ProjectWebApp)
	require.NoError(t, err)
	assert.Equal(t, "web-app-default", tpl.ID)

	assert.Len(t, m.Templates(), 1)

	_, err = m.Template(template.ProjectWorker)
	assert.ErrorIs(t, err, template.ErrTemplateNotFound)
}

func TestManager_LockPerContainer(t *testing.T) {
	rt := &mockRuntime{}
	m := newTestManager(t, rt)

	assert.Same(t, m.lockFor("a"), m.lockFor("a"))
	assert.NotSame(t, m.lockFor("a"), m.lockFor("b"))
}

// Run with -race: lifecycle writes must be visible to concurrent readers
// without tripping the detector.
func TestManager_ConcurrentStatusDuringLifecycle(t *testing.T) {
	rt := &mockRuntime{}
	m := newTestManager(t, rt)
	id := createTestContainer(t, m, rt, "c1")

	rt.On("StartContainer", mock.Anything, id).Return(nil)
	rt.On("PauseContainer", mock.Anything, id).Return(nil)
	rt.On("UnpauseContainer", mock.Anything, id).Return(nil)

	require.NoError(t, m.Start(context.Background(), id))

	const iterations = 200
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < iterations; i++ {
			require.NoError(t, m.Pause(context.Background(), id))
			require.NoError(t, m.Resume(context.Background(), id))
		}
	}()

	go func() {
		defer wg.Done()
		for i := 0; i < iterations; i++ {
			status, err := m.Status(context.Background(), id)
			require.NoError(t, err)
			assert.Contains(t, []State{StateRunning, StatePaused}, status.State)
			require.Len(t, m.List(), 1)
		}
	}()

	wg.Wait()

	status, err := m.Status(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, StateRunning, status.State)
}

func testProjectTemplate() *template.ContainerTemplate {
	return &template.ContainerTemplate{
		ID:          "web-app-default",
		Name:        "Web Application",
		Version:     "1.0.0",
		ProjectType: template.ProjectWebApp,
		BaseImage:   "node:20-alpine",
		DefaultResources: &template.ResourceSpec{
			CPU:    template.CPUSpec{Limit: 2.0, Reservation: 0.5},
			Memory: template.SizeSpec{Limit: "4g", Reservation: "512m"},
			Disk:   template.SizeSpec{Limit: "20g", Reservation: "5g"},
		},
		DefaultEnvironment: []template.EnvVar{
			{Name: "NODE_ENV", Value: "production"},
		},
		DefaultPorts: []template.PortMapping{
			{HostPort: 8080, ContainerPort: 3000, Protocol: "tcp"},
		},
		Description: "Default template for web applications",
		Tags:        []string{"web", "node"},
	}
}
