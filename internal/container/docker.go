package container

import (
	"archive/tar"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/mount"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/stdcopy"
	"github.com/docker/go-connections/nat"
	"github.com/rs/zerolog/log"

	"github.com/arashek/ade/pkg/runtime"
)

// DockerRuntime implements the Runtime interface using the Docker API
type DockerRuntime struct {
	client *client.Client
}

// NewDockerRuntime creates a new Docker runtime instance
func NewDockerRuntime() (*DockerRuntime, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("failed to create Docker client: %w", err)
	}

	return &DockerRuntime{client: cli}, nil
}

// CreateContainer creates a new container
func (d *DockerRuntime) CreateContainer(ctx context.Context, config *runtime.ContainerConfig) (*runtime.Container, error) {
	exposedPorts := make(nat.PortSet)
	portBindings := make(nat.PortMap)

	for _, p := range config.Ports {
		proto := p.Protocol
		if proto == "" {
			proto = "tcp"
		}
		containerPort := nat.Port(fmt.Sprintf("%d/%s", p.ContainerPort, proto))
		exposedPorts[containerPort] = struct{}{}
		portBindings[containerPort] = []nat.PortBinding{
			{
				HostIP:   "0.0.0.0",
				HostPort: strconv.Itoa(p.HostPort),
			},
		}
	}

	var mounts []mount.Mount
	for _, v := range config.Volumes {
		mounts = append(mounts, mount.Mount{
			Type:     mount.Type(v.Type),
			Source:   v.Source,
			Target:   v.Target,
			ReadOnly: v.ReadOnly,
		})
	}

	containerConfig := &container.Config{
		Image:        config.Image,
		Env:          config.Env,
		ExposedPorts: exposedPorts,
		WorkingDir:   config.WorkingDir,
		Cmd:          config.Cmd,
		Labels:       config.Labels,
	}

	hostConfig := &container.HostConfig{
		PortBindings:   portBindings,
		Mounts:         mounts,
		Privileged:     config.Security.Privileged,
		ReadonlyRootfs: config.Security.ReadOnlyRootfs,
		CapDrop:        config.Security.CapDrop,
		SecurityOpt:    config.Security.SecurityOpt,
		Resources: container.Resources{
			NanoCPUs: config.Resources.NanoCPUs,
			Memory:   config.Resources.MemoryBytes,
		},
	}
	if config.Security.NoNewPrivileges {
		hostConfig.SecurityOpt = append(hostConfig.SecurityOpt, "no-new-privileges:true")
	}
	if config.Security.NetworkMode != "" {
		hostConfig.NetworkMode = container.NetworkMode(config.Security.NetworkMode)
	}

	var networkingConfig *network.NetworkingConfig
	if len(config.Networks) > 0 {
		endpoints := make(map[string]*network.EndpointSettings, len(config.Networks))
		for _, name := range config.Networks {
			endpoints[name] = &network.EndpointSettings{}
		}
		networkingConfig = &network.NetworkingConfig{EndpointsConfig: endpoints}
	}

	resp, err := d.client.ContainerCreate(ctx, containerConfig, hostConfig, networkingConfig, nil, config.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to create container: %w", err)
	}

	log.Info().Str("id", resp.ID).Str("name", config.Name).Str("image", config.Image).Msg("Container created")

	created, err := d.InspectContainer(ctx, resp.ID)
	if err != nil {
		// The container exists even though the inspect failed. Hand the id
		// back with the error so the caller can clean it up.
		return &runtime.Container{ID: resp.ID}, err
	}
	return created, nil
}

// StartContainer starts a container
func (d *DockerRuntime) StartContainer(ctx context.Context, containerID string) error {
	if err := d.client.ContainerStart(ctx, containerID, container.StartOptions{}); err != nil {
		return fmt.Errorf("failed to start container %s: %w", containerID, err)
	}

	log.Info().Str("id", containerID).Msg("Container started")
	return nil
}

// StopContainer stops a container
func (d *DockerRuntime) StopContainer(ctx context.Context, containerID string) error {
	timeout := 30 // seconds
	if err := d.client.ContainerStop(ctx, containerID, container.StopOptions{Timeout: &timeout}); err != nil {
		return fmt.Errorf("failed to stop container %s: %w", containerID, err)
	}

	log.Info().Str("id", containerID).Msg("Container stopped")
	return nil
}

// PauseContainer suspends all processes in a container
func (d *DockerRuntime) PauseContainer(ctx context.Context, containerID string) error {
	if err := d.client.ContainerPause(ctx, containerID); err != nil {
		return fmt.Errorf("failed to pause container %s: %w", containerID, err)
	}

	log.Info().Str("id", containerID).Msg("Container paused")
	return nil
}

// UnpauseContainer resumes a paused container
func (d *DockerRuntime) UnpauseContainer(ctx context.Context, containerID string) error {
	if err := d.client.ContainerUnpause(ctx, containerID); err != nil {
		return fmt.Errorf("failed to unpause container %s: %w", containerID, err)
	}

	log.Info().Str("id", containerID).Msg("Container unpaused")
	return nil
}

// RemoveContainer removes a container
func (d *DockerRuntime) RemoveContainer(ctx context.Context, containerID string, force bool) error {
	if err := d.client.ContainerRemove(ctx, containerID, container.RemoveOptions{Force: force}); err != nil {
		return fmt.Errorf("failed to remove container %s: %w", containerID, err)
	}

	log.Info().Str("id", containerID).Bool("force", force).Msg("Container removed")
	return nil
}

// ListContainers lists containers
func (d *DockerRuntime) ListContainers(ctx context.Context, all bool) ([]*runtime.Container, error) {
	containers, err := d.client.ContainerList(ctx, container.ListOptions{All: all})
	if err != nil {
		return nil, fmt.Errorf("failed to list containers: %w", err)
	}

	var result []*runtime.Container
	for _, c := range containers {
		var ports []int
		for _, port := range c.Ports {
			if port.PublicPort > 0 {
				ports = append(ports, int(port.PublicPort))
			}
		}

		name := ""
		if len(c.Names) > 0 {
			name = strings.TrimPrefix(c.Names[0], "/")
		}

		result = append(result, &runtime.Container{
			ID:      c.ID,
			Image:   c.Image,
			Name:    name,
			Status:  c.State,
			Ports:   ports,
			Labels:  c.Labels,
			Created: c.Created,
		})
	}

	return result, nil
}

// InspectContainer inspects a container
func (d *DockerRuntime) InspectContainer(ctx context.Context, containerID string) (*runtime.Container, error) {
	resp, err := d.client.ContainerInspect(ctx, containerID)
	if err != nil {
		return nil, fmt.Errorf("failed to inspect container %s: %w", containerID, err)
	}

	var ports []int
	if resp.NetworkSettings != nil && resp.NetworkSettings.Ports != nil {
		for _, bindings := range resp.NetworkSettings.Ports {
			for _, binding := range bindings {
				if binding.HostPort != "" {
					if port, err := strconv.Atoi(binding.HostPort); err == nil {
						ports = append(ports, port)
					}
				}
			}
		}
	}

	name := strings.TrimPrefix(resp.Name, "/")

	return &runtime.Container{
		ID:     resp.ID,
		Image:  resp.Config.Image,
		Name:   name,
		Status: string(resp.State.Status),
		Ports:  ports,
		Labels: resp.Config.Labels,
	}, nil
}

// ContainerLogs returns the last tail lines of a container's output
func (d *DockerRuntime) ContainerLogs(ctx context.Context, containerID string, tail int) (io.ReadCloser, error) {
	opts := container.LogsOptions{
		ShowStdout: true,
		ShowStderr: true,
		Timestamps: true,
	}
	if tail > 0 {
		opts.Tail = strconv.Itoa(tail)
	}

	logs, err := d.client.ContainerLogs(ctx, containerID, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get logs for container %s: %w", containerID, err)
	}

	return logs, nil
}

// ContainerStats returns a single resource usage sample
func (d *DockerRuntime) ContainerStats(ctx context.Context, containerID string) (*runtime.Stats, error) {
	resp, err := d.client.ContainerStats(ctx, containerID, false)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats for container %s: %w", containerID, err)
	}
	defer resp.Body.Close()

	var raw container.StatsResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode stats for container %s: %w", containerID, err)
	}

	stats := &runtime.Stats{
		CPUNanos:    int64(raw.CPUStats.CPUUsage.TotalUsage),
		MemoryBytes: int64(raw.MemoryStats.Usage),
		MemoryLimit: int64(raw.MemoryStats.Limit),
	}

	// CPU percent from the delta against the previous sample, the same way
	// the docker CLI computes it
	cpuDelta := float64(raw.CPUStats.CPUUsage.TotalUsage) - float64(raw.PreCPUStats.CPUUsage.TotalUsage)
	sysDelta := float64(raw.CPUStats.SystemUsage) - float64(raw.PreCPUStats.SystemUsage)
	if cpuDelta > 0 && sysDelta > 0 {
		onlineCPUs := float64(raw.CPUStats.OnlineCPUs)
		if onlineCPUs == 0 {
			onlineCPUs = float64(len(raw.CPUStats.CPUUsage.PercpuUsage))
		}
		stats.CPUPercent = cpuDelta / sysDelta * onlineCPUs * 100
	}

	return stats, nil
}

// Exec runs a command inside the container and captures its output. Each
// call demuxes into its own buffers, so concurrent execs never share streams.
func (d *DockerRuntime) Exec(ctx context.Context, containerID string, cmd []string) (*runtime.ExecResult, error) {
	created, err := d.client.ContainerExecCreate(ctx, containerID, container.ExecOptions{
		Cmd:          cmd,
		AttachStdout: true,
		AttachStderr: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create exec in container %s: %w", containerID, err)
	}

	attach, err := d.client.ContainerExecAttach(ctx, created.ID, container.ExecStartOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to attach exec in container %s: %w", containerID, err)
	}
	defer attach.Close()

	var stdout, stderr bytes.Buffer
	if _, err := stdcopy.StdCopy(&stdout, &stderr, attach.Reader); err != nil {
		return nil, fmt.Errorf("failed to read exec output from container %s: %w", containerID, err)
	}

	inspect, err := d.client.ContainerExecInspect(ctx, created.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to inspect exec in container %s: %w", containerID, err)
	}

	return &runtime.ExecResult{
		ExitCode: inspect.ExitCode,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}, nil
}

// CopyToContainer copies a host file into the container. The Docker API
// consumes a tar stream, so the source file is wrapped on the fly.
func (d *DockerRuntime) CopyToContainer(ctx context.Context, containerID, srcPath, dstPath string) error {
	content, err := tarFile(srcPath, filepath.Base(dstPath))
	if err != nil {
		return fmt.Errorf("failed to prepare %s for copy: %w", srcPath, err)
	}

	dstDir := filepath.Dir(dstPath)
	if err := d.client.CopyToContainer(ctx, containerID, dstDir, content, container.CopyToContainerOptions{}); err != nil {
		return fmt.Errorf("failed to copy %s into container %s: %w", srcPath, containerID, err)
	}

	log.Debug().Str("id", containerID).Str("src", srcPath).Str("dst", dstPath).Msg("File copied into container")
	return nil
}

// CopyFromContainer copies a file out of the container onto the host
func (d *DockerRuntime) CopyFromContainer(ctx context.Context, containerID, srcPath, dstPath string) error {
	reader, _, err := d.client.CopyFromContainer(ctx, containerID, srcPath)
	if err != nil {
		return fmt.Errorf("failed to copy %s from container %s: %w", srcPath, containerID, err)
	}
	defer reader.Close()

	if err := untarFile(reader, dstPath); err != nil {
		return fmt.Errorf("failed to write %s from container %s: %w", dstPath, containerID, err)
	}

	log.Debug().Str("id", containerID).Str("src", srcPath).Str("dst", dstPath).Msg("File copied from container")
	return nil
}

// UpdateResources applies new resource limits to a running container
func (d *DockerRuntime) UpdateResources(ctx context.Context, containerID string, limits runtime.ResourceLimits) error {
	_, err := d.client.ContainerUpdate(ctx, containerID, container.UpdateConfig{
		Resources: container.Resources{
			NanoCPUs: limits.NanoCPUs,
			Memory:   limits.MemoryBytes,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to update resources for container %s: %w", containerID, err)
	}

	log.Info().Str("id", containerID).Int64("nano_cpus", limits.NanoCPUs).Int64("memory", limits.MemoryBytes).Msg("Container resources updated")
	return nil
}

// Ping checks if Docker is responsive
func (d *DockerRuntime) Ping(ctx context.Context) error {
	if _, err := d.client.Ping(ctx); err != nil {
		return fmt.Errorf("Docker ping failed: %w", err)
	}
	return nil
}

// Version returns the Docker server version
func (d *DockerRuntime) Version(ctx context.Context) (string, error) {
	version, err := d.client.ServerVersion(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get Docker version: %w", err)
	}
	return version.Version, nil
}

// tarFile wraps a single file into an in-memory tar archive under name
func tarFile(srcPath, name string) (io.Reader, error) {
	info, err := os.Stat(srcPath)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory, only files can be copied", srcPath)
	}

	data, err := os.ReadFile(srcPath)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)
	hdr := &tar.Header{
		Name: name,
		Mode: int64(info.Mode().Perm()),
		Size: info.Size(),
	}
	if err := tw.WriteHeader(hdr); err != nil {
		return nil, err
	}
	if _, err := tw.Write(data); err != nil {
		return nil, err
	}
	if err := tw.Close(); err != nil {
		return nil, err
	}

	return &buf, nil
}

// untarFile extracts the first regular file from a tar stream to dstPath
func untarFile(r io.Reader, dstPath string) error {
	tr := tar.NewReader(r)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return fmt.Errorf("archive contained no regular file")
		}
		if err != nil {
			return err
		}
		if hdr.Typeflag != tar.TypeReg {
			continue
		}

		out, err := os.OpenFile(dstPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, os.FileMode(hdr.Mode).Perm())
		if err != nil {
			return err
		}
		if _, err := io.Copy(out, tr); err != nil {
			out.Close()
			return err
		}
		return out.Close()
	}
}
