package container

import (
	"fmt"

	"github.com/docker/go-units"

	"github.com/arashek/ade/internal/template"
	"github.com/arashek/ade/pkg/validation"
)

var validProtocols = map[string]bool{"tcp": true, "udp": true}
var validVolumeTypes = map[string]bool{"bind": true, "volume": true, "tmpfs": true}

// ValidateConfig checks a container config before any provisioning call is
// attempted. Errors name the offending field.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return &ConfigError{Field: "config", Reason: "is nil"}
	}
	if cfg.Name == "" {
		return &ConfigError{Field: "name", Reason: "is required"}
	}
	if cfg.Image == "" {
		return &ConfigError{Field: "image", Reason: "is required"}
	}

	name, ref := validation.ParseImageReference(cfg.Image)
	if err := validation.ValidateRepositoryName(stripRegistry(name)); err != nil {
		return &ConfigError{Field: "image", Reason: err.Error()}
	}
	if err := validation.ValidateReference(ref); err != nil {
		return &ConfigError{Field: "image", Reason: err.Error()}
	}

	if cfg.Resources != nil {
		if cfg.Resources.CPU.Limit <= 0 {
			return &ConfigError{Field: "resources.cpu.limit", Reason: "must be a strictly positive number"}
		}
		if cfg.Resources.CPU.Reservation <= 0 {
			return &ConfigError{Field: "resources.cpu.reservation", Reason: "must be a strictly positive number"}
		}
		for field, value := range map[string]string{
			"resources.memory.limit":       cfg.Resources.Memory.Limit,
			"resources.memory.reservation": cfg.Resources.Memory.Reservation,
			"resources.disk.limit":         cfg.Resources.Disk.Limit,
			"resources.disk.reservation":   cfg.Resources.Disk.Reservation,
		} {
			if !template.ValidSize(value) {
				return &ConfigError{Field: field, Reason: fmt.Sprintf("must match <positive integer><b|k|m|g>, got %q", value)}
			}
		}
	}

	for i, env := range cfg.Environment {
		if env.Name == "" {
			return &ConfigError{Field: fmt.Sprintf("environment[%d].name", i), Reason: "is required"}
		}
	}

	for i, port := range cfg.Ports {
		if port.HostPort <= 0 || port.HostPort > 65535 {
			return &ConfigError{Field: fmt.Sprintf("ports[%d].hostPort", i), Reason: "must be between 1 and 65535"}
		}
		if port.ContainerPort <= 0 || port.ContainerPort > 65535 {
			return &ConfigError{Field: fmt.Sprintf("ports[%d].containerPort", i), Reason: "must be between 1 and 65535"}
		}
		if !validProtocols[port.Protocol] {
			return &ConfigError{Field: fmt.Sprintf("ports[%d].protocol", i), Reason: "must be tcp or udp"}
		}
	}

	for i, vol := range cfg.Volumes {
		if vol.Source == "" {
			return &ConfigError{Field: fmt.Sprintf("volumes[%d].source", i), Reason: "is required"}
		}
		if vol.Target == "" {
			return &ConfigError{Field: fmt.Sprintf("volumes[%d].target", i), Reason: "is required"}
		}
		if !validVolumeTypes[vol.Type] {
			return &ConfigError{Field: fmt.Sprintf("volumes[%d].type", i), Reason: "must be bind, volume or tmpfs"}
		}
	}

	for i, net := range cfg.Networks {
		if net.Name == "" {
			return &ConfigError{Field: fmt.Sprintf("networks[%d].name", i), Reason: "is required"}
		}
	}

	return nil
}

// allocationFromSpec converts a validated resource spec into numeric budgets
func allocationFromSpec(spec *template.ResourceSpec) (Allocation, error) {
	if spec == nil {
		return Allocation{}, nil
	}

	mem, err := units.RAMInBytes(spec.Memory.Limit)
	if err != nil {
		return Allocation{}, fmt.Errorf("invalid memory limit %q: %w", spec.Memory.Limit, err)
	}
	disk, err := units.RAMInBytes(spec.Disk.Limit)
	if err != nil {
		return Allocation{}, fmt.Errorf("invalid disk limit %q: %w", spec.Disk.Limit, err)
	}

	return Allocation{
		CPU:         spec.CPU.Limit,
		MemoryBytes: mem,
		DiskBytes:   disk,
	}, nil
}

// stripRegistry removes a leading registry host from an image name so the
// remaining repository path can be validated
func stripRegistry(name string) string {
	for i := 0; i < len(name); i++ {
		if name[i] == '/' {
			head := name[:i]
			for j := 0; j < len(head); j++ {
				if head[j] == '.' || head[j] == ':' {
					return name[i+1:]
				}
			}
			return name
		}
	}
	return name
}
