package template

import (
	"fmt"
	"regexp"
)

// ValidationError reports a template field that failed validation
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("template validation failed: field %q %s", e.Field, e.Reason)
}

// sizeRegex matches resource size strings like "512m" or "4G". The numeric
// part must be a positive integer; leading zeros are tolerated.
var sizeRegex = regexp.MustCompile(`^0*[1-9][0-9]*[bkmgBKMG]$`)

var validProtocols = map[string]bool{"tcp": true, "udp": true}
var validVolumeTypes = map[string]bool{"bind": true, "volume": true, "tmpfs": true}

// ValidSize reports whether s is a well-formed memory/disk size string
func ValidSize(s string) bool {
	return sizeRegex.MatchString(s)
}

// Validate checks a template for missing required fields and malformed
// resource, environment, port, volume and network entries. The returned error
// names the first offending field.
func Validate(tpl *ContainerTemplate) error {
	if tpl == nil {
		return &ValidationError{Field: "template", Reason: "is nil"}
	}
	if tpl.ID == "" {
		return &ValidationError{Field: "id", Reason: "is required"}
	}
	if tpl.Name == "" {
		return &ValidationError{Field: "name", Reason: "is required"}
	}
	if tpl.ProjectType == "" {
		return &ValidationError{Field: "projectType", Reason: "is required"}
	}
	if tpl.BaseImage == "" {
		return &ValidationError{Field: "baseImage", Reason: "is required"}
	}
	if tpl.DefaultResources == nil {
		return &ValidationError{Field: "defaultResources", Reason: "is required"}
	}
	if tpl.Description == "" {
		return &ValidationError{Field: "description", Reason: "is required"}
	}
	if len(tpl.Tags) == 0 {
		return &ValidationError{Field: "tags", Reason: "is required"}
	}

	if err := validateResources(tpl.DefaultResources); err != nil {
		return err
	}

	for i, env := range tpl.DefaultEnvironment {
		if env.Name == "" {
			return &ValidationError{Field: fmt.Sprintf("defaultEnvironment[%d].name", i), Reason: "is required"}
		}
		if env.Value == "" {
			return &ValidationError{Field: fmt.Sprintf("defaultEnvironment[%d].value", i), Reason: "is required"}
		}
	}

	for i, port := range tpl.DefaultPorts {
		if port.HostPort <= 0 || port.HostPort > 65535 {
			return &ValidationError{Field: fmt.Sprintf("defaultPorts[%d].hostPort", i), Reason: "must be between 1 and 65535"}
		}
		if port.ContainerPort <= 0 || port.ContainerPort > 65535 {
			return &ValidationError{Field: fmt.Sprintf("defaultPorts[%d].containerPort", i), Reason: "must be between 1 and 65535"}
		}
		if !validProtocols[port.Protocol] {
			return &ValidationError{Field: fmt.Sprintf("defaultPorts[%d].protocol", i), Reason: "must be tcp or udp"}
		}
	}

	for i, vol := range tpl.DefaultVolumes {
		if vol.Source == "" {
			return &ValidationError{Field: fmt.Sprintf("defaultVolumes[%d].source", i), Reason: "is required"}
		}
		if vol.Target == "" {
			return &ValidationError{Field: fmt.Sprintf("defaultVolumes[%d].target", i), Reason: "is required"}
		}
		if !validVolumeTypes[vol.Type] {
			return &ValidationError{Field: fmt.Sprintf("defaultVolumes[%d].type", i), Reason: "must be bind, volume or tmpfs"}
		}
	}

	for i, net := range tpl.DefaultNetworks {
		if net.Name == "" {
			return &ValidationError{Field: fmt.Sprintf("defaultNetworks[%d].name", i), Reason: "is required"}
		}
		if net.Driver == "" {
			return &ValidationError{Field: fmt.Sprintf("defaultNetworks[%d].driver", i), Reason: "is required"}
		}
	}

	return nil
}

func validateResources(res *ResourceSpec) error {
	if res.CPU.Limit <= 0 {
		return &ValidationError{Field: "defaultResources.cpu.limit", Reason: "must be a strictly positive number"}
	}
	if res.CPU.Reservation <= 0 {
		return &ValidationError{Field: "defaultResources.cpu.reservation", Reason: "must be a strictly positive number"}
	}
	if !ValidSize(res.Memory.Limit) {
		return &ValidationError{Field: "defaultResources.memory.limit", Reason: "must match <positive integer><b|k|m|g>"}
	}
	if !ValidSize(res.Memory.Reservation) {
		return &ValidationError{Field: "defaultResources.memory.reservation", Reason: "must match <positive integer><b|k|m|g>"}
	}
	if !ValidSize(res.Disk.Limit) {
		return &ValidationError{Field: "defaultResources.disk.limit", Reason: "must match <positive integer><b|k|m|g>"}
	}
	if !ValidSize(res.Disk.Reservation) {
		return &ValidationError{Field: "defaultResources.disk.reservation", Reason: "must match <positive integer><b|k|m|g>"}
	}
	return nil
}
