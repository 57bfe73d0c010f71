package container

import (
	"github.com/arashek/ade/internal/template"
)

// MergeTemplate builds a container config from a template and the project's
// overrides. Caller-supplied values win field-wise; slices replace wholesale
// rather than concatenating, so an override of one port list is the port list.
func MergeTemplate(tpl *template.ContainerTemplate, project *ProjectConfig) *Config {
	cfg := &Config{
		Name:        project.Name,
		Image:       tpl.BaseImage,
		Environment: tpl.DefaultEnvironment,
		Ports:       tpl.DefaultPorts,
		Volumes:     tpl.DefaultVolumes,
		Networks:    tpl.DefaultNetworks,
		Labels: map[string]string{
			"ade.project_type": string(tpl.ProjectType),
			"ade.template":     tpl.ID,
		},
	}

	if tpl.DefaultResources != nil {
		res := *tpl.DefaultResources
		cfg.Resources = &res
	}

	o := project.Overrides
	if o == nil {
		return cfg
	}

	if o.Image != "" {
		cfg.Image = o.Image
	}
	if o.Resources != nil {
		res := *o.Resources
		cfg.Resources = &res
	}
	if o.Environment != nil {
		cfg.Environment = o.Environment
	}
	if o.Ports != nil {
		cfg.Ports = o.Ports
	}
	if o.Volumes != nil {
		cfg.Volumes = o.Volumes
	}
	if o.Networks != nil {
		cfg.Networks = o.Networks
	}
	if o.Command != nil {
		cfg.Command = o.Command
	}
	if o.WorkingDir != "" {
		cfg.WorkingDir = o.WorkingDir
	}
	if o.Security != nil {
		cfg.Security = o.Security
	}
	for k, v := range o.Labels {
		cfg.Labels[k] = v
	}

	return cfg
}
