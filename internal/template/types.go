package template

import "time"

// ProjectType categorizes projects for default template selection
type ProjectType string

const (
	ProjectWebApp       ProjectType = "web-app"
	ProjectAPIService   ProjectType = "api-service"
	ProjectDataPipeline ProjectType = "data-pipeline"
	ProjectMLTraining   ProjectType = "ml-training"
	ProjectStaticSite   ProjectType = "static-site"
	ProjectWorker       ProjectType = "worker"
	ProjectCustom       ProjectType = "custom"
)

// CPUSpec is a cpu budget in cores (fractional allowed)
type CPUSpec struct {
	Limit       float64 `yaml:"limit" json:"limit"`
	Reservation float64 `yaml:"reservation" json:"reservation"`
}

// SizeSpec is a memory or disk budget expressed as <positive integer><b|k|m|g>
type SizeSpec struct {
	Limit       string `yaml:"limit" json:"limit"`
	Reservation string `yaml:"reservation" json:"reservation"`
}

// ResourceSpec is the requested/limit resource budget for a container
type ResourceSpec struct {
	CPU    CPUSpec  `yaml:"cpu" json:"cpu"`
	Memory SizeSpec `yaml:"memory" json:"memory"`
	Disk   SizeSpec `yaml:"disk" json:"disk"`
}

// EnvVar is a single environment variable entry
type EnvVar struct {
	Name  string `yaml:"name" json:"name"`
	Value string `yaml:"value" json:"value"`
}

// PortMapping maps a host port to a container port
type PortMapping struct {
	HostPort      int    `yaml:"hostPort" json:"hostPort"`
	ContainerPort int    `yaml:"containerPort" json:"containerPort"`
	Protocol      string `yaml:"protocol" json:"protocol"`
}

// VolumeMount describes a mount into the container
type VolumeMount struct {
	Source   string `yaml:"source" json:"source"`
	Target   string `yaml:"target" json:"target"`
	Type     string `yaml:"type" json:"type"`
	ReadOnly bool   `yaml:"readOnly,omitempty" json:"readOnly,omitempty"`
}

// NetworkAttachment describes a network the container joins
type NetworkAttachment struct {
	Name   string `yaml:"name" json:"name"`
	Driver string `yaml:"driver" json:"driver"`
}

// ContainerTemplate is a named, versioned blueprint for creating containers
// of a given project type
type ContainerTemplate struct {
	ID                 string              `yaml:"id" json:"id"`
	Name               string              `yaml:"name" json:"name"`
	Version            string              `yaml:"version,omitempty" json:"version,omitempty"`
	ProjectType        ProjectType         `yaml:"projectType" json:"projectType"`
	BaseImage          string              `yaml:"baseImage" json:"baseImage"`
	DefaultResources   *ResourceSpec       `yaml:"defaultResources" json:"defaultResources"`
	DefaultEnvironment []EnvVar            `yaml:"defaultEnvironment,omitempty" json:"defaultEnvironment,omitempty"`
	DefaultPorts       []PortMapping       `yaml:"defaultPorts,omitempty" json:"defaultPorts,omitempty"`
	DefaultVolumes     []VolumeMount       `yaml:"defaultVolumes,omitempty" json:"defaultVolumes,omitempty"`
	DefaultNetworks    []NetworkAttachment `yaml:"defaultNetworks,omitempty" json:"defaultNetworks,omitempty"`
	Description        string              `yaml:"description" json:"description"`
	Tags               []string            `yaml:"tags" json:"tags"`
	CreatedAt          time.Time           `yaml:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt          time.Time           `yaml:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
