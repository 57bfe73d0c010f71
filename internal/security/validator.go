package security

// Severity grades a compliance rule
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// ComplianceRule is a named predicate over a security policy. The check
// returns pass/fail plus the message for the failing case.
type ComplianceRule struct {
	ID          string
	Severity    Severity
	Description string
	Check       func(*SecurityPolicy) (bool, string)
}

// ComplianceResult binds a rule to its outcome for one policy
type ComplianceResult struct {
	RuleID   string   `json:"ruleId"`
	Passed   bool     `json:"passed"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// Summary aggregates compliance results for reporting
type Summary struct {
	Total      int              `json:"total"`
	Passed     int              `json:"passed"`
	Failed     int              `json:"failed"`
	BySeverity map[Severity]int `json:"failedBySeverity"`
}

// Validator applies a fixed battery of compliance rules to security policies.
// The rule set is defined once at construction and immutable afterwards; the
// validator holds no per-call state and is safe for concurrent use.
type Validator struct {
	rules []ComplianceRule
}

// NewValidator builds a validator with the standard rule set
func NewValidator() *Validator {
	return &Validator{rules: standardRules()}
}

// Rules returns the registered rules in evaluation order
func (v *Validator) Rules() []ComplianceRule {
	out := make([]ComplianceRule, len(v.rules))
	copy(out, v.rules)
	return out
}

// Validate evaluates every registered rule against the policy, in registration
// order, and returns one result per rule. It never short-circuits on failure.
func (v *Validator) Validate(policy *SecurityPolicy) []ComplianceResult {
	if policy == nil {
		policy = &SecurityPolicy{}
	}

	results := make([]ComplianceResult, 0, len(v.rules))
	for _, rule := range v.rules {
		passed, failMsg := rule.Check(policy)
		msg := rule.Description
		if !passed {
			msg = failMsg
		}
		results = append(results, ComplianceResult{
			RuleID:   rule.ID,
			Passed:   passed,
			Severity: rule.Severity,
			Message:  msg,
		})
	}
	return results
}

// Summarize aggregates pass/fail counts, with failures broken down by severity
func Summarize(results []ComplianceResult) Summary {
	s := Summary{
		Total:      len(results),
		BySeverity: make(map[Severity]int),
	}
	for _, r := range results {
		if r.Passed {
			s.Passed++
		} else {
			s.Failed++
			s.BySeverity[r.Severity]++
		}
	}
	return s
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}

func standardRules() []ComplianceRule {
	return []ComplianceRule{
		{
			ID:          "PRIVILEGED_MODE",
			Severity:    SeverityCritical,
			Description: "Container is not running in privileged mode",
			Check: func(p *SecurityPolicy) (bool, string) {
				if p.Privileged {
					return false, "Container is running in privileged mode, which is a security risk"
				}
				return true, ""
			},
		},
		{
			ID:          "USER_NAMESPACE",
			Severity:    SeverityHigh,
			Description: "User namespace remapping is enabled",
			Check: func(p *SecurityPolicy) (bool, string) {
				if !p.UserNamespace {
					return false, "User namespace remapping is disabled, container root maps to host root"
				}
				return true, ""
			},
		},
		{
			ID:          "READ_ONLY_ROOT",
			Severity:    SeverityHigh,
			Description: "Root filesystem is read-only",
			Check: func(p *SecurityPolicy) (bool, string) {
				if !p.ReadOnlyRootfs {
					return false, "Root filesystem is writable, allowing runtime tampering with the image"
				}
				return true, ""
			},
		},
		{
			ID:          "NO_NEW_PRIVILEGES",
			Severity:    SeverityHigh,
			Description: "Processes cannot gain additional privileges",
			Check: func(p *SecurityPolicy) (bool, string) {
				if !p.NoNewPrivileges {
					return false, "no-new-privileges is not set, processes may escalate via setuid binaries"
				}
				return true, ""
			},
		},
		{
			ID:          "CAPABILITY_DROP",
			Severity:    SeverityHigh,
			Description: "All Linux capabilities are dropped by default",
			Check: func(p *SecurityPolicy) (bool, string) {
				if !contains(p.Capabilities.Drop, "ALL") {
					return false, "Capability drop list does not include ALL, container keeps default capabilities"
				}
				return true, ""
			},
		},
		{
			ID:          "NETWORK_MODE",
			Severity:    SeverityHigh,
			Description: "Container does not share the host network namespace",
			Check: func(p *SecurityPolicy) (bool, string) {
				if p.NetworkMode == "host" {
					return false, "Container uses host networking, exposing all host interfaces"
				}
				return true, ""
			},
		},
		{
			// TODO: requiring seccomp=unconfined here disables seccomp
			// filtering entirely. The rule should almost certainly demand a
			// seccomp profile instead; kept as-is to match the deployed
			// compliance baseline until the baseline itself is revised.
			ID:          "SECURITY_OPTS",
			Severity:    SeverityMedium,
			Description: "Required security options are present",
			Check: func(p *SecurityPolicy) (bool, string) {
				if !contains(p.SecurityOpts, "no-new-privileges:true") || !contains(p.SecurityOpts, "seccomp=unconfined") {
					return false, "Security options must include both no-new-privileges:true and seccomp=unconfined"
				}
				return true, ""
			},
		},
		{
			ID:          "RESOURCE_LIMITS",
			Severity:    SeverityMedium,
			Description: "Process and file descriptor limits are set",
			Check: func(p *SecurityPolicy) (bool, string) {
				if p.Ulimits.NoFile <= 0 || p.Ulimits.NProc <= 0 {
					return false, "Ulimits for open files and processes must both be set to positive values"
				}
				return true, ""
			},
		},
		{
			ID:          "EXPOSED_PORTS",
			Severity:    SeverityMedium,
			Description: "No ports are exposed directly",
			Check: func(p *SecurityPolicy) (bool, string) {
				if len(p.ExposedPorts) > 0 {
					return false, "Container exposes ports directly, widening the attack surface"
				}
				return true, ""
			},
		},
		{
			ID:          "ALLOWED_IPS",
			Severity:    SeverityMedium,
			Description: "Ingress is restricted to an allow-list of IPs",
			Check: func(p *SecurityPolicy) (bool, string) {
				if len(p.AllowedIPs) == 0 {
					return false, "No allowed IPs configured, ingress is unrestricted"
				}
				return true, ""
			},
		},
	}
}
