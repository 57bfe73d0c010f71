package container

// State is the lifecycle state of a managed container. Transitions are
// monotonic except running and paused, which are mutually reversible;
// deleted is terminal.
type State string

const (
	StateCreated State = "created"
	StateRunning State = "running"
	StatePaused  State = "paused"
	StateStopped State = "stopped"
	StateDeleted State = "deleted"
)

// Health is the observed health of a running container
type Health string

const (
	HealthUnknown   Health = "unknown"
	HealthStarting  Health = "starting"
	HealthHealthy   Health = "healthy"
	HealthUnhealthy Health = "unhealthy"
)

// transitions maps each state to the states reachable from it
var transitions = map[State][]State{
	StateCreated: {StateRunning, StateStopped, StateDeleted},
	StateRunning: {StatePaused, StateStopped, StateDeleted},
	StatePaused:  {StateRunning, StateStopped, StateDeleted},
	StateStopped: {StateDeleted},
	StateDeleted: {},
}

// CanTransition reports whether moving from one state to another is legal
func CanTransition(from, to State) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
