package events

import (
	"time"
)

type EventType string

const (
	ContainerCreated  EventType = "container.created"
	ContainerStarted  EventType = "container.started"
	ContainerStopped  EventType = "container.stopped"
	ContainerPaused   EventType = "container.paused"
	ContainerResumed  EventType = "container.resumed"
	ContainerDeleted  EventType = "container.deleted"
	ContainerHealth   EventType = "container.health"
	TemplateSaved     EventType = "template.saved"
	TemplateDeleted   EventType = "template.deleted"
	ResourcesUpdated  EventType = "resources.updated"
	ConfigReload      EventType = "config.reload"
)

type Event struct {
	ID          string      `json:"id"`
	Type        EventType   `json:"type"`
	Timestamp   time.Time   `json:"timestamp"`
	ContainerID string      `json:"container_id,omitempty"`
	Name        string      `json:"name,omitempty"`
	ProjectType string      `json:"project_type,omitempty"`
	Data        interface{} `json:"data,omitempty"`
}

type EventHandler interface {
	Handle(event Event) error
	CanHandle(eventType EventType) bool
}

type EventBus interface {
	Publish(event Event) error
	Subscribe(handler EventHandler) error
	Unsubscribe(handler EventHandler) error
	Start() error
	Stop() error
}
