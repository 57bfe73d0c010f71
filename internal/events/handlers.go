package events

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// AuditHandler writes every lifecycle event to the structured log so
// dashboards and operators share one audit trail
type AuditHandler struct {
	logger zerolog.Logger
}

func NewAuditHandler() *AuditHandler {
	return &AuditHandler{logger: log.With().Str("component", "audit").Logger()}
}

func (h *AuditHandler) CanHandle(eventType EventType) bool {
	return true
}

func (h *AuditHandler) Handle(event Event) error {
	h.logger.Info().
		Str("event_id", event.ID).
		Str("event_type", string(event.Type)).
		Str("container_id", event.ContainerID).
		Str("name", event.Name).
		Time("at", event.Timestamp).
		Msg("Lifecycle event")
	return nil
}
