package audit

import (
	"encoding/json"
	"log"
	"time"

	"chatsettings/internal/database/audit"
	"chatsettings/internal/entities"
)

// Service provides high-level audit logging functionality.
type Service struct {
	repo *audit.Repository
}

// NewService creates a new audit service.
func NewService(repo *audit.Repository) *Service {
	return &Service{repo: repo}
}

// Log records a generic audit event.
func (s *Service) Log(event *entities.AuditEvent) error {
	return s.repo.LogEvent(event)
}

// LogAsync records an audit event in the background (non-blocking).
func (s *Service) LogAsync(event *entities.AuditEvent) {
	go func() {
		if err := s.repo.LogEvent(event); err != nil {
			log.Printf("Failed to log audit event: %v", err)
		}
	}()
}

// LogSettingsCreated records the lazy creation of a settings record.
func (s *Service) LogSettingsCreated(userID string, record *entities.UserSettings) {
	event := &entities.AuditEvent{
		UserID:      userID,
		EventType:   entities.AuditEventSettingsCreated,
		Description: "Created settings record for " + userID,
		Status:      entities.AuditStatusSuccess,
	}
	attachFlagMetadata(event, record)

	s.LogAsync(event)
}

// LogSettingsUpdated records an update to a settings record.
func (s *Service) LogSettingsUpdated(userID string, record *entities.UserSettings, err error) {
	event := &entities.AuditEvent{
		UserID:      userID,
		EventType:   entities.AuditEventSettingsUpdated,
		Description: "Updated settings record for " + userID,
		Status:      entities.AuditStatusSuccess,
	}
	attachFlagMetadata(event, record)

	if err != nil {
		event.Status = entities.AuditStatusFailed
		event.ErrorMsg = truncate(err.Error(), 500)
	}

	s.LogAsync(event)
}

// GetEvents retrieves paginated audit events.
func (s *Service) GetEvents(userID string, limit, offset int) ([]entities.AuditEvent, int64, error) {
	return s.repo.GetEvents(userID, limit, offset)
}

// GetEventsByType retrieves audit events filtered by type.
func (s *Service) GetEventsByType(eventType entities.AuditEventType, userID string, limit, offset int) ([]entities.AuditEvent, int64, error) {
	return s.repo.GetEventsByType(eventType, userID, limit, offset)
}

// DeleteOldEvents removes events older than the specified duration.
func (s *Service) DeleteOldEvents(retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	return s.repo.DeleteOldEvents(cutoff)
}

func attachFlagMetadata(event *entities.AuditEvent, record *entities.UserSettings) {
	if record == nil {
		return
	}
	metadata := map[string]any{
		"deployment_gpt35": record.DeploymentGPT35,
		"deployment_gpt4":  record.DeploymentGPT4,
	}
	if mdBytes, err := json.Marshal(metadata); err == nil {
		event.Metadata = string(mdBytes)
	}
}

// truncate shortens a string to max length.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
