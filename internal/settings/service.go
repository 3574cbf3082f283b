// Package settings implements the per-user settings lifecycle: lazy creation
// of a default record on first access, full-field updates, and the rule that
// at least one model deployment flag stays enabled.
package settings

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"chatsettings/internal/entities"
)

// Store is the durable mapping from user id to settings records. The store
// owns durability and uniqueness; the service owns defaulting and the
// deployment invariant.
type Store interface {
	FindByUserID(userID string) ([]entities.UserSettings, error)
	Create(record *entities.UserSettings) error
	Upsert(record *entities.UserSettings) error
}

var (
	// ErrRetrieval indicates the store could not be queried.
	ErrRetrieval = errors.New("settings retrieval failed")

	// ErrPersist indicates a create or upsert did not succeed.
	ErrPersist = errors.New("settings persist failed")
)

// UpdateParams carries values for all eleven flags. Updates replace every
// flag field of the record; sparse updates are not supported.
type UpdateParams struct {
	DarkMode                 bool
	Planners                 bool
	Personas                 bool
	SimplifiedChatExperience bool
	AzureContentSafety       bool
	AzureAISearch            bool
	ExportChatSessions       bool
	LiveChatSessionSharing   bool
	FeedbackFromUser         bool
	DeploymentGPT35          bool
	DeploymentGPT4           bool
}

// AuditLogger receives notifications after a record is created or updated.
type AuditLogger interface {
	LogSettingsCreated(userID string, record *entities.UserSettings)
	LogSettingsUpdated(userID string, record *entities.UserSettings, err error)
}

// Service implements get-or-create-default and update semantics on top of a
// Store. Calls for the same user are serialized through a per-user mutex, so
// two concurrent updates cannot interleave their find/persist steps.
type Service struct {
	store   Store
	auditor AuditLogger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewService creates a settings service backed by the given store.
func NewService(store Store) *Service {
	return &Service{
		store: store,
		locks: make(map[string]*sync.Mutex),
	}
}

// SetAuditor connects an optional audit trail for settings changes.
func (s *Service) SetAuditor(auditor AuditLogger) {
	s.auditor = auditor
}

// Get returns the settings record for userID, creating and persisting the
// default record if none exists. When an existing record has both deployment
// flags disabled, the returned copy has GPT-3.5 forced on, but the stored
// record is left untouched; only an update persists the correction.
func (s *Service) Get(userID string) (*entities.UserSettings, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	records, err := s.store.FindByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("%w for %s: %v", ErrRetrieval, userID, err)
	}

	if len(records) == 0 {
		log.Printf("No settings record found for %s, creating a default record", userID)
		record := entities.DefaultUserSettings(userID)
		if err := s.store.Create(record); err != nil {
			return nil, fmt.Errorf("%w for %s: %v", ErrPersist, userID, err)
		}
		if s.auditor != nil {
			s.auditor.LogSettingsCreated(userID, record)
		}
		return record, nil
	}

	// Only one record per user id; normalize the returned copy without
	// writing the correction back.
	record := records[0]
	normalizeDeployments(&record)
	return &record, nil
}

// Update overwrites every flag of the user's record with the values in
// params, creating the record from params if none exists. The deployment
// invariant is applied before persisting, so a request disabling both
// deployments is stored with GPT-3.5 re-enabled.
func (s *Service) Update(userID string, params UpdateParams) (*entities.UserSettings, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	records, err := s.store.FindByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("%w for %s: %v", ErrRetrieval, userID, err)
	}

	if len(records) == 0 {
		log.Printf("No settings record found for %s, creating one from the update", userID)
		record := &entities.UserSettings{UserID: userID}
		applyParams(record, params)
		normalizeDeployments(record)
		if err := s.store.Create(record); err != nil {
			return nil, fmt.Errorf("%w for %s: %v", ErrPersist, userID, err)
		}
		if s.auditor != nil {
			s.auditor.LogSettingsCreated(userID, record)
		}
		return record, nil
	}

	record := records[0]
	applyParams(&record, params)
	normalizeDeployments(&record)
	if err := s.store.Upsert(&record); err != nil {
		if s.auditor != nil {
			s.auditor.LogSettingsUpdated(userID, nil, err)
		}
		return nil, fmt.Errorf("%w for %s: %v", ErrPersist, userID, err)
	}
	if s.auditor != nil {
		s.auditor.LogSettingsUpdated(userID, &record, nil)
	}
	return &record, nil
}

func (s *Service) userLock(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[userID] = lock
	}
	return lock
}

func applyParams(record *entities.UserSettings, params UpdateParams) {
	record.DarkMode = params.DarkMode
	record.Planners = params.Planners
	record.Personas = params.Personas
	record.SimplifiedChatExperience = params.SimplifiedChatExperience
	record.AzureContentSafety = params.AzureContentSafety
	record.AzureAISearch = params.AzureAISearch
	record.ExportChatSessions = params.ExportChatSessions
	record.LiveChatSessionSharing = params.LiveChatSessionSharing
	record.FeedbackFromUser = params.FeedbackFromUser
	record.DeploymentGPT35 = params.DeploymentGPT35
	record.DeploymentGPT4 = params.DeploymentGPT4
}

// normalizeDeployments forces GPT-3.5 on when both deployment flags are off.
// Any other combination, including both on, is left as-is.
func normalizeDeployments(record *entities.UserSettings) {
	if !record.DeploymentGPT35 && !record.DeploymentGPT4 {
		record.DeploymentGPT35 = true
	}
}
