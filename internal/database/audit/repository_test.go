package audit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"chatsettings/internal/entities"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.AuditEvent{})
	require.NoError(t, err)

	return db
}

func TestRepository_LogEvent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	event := &entities.AuditEvent{
		UserID:      "u1",
		EventType:   entities.AuditEventSettingsUpdated,
		Description: "Updated settings for u1",
		Status:      entities.AuditStatusSuccess,
	}

	err := repo.LogEvent(event)
	require.NoError(t, err)
	assert.NotZero(t, event.ID)
	assert.False(t, event.CreatedAt.IsZero())
}

func TestRepository_GetEvents(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	// Create test events
	for i := 0; i < 15; i++ {
		event := &entities.AuditEvent{
			UserID:      "u1",
			EventType:   entities.AuditEventSettingsUpdated,
			Description: "Test event",
			Status:      entities.AuditStatusSuccess,
			CreatedAt:   time.Now().Add(time.Duration(-i) * time.Hour),
		}
		err := repo.LogEvent(event)
		require.NoError(t, err)
	}

	// Add events for a different user
	for i := 0; i < 5; i++ {
		event := &entities.AuditEvent{
			UserID:      "u2",
			EventType:   entities.AuditEventSettingsCreated,
			Description: "Test create event",
			Status:      entities.AuditStatusSuccess,
		}
		err := repo.LogEvent(event)
		require.NoError(t, err)
	}

	t.Run("get all events", func(t *testing.T) {
		events, total, err := repo.GetEvents("", 50, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(20), total)
		assert.Len(t, events, 20)
	})

	t.Run("get user events", func(t *testing.T) {
		events, total, err := repo.GetEvents("u1", 50, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(15), total)
		assert.Len(t, events, 15)
	})

	t.Run("pagination", func(t *testing.T) {
		events, total, err := repo.GetEvents("u1", 5, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(15), total)
		assert.Len(t, events, 5)

		events2, _, err := repo.GetEvents("u1", 5, 5)
		require.NoError(t, err)
		assert.Len(t, events2, 5)
		assert.NotEqual(t, events[0].ID, events2[0].ID)
	})

	t.Run("order by created_at desc", func(t *testing.T) {
		events, _, err := repo.GetEvents("u1", 10, 0)
		require.NoError(t, err)
		for i := 1; i < len(events); i++ {
			assert.True(t, events[i-1].CreatedAt.After(events[i].CreatedAt) || events[i-1].CreatedAt.Equal(events[i].CreatedAt))
		}
	})
}

func TestRepository_GetEventsByType(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	require.NoError(t, repo.LogEvent(&entities.AuditEvent{
		UserID:      "u1",
		EventType:   entities.AuditEventSettingsCreated,
		Description: "Create event",
		Status:      entities.AuditStatusSuccess,
	}))
	require.NoError(t, repo.LogEvent(&entities.AuditEvent{
		UserID:      "u1",
		EventType:   entities.AuditEventSettingsUpdated,
		Description: "Update event",
		Status:      entities.AuditStatusSuccess,
	}))
	require.NoError(t, repo.LogEvent(&entities.AuditEvent{
		UserID:    "u1",
		EventType: entities.AuditEventSettingsUpdated,
		Status:    entities.AuditStatusSuccess,
	}))

	events, total, err := repo.GetEventsByType(entities.AuditEventSettingsUpdated, "u1", 50, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, events, 2)
	for _, e := range events {
		assert.Equal(t, entities.AuditEventSettingsUpdated, e.EventType)
	}
}

func TestRepository_DeleteOldEvents(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	now := time.Now()

	oldEvent := &entities.AuditEvent{
		UserID:      "u1",
		EventType:   entities.AuditEventSettingsCreated,
		Description: "old event",
		Status:      entities.AuditStatusSuccess,
		CreatedAt:   now.Add(-48 * time.Hour),
	}
	newEvent := &entities.AuditEvent{
		UserID:      "u1",
		EventType:   entities.AuditEventSettingsUpdated,
		Description: "new event",
		Status:      entities.AuditStatusSuccess,
		CreatedAt:   now.Add(-1 * time.Hour),
	}

	require.NoError(t, repo.LogEvent(oldEvent))
	require.NoError(t, repo.LogEvent(newEvent))

	count, err := repo.CountEventsBefore(now.Add(-24 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// Delete events older than 24 hours
	deleted, err := repo.DeleteOldEvents(now.Add(-24 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	// Verify only the new event remains
	events, total, err := repo.GetEvents("", 50, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, events, 1)
	assert.Equal(t, "new event", events[0].Description)
}
