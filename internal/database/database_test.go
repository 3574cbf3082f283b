package database

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chatsettings/internal/entities"
)

// setupTestDB creates a fresh test database
func setupTestDB(t *testing.T) (*Database, func()) {
	t.Helper()
	dbPath := "./test_" + t.Name() + ".db"
	db, err := NewDatabase(dbPath)
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return db, cleanup
}

func TestDatabase(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	t.Run("migrates the settings table", func(t *testing.T) {
		record := entities.DefaultUserSettings("u1")
		err := db.DB.Create(record).Error
		assert.NoError(t, err)

		var saved entities.UserSettings
		err = db.DB.First(&saved, "user_id = ?", "u1").Error
		require.NoError(t, err)
		assert.True(t, saved.DeploymentGPT35)
		assert.NotZero(t, saved.CreatedAt)
	})

	t.Run("migrates the audit table", func(t *testing.T) {
		event := &entities.AuditEvent{
			UserID:      "u1",
			EventType:   entities.AuditEventSettingsCreated,
			Description: "Created settings record for u1",
			Status:      entities.AuditStatusSuccess,
		}
		err := db.DB.Create(event).Error
		assert.NoError(t, err)
		assert.NotZero(t, event.ID)
	})
}

func TestDatabaseClose(t *testing.T) {
	dbPath := "./test_close.db"
	defer os.Remove(dbPath)

	db, err := NewDatabase(dbPath)
	require.NoError(t, err)

	err = db.Close()
	assert.NoError(t, err)
}
