// Package usersettings provides database operations for per-user settings records.
//
// # Usage
//
//	repo := usersettings.NewRepository(db)
//	records, err := repo.FindByUserID("user-1")
package usersettings

import (
	"gorm.io/gorm"

	"chatsettings/internal/entities"
)

// Repository handles all user settings database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new user settings repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByUserID retrieves all settings records for a user. The string primary
// key on user_id means this returns at most one record in practice, but the
// contract is a slice of zero or more.
func (r *Repository) FindByUserID(userID string) ([]entities.UserSettings, error) {
	var records []entities.UserSettings
	err := r.db.Where("user_id = ?", userID).Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Create inserts a new settings record. Fails if a record with the same
// user id already exists.
func (r *Repository) Create(record *entities.UserSettings) error {
	return r.db.Create(record).Error
}

// Upsert creates the record if absent or replaces it if present, keyed by
// user id.
func (r *Repository) Upsert(record *entities.UserSettings) error {
	return r.db.Save(record).Error
}
