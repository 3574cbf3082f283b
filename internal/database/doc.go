// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup, migrations
//	├── usersettings/    # Per-user settings records
//	└── audit/           # Settings-change audit trail
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type with domain-specific operations:
//
//	// Initialize database connection
//	db, err := database.NewDatabase("./app.db")
//
//	// Create domain-specific repositories
//	settingsRepo := usersettings.NewRepository(db.DB)
//	auditRepo := audit.NewRepository(db.DB)
//
//	// Use repositories
//	records, err := settingsRepo.FindByUserID("user-1")
//
// # Interface Implementations
//
//   - usersettings.Repository: implements settings.Store
//
// Compile-time checks for these live in internal/interfaces.
package database
