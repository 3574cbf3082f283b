package http

import (
	"chatsettings/internal/audit"
	"chatsettings/internal/database"
	"chatsettings/internal/settings"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router. This replaces the long parameter list
// in NewRouter for better maintainability.
type RouterConfig struct {
	// Core dependencies
	SettingsService *settings.Service
	Database        *database.Database

	// Settings-change history (optional)
	AuditService *audit.Service

	// Application info
	Version string
}
