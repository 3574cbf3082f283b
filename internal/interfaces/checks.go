package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"chatsettings/internal/audit"
	"chatsettings/internal/database/usersettings"
	"chatsettings/internal/settings"
	"chatsettings/internal/tasks"
)

// =============================================================================
// Data Access Layer
// =============================================================================

// Store implementations
var _ settings.Store = (*usersettings.Repository)(nil)

// =============================================================================
// Audit Trail
// =============================================================================

// AuditLogger implementations
var _ settings.AuditLogger = (*audit.Service)(nil)

// AuditEventCleaner implementations
var _ tasks.AuditEventCleaner = (*audit.Service)(nil)
