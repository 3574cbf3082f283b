// Package interfaces documents the core abstractions used throughout the application.
//
// This package consolidates interface documentation to help code agents understand
// extension points and how to implement new functionality.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - Store: Settings record persistence (internal/settings/service.go)
//
// ## Audit Interfaces
//
//   - AuditLogger: Records settings changes (internal/settings/service.go)
//   - AuditEventCleaner: Prunes old audit events (internal/tasks/cleanup_audit.go)
//
// # Adding a New Settings Backend
//
// To serve settings from a different store (e.g., a remote database):
//
//  1. Create sub-package: internal/database/<backend>/
//
//  2. Define repository:
//
//     type Repository struct { db *gorm.DB }
//
//     func NewRepository(db *gorm.DB) *Repository
//
//  3. Implement settings.Store:
//
//     func (r *Repository) FindByUserID(userID string) ([]entities.UserSettings, error)
//     func (r *Repository) Create(record *entities.UserSettings) error
//     func (r *Repository) Upsert(record *entities.UserSettings) error
//
//  4. Add compile-time check:
//
//     var _ settings.Store = (*Repository)(nil)
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// This pattern is used throughout the codebase. See checks.go for examples.
package interfaces
