// Command generate_demo creates a demo database with sample per-user settings.
// Usage: go run cmd/generate_demo/main.go [-db path/to/demo.db]
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"chatsettings/internal/database"
	auditrepo "chatsettings/internal/database/audit"
	"chatsettings/internal/database/usersettings"
	"chatsettings/internal/entities"
)

const defaultDemoDatabasePath = "./demo/demo.db"

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	settingsRepo := usersettings.NewRepository(db.DB)
	auditRepo := auditrepo.NewRepository(db.DB)

	for _, record := range demoSettings() {
		if err := settingsRepo.Create(record); err != nil {
			log.Printf("Failed to save settings for %s: %v", record.UserID, err)
			continue
		}
		log.Printf("Saved settings for %s", record.UserID)

		event := &entities.AuditEvent{
			UserID:      record.UserID,
			EventType:   entities.AuditEventSettingsCreated,
			Description: "Created settings record for " + record.UserID,
			Status:      entities.AuditStatusSuccess,
			CreatedAt:   time.Now().Add(-24 * time.Hour),
		}
		if err := auditRepo.LogEvent(event); err != nil {
			log.Printf("Failed to log audit event for %s: %v", record.UserID, err)
		}
	}

	log.Printf("Demo database generated at %s", *dbPath)
}

// demoSettings returns a handful of users with distinct flag combinations so
// the settings dialog and the audit endpoint have something to show.
func demoSettings() []*entities.UserSettings {
	defaults := entities.DefaultUserSettings("demo-default")

	darkModeUser := entities.DefaultUserSettings("demo-dark-mode")
	darkModeUser.DarkMode = true

	powerUser := entities.DefaultUserSettings("demo-power-user")
	powerUser.Planners = true
	powerUser.Personas = true
	powerUser.ExportChatSessions = true
	powerUser.LiveChatSessionSharing = true
	powerUser.DeploymentGPT4 = true

	gpt4Only := entities.DefaultUserSettings("demo-gpt4-only")
	gpt4Only.DeploymentGPT35 = false
	gpt4Only.DeploymentGPT4 = true

	return []*entities.UserSettings{defaults, darkModeUser, powerUser, gpt4Only}
}
