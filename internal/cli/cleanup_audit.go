package cli

import (
	"flag"
	"fmt"
	"os"
	"time"

	"chatsettings/internal/audit"
	"chatsettings/internal/config"
	"chatsettings/internal/database"
	auditrepo "chatsettings/internal/database/audit"
)

// CleanupAuditCommand deletes audit events older than the retention window.
// Useful for one-off pruning without waiting for the scheduled task.
type CleanupAuditCommand struct {
	DatabasePath  string
	RetentionDays int
	DryRun        bool
}

func NewCleanupAuditCommand() *CleanupAuditCommand {
	return &CleanupAuditCommand{}
}

func (cmd *CleanupAuditCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("cleanup-audit", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file")
	fs.IntVar(&cmd.RetentionDays, "retention-days", 30, "Delete audit events older than this many days")
	fs.BoolVar(&cmd.DryRun, "dry-run", false, "Report how many events would be deleted without deleting them")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s cleanup-audit [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Delete audit events older than the retention window.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s cleanup-audit\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s cleanup-audit -retention-days 7 -db ./chatsettings.db\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s cleanup-audit -dry-run\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.RetentionDays <= 0 {
		fs.Usage()
		return fmt.Errorf("retention-days must be positive")
	}

	return nil
}

func (cmd *CleanupAuditCommand) Run() error {
	if _, err := os.Stat(cmd.DatabasePath); os.IsNotExist(err) {
		return fmt.Errorf("database file does not exist: %s", cmd.DatabasePath)
	}

	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	auditService := audit.NewService(auditrepo.NewRepository(db.DB))
	retention := time.Duration(cmd.RetentionDays) * 24 * time.Hour

	if cmd.DryRun {
		cutoff := time.Now().Add(-retention)
		count, err := auditrepo.NewRepository(db.DB).CountEventsBefore(cutoff)
		if err != nil {
			return fmt.Errorf("failed to count audit events: %w", err)
		}
		fmt.Printf("Would delete %d audit events older than %d days\n", count, cmd.RetentionDays)
		return nil
	}

	deleted, err := auditService.DeleteOldEvents(retention)
	if err != nil {
		return fmt.Errorf("failed to delete audit events: %w", err)
	}

	fmt.Printf("Deleted %d audit events older than %d days\n", deleted, cmd.RetentionDays)
	return nil
}
