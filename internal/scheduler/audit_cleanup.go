// Package scheduler runs periodic maintenance jobs on cron schedules.
package scheduler

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"chatsettings/internal/audit"
	"chatsettings/internal/tasks"
)

// AuditCleanupScheduler periodically enqueues audit retention cleanup.
// When no task queue is available it runs the sweep inline.
type AuditCleanupScheduler struct {
	auditService  *audit.Service
	taskClient    *tasks.Client
	schedule      string
	retentionDays int

	cron      *cron.Cron
	entryID   cron.EntryID
	mu        sync.Mutex
	isRunning bool
}

// NewAuditCleanupScheduler creates a new scheduler instance.
func NewAuditCleanupScheduler(auditService *audit.Service, taskClient *tasks.Client, schedule string, retentionDays int) *AuditCleanupScheduler {
	return &AuditCleanupScheduler{
		auditService:  auditService,
		taskClient:    taskClient,
		schedule:      schedule,
		retentionDays: retentionDays,
		cron:          cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins the scheduler.
func (s *AuditCleanupScheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	entryID, err := s.cron.AddFunc(s.schedule, s.runCleanup)
	if err != nil {
		return fmt.Errorf("failed to schedule audit cleanup job '%s': %w", s.schedule, err)
	}
	s.entryID = entryID

	s.cron.Start()
	s.isRunning = true
	log.Printf("Audit cleanup scheduler started (schedule: %s, retention: %d days)", s.schedule, s.retentionDays)
	return nil
}

// Stop halts the scheduler. Already-enqueued cleanup tasks are unaffected.
func (s *AuditCleanupScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	s.cron.Remove(s.entryID)
	s.cron.Stop()
	s.isRunning = false
	log.Printf("Audit cleanup scheduler stopped")
}

func (s *AuditCleanupScheduler) runCleanup() {
	if s.taskClient != nil {
		task := tasks.CleanupAuditEventsTask{RetentionDays: s.retentionDays}
		if _, err := s.taskClient.Add(task).Save(); err != nil {
			log.Printf("Failed to enqueue audit cleanup task: %v", err)
		}
		return
	}

	retention := time.Duration(s.retentionDays) * 24 * time.Hour
	deleted, err := s.auditService.DeleteOldEvents(retention)
	if err != nil {
		log.Printf("Audit cleanup failed: %v", err)
		return
	}
	log.Printf("Cleaned up %d audit events", deleted)
}
