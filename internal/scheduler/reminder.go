// Package scheduler runs the daily reading-reminder job.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/foliolib/folio/internal/config"
	"github.com/foliolib/folio/internal/database/sessions"
	"github.com/foliolib/folio/internal/streaks"
)

// ReminderScheduler checks once a day whether any reading happened today and
// logs a reminder when it hasn't. The actual notification delivery is the
// app shell's concern; this side only produces the signal.
type ReminderScheduler struct {
	sessions *sessions.Repository
	cfg      config.Reminder

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

// NewReminderScheduler creates a new scheduler instance.
func NewReminderScheduler(sessionRepo *sessions.Repository, cfg config.Reminder) *ReminderScheduler {
	return &ReminderScheduler{
		sessions: sessionRepo,
		cfg:      cfg,
		cron:     cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins the scheduler if reminders are enabled.
func (s *ReminderScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if !s.cfg.Enabled {
		log.Printf("Reading reminder scheduler: disabled")
		return nil
	}

	entryID, err := s.cron.AddFunc(s.cfg.Schedule, func() {
		s.runCheck()
	})
	if err != nil {
		return fmt.Errorf("invalid reminder schedule '%s': %w", s.cfg.Schedule, err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	log.Printf("Reading reminder scheduler: started with schedule '%s'", s.cfg.Schedule)

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop gracefully stops the scheduler.
func (s *ReminderScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()

	s.isRunning = false
	s.cancelFunc = nil

	log.Printf("Reading reminder scheduler: stopped")
}

// IsRunning returns whether the scheduler is active.
func (s *ReminderScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

func (s *ReminderScheduler) runCheck() {
	today := time.Now().Format(sessions.DateFormat)
	count, err := s.sessions.CountForDate(today)
	if err != nil {
		log.Printf("Reading reminder: failed to check today's sessions: %v", err)
		return
	}
	if count > 0 {
		return
	}

	// Mention the streak at stake, if there is one.
	all, err := s.sessions.GetAllSessions()
	if err != nil {
		log.Printf("Reading reminder: no reading logged today")
		return
	}
	if streak := streaks.CurrentStreak(all, time.Now()); streak > 0 {
		log.Printf("Reading reminder: no reading logged today, %d-day streak at stake", streak)
	} else {
		log.Printf("Reading reminder: no reading logged today")
	}
}
