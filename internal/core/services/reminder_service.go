package services

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"aw-society/internal/adapters/persistence/repositories"
	"aw-society/internal/core/domain"
)

// reminderLeadDays is how many days before the due date the reminder goes out
const reminderLeadDays = 2

// ReminderService runs the daily loan reminder job: members are warned two
// days before their due date, and loans past due are flipped to overdue once
// and the member alerted. The overdue flip goes through the repository's
// guarded update, so a concurrent run cannot apply it twice.
type ReminderService struct {
	memberRepo repositories.MemberRepository
	notifier   Notifier
	cron       *cron.Cron
}

// NewReminderService creates a new reminder service
func NewReminderService(memberRepo repositories.MemberRepository, notifier Notifier) *ReminderService {
	return &ReminderService{
		memberRepo: memberRepo,
		notifier:   notifier,
		cron:       cron.New(),
	}
}

// Start schedules the daily run at 10:00
func (s *ReminderService) Start() error {
	_, err := s.cron.AddFunc("0 10 * * *", func() {
		log.Println("Running daily loan payment reminders...")
		if err := s.Run(context.Background(), time.Now()); err != nil {
			log.Printf("Reminder job error: %v", err)
		}
	})
	if err != nil {
		return err
	}
	s.cron.Start()
	log.Println("ReminderService started")
	return nil
}

// Stop stops the cron scheduler
func (s *ReminderService) Stop() {
	s.cron.Stop()
	log.Println("ReminderService stopped")
}

// Run performs one reminder pass over all active loans
func (s *ReminderService) Run(ctx context.Context, now time.Time) error {
	members, err := s.memberRepo.ListActiveLoans(ctx)
	if err != nil {
		return err
	}

	for _, m := range members {
		if m.LoanDueAt == nil {
			continue
		}

		daysLeft := int(m.LoanDueAt.Sub(now).Hours() / 24)

		if daysLeft == reminderLeadDays {
			member := *m
			go s.notifier.NotifyLoanReminder(&member, reminderLeadDays)
			continue
		}

		if now.After(*m.LoanDueAt) && m.LoanStatus != string(domain.LoanOverdue) {
			flipped, err := s.memberRepo.SetLoanStatus(ctx, m.ID, string(domain.LoanActive), string(domain.LoanOverdue))
			if err != nil {
				log.Printf("Overdue update for member %d failed: %v", m.ID, err)
				continue
			}
			if flipped {
				member := *m
				member.LoanStatus = string(domain.LoanOverdue)
				go s.notifier.NotifyLoanOverdue(&member)
			}
		}
	}
	return nil
}
