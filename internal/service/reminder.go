package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/wanderlust/planner/backend/internal/domain"
	"github.com/wanderlust/planner/backend/internal/repo"
)

// ReminderService periodically looks for items starting within the next hour
// and logs an advisory line for each. It is read-only over live item state
// and purely best-effort: a missed tick loses nothing, the next tick
// re-evaluates from scratch.
type ReminderService struct {
	items    repo.ItemRepo
	log      *slog.Logger
	interval time.Duration

	mu      sync.Mutex
	stopCh  chan struct{}
	running bool
}

// NewReminderService constructs a ReminderService that checks at the given
// interval.
func NewReminderService(items repo.ItemRepo, log *slog.Logger, interval time.Duration) *ReminderService {
	return &ReminderService{items: items, log: log, interval: interval}
}

// Start launches the background check loop. Calling Start on a running
// service is a no-op, so the lifecycle is safe to drive from view code that
// may fire more than once.
func (s *ReminderService) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	s.stopCh = make(chan struct{})
	go s.run(s.stopCh)
}

// Stop halts the loop and releases its timer. Safe to call repeatedly and
// safe to call on a never-started service.
func (s *ReminderService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	s.running = false
	close(s.stopCh)
}

func (s *ReminderService) run(stop <-chan struct{}) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.check(context.Background(), time.Now())
		case <-stop:
			return
		}
	}
}

// check logs one advisory line per item starting within the hour after now.
func (s *ReminderService) check(ctx context.Context, now time.Time) {
	upcoming, err := s.UpcomingWithin(ctx, now, time.Hour)
	if err != nil {
		s.log.Error("reminder check failed", "error", err)
		return
	}
	for _, item := range upcoming {
		s.log.Info("item starting soon",
			"trip_id", item.TripID,
			"item_id", item.ID,
			"title", item.Title,
			"start_time", item.StartTime,
		)
	}
}

// UpcomingWithin returns the incomplete items dated today whose start time
// falls inside (now, now+window], in store order. Items without a start time
// never match — there is nothing to be late for.
func (s *ReminderService) UpcomingWithin(ctx context.Context, now time.Time, window time.Duration) ([]domain.TripItem, error) {
	all, err := s.items.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	today := now.Format(domain.DayKeyLayout)
	var upcoming []domain.TripItem
	for _, item := range all {
		if item.Completed || item.Date != today || item.StartTime == "" {
			continue
		}
		start, err := time.ParseInLocation("2006-01-02 15:04", item.Date+" "+item.StartTime, now.Location())
		if err != nil {
			continue
		}
		if start.After(now) && !start.After(now.Add(window)) {
			upcoming = append(upcoming, item)
		}
	}
	return upcoming, nil
}
