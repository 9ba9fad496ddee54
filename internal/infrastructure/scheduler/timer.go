package scheduler

import (
	"log/slog"
	"sync"
	"time"
)

// TimerScheduler arms one in-process timer per campaign and invokes the bound
// handler at the campaign's finish date. Past deadlines fire immediately.
// Timers do not survive a restart; the background deadline sweep picks up
// anything missed, which is where the at-least-once property comes from.
type TimerScheduler struct {
	mu      sync.Mutex
	timers  map[string]*time.Timer
	handler func(campaignID string)
}

func NewTimerScheduler() *TimerScheduler {
	return &TimerScheduler{
		timers: make(map[string]*time.Timer),
	}
}

// SetHandler binds the force-finish callback. Must be called before the first
// ScheduleAt.
func (s *TimerScheduler) SetHandler(handler func(campaignID string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handler = handler
}

func (s *TimerScheduler) ScheduleAt(fireAt time.Time, campaignID string) {
	delay := time.Until(fireAt)
	if delay < 0 {
		delay = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.handler == nil {
		slog.Error("finish scheduler has no handler bound", "campaign_id", campaignID)
		return
	}

	// rescheduling replaces the previous timer
	if timer, ok := s.timers[campaignID]; ok {
		timer.Stop()
	}

	handler := s.handler
	s.timers[campaignID] = time.AfterFunc(delay, func() {
		s.mu.Lock()
		delete(s.timers, campaignID)
		s.mu.Unlock()
		handler(campaignID)
	})
}

// Stop cancels all pending timers.
func (s *TimerScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for campaignID, timer := range s.timers {
		timer.Stop()
		delete(s.timers, campaignID)
	}
}
