package domain

import "time"

// FinishScheduler arms a deferred force-finish callback for a campaign.
// Delivery is fire-and-forget and at-least-once: the handler must tolerate
// duplicate and late firings.
type FinishScheduler interface {
	ScheduleAt(fireAt time.Time, campaignID string)
}
