package domain

import (
	"fmt"
	"time"
)

type CampaignState string

const (
	StateDraft                  CampaignState = "DRAFT"
	StatePublic                 CampaignState = "PUBLIC"
	StateFinishedSuccessfully   CampaignState = "FINISHED_SUCCESSFULLY"
	StateFinishedUnsuccessfully CampaignState = "FINISHED_UNSUCCESSFULLY"
)

type FundingType string

const (
	FundConditional   FundingType = "CONDITIONAL"
	FundUnconditional FundingType = "UNCONDITIONAL"
)

const (
	MinCampaignDuration = 1
	MaxCampaignDuration = 30
)

// FinishHook is invoked after a campaign reaches STATE_FINISHED_SUCCESSFULLY.
// The default hook is a no-op.
type FinishHook func(campaign *Campaign)

type Campaign struct {
	ID               string
	OwnerID          string
	EditorIDs        []string
	Headline         string
	Preview          string
	Description      string
	SumGoal          int64
	Duration         int
	CollectedSum     int64
	State            CampaignState
	FundingType      FundingType
	PSPSubmerchantID string
	DateStart        *time.Time
	DateFinish       *time.Time
	ViewsCount       int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (c *Campaign) Validate() error {
	if c.Headline == "" {
		return fmt.Errorf("%w: campaign headline is required", ErrValidation)
	}
	if c.SumGoal <= 0 {
		return fmt.Errorf("%w: sum goal must be positive", ErrValidation)
	}
	if c.Duration < MinCampaignDuration || c.Duration > MaxCampaignDuration {
		return fmt.Errorf("%w: duration must be between %d and %d days", ErrValidation, MinCampaignDuration, MaxCampaignDuration)
	}
	switch c.FundingType {
	case FundConditional, FundUnconditional:
	default:
		return fmt.Errorf("%w: unknown funding type %q", ErrValidation, c.FundingType)
	}
	return nil
}

// Publish moves a draft campaign to PUBLIC and fixes its funding window.
// date_finish = date_start + duration days.
func (c *Campaign) Publish(now time.Time) error {
	if c.State != StateDraft {
		return fmt.Errorf("%w: campaign %s is %s, only drafts can be published", ErrInvalidState, c.ID, c.State)
	}
	start := now
	finish := start.Add(time.Duration(c.Duration) * 24 * time.Hour)
	c.State = StatePublic
	c.DateStart = &start
	c.DateFinish = &finish
	return nil
}

func (c *Campaign) Credit(amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: donation amount must be positive", ErrValidation)
	}
	c.CollectedSum += amount
	return nil
}

// CheckGoalCompletion finishes a public campaign as soon as the collected sum
// reaches the goal. Safe to call repeatedly: terminal states are never left.
func (c *Campaign) CheckGoalCompletion() bool {
	if c.State != StatePublic {
		return false
	}
	if c.CollectedSum >= c.SumGoal {
		c.State = StateFinishedSuccessfully
		return true
	}
	return false
}

// ForceFinish is the deadline path. The goal condition is re-checked at
// expiry time since the sum may have crossed the threshold moments before.
// Returns false when the campaign is not PUBLIC (already finished or draft).
func (c *Campaign) ForceFinish() bool {
	if c.State != StatePublic {
		return false
	}
	if c.CollectedSum >= c.SumGoal {
		c.State = StateFinishedSuccessfully
	} else {
		c.State = StateFinishedUnsuccessfully
	}
	return true
}

func (c *Campaign) IsFinished() bool {
	return c.State == StateFinishedSuccessfully || c.State == StateFinishedUnsuccessfully
}

// DaysToFinish returns the days left until the finish date, counting today.
// ok is false while the campaign is unpublished.
func (c *Campaign) DaysToFinish(today time.Time) (int, bool) {
	if c.DateFinish == nil {
		return 0, false
	}
	days := int(c.DateFinish.Sub(today).Hours()/24) + 1
	return days, true
}

func (c *Campaign) IsEditor(userID string) bool {
	if userID == c.OwnerID {
		return true
	}
	for _, id := range c.EditorIDs {
		if id == userID {
			return true
		}
	}
	return false
}
