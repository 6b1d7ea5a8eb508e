package entities

import "time"

type ModerationStatus string

const (
	ModerationStatusPending  ModerationStatus = "pending"
	ModerationStatusApproved ModerationStatus = "approved"
	ModerationStatusRejected ModerationStatus = "rejected"
)

// PendingAd is the projection of an ad awaiting review; only the fields the
// oracle and status update need.
type PendingAd struct {
	AdID      string
	BrandID   string
	ImageURL  string
	CreatedAt time.Time
}

// Verdict is the oracle's decision for a single creative.
type Verdict struct {
	Approved bool
	Reason   string
}

func (v Verdict) Status() ModerationStatus {
	if v.Approved {
		return ModerationStatusApproved
	}
	return ModerationStatusRejected
}
