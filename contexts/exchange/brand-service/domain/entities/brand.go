package entities

import (
	"strings"
	"time"
)

type BrandStatus string

const (
	BrandStatusActive  BrandStatus = "active"
	BrandStatusFlagged BrandStatus = "flagged"
	BrandStatusBanned  BrandStatus = "banned"
)

type Brand struct {
	BrandID       string
	WalletAddress string
	Name          string
	Status        BrandStatus
	CreatedAt     time.Time
}

// CanPost reports whether the brand may publish new creatives. Flagged
// brands keep serving existing ads but cannot post; banned brands cannot
// do either.
func (b Brand) CanPost() bool {
	return b.Status == BrandStatusActive
}

type ModerationStatus string

const (
	ModerationStatusPending  ModerationStatus = "pending"
	ModerationStatusApproved ModerationStatus = "approved"
	ModerationStatusRejected ModerationStatus = "rejected"
)

type Ad struct {
	AdID             string
	BrandID          string
	ImageURL         string
	TargetURL        string
	Tags             []string
	AspectRatio      string
	CreditBalance    int
	StartTime        *time.Time
	EndTime          *time.Time
	ModerationStatus ModerationStatus
	CreatedAt        time.Time
}

func (a Ad) ValidateBasics() bool {
	return strings.TrimSpace(a.BrandID) != "" &&
		strings.TrimSpace(a.ImageURL) != "" &&
		strings.TrimSpace(a.TargetURL) != "" &&
		validWindow(a.StartTime, a.EndTime)
}

func validWindow(start *time.Time, end *time.Time) bool {
	if start == nil || end == nil {
		return true
	}
	return !end.Before(*start)
}
