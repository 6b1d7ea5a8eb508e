package entities

import "time"

type ModerationStatus string

const (
	ModerationStatusPending  ModerationStatus = "pending"
	ModerationStatusApproved ModerationStatus = "approved"
	ModerationStatusRejected ModerationStatus = "rejected"
)

// CatalogAd is the serving-side view of an ad. The brand service owns the
// write path; the catalog only reads and debits credits.
type CatalogAd struct {
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

// Servable reports whether the ad may be picked for a slot at the given
// instant: positive balance, approved creative, inside the optional window.
func (a CatalogAd) Servable(now time.Time) bool {
	if a.CreditBalance <= 0 {
		return false
	}
	if a.ModerationStatus != ModerationStatusApproved {
		return false
	}
	if a.StartTime != nil && a.StartTime.After(now) {
		return false
	}
	if a.EndTime != nil && a.EndTime.Before(now) {
		return false
	}
	return true
}

// MatchesSlot applies the slot's declared targeting constraints. An empty
// constraint set matches everything; tag matching is set intersection, not
// subset.
func (a CatalogAd) MatchesSlot(slot AdSlot) bool {
	if len(slot.AspectRatios) > 0 {
		found := false
		for _, ratio := range slot.AspectRatios {
			if a.AspectRatio == ratio {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if len(slot.Tags) > 0 {
		if !tagsIntersect(a.Tags, slot.Tags) {
			return false
		}
	}
	return true
}

func tagsIntersect(left []string, right []string) bool {
	for _, a := range left {
		for _, b := range right {
			if a == b {
				return true
			}
		}
	}
	return false
}

type Impression struct {
	ImpressionID      string
	AdID              string
	PublisherID       string
	SlotID            string
	ViewerFingerprint string
	ViewerIP          string
	CreatedAt         time.Time
}

type Click struct {
	ClickID      string
	ImpressionID string
	CreatedAt    time.Time
}
