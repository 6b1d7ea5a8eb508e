package commands

import (
	"context"
	"testing"
	"time"

	"adx402/contexts/moderation/moderation-service/adapters/memory"
	"adx402/contexts/moderation/moderation-service/domain/entities"
)

func pendingAd(id string, imageURL string) entities.PendingAd {
	return entities.PendingAd{
		AdID:      id,
		BrandID:   "brand-1",
		ImageURL:  imageURL,
		CreatedAt: time.Now().UTC(),
	}
}

func TestReviewPendingAppliesVerdicts(t *testing.T) {
	store := memory.NewStore([]entities.PendingAd{
		pendingAd("ad-ok", "https://cdn/ok"),
		pendingAd("ad-bad", "https://cdn/bad"),
	})
	oracle := memory.NewScriptedOracle()
	oracle.Script("https://cdn/ok", entities.Verdict{Approved: true})
	oracle.Script("https://cdn/bad", entities.Verdict{Approved: false, Reason: "adult content"})

	uc := ReviewPendingUseCase{Ads: store, Oracle: oracle}
	report, err := uc.Execute(context.Background(), 10)
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if report.Approved != 1 || report.Rejected != 1 || report.Failed != 0 {
		t.Fatalf("unexpected report: %+v", report)
	}

	status, _, _ := store.Status("ad-ok")
	if status != entities.ModerationStatusApproved {
		t.Fatalf("ad-ok should be approved, got %s", status)
	}
	status, reason, _ := store.Status("ad-bad")
	if status != entities.ModerationStatusRejected || reason != "adult content" {
		t.Fatalf("ad-bad should be rejected with reason, got %s / %q", status, reason)
	}
}

func TestReviewPendingIsolatesPerAdFailures(t *testing.T) {
	store := memory.NewStore([]entities.PendingAd{
		pendingAd("ad-broken", "https://cdn/unscripted"),
		pendingAd("ad-fine", "https://cdn/fine"),
	})
	oracle := memory.NewScriptedOracle()
	oracle.Script("https://cdn/fine", entities.Verdict{Approved: true})

	uc := ReviewPendingUseCase{Ads: store, Oracle: oracle}
	report, err := uc.Execute(context.Background(), 10)
	if err != nil {
		t.Fatalf("sweep must not fail on a single bad ad: %v", err)
	}
	if report.Failed != 1 || report.Approved != 1 {
		t.Fatalf("unexpected report: %+v", report)
	}

	status, _, _ := store.Status("ad-broken")
	if status != entities.ModerationStatusPending {
		t.Fatalf("failed ad must stay pending for the next sweep, got %s", status)
	}
	status, _, _ = store.Status("ad-fine")
	if status != entities.ModerationStatusApproved {
		t.Fatalf("healthy ad must still be processed, got %s", status)
	}
}

func TestReviewPendingHonorsBatchLimit(t *testing.T) {
	older := pendingAd("ad-older", "https://cdn/older")
	older.CreatedAt = time.Now().UTC().Add(-time.Hour)
	newer := pendingAd("ad-newer", "https://cdn/newer")

	store := memory.NewStore([]entities.PendingAd{newer, older})
	oracle := memory.NewScriptedOracle()
	oracle.Script("https://cdn/older", entities.Verdict{Approved: true})
	oracle.Script("https://cdn/newer", entities.Verdict{Approved: true})

	uc := ReviewPendingUseCase{Ads: store, Oracle: oracle}
	report, err := uc.Execute(context.Background(), 1)
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if report.Reviewed != 1 {
		t.Fatalf("expected one reviewed ad, got %d", report.Reviewed)
	}
	// Oldest pending goes first.
	status, _, _ := store.Status("ad-older")
	if status != entities.ModerationStatusApproved {
		t.Fatalf("expected oldest ad reviewed first, got %s", status)
	}
}
