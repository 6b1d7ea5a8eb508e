package commands

import (
	"context"
	"log/slog"

	application "adx402/contexts/moderation/moderation-service/application"
	"adx402/contexts/moderation/moderation-service/ports"
)

type SweepReport struct {
	Reviewed int
	Approved int
	Rejected int
	Failed   int
}

// ReviewPendingUseCase pulls the pending queue and asks the oracle about
// each creative. A failure on one ad never blocks the rest; that ad stays
// pending and the next sweep retries it.
type ReviewPendingUseCase struct {
	Ads    ports.PendingAdRepository
	Oracle ports.ModerationOracle
	Logger *slog.Logger
}

func (uc ReviewPendingUseCase) Execute(ctx context.Context, limit int) (SweepReport, error) {
	logger := application.ResolveLogger(uc.Logger)

	pending, err := uc.Ads.ListPendingAds(ctx, limit)
	if err != nil {
		return SweepReport{}, err
	}

	report := SweepReport{}
	for _, ad := range pending {
		verdict, err := uc.Oracle.Review(ctx, ad.ImageURL)
		if err != nil {
			report.Failed++
			logger.Error("moderation review failed",
				"event", "moderation_review_failed",
				"module", "moderation/moderation-service",
				"layer", "application",
				"ad_id", ad.AdID,
				"error", err.Error(),
			)
			continue
		}
		if err := uc.Ads.SetModerationStatus(ctx, ad.AdID, verdict.Status(), verdict.Reason); err != nil {
			report.Failed++
			logger.Error("moderation status update failed",
				"event", "moderation_status_update_failed",
				"module", "moderation/moderation-service",
				"layer", "application",
				"ad_id", ad.AdID,
				"error", err.Error(),
			)
			continue
		}
		report.Reviewed++
		if verdict.Approved {
			report.Approved++
		} else {
			report.Rejected++
		}
	}

	logger.Info("moderation sweep finished",
		"event", "moderation_sweep_finished",
		"module", "moderation/moderation-service",
		"layer", "application",
		"reviewed", report.Reviewed,
		"approved", report.Approved,
		"rejected", report.Rejected,
		"failed", report.Failed,
	)
	return report, nil
}
