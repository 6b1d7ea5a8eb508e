package httpadapter

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"adx402/contexts/exchange/brand-service/application/commands"
	"adx402/contexts/exchange/brand-service/application/queries"
	"adx402/contexts/exchange/brand-service/domain/entities"
	domainerrors "adx402/contexts/exchange/brand-service/domain/errors"
	"adx402/contexts/exchange/brand-service/ports"
	httptransport "adx402/contexts/exchange/brand-service/transport/http"
)

type Handler struct {
	UploadAd         commands.UploadAdUseCase
	CreditAd         commands.CreditAdUseCase
	QuoteUploadPrice commands.QuoteUploadPriceUseCase
	ListAds          queries.ListAdsUseCase
	Logger           *slog.Logger
}

func (h Handler) UploadAdHandler(ctx context.Context, req httptransport.UploadAdRequest) (httptransport.AdDTO, error) {
	startTime, err := parseOptionalTime(req.StartTime)
	if err != nil {
		return httptransport.AdDTO{}, domainerrors.ErrInvalidInput
	}
	endTime, err := parseOptionalTime(req.EndTime)
	if err != nil {
		return httptransport.AdDTO{}, domainerrors.ErrInvalidInput
	}

	result, err := h.UploadAd.Execute(ctx, commands.UploadAdCommand{
		WalletAddress: req.Wallet,
		BrandName:     req.BrandName,
		FileName:      req.FileName,
		ContentType:   req.ContentType,
		Data:          req.Data,
		TargetURL:     req.TargetURL,
		Tags:          append([]string(nil), req.Tags...),
		AspectRatio:   req.AspectRatio,
		StartTime:     startTime,
		EndTime:       endTime,
	})
	if err != nil {
		return httptransport.AdDTO{}, err
	}
	return mapAd(result.Ad), nil
}

func (h Handler) CreditAdHandler(ctx context.Context, req httptransport.CreditAdRequest) (httptransport.CreditAdResponse, error) {
	if strings.TrimSpace(req.Wallet) == "" || strings.TrimSpace(req.AdID) == "" {
		return httptransport.CreditAdResponse{}, domainerrors.ErrInvalidInput
	}
	result, err := h.CreditAd.Execute(ctx, commands.CreditAdCommand{
		WalletAddress: req.Wallet,
		AdID:          req.AdID,
		Amount:        req.Amount,
	})
	if err != nil {
		return httptransport.CreditAdResponse{}, err
	}
	return httptransport.CreditAdResponse{
		AdID:       result.AdID,
		NewBalance: result.NewBalance,
	}, nil
}

func (h Handler) ListAdsHandler(ctx context.Context, wallet string) (httptransport.ListAdsResponse, error) {
	if strings.TrimSpace(wallet) == "" {
		return httptransport.ListAdsResponse{}, domainerrors.ErrInvalidInput
	}
	ads, err := h.ListAds.Execute(ctx, wallet)
	if err != nil {
		return httptransport.ListAdsResponse{}, err
	}
	items := make([]httptransport.AdDTO, 0, len(ads))
	for _, ad := range ads {
		items = append(items, mapAd(ad))
	}
	return httptransport.ListAdsResponse{Items: items}, nil
}

// QuoteUploadPriceHandler is wired into the payment gate rather than a route.
func (h Handler) QuoteUploadPriceHandler(ctx context.Context, wallet string) (ports.PriceQuote, error) {
	return h.QuoteUploadPrice.Execute(ctx, wallet)
}

func mapAd(item entities.Ad) httptransport.AdDTO {
	return httptransport.AdDTO{
		ID:               item.AdID,
		BrandID:          item.BrandID,
		ImageURL:         item.ImageURL,
		TargetURL:        item.TargetURL,
		Tags:             append([]string(nil), item.Tags...),
		AspectRatio:      item.AspectRatio,
		CreditBalance:    item.CreditBalance,
		StartTime:        formatOptionalTime(item.StartTime),
		EndTime:          formatOptionalTime(item.EndTime),
		ModerationStatus: string(item.ModerationStatus),
		CreatedAt:        item.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func parseOptionalTime(value string) (*time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, trimmed)
	if err != nil {
		return nil, err
	}
	utc := parsed.UTC()
	return &utc, nil
}

func formatOptionalTime(value *time.Time) *string {
	if value == nil {
		return nil
	}
	formatted := value.UTC().Format(time.RFC3339)
	return &formatted
}
