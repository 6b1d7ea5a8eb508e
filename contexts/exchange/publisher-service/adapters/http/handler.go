package httpadapter

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"adx402/contexts/exchange/publisher-service/application/commands"
	"adx402/contexts/exchange/publisher-service/application/queries"
	"adx402/contexts/exchange/publisher-service/domain/entities"
	domainerrors "adx402/contexts/exchange/publisher-service/domain/errors"
	httptransport "adx402/contexts/exchange/publisher-service/transport/http"
)

type Handler struct {
	CreatePublisher commands.CreatePublisherUseCase
	CreateAdSlot    commands.CreateAdSlotUseCase
	TrackImpression commands.TrackImpressionUseCase
	TrackClick      commands.TrackClickUseCase
	GetAd           queries.GetAdUseCase
	GetPublisher    queries.GetPublisherUseCase
	ListAdSlots     queries.ListAdSlotsUseCase
	Logger          *slog.Logger
}

func (h Handler) GetAdHandler(ctx context.Context, wallet string, slotName string) (httptransport.GetAdResponse, error) {
	if strings.TrimSpace(wallet) == "" || strings.TrimSpace(slotName) == "" {
		return httptransport.GetAdResponse{}, domainerrors.ErrInvalidInput
	}
	result, err := h.GetAd.Execute(ctx, queries.GetAdQuery{
		WalletAddress: wallet,
		SlotName:      slotName,
	})
	if err != nil {
		return httptransport.GetAdResponse{}, err
	}
	if !result.Found {
		return httptransport.GetAdResponse{Ad: nil}, nil
	}
	return httptransport.GetAdResponse{Ad: &httptransport.AdDTO{
		ID:          result.Ad.AdID,
		ImageURL:    result.Ad.ImageURL,
		TargetURL:   result.Ad.TargetURL,
		AspectRatio: result.Ad.AspectRatio,
		BrandID:     result.Ad.BrandID,
	}}, nil
}

func (h Handler) TrackImpressionHandler(ctx context.Context, req httptransport.TrackImpressionRequest) (httptransport.TrackImpressionResponse, error) {
	if strings.TrimSpace(req.Wallet) == "" || strings.TrimSpace(req.SlotID) == "" || strings.TrimSpace(req.AdID) == "" {
		return httptransport.TrackImpressionResponse{}, domainerrors.ErrInvalidInput
	}
	result, err := h.TrackImpression.Execute(ctx, commands.TrackImpressionCommand{
		WalletAddress:     req.Wallet,
		SlotName:          req.SlotID,
		AdID:              req.AdID,
		ViewerFingerprint: req.ViewerFingerprint,
		ViewerIP:          req.ViewerIP,
	})
	if err != nil {
		return httptransport.TrackImpressionResponse{}, err
	}
	return httptransport.TrackImpressionResponse{ImpressionID: result.ImpressionID}, nil
}

func (h Handler) TrackClickHandler(ctx context.Context, req httptransport.TrackClickRequest) (httptransport.TrackClickResponse, error) {
	if strings.TrimSpace(req.ImpressionID) == "" {
		return httptransport.TrackClickResponse{}, domainerrors.ErrInvalidInput
	}
	result, err := h.TrackClick.Execute(ctx, commands.TrackClickCommand{
		ImpressionID: req.ImpressionID,
	})
	if err != nil {
		return httptransport.TrackClickResponse{}, err
	}
	return httptransport.TrackClickResponse{ClickID: result.ClickID}, nil
}

func (h Handler) CreatePublisherHandler(ctx context.Context, req httptransport.CreatePublisherRequest) (httptransport.PublisherDTO, error) {
	publisher, err := h.CreatePublisher.Execute(ctx, commands.CreatePublisherCommand{
		WalletAddress: req.WalletAddress,
		Domain:        req.Domain,
		Tags:          append([]string(nil), req.Tags...),
	})
	if err != nil {
		return httptransport.PublisherDTO{}, err
	}
	return mapPublisher(publisher), nil
}

func (h Handler) CreateAdSlotHandler(ctx context.Context, req httptransport.CreateAdSlotRequest) (httptransport.AdSlotDTO, error) {
	slot, err := h.CreateAdSlot.Execute(ctx, commands.CreateAdSlotCommand{
		WalletAddress: req.Wallet,
		SlotName:      req.SlotID,
		Tags:          append([]string(nil), req.Tags...),
		AspectRatios:  append([]string(nil), req.AspectRatios...),
	})
	if err != nil {
		return httptransport.AdSlotDTO{}, err
	}
	return mapAdSlot(slot), nil
}

func (h Handler) GetPublisherHandler(ctx context.Context, wallet string) (httptransport.PublisherDTO, error) {
	if strings.TrimSpace(wallet) == "" {
		return httptransport.PublisherDTO{}, domainerrors.ErrInvalidInput
	}
	publisher, err := h.GetPublisher.Execute(ctx, wallet)
	if err != nil {
		return httptransport.PublisherDTO{}, err
	}
	return mapPublisher(publisher), nil
}

func (h Handler) ListAdSlotsHandler(ctx context.Context, wallet string) (httptransport.ListAdSlotsResponse, error) {
	if strings.TrimSpace(wallet) == "" {
		return httptransport.ListAdSlotsResponse{}, domainerrors.ErrInvalidInput
	}
	slots, err := h.ListAdSlots.Execute(ctx, wallet)
	if err != nil {
		return httptransport.ListAdSlotsResponse{}, err
	}
	items := make([]httptransport.AdSlotDTO, 0, len(slots))
	for _, slot := range slots {
		items = append(items, mapAdSlot(slot))
	}
	return httptransport.ListAdSlotsResponse{Items: items}, nil
}

func mapPublisher(item entities.Publisher) httptransport.PublisherDTO {
	return httptransport.PublisherDTO{
		ID:            item.PublisherID,
		WalletAddress: item.WalletAddress,
		Domain:        item.Domain,
		IsVerified:    item.IsVerified,
		TrafficScore:  item.TrafficScore,
		Tags:          append([]string(nil), item.Tags...),
		CreatedAt:     item.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func mapAdSlot(item entities.AdSlot) httptransport.AdSlotDTO {
	return httptransport.AdSlotDTO{
		ID:           item.SlotID,
		PublisherID:  item.PublisherID,
		SlotID:       item.SlotName,
		Tags:         append([]string(nil), item.Tags...),
		AspectRatios: append([]string(nil), item.AspectRatios...),
		CreatedAt:    item.CreatedAt.UTC().Format(time.RFC3339),
	}
}
