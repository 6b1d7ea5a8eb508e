package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	application "adx402/contexts/exchange/brand-service/application"
	"adx402/contexts/exchange/brand-service/domain/entities"
	domainerrors "adx402/contexts/exchange/brand-service/domain/errors"
	"adx402/contexts/exchange/brand-service/ports"
)

type UploadAdCommand struct {
	WalletAddress string
	BrandName     string
	FileName      string
	ContentType   string
	Data          []byte
	TargetURL     string
	Tags          []string
	AspectRatio   string
	StartTime     *time.Time
	EndTime       *time.Time
}

type UploadAdResult struct {
	Ad       entities.Ad
	FileName string
}

// UploadAdUseCase runs after the payment gate has verified payment. The
// creative goes to object storage first; nothing is written to the store
// when the upload fails.
type UploadAdUseCase struct {
	Brands      ports.BrandRepository
	Ads         ports.AdRepository
	Creatives   ports.CreativeStore
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (uc UploadAdUseCase) Execute(ctx context.Context, cmd UploadAdCommand) (UploadAdResult, error) {
	logger := application.ResolveLogger(uc.Logger)

	wallet := strings.TrimSpace(cmd.WalletAddress)
	if wallet == "" || strings.TrimSpace(cmd.TargetURL) == "" || len(cmd.Data) == 0 {
		return UploadAdResult{}, domainerrors.ErrInvalidInput
	}
	if !strings.HasPrefix(strings.TrimSpace(cmd.ContentType), "image/") {
		return UploadAdResult{}, domainerrors.ErrCreativeRejected
	}

	brand, err := uc.resolveBrand(ctx, wallet, cmd.BrandName)
	if err != nil {
		return UploadAdResult{}, err
	}
	if !brand.CanPost() {
		return UploadAdResult{}, domainerrors.ErrBrandNotActive
	}

	adID, err := uc.IDGenerator.NewID(ctx)
	if err != nil {
		return UploadAdResult{}, err
	}

	key := fmt.Sprintf("creatives/%s/%s-%s", brand.BrandID, adID, sanitizeFileName(cmd.FileName))
	imageURL, err := uc.Creatives.Store(ctx, key, cmd.ContentType, cmd.Data)
	if err != nil {
		logger.Error("creative upload failed",
			"event", "ad_creative_upload_failed",
			"module", "exchange/brand-service",
			"layer", "application",
			"brand_id", brand.BrandID,
			"error", err.Error(),
		)
		return UploadAdResult{}, domainerrors.ErrUploadFailed
	}

	ad := entities.Ad{
		AdID:             adID,
		BrandID:          brand.BrandID,
		ImageURL:         imageURL,
		TargetURL:        strings.TrimSpace(cmd.TargetURL),
		Tags:             append([]string(nil), cmd.Tags...),
		AspectRatio:      strings.TrimSpace(cmd.AspectRatio),
		CreditBalance:    0,
		StartTime:        cmd.StartTime,
		EndTime:          cmd.EndTime,
		ModerationStatus: entities.ModerationStatusPending,
		CreatedAt:        uc.Clock.Now().UTC(),
	}
	if !ad.ValidateBasics() {
		return UploadAdResult{}, domainerrors.ErrInvalidInput
	}
	if err := uc.Ads.CreateAd(ctx, ad); err != nil {
		return UploadAdResult{}, err
	}

	logger.Info("ad uploaded",
		"event", "ad_uploaded",
		"module", "exchange/brand-service",
		"layer", "application",
		"ad_id", ad.AdID,
		"brand_id", brand.BrandID,
	)
	return UploadAdResult{Ad: ad, FileName: strings.TrimSpace(cmd.FileName)}, nil
}

// resolveBrand creates the brand on first upload; subsequent uploads reuse it.
func (uc UploadAdUseCase) resolveBrand(ctx context.Context, wallet string, name string) (entities.Brand, error) {
	brand, err := uc.Brands.GetBrandByWallet(ctx, wallet)
	if err == nil {
		return brand, nil
	}
	if !errors.Is(err, domainerrors.ErrBrandNotFound) {
		return entities.Brand{}, err
	}

	brandID, err := uc.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Brand{}, err
	}
	displayName := strings.TrimSpace(name)
	if displayName == "" {
		displayName = wallet
	}
	brand = entities.Brand{
		BrandID:       brandID,
		WalletAddress: wallet,
		Name:          displayName,
		Status:        entities.BrandStatusActive,
		CreatedAt:     uc.Clock.Now().UTC(),
	}
	if err := uc.Brands.CreateBrand(ctx, brand); err != nil {
		return entities.Brand{}, err
	}
	return brand, nil
}

func sanitizeFileName(fileName string) string {
	value := strings.TrimSpace(fileName)
	if value == "" {
		return "creative.bin"
	}
	value = strings.ReplaceAll(value, " ", "-")
	value = strings.ReplaceAll(value, "/", "-")
	value = strings.ReplaceAll(value, "\\", "-")
	return value
}
