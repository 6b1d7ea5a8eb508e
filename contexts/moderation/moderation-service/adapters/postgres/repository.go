package postgresadapter

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"adx402/contexts/moderation/moderation-service/domain/entities"
	domainerrors "adx402/contexts/moderation/moderation-service/domain/errors"

	"gorm.io/gorm"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) ListPendingAds(ctx context.Context, limit int) ([]entities.PendingAd, error) {
	query := r.db.WithContext(ctx).Model(&adModel{}).
		Where("moderation_status = ?", string(entities.ModerationStatusPending)).
		Order("created_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rows []adModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]entities.PendingAd, 0, len(rows))
	for _, row := range rows {
		items = append(items, entities.PendingAd{
			AdID:      row.ID,
			BrandID:   row.BrandID,
			ImageURL:  row.ImageURL,
			CreatedAt: row.CreatedAt.UTC(),
		})
	}
	return items, nil
}

func (r *Repository) SetModerationStatus(ctx context.Context, adID string, status entities.ModerationStatus, reason string) error {
	result := r.db.WithContext(ctx).Model(&adModel{}).
		Where("id = ?", strings.TrimSpace(adID)).
		Updates(map[string]any{
			"moderation_status": string(status),
			"moderation_reason": strings.TrimSpace(reason),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrAdNotFound
	}
	return nil
}

type adModel struct {
	ID               string    `gorm:"column:id;primaryKey"`
	BrandID          string    `gorm:"column:brand_id"`
	ImageURL         string    `gorm:"column:image_url"`
	ModerationStatus string    `gorm:"column:moderation_status"`
	ModerationReason string    `gorm:"column:moderation_reason"`
	CreatedAt        time.Time `gorm:"column:created_at"`
}

func (adModel) TableName() string {
	return "ads"
}
