package postgresadapter

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"adx402/contexts/finance/settlement-service/domain/entities"

	"github.com/shopspring/decimal"
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

func (r *Repository) CreateSettlement(ctx context.Context, settlement entities.Settlement) error {
	row := settlementModelFromEntity(settlement)
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *Repository) ListSettlements(ctx context.Context, publisherID string) ([]entities.Settlement, error) {
	var rows []settlementModel
	if err := r.db.WithContext(ctx).
		Where("publisher_id = ?", strings.TrimSpace(publisherID)).
		Order("settled_at ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}

	items := make([]entities.Settlement, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) PublisherExists(ctx context.Context, publisherID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Table("publishers").
		Where("id = ?", strings.TrimSpace(publisherID)).
		Count(&count).
		Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) CountImpressions(ctx context.Context, publisherID string, start time.Time, end time.Time) (int, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Table("impressions").
		Where("publisher_id = ? AND created_at >= ? AND created_at <= ?", publisherID, start.UTC(), end.UTC()).
		Count(&count).
		Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

func (r *Repository) CountClicks(ctx context.Context, publisherID string, start time.Time, end time.Time) (int, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Table("clicks").
		Joins("JOIN impressions ON impressions.id = clicks.impression_id").
		Where("impressions.publisher_id = ? AND clicks.created_at >= ? AND clicks.created_at <= ?", publisherID, start.UTC(), end.UTC()).
		Count(&count).
		Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

type settlementModel struct {
	ID               string    `gorm:"column:id;primaryKey"`
	PublisherID      string    `gorm:"column:publisher_id"`
	StartPeriod      time.Time `gorm:"column:start_period"`
	EndPeriod        time.Time `gorm:"column:end_period"`
	ImpressionsCount int       `gorm:"column:impressions_count"`
	ClicksCount      int       `gorm:"column:clicks_count"`
	RewardAmount     string    `gorm:"column:reward_amount;type:numeric(20,8)"`
	TxSignature      string    `gorm:"column:tx_signature"`
	SettledAt        time.Time `gorm:"column:settled_at"`
}

func (settlementModel) TableName() string {
	return "settlements"
}

func settlementModelFromEntity(item entities.Settlement) settlementModel {
	return settlementModel{
		ID:               strings.TrimSpace(item.SettlementID),
		PublisherID:      strings.TrimSpace(item.PublisherID),
		StartPeriod:      item.StartPeriod.UTC(),
		EndPeriod:        item.EndPeriod.UTC(),
		ImpressionsCount: item.ImpressionsCount,
		ClicksCount:      item.ClicksCount,
		RewardAmount:     item.RewardAmount.String(),
		TxSignature:      strings.TrimSpace(item.TxSignature),
		SettledAt:        item.SettledAt.UTC(),
	}
}

func (m settlementModel) toEntity() entities.Settlement {
	reward, err := decimal.NewFromString(m.RewardAmount)
	if err != nil {
		reward = decimal.Zero
	}
	return entities.Settlement{
		SettlementID:     m.ID,
		PublisherID:      m.PublisherID,
		StartPeriod:      m.StartPeriod.UTC(),
		EndPeriod:        m.EndPeriod.UTC(),
		ImpressionsCount: m.ImpressionsCount,
		ClicksCount:      m.ClicksCount,
		RewardAmount:     reward,
		TxSignature:      m.TxSignature,
		SettledAt:        m.SettledAt.UTC(),
	}
}
