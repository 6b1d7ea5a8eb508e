package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"adx402/contexts/exchange/brand-service/domain/entities"
	domainerrors "adx402/contexts/exchange/brand-service/domain/errors"

	"github.com/jackc/pgx/v5/pgconn"
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

func (r *Repository) CreateBrand(ctx context.Context, brand entities.Brand) error {
	row := brandModelFromEntity(brand)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			// A concurrent upload for the same wallet created the brand
			// first; the caller re-reads by wallet and continues.
			return domainerrors.ErrInvalidInput
		}
		return err
	}
	return nil
}

func (r *Repository) GetBrandByWallet(ctx context.Context, walletAddress string) (entities.Brand, error) {
	var row brandModel
	err := r.db.WithContext(ctx).
		Where("wallet_address = ?", strings.TrimSpace(walletAddress)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Brand{}, domainerrors.ErrBrandNotFound
		}
		return entities.Brand{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) CreateAd(ctx context.Context, ad entities.Ad) error {
	row := adModelFromEntity(ad)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return err
	}
	return nil
}

func (r *Repository) GetAd(ctx context.Context, adID string) (entities.Ad, error) {
	var row adModel
	err := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(adID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Ad{}, domainerrors.ErrAdNotFound
		}
		return entities.Ad{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListAdsByBrand(ctx context.Context, brandID string) ([]entities.Ad, error) {
	var rows []adModel
	if err := r.db.WithContext(ctx).
		Where("brand_id = ?", brandID).
		Order("created_at ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}

	items := make([]entities.Ad, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

// AddCredits applies a relative update so concurrent top-ups and serving
// debits compose without a read-modify-write race.
func (r *Repository) AddCredits(ctx context.Context, adID string, amount int) error {
	result := r.db.WithContext(ctx).Model(&adModel{}).
		Where("id = ?", strings.TrimSpace(adID)).
		Update("credit_balance", gorm.Expr("credit_balance + ?", amount))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrAdNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

type brandModel struct {
	ID            string    `gorm:"column:id;primaryKey"`
	WalletAddress string    `gorm:"column:wallet_address"`
	Name          string    `gorm:"column:name"`
	Status        string    `gorm:"column:status"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (brandModel) TableName() string {
	return "brands"
}

func brandModelFromEntity(item entities.Brand) brandModel {
	return brandModel{
		ID:            strings.TrimSpace(item.BrandID),
		WalletAddress: strings.TrimSpace(item.WalletAddress),
		Name:          strings.TrimSpace(item.Name),
		Status:        string(item.Status),
		CreatedAt:     item.CreatedAt.UTC(),
	}
}

func (m brandModel) toEntity() entities.Brand {
	return entities.Brand{
		BrandID:       m.ID,
		WalletAddress: m.WalletAddress,
		Name:          m.Name,
		Status:        entities.BrandStatus(m.Status),
		CreatedAt:     m.CreatedAt.UTC(),
	}
}

type adModel struct {
	ID               string     `gorm:"column:id;primaryKey"`
	BrandID          string     `gorm:"column:brand_id"`
	ImageURL         string     `gorm:"column:image_url"`
	TargetURL        string     `gorm:"column:target_url"`
	Tags             []string   `gorm:"column:tags;type:text[]"`
	AspectRatio      string     `gorm:"column:aspect_ratio"`
	CreditBalance    int        `gorm:"column:credit_balance"`
	StartTime        *time.Time `gorm:"column:start_time"`
	EndTime          *time.Time `gorm:"column:end_time"`
	ModerationStatus string     `gorm:"column:moderation_status"`
	CreatedAt        time.Time  `gorm:"column:created_at"`
}

func (adModel) TableName() string {
	return "ads"
}

func adModelFromEntity(item entities.Ad) adModel {
	return adModel{
		ID:               strings.TrimSpace(item.AdID),
		BrandID:          strings.TrimSpace(item.BrandID),
		ImageURL:         strings.TrimSpace(item.ImageURL),
		TargetURL:        strings.TrimSpace(item.TargetURL),
		Tags:             copyOrEmpty(item.Tags),
		AspectRatio:      strings.TrimSpace(item.AspectRatio),
		CreditBalance:    item.CreditBalance,
		StartTime:        item.StartTime,
		EndTime:          item.EndTime,
		ModerationStatus: string(item.ModerationStatus),
		CreatedAt:        item.CreatedAt.UTC(),
	}
}

func (m adModel) toEntity() entities.Ad {
	return entities.Ad{
		AdID:             m.ID,
		BrandID:          m.BrandID,
		ImageURL:         m.ImageURL,
		TargetURL:        m.TargetURL,
		Tags:             copyOrEmpty(m.Tags),
		AspectRatio:      m.AspectRatio,
		CreditBalance:    m.CreditBalance,
		StartTime:        m.StartTime,
		EndTime:          m.EndTime,
		ModerationStatus: entities.ModerationStatus(m.ModerationStatus),
		CreatedAt:        m.CreatedAt.UTC(),
	}
}

func copyOrEmpty(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	return append([]string(nil), values...)
}
