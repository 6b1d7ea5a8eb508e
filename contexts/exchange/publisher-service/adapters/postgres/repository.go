package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"adx402/contexts/exchange/publisher-service/domain/entities"
	domainerrors "adx402/contexts/exchange/publisher-service/domain/errors"
	"adx402/contexts/exchange/publisher-service/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
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

func (r *Repository) CreatePublisher(ctx context.Context, publisher entities.Publisher) error {
	row := publisherModelFromEntity(publisher)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			// The use case probes wallet and domain separately first;
			// a violation here means a concurrent insert won the race.
			return domainerrors.ErrPublisherAlreadyExists
		}
		return err
	}
	return nil
}

func (r *Repository) GetPublisherByWallet(ctx context.Context, walletAddress string) (entities.Publisher, error) {
	var row publisherModel
	err := r.db.WithContext(ctx).
		Where("wallet_address = ?", strings.TrimSpace(walletAddress)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Publisher{}, domainerrors.ErrPublisherNotFound
		}
		return entities.Publisher{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) GetPublisherByDomain(ctx context.Context, domain string) (entities.Publisher, error) {
	var row publisherModel
	err := r.db.WithContext(ctx).
		Where("domain = ?", strings.TrimSpace(domain)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Publisher{}, domainerrors.ErrPublisherNotFound
		}
		return entities.Publisher{}, err
	}
	return row.toEntity(), nil
}

// CreateAdSlot locks the publisher row so the duplicate and limit checks
// serialize against concurrent creates for the same publisher.
func (r *Repository) CreateAdSlot(ctx context.Context, slot entities.AdSlot) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var owner publisherModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", slot.PublisherID).
			First(&owner).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrPublisherNotFound
			}
			return err
		}

		var existing int64
		if err := tx.Model(&adSlotModel{}).
			Where("publisher_id = ? AND slot_name = ?", slot.PublisherID, slot.SlotName).
			Count(&existing).
			Error; err != nil {
			return err
		}
		if existing > 0 {
			return domainerrors.ErrAdSlotAlreadyExists
		}

		var owned int64
		if err := tx.Model(&adSlotModel{}).
			Where("publisher_id = ?", slot.PublisherID).
			Count(&owned).
			Error; err != nil {
			return err
		}
		if owned >= entities.MaxAdSlotsPerPublisher {
			return domainerrors.ErrAdSlotLimitExceeded
		}

		row := adSlotModelFromEntity(slot)
		if err := tx.Create(&row).Error; err != nil {
			if isUniqueViolation(err) {
				return domainerrors.ErrAdSlotAlreadyExists
			}
			return err
		}
		return nil
	})
}

func (r *Repository) GetAdSlot(ctx context.Context, publisherID string, slotName string) (entities.AdSlot, error) {
	var row adSlotModel
	err := r.db.WithContext(ctx).
		Where("publisher_id = ? AND slot_name = ?", publisherID, strings.TrimSpace(slotName)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.AdSlot{}, domainerrors.ErrAdSlotNotFound
		}
		return entities.AdSlot{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListAdSlots(ctx context.Context, publisherID string) ([]entities.AdSlot, error) {
	var rows []adSlotModel
	if err := r.db.WithContext(ctx).
		Where("publisher_id = ?", publisherID).
		Order("created_at ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}

	items := make([]entities.AdSlot, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

// FindEligibleAd pushes the whole eligibility filter to the query layer and
// ranks by balance; created_at breaks ties deterministically.
func (r *Repository) FindEligibleAd(ctx context.Context, targeting ports.SlotTargeting, now time.Time) (entities.CatalogAd, bool, error) {
	query := r.db.WithContext(ctx).Model(&adModel{}).
		Where("credit_balance > 0").
		Where("moderation_status = ?", string(entities.ModerationStatusApproved)).
		Where("(start_time IS NULL OR start_time <= ?)", now.UTC()).
		Where("(end_time IS NULL OR end_time >= ?)", now.UTC())

	if len(targeting.AspectRatios) > 0 {
		query = query.Where("aspect_ratio IN ?", targeting.AspectRatios)
	}
	if len(targeting.Tags) > 0 {
		// Array overlap: the ad's tag set must intersect the slot's.
		query = query.Where("tags && ?::text[]", targeting.Tags)
	}

	var rows []adModel
	if err := query.
		Order("credit_balance DESC, created_at ASC").
		Limit(1).
		Find(&rows).
		Error; err != nil {
		return entities.CatalogAd{}, false, err
	}
	if len(rows) == 0 {
		return entities.CatalogAd{}, false, nil
	}
	return rows[0].toEntity(), true, nil
}

func (r *Repository) GetAd(ctx context.Context, adID string) (entities.CatalogAd, error) {
	var row adModel
	err := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(adID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.CatalogAd{}, domainerrors.ErrAdNotFound
		}
		return entities.CatalogAd{}, err
	}
	return row.toEntity(), nil
}

// RecordImpression inserts the impression and debits one credit in a single
// transaction. The debit is a guarded relative update checked through
// RowsAffected, so a concurrent caller can never drive the balance negative.
func (r *Repository) RecordImpression(ctx context.Context, impression entities.Impression) (string, error) {
	row := impressionModelFromEntity(impression)
	if row.ID == "" {
		row.ID = uuid.NewString()
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		debit := tx.Model(&adModel{}).
			Where("id = ? AND credit_balance > 0", impression.AdID).
			Update("credit_balance", gorm.Expr("credit_balance - 1"))
		if debit.Error != nil {
			return debit.Error
		}
		if debit.RowsAffected == 0 {
			return domainerrors.ErrInsufficientCredits
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return row.ID, nil
}

func (r *Repository) GetImpression(ctx context.Context, impressionID string) (entities.Impression, error) {
	var row impressionModel
	err := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(impressionID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Impression{}, domainerrors.ErrImpressionNotFound
		}
		return entities.Impression{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) RecordClick(ctx context.Context, click entities.Click) (string, error) {
	row := clickModel{
		ID:           strings.TrimSpace(click.ClickID),
		ImpressionID: strings.TrimSpace(click.ImpressionID),
		CreatedAt:    click.CreatedAt.UTC(),
	}
	if row.ID == "" {
		row.ID = uuid.NewString()
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return "", err
	}
	return row.ID, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

type publisherModel struct {
	ID                string    `gorm:"column:id;primaryKey"`
	WalletAddress     string    `gorm:"column:wallet_address"`
	Domain            string    `gorm:"column:domain"`
	VerificationToken string    `gorm:"column:verification_token"`
	IsVerified        bool      `gorm:"column:is_verified"`
	TrafficScore      int       `gorm:"column:traffic_score"`
	Tags              []string  `gorm:"column:tags;type:text[]"`
	CreatedAt         time.Time `gorm:"column:created_at"`
}

func (publisherModel) TableName() string {
	return "publishers"
}

func publisherModelFromEntity(item entities.Publisher) publisherModel {
	return publisherModel{
		ID:                strings.TrimSpace(item.PublisherID),
		WalletAddress:     strings.TrimSpace(item.WalletAddress),
		Domain:            strings.TrimSpace(item.Domain),
		VerificationToken: strings.TrimSpace(item.VerificationToken),
		IsVerified:        item.IsVerified,
		TrafficScore:      item.TrafficScore,
		Tags:              copyOrEmpty(item.Tags),
		CreatedAt:         item.CreatedAt.UTC(),
	}
}

func (m publisherModel) toEntity() entities.Publisher {
	return entities.Publisher{
		PublisherID:       m.ID,
		WalletAddress:     m.WalletAddress,
		Domain:            m.Domain,
		VerificationToken: m.VerificationToken,
		IsVerified:        m.IsVerified,
		TrafficScore:      m.TrafficScore,
		Tags:              copyOrEmpty(m.Tags),
		CreatedAt:         m.CreatedAt.UTC(),
	}
}

type adSlotModel struct {
	ID           string    `gorm:"column:id;primaryKey"`
	PublisherID  string    `gorm:"column:publisher_id"`
	SlotName     string    `gorm:"column:slot_name"`
	Tags         []string  `gorm:"column:tags;type:text[]"`
	AspectRatios []string  `gorm:"column:aspect_ratios;type:text[]"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (adSlotModel) TableName() string {
	return "ad_slots"
}

func adSlotModelFromEntity(item entities.AdSlot) adSlotModel {
	return adSlotModel{
		ID:           strings.TrimSpace(item.SlotID),
		PublisherID:  strings.TrimSpace(item.PublisherID),
		SlotName:     strings.TrimSpace(item.SlotName),
		Tags:         copyOrEmpty(item.Tags),
		AspectRatios: copyOrEmpty(item.AspectRatios),
		CreatedAt:    item.CreatedAt.UTC(),
	}
}

func (m adSlotModel) toEntity() entities.AdSlot {
	return entities.AdSlot{
		SlotID:       m.ID,
		PublisherID:  m.PublisherID,
		SlotName:     m.SlotName,
		Tags:         copyOrEmpty(m.Tags),
		AspectRatios: copyOrEmpty(m.AspectRatios),
		CreatedAt:    m.CreatedAt.UTC(),
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

func (m adModel) toEntity() entities.CatalogAd {
	return entities.CatalogAd{
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

type impressionModel struct {
	ID                string    `gorm:"column:id;primaryKey"`
	AdID              string    `gorm:"column:ad_id"`
	PublisherID       string    `gorm:"column:publisher_id"`
	SlotID            string    `gorm:"column:slot_id"`
	ViewerFingerprint string    `gorm:"column:viewer_fingerprint"`
	ViewerIP          string    `gorm:"column:viewer_ip"`
	CreatedAt         time.Time `gorm:"column:created_at"`
}

func (impressionModel) TableName() string {
	return "impressions"
}

func impressionModelFromEntity(item entities.Impression) impressionModel {
	return impressionModel{
		ID:                strings.TrimSpace(item.ImpressionID),
		AdID:              strings.TrimSpace(item.AdID),
		PublisherID:       strings.TrimSpace(item.PublisherID),
		SlotID:            strings.TrimSpace(item.SlotID),
		ViewerFingerprint: strings.TrimSpace(item.ViewerFingerprint),
		ViewerIP:          strings.TrimSpace(item.ViewerIP),
		CreatedAt:         item.CreatedAt.UTC(),
	}
}

func (m impressionModel) toEntity() entities.Impression {
	return entities.Impression{
		ImpressionID:      m.ID,
		AdID:              m.AdID,
		PublisherID:       m.PublisherID,
		SlotID:            m.SlotID,
		ViewerFingerprint: m.ViewerFingerprint,
		ViewerIP:          m.ViewerIP,
		CreatedAt:         m.CreatedAt.UTC(),
	}
}

type clickModel struct {
	ID           string    `gorm:"column:id;primaryKey"`
	ImpressionID string    `gorm:"column:impression_id"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (clickModel) TableName() string {
	return "clicks"
}

func copyOrEmpty(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	return append([]string(nil), values...)
}
