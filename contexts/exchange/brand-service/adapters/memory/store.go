package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"adx402/contexts/exchange/brand-service/domain/entities"
	domainerrors "adx402/contexts/exchange/brand-service/domain/errors"

	"github.com/google/uuid"
)

type Store struct {
	mu sync.RWMutex

	brands map[string]entities.Brand
	ads    map[string]entities.Ad
}

func NewStore(seedBrands []entities.Brand) *Store {
	brands := make(map[string]entities.Brand, len(seedBrands))
	for _, item := range seedBrands {
		brands[item.BrandID] = item
	}
	return &Store{
		brands: brands,
		ads:    make(map[string]entities.Ad),
	}
}

func (s *Store) CreateBrand(_ context.Context, brand entities.Brand) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.brands {
		if existing.WalletAddress == brand.WalletAddress {
			return domainerrors.ErrInvalidInput
		}
	}
	s.brands[brand.BrandID] = brand
	return nil
}

func (s *Store) GetBrandByWallet(_ context.Context, walletAddress string) (entities.Brand, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.brands {
		if item.WalletAddress == strings.TrimSpace(walletAddress) {
			return item, nil
		}
	}
	return entities.Brand{}, domainerrors.ErrBrandNotFound
}

func (s *Store) CreateAd(_ context.Context, ad entities.Ad) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.brands[ad.BrandID]; !exists {
		return domainerrors.ErrBrandNotFound
	}
	s.ads[ad.AdID] = ad
	return nil
}

func (s *Store) GetAd(_ context.Context, adID string) (entities.Ad, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.ads[strings.TrimSpace(adID)]
	if !exists {
		return entities.Ad{}, domainerrors.ErrAdNotFound
	}
	return item, nil
}

func (s *Store) ListAdsByBrand(_ context.Context, brandID string) ([]entities.Ad, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Ad, 0)
	for _, item := range s.ads {
		if item.BrandID == brandID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) AddCredits(_ context.Context, adID string, amount int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ad, exists := s.ads[strings.TrimSpace(adID)]
	if !exists {
		return domainerrors.ErrAdNotFound
	}
	ad.CreditBalance += amount
	s.ads[ad.AdID] = ad
	return nil
}

// SeedBrand inserts or replaces a brand; test setup helper.
func (s *Store) SeedBrand(brand entities.Brand) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.brands[brand.BrandID] = brand
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
