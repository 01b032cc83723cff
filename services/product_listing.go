package services

import (
	"context"
	"net/url"
	"time"

	"productcatalog/cache"
	"productcatalog/models"
)

// ListingCacheTTL is how long one listing page is served from cache.
const ListingCacheTTL = 600 * time.Second

// ProductListingService는 검증, 캐시 조회, 쿼리 실행을 묶은 제품 목록 조회를 정의합니다.
type ProductListingService interface {
	// GetListing returns the page for raw along with the normalized filter.
	// Invalid input yields a *ValidationError and never touches the cache.
	GetListing(ctx context.Context, raw url.Values) (models.PaginatedProducts, FilterSpec, error)
}

type productListingService struct {
	categories CategoryChecker
	engine     ProductQueryEngine
	store      cache.Store
}

// NewProductListingService는 ProductListingService 구현체를 생성합니다.
func NewProductListingService(categories CategoryChecker, engine ProductQueryEngine, store cache.Store) ProductListingService {
	return &productListingService{
		categories: categories,
		engine:     engine,
		store:      store,
	}
}

func (s *productListingService) GetListing(ctx context.Context, raw url.Values) (models.PaginatedProducts, FilterSpec, error) {
	spec, err := ParseProductFilter(ctx, raw, s.categories)
	if err != nil {
		return models.PaginatedProducts{}, FilterSpec{}, err
	}

	key := BuildListingCacheKey(raw)
	result, err := cache.Remember(ctx, s.store, key, ListingCacheTTL, func(ctx context.Context) (models.PaginatedProducts, error) {
		return s.engine.Execute(ctx, spec)
	})
	if err != nil {
		return models.PaginatedProducts{}, FilterSpec{}, err
	}

	return result, spec, nil
}
