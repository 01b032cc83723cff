package services

import (
	"context"
	"fmt"
	"time"

	"productcatalog/cache"
	"productcatalog/models"
)

// CategoriesCacheTTL is how long the dropdown list is cached.
const CategoriesCacheTTL = time.Hour

// CategoryService는 카테고리 조회 로직을 정의합니다.
type CategoryService interface {
	ListForFilterDropdown(ctx context.Context) ([]models.CategoryOption, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

type categoryService struct {
	db    SQLExecutor
	store cache.Store
}

// NewCategoryService는 CategoryService 구현체를 생성합니다.
func NewCategoryService(db SQLExecutor, store cache.Store) CategoryService {
	return &categoryService{db: db, store: store}
}

func (s *categoryService) ListForFilterDropdown(ctx context.Context) ([]models.CategoryOption, error) {
	return cache.Remember(ctx, s.store, categoriesCacheKey, CategoriesCacheTTL, s.loadOptions)
}

func (s *categoryService) loadOptions(ctx context.Context) ([]models.CategoryOption, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name FROM categories ORDER BY name ASC, id ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	options := make([]models.CategoryOption, 0)
	for rows.Next() {
		var option models.CategoryOption
		if err := rows.Scan(&option.ID, &option.Name); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		options = append(options, option)
	}
	return options, rows.Err()
}

func (s *categoryService) Exists(ctx context.Context, id int64) (bool, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM categories WHERE id = ?", id).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
