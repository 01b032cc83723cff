package services

import (
	"context"
	"fmt"
	"time"

	"productcatalog/models"
	"productcatalog/query"
	"productcatalog/utils"
)

// ProductQueryEngine는 FilterSpec을 실행해 한 페이지의 제품 목록을 반환합니다.
type ProductQueryEngine interface {
	Execute(ctx context.Context, spec FilterSpec) (models.PaginatedProducts, error)
}

// productListingBase selects products with their category attached.
var productListingBase = query.From("products p").
	Select(
		"p.id", "p.name", "p.description", "p.price", "p.category_id", "p.status",
		"p.created_at", "p.updated_at", "c.id", "c.name",
	).
	Join("JOIN categories c ON c.id = p.category_id")

// productPredicate returns the condition a FilterSpec field contributes, or
// nil when the field is absent.
type productPredicate func(FilterSpec) query.Condition

var productPredicates = []productPredicate{
	func(f FilterSpec) query.Condition {
		if f.Name == nil {
			return nil
		}
		return query.Contains("p.name", *f.Name)
	},
	func(f FilterSpec) query.Condition {
		if f.CategoryID == nil {
			return nil
		}
		return query.Eq("p.category_id", *f.CategoryID)
	},
	func(f FilterSpec) query.Condition {
		if f.Status == nil {
			return nil
		}
		return query.Eq("p.status", *f.Status)
	},
}

type productQueryEngine struct {
	db SQLExecutor
}

// NewProductQueryEngine는 ProductQueryEngine 구현체를 생성합니다.
func NewProductQueryEngine(db SQLExecutor) ProductQueryEngine {
	return &productQueryEngine{db: db}
}

// buildProductQuery folds the applicable predicates over the base query.
func buildProductQuery(spec FilterSpec) *query.Builder {
	b := productListingBase
	for _, predicate := range productPredicates {
		if cond := predicate(spec); cond != nil {
			b = b.Where(cond)
		}
	}
	return b
}

func (e *productQueryEngine) Execute(ctx context.Context, spec FilterSpec) (models.PaginatedProducts, error) {
	if spec.Page < 1 {
		spec.Page = 1
	}
	if spec.PerPage < 1 {
		spec.PerPage = DefaultPerPage
	}

	filtered := buildProductQuery(spec)

	countStmt := filtered.Count().Build()
	var total int
	if err := e.db.QueryRowContext(ctx, countStmt.SQL, countStmt.Args...).Scan(&total); err != nil {
		return models.PaginatedProducts{}, fmt.Errorf("failed to count products: %w", err)
	}

	result := models.PaginatedProducts{
		Items:    make([]models.Product, 0),
		Page:     spec.Page,
		PerPage:  spec.PerPage,
		Total:    total,
		LastPage: lastPage(total, spec.PerPage),
	}
	// Pages past the end are empty; this also keeps Offset from overflowing.
	if total == 0 || spec.Page > result.LastPage {
		return result, nil
	}

	pageStmt := filtered.
		OrderBy("p.id", query.Asc).
		Limit(int64(spec.PerPage)).
		Offset(int64(spec.Offset())).
		Build()

	rows, err := e.db.QueryContext(ctx, pageStmt.SQL, pageStmt.Args...)
	if err != nil {
		return models.PaginatedProducts{}, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			product              models.Product
			createdAt, updatedAt string
		)
		if err := rows.Scan(
			&product.ID, &product.Name, &product.Description, &product.Price, &product.CategoryID,
			&product.Status, &createdAt, &updatedAt, &product.Category.ID, &product.Category.Name,
		); err != nil {
			return models.PaginatedProducts{}, fmt.Errorf("failed to scan product: %w", err)
		}
		if product.CreatedAt, err = parseOptionalDBDate(createdAt); err != nil {
			return models.PaginatedProducts{}, err
		}
		if product.UpdatedAt, err = parseOptionalDBDate(updatedAt); err != nil {
			return models.PaginatedProducts{}, err
		}
		result.Items = append(result.Items, product)
	}
	if err := rows.Err(); err != nil {
		return models.PaginatedProducts{}, fmt.Errorf("failed to read products: %w", err)
	}

	return result, nil
}

func lastPage(total, perPage int) int {
	if total <= 0 {
		return 1
	}
	return (total + perPage - 1) / perPage
}

func parseOptionalDBDate(value string) (ts time.Time, err error) {
	if value == "" {
		return ts, nil
	}
	if ts, err = utils.ParseDBDate(value); err != nil {
		return ts, fmt.Errorf("failed to parse product timestamp: %w", err)
	}
	return ts, nil
}
