package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductStatus 상태 상수
const (
	ProductStatusActive       = "active"
	ProductStatusInactive     = "inactive"
	ProductStatusDiscontinued = "discontinued"
)

// ProductStatuses 허용되는 제품 상태 목록
var ProductStatuses = []string{
	ProductStatusActive,
	ProductStatusInactive,
	ProductStatusDiscontinued,
}

// Category 카테고리 정보
type Category struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Slug      string    `json:"slug,omitempty" db:"slug"`
	CreatedAt time.Time `json:"-" db:"created_at"`
}

// CategoryOption 필터 드롭다운용 카테고리 항목
type CategoryOption struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Product 제품 정보 (카테고리 포함)
type Product struct {
	ID          int64           `json:"id" db:"id"`
	Name        string          `json:"name" db:"name"`
	Description string          `json:"description" db:"description"`
	Price       decimal.Decimal `json:"price" db:"price"`
	CategoryID  int64           `json:"category_id" db:"category_id"`
	Status      string          `json:"status" db:"status"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at" db:"updated_at"`
	Category    CategoryOption  `json:"category"`
}

// PaginatedProducts 필터링된 제품 목록의 한 페이지
type PaginatedProducts struct {
	Items    []Product `json:"items"`
	Page     int       `json:"page"`
	PerPage  int       `json:"per_page"`
	Total    int       `json:"total"`
	LastPage int       `json:"last_page"`
}
