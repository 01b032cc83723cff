package models

// ProductView API/페이지 응답용 제품 표현
type ProductView struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Price       string         `json:"price"`
	Status      string         `json:"status"`
	Category    CategoryOption `json:"category"`
	CreatedAt   string         `json:"created_at"`
}

// PaginationLinks 첫/마지막/이전/다음 페이지 링크
type PaginationLinks struct {
	First string  `json:"first"`
	Last  string  `json:"last"`
	Prev  *string `json:"prev"`
	Next  *string `json:"next"`
}

// PageLink 페이지 번호 링크
type PageLink struct {
	URL    *string `json:"url"`
	Label  string  `json:"label"`
	Active bool    `json:"active"`
}

// PaginationMeta 페이징 메타 정보
type PaginationMeta struct {
	CurrentPage int               `json:"current_page"`
	From        *int              `json:"from"`
	To          *int              `json:"to"`
	LastPage    int               `json:"last_page"`
	PerPage     int               `json:"per_page"`
	Total       int               `json:"total"`
	Path        string            `json:"path"`
	Links       []PageLink        `json:"links"`
	Filters     map[string]string `json:"filters"`
}

// ProductCollection API 클라이언트용 제품 목록 응답
type ProductCollection struct {
	Data  []ProductView   `json:"data"`
	Links PaginationLinks `json:"links"`
	Meta  PaginationMeta  `json:"meta"`
}

// ActiveFilters 페이지 렌더링 시 적용된 필터
type ActiveFilters struct {
	Name       *string `json:"name"`
	CategoryID *int64  `json:"category_id"`
	Status     *string `json:"status"`
	PerPage    int     `json:"per_page"`
}

// ProductsPage 서버 렌더링 페이지용 제품 목록 페이로드
type ProductsPage struct {
	Products   ProductCollection `json:"products"`
	Filters    ActiveFilters     `json:"filters"`
	Categories []CategoryOption  `json:"categories"`
	Flash      Flash             `json:"flash"`
}
