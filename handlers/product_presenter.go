package handlers

import (
	"net/url"
	"strconv"
	"strings"

	"productcatalog/models"
	"productcatalog/services"
	"productcatalog/utils"
)

const (
	previousPageLabel = "&laquo; Previous"
	nextPageLabel     = "Next &raquo;"
	pageGapLabel      = "..."
	linksOnEachSide   = 3
)

// echoedFilterParams are the request parameters reported back in meta.filters.
var echoedFilterParams = []string{services.ParamName, services.ParamCategoryID, services.ParamStatus}

// PresentProductCollection shapes a listing page for API clients. raw is the
// original query string; path is the absolute URL of the listing endpoint.
func PresentProductCollection(result models.PaginatedProducts, raw url.Values, path string) models.ProductCollection {
	data := make([]models.ProductView, 0, len(result.Items))
	for _, p := range result.Items {
		data = append(data, presentProduct(p))
	}

	lastPage := max(result.LastPage, 1)
	meta := models.PaginationMeta{
		CurrentPage: result.Page,
		LastPage:    lastPage,
		PerPage:     result.PerPage,
		Total:       result.Total,
		Path:        path,
		Links:       pageLinks(result.Page, lastPage, raw, path),
		Filters:     echoedFilters(raw),
	}
	if len(data) > 0 {
		from := (result.Page-1)*result.PerPage + 1
		to := from + len(data) - 1
		meta.From = &from
		meta.To = &to
	}

	links := models.PaginationLinks{
		First: pageURL(path, raw, 1),
		Last:  pageURL(path, raw, lastPage),
	}
	if result.Page > 1 {
		prev := pageURL(path, raw, result.Page-1)
		links.Prev = &prev
	}
	if result.Page < lastPage {
		next := pageURL(path, raw, result.Page+1)
		links.Next = &next
	}

	return models.ProductCollection{Data: data, Links: links, Meta: meta}
}

// PresentProductsPage shapes a listing page for the server-rendered client.
func PresentProductsPage(
	result models.PaginatedProducts,
	spec services.FilterSpec,
	categories []models.CategoryOption,
	raw url.Values,
	path string,
	flash models.Flash,
) models.ProductsPage {
	if categories == nil {
		categories = []models.CategoryOption{}
	}

	return models.ProductsPage{
		Products: PresentProductCollection(result, raw, path),
		Filters: models.ActiveFilters{
			Name:       spec.Name,
			CategoryID: spec.CategoryID,
			Status:     spec.Status,
			PerPage:    spec.PerPage,
		},
		Categories: categories,
		Flash:      flash,
	}
}

func presentProduct(p models.Product) models.ProductView {
	return models.ProductView{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.StringFixed(2),
		Status:      p.Status,
		Category:    p.Category,
		CreatedAt:   utils.FormatISO8601(p.CreatedAt),
	}
}

// echoedFilters returns the non-blank filter parameters, trimmed.
func echoedFilters(raw url.Values) map[string]string {
	filters := make(map[string]string)
	for _, key := range echoedFilterParams {
		if v := strings.TrimSpace(raw.Get(key)); v != "" {
			filters[key] = v
		}
	}
	return filters
}

// pageURL keeps every other query parameter and replaces page.
func pageURL(path string, raw url.Values, page int) string {
	q := make(url.Values, len(raw)+1)
	for k, v := range raw {
		q[k] = v
	}
	q.Set(services.ParamPage, strconv.Itoa(page))
	return path + "?" + q.Encode()
}

// pageLinks renders the numbered page strip with previous/next entries,
// collapsing distant pages into "..." once there are too many to list.
func pageLinks(current, last int, raw url.Values, path string) []models.PageLink {
	links := make([]models.PageLink, 0, 2*linksOnEachSide+9)

	prev := models.PageLink{Label: previousPageLabel}
	if current > 1 {
		u := pageURL(path, raw, current-1)
		prev.URL = &u
	}
	links = append(links, prev)

	for _, block := range pageWindow(current, last) {
		if block == nil {
			links = append(links, models.PageLink{Label: pageGapLabel})
			continue
		}
		for _, page := range block {
			u := pageURL(path, raw, page)
			links = append(links, models.PageLink{
				URL:    &u,
				Label:  strconv.Itoa(page),
				Active: page == current,
			})
		}
	}

	next := models.PageLink{Label: nextPageLabel}
	if current < last {
		u := pageURL(path, raw, current+1)
		next.URL = &u
	}
	return append(links, next)
}

// pageWindow returns runs of page numbers; a nil run marks a gap.
func pageWindow(current, last int) [][]int {
	window := linksOnEachSide * 2
	if last < window+8 {
		return [][]int{pageRange(1, last)}
	}

	switch {
	case current <= window:
		return [][]int{pageRange(1, window+linksOnEachSide), nil, pageRange(last-1, last)}
	case current > last-window:
		return [][]int{pageRange(1, 2), nil, pageRange(last-(window+linksOnEachSide-1), last)}
	default:
		return [][]int{
			pageRange(1, 2), nil,
			pageRange(current-linksOnEachSide, current+linksOnEachSide), nil,
			pageRange(last-1, last),
		}
	}
}

func pageRange(from, to int) []int {
	pages := make([]int, 0, to-from+1)
	for p := from; p <= to; p++ {
		pages = append(pages, p)
	}
	return pages
}
