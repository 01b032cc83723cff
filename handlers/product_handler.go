package handlers

import (
	"net/http"
	"net/url"

	"productcatalog/logger"
	"productcatalog/models"
	"productcatalog/services"
)

// ProductsPageComponent is the page client component for the listing.
const ProductsPageComponent = "Products/Index"

// ProductHandler는 제품 목록 HTTP 요청을 처리한다.
type ProductHandler struct {
	listing    services.ProductListingService
	categories services.CategoryService
	pages      *PageRenderer
	flashes    *FlashStore
}

// NewProductHandler는 제품 핸들러를 생성한다.
func NewProductHandler(
	listing services.ProductListingService,
	categories services.CategoryService,
	pages *PageRenderer,
	flashes *FlashStore,
) *ProductHandler {
	return &ProductHandler{
		listing:    listing,
		categories: categories,
		pages:      pages,
		flashes:    flashes,
	}
}

// Index 제품 목록 페이지
// JSON을 요청한 클라이언트에는 API 형식, 그 외에는 페이지 객체를 응답합니다.
func (h *ProductHandler) Index(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	if expectsJSON(r) && !isPageVisit(r) {
		h.List(w, r)
		return
	}

	raw := r.URL.Query()
	result, spec, err := h.listing.GetListing(r.Context(), raw)
	if err != nil {
		if verr, ok := asValidationError(err); ok {
			h.flashes.Put(w, models.Flash{Errors: verr.Messages(), Old: oldFilterInput(raw)})
			redirect(w, r, r.URL.Path)
			return
		}
		h.serverError(w, r, err)
		return
	}

	categories, err := h.categories.ListForFilterDropdown(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	flash := h.flashes.Take(w, r)
	h.pages.Render(w, r, ProductsPageComponent,
		PresentProductsPage(result, spec, categories, raw, requestBaseURL(r)+r.URL.Path, flash))
}

// List 제품 목록 조회
// @Summary 제품 목록 조회
// @Description 이름, 카테고리, 상태로 필터링하고 페이지 단위로 제품 목록을 조회합니다. 결과는 10분간 캐시됩니다.
// @Tags 제품
// @Produce json
// @Param name query string false "이름 부분 일치"
// @Param category_id query int false "카테고리 ID"
// @Param status query string false "상태" Enums(active, inactive, discontinued)
// @Param page query int false "페이지 (기본 1)"
// @Param per_page query int false "페이지당 항목 수 (1-100, 기본 15)"
// @Success 200 {object} models.ProductCollection "조회 성공"
// @Failure 422 {object} models.ValidationErrorResponse "검증 실패"
// @Failure 500 {object} models.APIResponse "서버 에러"
// @Router /api/products [get]
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	raw := r.URL.Query()
	result, _, err := h.listing.GetListing(r.Context(), raw)
	if err != nil {
		if verr, ok := asValidationError(err); ok {
			writeValidationError(w, verr)
			return
		}
		h.serverError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, PresentProductCollection(result, raw, requestBaseURL(r)+r.URL.Path))
}

func (h *ProductHandler) serverError(w http.ResponseWriter, r *http.Request, err error) {
	logger.WithFields(map[string]interface{}{
		"error": err.Error(),
		"query": r.URL.RawQuery,
	}).Error("Failed to list products")
	writeJSON(w, http.StatusInternalServerError, models.ErrorResponse("Failed to list products", nil))
}

// oldFilterInput keeps the submitted filters so the form can be refilled.
func oldFilterInput(raw url.Values) map[string]string {
	old := make(map[string]string)
	for _, key := range []string{services.ParamName, services.ParamCategoryID, services.ParamStatus, services.ParamPerPage} {
		if v := raw.Get(key); v != "" {
			old[key] = v
		}
	}
	return old
}
