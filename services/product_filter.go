package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"productcatalog/models"
)

const (
	DefaultPerPage = 15
	MaxPerPage     = 100
)

const nameFilterRule = "max=255"

var statusFilterRule = "oneof=" + strings.Join(models.ProductStatuses, " ")

// 목록 요청 쿼리 파라미터 이름
const (
	ParamPage       = "page"
	ParamPerPage    = "per_page"
	ParamName       = "name"
	ParamCategoryID = "category_id"
	ParamStatus     = "status"
)

// FilterSpec은 검증과 정규화를 마친 제품 목록 조회 조건입니다.
// nil 필드는 "필터 없음"을 의미합니다.
type FilterSpec struct {
	Name       *string
	CategoryID *int64
	Status     *string
	Page       int
	PerPage    int
}

// Offset returns the number of rows skipped before the requested page.
func (f FilterSpec) Offset() int {
	return (f.Page - 1) * f.PerPage
}

// CategoryChecker는 카테고리 존재 여부를 확인합니다.
type CategoryChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// ParseProductFilter validates raw listing parameters. It returns a
// *ValidationError when any field is invalid; an error from categories is
// returned as-is.
func ParseProductFilter(ctx context.Context, raw url.Values, categories CategoryChecker) (FilterSpec, error) {
	spec := FilterSpec{Page: 1, PerPage: DefaultPerPage}
	verr := &ValidationError{}

	if v, ok := presentValue(raw, ParamPage); ok {
		if n, ok := parseIntField(verr, ParamPage, v); ok {
			if n < 1 {
				verr.addf(ParamPage, RuleMin, "The %s field must be at least 1.", attributeName(ParamPage))
			} else {
				spec.Page = int(n)
			}
		}
	}

	if v, ok := presentValue(raw, ParamPerPage); ok {
		if n, ok := parseIntField(verr, ParamPerPage, v); ok {
			switch {
			case n < 1:
				verr.addf(ParamPerPage, RuleMin, "The %s field must be at least 1.", attributeName(ParamPerPage))
			case n > MaxPerPage:
				verr.addf(ParamPerPage, RuleMax, "The %s field must not be greater than %d.", attributeName(ParamPerPage), MaxPerPage)
			default:
				spec.PerPage = int(n)
			}
		}
	}

	if v, ok := presentValue(raw, ParamName); ok {
		if err := checkVar(ctx, verr, ParamName, v, nameFilterRule); err != nil {
			return FilterSpec{}, err
		}
		if !verr.Has(ParamName) {
			spec.Name = &v
		}
	}

	if v, ok := presentValue(raw, ParamCategoryID); ok {
		if id, ok := parseIntField(verr, ParamCategoryID, v); ok {
			exists := false
			if id > 0 {
				var err error
				exists, err = categories.Exists(ctx, id)
				if err != nil {
					return FilterSpec{}, fmt.Errorf("failed to check category %d: %w", id, err)
				}
			}
			if exists {
				spec.CategoryID = &id
			} else {
				verr.add(ParamCategoryID, RuleExists, "The selected category is invalid.")
			}
		}
	}

	if v, ok := presentValue(raw, ParamStatus); ok {
		if err := checkVar(ctx, verr, ParamStatus, v, statusFilterRule); err != nil {
			return FilterSpec{}, err
		}
		if !verr.Has(ParamStatus) {
			spec.Status = &v
		}
	}

	if err := verr.errOrNil(); err != nil {
		return FilterSpec{}, err
	}
	return spec, nil
}

// presentValue returns the first value for key unless it is missing or blank.
func presentValue(raw url.Values, key string) (string, bool) {
	v := strings.TrimSpace(raw.Get(key))
	return v, v != ""
}

func parseIntField(verr *ValidationError, field, value string) (int64, bool) {
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		verr.addf(field, RuleInteger, "The %s field must be an integer.", attributeName(field))
		return 0, false
	}
	return n, true
}

// checkVar validates a single value against tag and records failures under field.
func checkVar(ctx context.Context, verr *ValidationError, field, value, tag string) error {
	if err := verr.addValidatorErrors(validate.VarCtx(ctx, value, tag), field, nil); err != nil {
		return fmt.Errorf("failed to validate %s: %w", field, err)
	}
	return nil
}
