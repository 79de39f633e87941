package api

import (
	"fmt"
	"math"
	"net/url"
	"strconv"

	"github.com/recipe-share/internal/apperr"
	"github.com/recipe-share/internal/config"
)

// pageParams is the pagination contract shared by every listing
// endpoint: page starting at 1, a bounded page size, and the
// offset/limit projection of the two.
type pageParams struct {
	Page     int
	Elements int
}

func (p pageParams) Limit() int  { return p.Elements }
func (p pageParams) Offset() int { return (p.Page - 1) * p.Elements }

// TotalPages computes how many pages the listing spans.
func (p pageParams) TotalPages(totalRecords int) int {
	return int(math.Ceil(float64(totalRecords) / float64(p.Elements)))
}

// parsePagination reads `page` and `elements` from the query,
// defaulting each missing parameter. Every invalid parameter gets its
// own message; all of them are reported together.
func parsePagination(query url.Values, cfg config.PaginationConfig) (pageParams, error) {
	params := pageParams{Page: 1, Elements: cfg.DefaultPageSize}
	var errs []string

	if raw := query.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			errs = append(errs, "There was an error parsing the `page` parameter.")
		case page < 1:
			errs = append(errs, "The `page` parameter must be a positive integer.")
		default:
			params.Page = page
		}
	}

	if raw := query.Get("elements"); raw != "" {
		elements, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			errs = append(errs, "There was an error parsing the `elements` parameter.")
		case elements < 1 || elements > cfg.MaxPageSize:
			errs = append(errs, fmt.Sprintf("The `elements` parameter must be between 1 and %d.", cfg.MaxPageSize))
		default:
			params.Elements = elements
		}
	}

	if len(errs) > 0 {
		return pageParams{}, apperr.New(apperr.Pagination, errs...)
	}
	return params, nil
}
