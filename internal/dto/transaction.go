package dto

import (
	"math"
	"strconv"
	"strings"

	"github.com/GregMSThompson/transaction-insights/internal/models"
)

const (
	DefaultMonth   = 3
	DefaultPage    = 1
	DefaultPerPage = 10
)

// TransactionFilter is the store-independent query criteria. Month is always
// applied; nil fields are not constrained.
type TransactionFilter struct {
	Month    int
	Search   *string
	Sold     *bool
	PriceMin *float64
	PriceMax *float64
}

// SearchText returns the search term, or "" when no search was requested.
func (f TransactionFilter) SearchText() string {
	if f.Search == nil {
		return ""
	}
	return strings.TrimSpace(*f.Search)
}

// SearchPrice parses the search term as a price. A search that is not a
// finite number never matches on price.
func (f TransactionFilter) SearchPrice() (float64, bool) {
	s := f.SearchText()
	if s == "" {
		return 0, false
	}
	price, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, false
	}
	return price, true
}

// Page is a skip/limit window over a sorted result.
type Page struct {
	Skip  int64
	Limit int64
}

type ListProductsArgs struct {
	Search  *string
	Page    int
	PerPage int
	Month   int
}

type ProductPage struct {
	TotalCount  int64                `json:"totalCount"`
	CurrentPage int                  `json:"currentPage"`
	PerPage     int                  `json:"perPage"`
	TotalPages  int64                `json:"totalPages"`
	Products    []models.Transaction `json:"products"`
}
