// Package catalog filters and orders vehicle listings for the storefront.
package catalog

import (
	"sort"
	"strconv"
	"strings"

	"github.com/karoo-dev/karoo/internal/models"
)

// Sort keys accepted by Apply.
const (
	SortNewest    = "newest"
	SortOldest    = "oldest"
	SortPriceAsc  = "priceAsc"
	SortPriceDesc = "priceDesc"
)

// Filter is the storefront's filter state.
type Filter struct {
	Search   string
	Sort     string
	ShowSold bool
}

// Apply returns the vehicles matching the filter, ordered by the requested
// sort key (newest first by default). Sold vehicles are dropped unless
// ShowSold is set. The search term matches make, model, or year as text,
// case-insensitively. Price sorts compare the structured monthly amounts.
func Apply(vehicles []models.Vehicle, f Filter) []models.Vehicle {
	matched := make([]models.Vehicle, 0, len(vehicles))

	search := strings.ToLower(strings.TrimSpace(f.Search))

	for _, v := range vehicles {
		if v.IsSold && !f.ShowSold {
			continue
		}

		if search != "" && !matches(v, search) {
			continue
		}

		matched = append(matched, v)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]

		switch f.Sort {
		case SortOldest:
			return a.Year < b.Year
		case SortPriceAsc:
			return a.MonthlyAmount.LessThan(b.MonthlyAmount)
		case SortPriceDesc:
			return b.MonthlyAmount.LessThan(a.MonthlyAmount)
		default:
			return a.Year > b.Year
		}
	})

	return matched
}

func matches(v models.Vehicle, search string) bool {
	return strings.Contains(strings.ToLower(v.Make), search) ||
		strings.Contains(strings.ToLower(v.ModelName), search) ||
		strings.Contains(strconv.Itoa(v.Year), search)
}
