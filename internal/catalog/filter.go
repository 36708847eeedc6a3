// Package catalog derives displayable subsets of the static collections:
// facet filtering for the listing pages and related items for detail pages.
// Every function is pure and preserves collection order.
package catalog

import (
	"strings"

	"saly_tourisme/internal/domain"
)

// All is the sentinel selecting every value of a categorical facet.
const All = "all"

// Listing is a filtered view of a collection. Filtered reports whether any
// facet was active, so an empty Items with Filtered=true is a "no match"
// state rather than an empty catalog.
type Listing[T any] struct {
	Items    []T  `json:"items"`
	Total    int  `json:"total"`
	Filtered bool `json:"filtered"`
}

// isAll reports whether a categorical selection is the "everything" sentinel.
// The front-end sends either the key or its French label.
func isAll(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", All, "tous", "toutes":
		return true
	}
	return false
}

// PriceRange is an inclusive [Min, Max] bucket; Max == 0 means no upper bound,
// so the zero value matches every price.
type PriceRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max,omitempty"`
}

func (r PriceRange) IsAny() bool { return r.Min <= 0 && r.Max == 0 }

func (r PriceRange) Contains(price int64) bool {
	if r.IsAny() {
		return true
	}
	if price < r.Min {
		return false
	}
	return r.Max == 0 || price <= r.Max
}

func apply[T any](items []T, active bool, keep func(T) bool) Listing[T] {
	out := Listing[T]{Items: make([]T, 0, len(items)), Total: len(items), Filtered: active}
	for _, it := range items {
		if keep(it) {
			out.Items = append(out.Items, it)
		}
	}
	return out
}

/********** hotels **********/

type HotelFilter struct {
	Type     string     `json:"type"`     // "all" or a domain.HotelType
	MinStars int        `json:"minStars"` // 0 = any
	Budget   PriceRange `json:"budget"`   // selected budget bucket
	Price    PriceRange `json:"price"`    // free numeric range
}

func (f HotelFilter) IsZero() bool {
	return isAll(f.Type) && f.MinStars <= 0 && f.Budget.IsAny() && f.Price.IsAny()
}

func (f HotelFilter) Match(h domain.Hotel) bool {
	if !isAll(f.Type) && string(h.Type) != hotelTypeKey(f.Type) {
		return false
	}
	if h.Stars < f.MinStars {
		return false
	}
	return f.Budget.Contains(h.Price) && f.Price.Contains(h.Price)
}

func FilterHotels(hs []domain.Hotel, f HotelFilter) Listing[domain.Hotel] {
	return apply(hs, !f.IsZero(), f.Match)
}

// hotelTypeKey maps the page labels to type keys; keys pass through.
func hotelTypeKey(v string) string {
	switch strings.TrimSpace(v) {
	case "Hôtel":
		return string(domain.HotelTypeHotel)
	case "Résidence":
		return string(domain.HotelTypeResidence)
	case "Villa":
		return string(domain.HotelTypeVilla)
	}
	return strings.ToLower(strings.TrimSpace(v))
}

/********** activities **********/

type ActivityFilter struct {
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
}

func (f ActivityFilter) IsZero() bool { return isAll(f.Category) && isAll(f.Difficulty) }

func (f ActivityFilter) Match(a domain.Activity) bool {
	if !isAll(f.Category) && string(a.Category) != strings.ToLower(strings.TrimSpace(f.Category)) {
		return false
	}
	return isAll(f.Difficulty) || string(a.Difficulty) == strings.ToLower(strings.TrimSpace(f.Difficulty))
}

func FilterActivities(as []domain.Activity, f ActivityFilter) Listing[domain.Activity] {
	return apply(as, !f.IsZero(), f.Match)
}

/********** packages **********/

type PackageFilter struct {
	Type string `json:"type"`
}

func (f PackageFilter) IsZero() bool { return isAll(f.Type) }

func (f PackageFilter) Match(p domain.Package) bool {
	return isAll(f.Type) || string(p.Type) == strings.ToLower(strings.TrimSpace(f.Type))
}

func FilterPackages(ps []domain.Package, f PackageFilter) Listing[domain.Package] {
	return apply(ps, !f.IsZero(), f.Match)
}
