package catalog

import "saly_tourisme/internal/domain"

// MaxRelated caps the related-items strip on detail pages.
const MaxRelated = 3

func related[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, MaxRelated)
	for _, it := range items {
		if len(out) == MaxRelated {
			break
		}
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

// RelatedHotels returns hotels rated at least one star below the selected one.
func RelatedHotels(hs []domain.Hotel, sel domain.Hotel) []domain.Hotel {
	return related(hs, func(h domain.Hotel) bool {
		return h.ID != sel.ID && h.Stars >= sel.Stars-1
	})
}

func RelatedActivities(as []domain.Activity, sel domain.Activity) []domain.Activity {
	return related(as, func(a domain.Activity) bool {
		return a.ID != sel.ID && a.Category == sel.Category
	})
}

func RelatedPackages(ps []domain.Package, sel domain.Package) []domain.Package {
	return related(ps, func(p domain.Package) bool { return p.ID != sel.ID })
}

/********** featured (home page) **********/

func FeaturedHotels(hs []domain.Hotel) []domain.Hotel {
	return apply(hs, true, func(h domain.Hotel) bool { return h.Featured }).Items
}

func FeaturedActivities(as []domain.Activity) []domain.Activity {
	return apply(as, true, func(a domain.Activity) bool { return a.Featured }).Items
}

func FeaturedPackages(ps []domain.Package) []domain.Package {
	return apply(ps, true, func(p domain.Package) bool { return p.Featured }).Items
}
