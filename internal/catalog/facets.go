package catalog

import "saly_tourisme/internal/domain"

type Budget struct {
	Label string     `json:"label"`
	Range PriceRange `json:"range"`
}

// Budgets are the hotel page buckets, addressed by index; 0 selects everything.
var Budgets = []Budget{
	{Label: "Tous les budgets", Range: PriceRange{}},
	{Label: "Moins de 60 000 FCFA", Range: PriceRange{Min: 0, Max: 60000}},
	{Label: "60 000 – 120 000 FCFA", Range: PriceRange{Min: 60000, Max: 120000}},
	{Label: "Plus de 120 000 FCFA", Range: PriceRange{Min: 120000}},
}

// BudgetAt returns the bucket at index i, falling back to "all budgets".
func BudgetAt(i int) PriceRange {
	if i < 0 || i >= len(Budgets) {
		return PriceRange{}
	}
	return Budgets[i].Range
}

type Option struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

type Facets struct {
	HotelTypes           []Option `json:"hotelTypes"`
	HotelStars           []int    `json:"hotelStars"`
	Budgets              []Budget `json:"budgets"`
	ActivityCategories   []Option `json:"activityCategories"`
	ActivityDifficulties []Option `json:"activityDifficulties"`
	PackageTypes         []Option `json:"packageTypes"`
}

func DefaultFacets() Facets {
	return Facets{
		HotelTypes: []Option{
			{All, "Tous"},
			{string(domain.HotelTypeHotel), "Hôtel"},
			{string(domain.HotelTypeResidence), "Résidence"},
			{string(domain.HotelTypeVilla), "Villa"},
		},
		HotelStars: []int{0, 3, 4, 5},
		Budgets:    Budgets,
		ActivityCategories: []Option{
			{All, "Toutes"},
			{string(domain.CategoryNautique), "Nautique"},
			{string(domain.CategoryNature), "Nature"},
			{string(domain.CategoryCulturel), "Culturel"},
			{string(domain.CategoryAventure), "Aventure"},
		},
		ActivityDifficulties: []Option{
			{All, "Toutes"},
			{string(domain.DifficultyEasy), "Facile"},
			{string(domain.DifficultyModerate), "Modéré"},
			{string(domain.DifficultyHard), "Difficile"},
		},
		PackageTypes: []Option{
			{All, "Tous les forfaits"},
			{string(domain.PackageRomantic), "Romantique"},
			{string(domain.PackageFamily), "Famille"},
			{string(domain.PackageAdventure), "Aventure"},
			{string(domain.PackageLuxury), "Luxe"},
		},
	}
}

// SearchTarget maps the home search bar's kind to the catalog page to open.
func SearchTarget(kind string) string {
	switch kind {
	case "Activité", string(domain.OfferActivity):
		return "/activites"
	case "Forfait", string(domain.OfferPackage):
		return "/forfaits"
	}
	return "/hebergements"
}
