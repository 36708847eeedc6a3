package app

import (
	"context"
	"fmt"

	"saly_tourisme/internal/catalog"
	"saly_tourisme/internal/domain"
)

type HotelDetail struct {
	Hotel   domain.Hotel   `json:"hotel"`
	Related []domain.Hotel `json:"related"`
}

type ActivityDetail struct {
	Activity domain.Activity   `json:"activity"`
	Related  []domain.Activity `json:"related"`
}

type PackageDetail struct {
	Package domain.Package   `json:"package"`
	Related []domain.Package `json:"related"`
}

// Featured is the home page selection.
type Featured struct {
	Hotels       []domain.Hotel       `json:"hotels"`
	Activities   []domain.Activity    `json:"activities"`
	Packages     []domain.Package     `json:"packages"`
	Testimonials []domain.Testimonial `json:"testimonials"`
}

// CatalogService answers read queries over an immutable catalog snapshot.
type CatalogService struct {
	cat domain.Catalog
}

func NewCatalogService(c domain.Catalog) *CatalogService {
	return &CatalogService{cat: c}
}

// LoadCatalogService builds the service from the repository snapshot.
func LoadCatalogService(ctx context.Context, r domain.CatalogRepository) (*CatalogService, error) {
	c, err := r.LoadCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return NewCatalogService(c), nil
}

func (s *CatalogService) ListHotels(f catalog.HotelFilter) catalog.Listing[domain.Hotel] {
	return catalog.FilterHotels(s.cat.Hotels, f)
}

func (s *CatalogService) ListActivities(f catalog.ActivityFilter) catalog.Listing[domain.Activity] {
	return catalog.FilterActivities(s.cat.Activities, f)
}

func (s *CatalogService) ListPackages(f catalog.PackageFilter) catalog.Listing[domain.Package] {
	return catalog.FilterPackages(s.cat.Packages, f)
}

func (s *CatalogService) Hotel(id int64) (HotelDetail, error) {
	h, ok := s.cat.Hotel(id)
	if !ok {
		return HotelDetail{}, fmt.Errorf("hotel %d: %w", id, domain.ErrNotFound)
	}
	return HotelDetail{Hotel: h, Related: catalog.RelatedHotels(s.cat.Hotels, h)}, nil
}

func (s *CatalogService) Activity(id int64) (ActivityDetail, error) {
	a, ok := s.cat.Activity(id)
	if !ok {
		return ActivityDetail{}, fmt.Errorf("activity %d: %w", id, domain.ErrNotFound)
	}
	return ActivityDetail{Activity: a, Related: catalog.RelatedActivities(s.cat.Activities, a)}, nil
}

func (s *CatalogService) Package(id int64) (PackageDetail, error) {
	p, ok := s.cat.Package(id)
	if !ok {
		return PackageDetail{}, fmt.Errorf("package %d: %w", id, domain.ErrNotFound)
	}
	return PackageDetail{Package: p, Related: catalog.RelatedPackages(s.cat.Packages, p)}, nil
}

func (s *CatalogService) Featured() Featured {
	return Featured{
		Hotels:       catalog.FeaturedHotels(s.cat.Hotels),
		Activities:   catalog.FeaturedActivities(s.cat.Activities),
		Packages:     catalog.FeaturedPackages(s.cat.Packages),
		Testimonials: s.Testimonials(),
	}
}

func (s *CatalogService) Testimonials() []domain.Testimonial {
	out := make([]domain.Testimonial, len(s.cat.Testimonials))
	copy(out, s.cat.Testimonials)
	return out
}

func (s *CatalogService) Facets() catalog.Facets { return catalog.DefaultFacets() }

func (s *CatalogService) SearchTarget(kind string) string { return catalog.SearchTarget(kind) }

// ResolveOffer implements OfferResolver for the reservation wizard.
func (s *CatalogService) ResolveOffer(t domain.OfferType, rawID string) (domain.Offer, bool) {
	return s.cat.ResolveOffer(t, rawID)
}
