package domain

import "context"

type CatalogRepository interface {
	// Write paths
	UpsertHotel(ctx context.Context, h Hotel) error
	UpsertActivity(ctx context.Context, a Activity) error
	UpsertPackage(ctx context.Context, p Package) error
	UpsertTestimonial(ctx context.Context, t Testimonial) error

	// Read paths
	LoadCatalog(ctx context.Context) (Catalog, error)
}

// ContentFeed is the remote content API the seeder pulls collections from.
type ContentFeed interface {
	GetHotels(ctx context.Context) ([]Hotel, error)
	GetActivities(ctx context.Context) ([]Activity, error)
	GetPackages(ctx context.Context) ([]Package, error)
	GetTestimonials(ctx context.Context) ([]Testimonial, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
