package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"saly_tourisme/internal/domain"
)

func valStr(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

// valJSON encodes a list column; nil lists are stored as "[]".
func valJSON(v []string) (string, error) {
	if v == nil {
		v = []string{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func scanJSON(raw sql.NullString) ([]string, error) {
	out := []string{}
	if !raw.Valid || raw.String == "" {
		return out, nil
	}
	if err := json.Unmarshal([]byte(raw.String), &out); err != nil {
		return nil, err
	}
	return out, nil
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) Ping(ctx context.Context) error { return r.db.PingContext(ctx) }

func (r *Repo) UpsertHotel(ctx context.Context, h domain.Hotel) error {
	amen, err := valJSON(h.Amenities)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, upsertHotelSQL,
		h.ID,
		h.Name,
		string(h.Type),
		h.Stars,
		h.Price,
		h.Image,
		h.Location,
		h.Description,
		amen,
		h.Rating,
		h.Reviews,
		h.Featured,
	)
	return err
}

func (r *Repo) UpsertActivity(ctx context.Context, a domain.Activity) error {
	inc, err := valJSON(a.Includes)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, upsertActivitySQL,
		a.ID,
		a.Name,
		string(a.Category),
		a.Price,
		a.Image,
		a.Duration,
		a.Description,
		inc,
		string(a.Difficulty),
		a.Featured,
	)
	return err
}

func (r *Repo) UpsertPackage(ctx context.Context, p domain.Package) error {
	inc, err := valJSON(p.Includes)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, upsertPackageSQL,
		p.ID,
		p.Name,
		string(p.Type),
		p.Price,
		p.Image,
		p.Duration,
		p.Description,
		inc,
		p.Persons,
		p.Featured,
		valStr(p.Badge),
	)
	return err
}

func (r *Repo) UpsertTestimonial(ctx context.Context, t domain.Testimonial) error {
	_, err := r.db.ExecContext(ctx, upsertTestimonialSQL,
		t.ID, t.Name, t.Country, t.Avatar, t.Rating, t.Comment, t.Date,
	)
	return err
}

// LoadCatalog reads all four collections. The result is the immutable
// snapshot the API serves until restart.
func (r *Repo) LoadCatalog(ctx context.Context) (domain.Catalog, error) {
	var (
		c   domain.Catalog
		err error
	)
	if c.Hotels, err = r.listHotels(ctx); err != nil {
		return domain.Catalog{}, fmt.Errorf("hotels: %w", err)
	}
	if c.Activities, err = r.listActivities(ctx); err != nil {
		return domain.Catalog{}, fmt.Errorf("activities: %w", err)
	}
	if c.Packages, err = r.listPackages(ctx); err != nil {
		return domain.Catalog{}, fmt.Errorf("packages: %w", err)
	}
	if c.Testimonials, err = r.listTestimonials(ctx); err != nil {
		return domain.Catalog{}, fmt.Errorf("testimonials: %w", err)
	}
	return c, nil
}

func (r *Repo) listHotels(ctx context.Context) ([]domain.Hotel, error) {
	rows, err := r.db.QueryContext(ctx, listHotelsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Hotel{}
	for rows.Next() {
		var (
			h    domain.Hotel
			typ  string
			desc sql.NullString
			amen sql.NullString
		)
		if err := rows.Scan(&h.ID, &h.Name, &typ, &h.Stars, &h.Price, &h.Image, &h.Location,
			&desc, &amen, &h.Rating, &h.Reviews, &h.Featured); err != nil {
			return nil, err
		}
		h.Type = domain.HotelType(typ)
		h.Description = desc.String
		if h.Amenities, err = scanJSON(amen); err != nil {
			return nil, fmt.Errorf("hotel %d amenities: %w", h.ID, err)
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r *Repo) listActivities(ctx context.Context) ([]domain.Activity, error) {
	rows, err := r.db.QueryContext(ctx, listActivitiesSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Activity{}
	for rows.Next() {
		var (
			a         domain.Activity
			cat, diff string
			desc      sql.NullString
			inc       sql.NullString
		)
		if err := rows.Scan(&a.ID, &a.Name, &cat, &a.Price, &a.Image, &a.Duration,
			&desc, &inc, &diff, &a.Featured); err != nil {
			return nil, err
		}
		a.Category = domain.ActivityCategory(cat)
		a.Difficulty = domain.Difficulty(diff)
		a.Description = desc.String
		if a.Includes, err = scanJSON(inc); err != nil {
			return nil, fmt.Errorf("activity %d includes: %w", a.ID, err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *Repo) listPackages(ctx context.Context) ([]domain.Package, error) {
	rows, err := r.db.QueryContext(ctx, listPackagesSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Package{}
	for rows.Next() {
		var (
			p     domain.Package
			typ   string
			desc  sql.NullString
			inc   sql.NullString
			badge sql.NullString
		)
		if err := rows.Scan(&p.ID, &p.Name, &typ, &p.Price, &p.Image, &p.Duration,
			&desc, &inc, &p.Persons, &p.Featured, &badge); err != nil {
			return nil, err
		}
		p.Type = domain.PackageType(typ)
		p.Description = desc.String
		if badge.Valid {
			b := badge.String
			p.Badge = &b
		}
		if p.Includes, err = scanJSON(inc); err != nil {
			return nil, fmt.Errorf("package %d includes: %w", p.ID, err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repo) listTestimonials(ctx context.Context) ([]domain.Testimonial, error) {
	rows, err := r.db.QueryContext(ctx, listTestimonialsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Testimonial{}
	for rows.Next() {
		var (
			t       domain.Testimonial
			comment sql.NullString
		)
		if err := rows.Scan(&t.ID, &t.Name, &t.Country, &t.Avatar, &t.Rating, &comment, &t.Date); err != nil {
			return nil, err
		}
		t.Comment = comment.String
		out = append(out, t)
	}
	return out, rows.Err()
}
