package app

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"saly_tourisme/internal/adapters/observability"
	"saly_tourisme/internal/domain"
	"saly_tourisme/internal/reservation"
)

/********** reservation wizard sessions **********/

// OfferResolver finds the catalog item a reservation refers to.
type OfferResolver interface {
	ResolveOffer(t domain.OfferType, rawID string) (domain.Offer, bool)
}

// Session is one wizard instance as stored in the cache.
type Session struct {
	ID        string            `json:"id"`
	State     reservation.State `json:"state"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

const sessionLockStripes = 64

type ReservationService struct {
	offers  OfferResolver
	cache   domain.Cache
	ttl     time.Duration
	machine reservation.Machine
	now     func() time.Time
	newID   func() string

	// events on one session run one at a time; sessions hash onto stripes
	locks [sessionLockStripes]sync.Mutex
}

func NewReservationService(o OfferResolver, c domain.Cache, ttl time.Duration) *ReservationService {
	return &ReservationService{
		offers: o,
		cache:  c,
		ttl:    ttl,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// WithClock pins the clock used for session stamps and confirmation references.
func (s *ReservationService) WithClock(now func() time.Time) *ReservationService {
	s.now = now
	s.machine = reservation.Machine{Now: now}
	return s
}

func sessionKey(id string) string { return "reservation:" + id }

func (s *ReservationService) lock(id string) func() {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	mu := &s.locks[h.Sum32()%sessionLockStripes]
	mu.Lock()
	return mu.Unlock
}

// Start opens a wizard for the offer named by navigation parameters. An
// unresolvable offer is not an error; the session runs with a degraded summary.
func (s *ReservationService) Start(ctx context.Context, offerType, offerID string) (Session, error) {
	st := reservation.Start(offerType, offerID, nil)
	if o, ok := s.offers.ResolveOffer(st.OfferType, st.OfferID); ok {
		st.Offer = &o
	} else {
		log.Warn().Str("offer_type", string(st.OfferType)).Str("offer_id", st.OfferID).Msg("reservation offer not found")
	}

	now := s.now()
	sess := Session{ID: s.newID(), State: st, CreatedAt: now, UpdatedAt: now}
	if err := s.save(ctx, sess); err != nil {
		return Session{}, err
	}
	log.Info().Str("session", sess.ID).Str("offer_type", string(st.OfferType)).Str("offer_id", st.OfferID).Msg("reservation started")
	return sess, nil
}

func (s *ReservationService) Get(ctx context.Context, id string) (Session, error) {
	return s.load(ctx, id)
}

func (s *ReservationService) SetField(ctx context.Context, id string, f reservation.Field, value string) (Session, error) {
	sess, _, err := s.apply(ctx, id, reservation.SetField(f, value))
	return sess, err
}

// Advance reports whether the step moved; a failing guard is not an error.
func (s *ReservationService) Advance(ctx context.Context, id string) (Session, bool, error) {
	return s.apply(ctx, id, reservation.Advance())
}

func (s *ReservationService) Retreat(ctx context.Context, id string) (Session, bool, error) {
	return s.apply(ctx, id, reservation.Retreat())
}

func (s *ReservationService) Discard(ctx context.Context, id string) error {
	unlock := s.lock(id)
	defer unlock()
	if _, err := s.load(ctx, id); err != nil {
		return err
	}
	if err := s.cache.Del(ctx, sessionKey(id)); err != nil {
		return fmt.Errorf("discard session: %w", err)
	}
	log.Info().Str("session", id).Msg("reservation discarded")
	return nil
}

func (s *ReservationService) apply(ctx context.Context, id string, ev reservation.Event) (Session, bool, error) {
	unlock := s.lock(id)
	defer unlock()

	sess, err := s.load(ctx, id)
	if err != nil {
		return Session{}, false, err
	}
	from := sess.State.Step
	next, err := s.machine.Apply(sess.State, ev)
	if err != nil {
		return sess, false, fmt.Errorf("%s %s: %w", ev.Kind, ev.Field, err)
	}
	moved := next.Step != from
	if ev.Kind != reservation.EventSetField {
		observability.ObserveTransition(from.String(), next.Step.String(), moved)
	}

	sess.State = next
	sess.State.Draft = maskDraft(next.Draft)
	sess.UpdatedAt = s.now()
	if err := s.save(ctx, sess); err != nil {
		return Session{}, false, err
	}

	if moved && next.IsTerminal() && next.Confirmation != nil {
		c := next.Confirmation
		observability.ObserveReservation(string(c.OfferType), c.PaymentMethod)
		log.Info().
			Str("session", id).
			Str("reference", c.Reference).
			Str("offer_type", string(c.OfferType)).
			Str("offer_id", c.OfferID).
			Str("payment", c.PaymentMethod).
			Msg("reservation confirmed")
	}
	return sess, moved, nil
}

func (s *ReservationService) load(ctx context.Context, id string) (Session, error) {
	if _, err := uuid.Parse(id); err != nil {
		return Session{}, domain.ErrSessionNotFound
	}
	var sess Session
	ok, err := s.cache.Get(ctx, sessionKey(id), &sess)
	if err != nil {
		return Session{}, fmt.Errorf("load session: %w", err)
	}
	if !ok {
		return Session{}, domain.ErrSessionNotFound
	}
	return sess, nil
}

func (s *ReservationService) save(ctx context.Context, sess Session) error {
	if err := s.cache.Set(ctx, sessionKey(sess.ID), sess, int(s.ttl.Seconds())); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

/********** catalog seeding **********/

// SeedService copies a catalog into the repository, either from the remote
// feed or from a fixed snapshot.
type SeedService struct {
	feed    domain.ContentFeed
	repo    domain.CatalogRepository
	workers int64
}

func NewSeedService(feed domain.ContentFeed, r domain.CatalogRepository, workers int) *SeedService {
	if workers <= 0 {
		workers = 4
	}
	return &SeedService{feed: feed, repo: r, workers: int64(workers)}
}

// SeedStats counts what was written.
type SeedStats struct {
	Hotels       int
	Activities   int
	Packages     int
	Testimonials int
}

// Fetch reads every collection from the feed. A collection the feed does not
// publish (404) is returned empty.
func (s *SeedService) Fetch(ctx context.Context) (domain.Catalog, error) {
	if s.feed == nil {
		return domain.Catalog{}, errors.New("no content feed configured")
	}
	var (
		c   domain.Catalog
		err error
	)
	if c.Hotels, err = s.feed.GetHotels(ctx); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return domain.Catalog{}, fmt.Errorf("fetch hotels: %w", err)
	}
	if c.Activities, err = s.feed.GetActivities(ctx); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return domain.Catalog{}, fmt.Errorf("fetch activities: %w", err)
	}
	if c.Packages, err = s.feed.GetPackages(ctx); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return domain.Catalog{}, fmt.Errorf("fetch packages: %w", err)
	}
	if c.Testimonials, err = s.feed.GetTestimonials(ctx); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return domain.Catalog{}, fmt.Errorf("fetch testimonials: %w", err)
	}
	return c, nil
}

// Seed upserts every item of c with bounded concurrency. Errors are logged per
// item and the first one is returned after all writes finish.
func (s *SeedService) Seed(ctx context.Context, c domain.Catalog) (SeedStats, error) {
	sem := semaphore.NewWeighted(s.workers)
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
		stats    SeedStats
	)

	run := func(kind string, id int64, counter *int, write func() error) {
		if err := sem.Acquire(ctx, 1); err != nil {
			mu.Lock()
			if firstErr == nil {
				firstErr = err
			}
			mu.Unlock()
			return
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)
			err := write()
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.Error().Err(err).Str("kind", kind).Int64("id", id).Msg("seed item failed")
				if firstErr == nil {
					firstErr = fmt.Errorf("seed %s %d: %w", kind, id, err)
				}
				return
			}
			*counter++
		}()
	}

	for _, h := range c.Hotels {
		h := h
		run("hotel", h.ID, &stats.Hotels, func() error { return s.repo.UpsertHotel(ctx, h) })
	}
	for _, a := range c.Activities {
		a := a
		run("activity", a.ID, &stats.Activities, func() error { return s.repo.UpsertActivity(ctx, a) })
	}
	for _, p := range c.Packages {
		p := p
		run("package", p.ID, &stats.Packages, func() error { return s.repo.UpsertPackage(ctx, p) })
	}
	for _, t := range c.Testimonials {
		t := t
		run("testimonial", t.ID, &stats.Testimonials, func() error { return s.repo.UpsertTestimonial(ctx, t) })
	}
	wg.Wait()

	log.Info().
		Int("hotels", stats.Hotels).
		Int("activities", stats.Activities).
		Int("packages", stats.Packages).
		Int("testimonials", stats.Testimonials).
		Msg("catalog seeded")
	return stats, firstErr
}
