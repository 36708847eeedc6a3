package app_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"saly_tourisme/internal/app"
	"saly_tourisme/internal/content"
	"saly_tourisme/internal/domain"
	"saly_tourisme/internal/reservation"
)

// ---- fakes ----

// fakeCache stores JSON so reads never alias what was written, like redis.
type fakeCache struct {
	mu    sync.Mutex
	store map[string][]byte
	ttls  map[string]int
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.store == nil {
		c.store = map[string][]byte{}
		c.ttls = map[string]int{}
	}
	c.store[key] = b
	c.ttls[key] = ttlSec
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.store, key)
	return nil
}

func newReservations(t *testing.T) (*app.ReservationService, *fakeCache) {
	t.Helper()
	cache := &fakeCache{}
	clock := func() time.Time { return time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC) }
	svc := app.NewReservationService(app.NewCatalogService(content.Static()), cache, 30*time.Minute).WithClock(clock)
	return svc, cache
}

// ---- tests ----

func TestReservation_HotelFlowToConfirmation(t *testing.T) {
	svc, cache := newReservations(t)
	ctx := context.Background()

	sess, err := svc.Start(ctx, "hotel", "1")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if sess.State.Offer == nil || sess.State.Offer.Name != "Hôtel Les Filaos" || sess.State.Offer.Price != 85000 {
		t.Fatalf("unexpected offer: %+v", sess.State.Offer)
	}
	if got := cache.ttls["reservation:"+sess.ID]; got != 1800 {
		t.Fatalf("expected ttl 1800, got %d", got)
	}

	// blocked advance is a no-op
	if _, moved, err := svc.Advance(ctx, sess.ID); err != nil || moved {
		t.Fatalf("expected blocked advance, moved=%v err=%v", moved, err)
	}

	steps := []struct {
		field reservation.Field
		value string
	}{
		{reservation.FieldStartDate, "2025-03-10"},
	}
	for _, s := range steps {
		if _, err := svc.SetField(ctx, sess.ID, s.field, s.value); err != nil {
			t.Fatalf("set %s: %v", s.field, err)
		}
	}
	if got, moved, err := svc.Advance(ctx, sess.ID); err != nil || !moved || got.State.Step != reservation.StepContact {
		t.Fatalf("advance to contact: step=%v moved=%v err=%v", got.State.Step, moved, err)
	}

	for f, v := range map[reservation.Field]string{
		reservation.FieldFirstName: "Awa",
		reservation.FieldLastName:  "Ndiaye",
		reservation.FieldEmail:     "a@x.sn",
	} {
		if _, err := svc.SetField(ctx, sess.ID, f, v); err != nil {
			t.Fatalf("set %s: %v", f, err)
		}
	}
	if _, moved, _ := svc.Advance(ctx, sess.ID); !moved {
		t.Fatalf("expected advance to payment")
	}
	got, moved, err := svc.Advance(ctx, sess.ID)
	if err != nil || !moved {
		t.Fatalf("advance to confirmation: moved=%v err=%v", moved, err)
	}

	c := got.State.Confirmation
	if c == nil {
		t.Fatalf("missing confirmation")
	}
	if c.OfferName != "Hôtel Les Filaos" || c.Price == nil || *c.Price != 85000 {
		t.Fatalf("unexpected confirmation offer: %+v", c)
	}
	if c.Traveler != "Awa Ndiaye" || c.Date != "2025-03-10" || c.PaymentLabel != "Carte bancaire" {
		t.Fatalf("unexpected confirmation: %+v", c)
	}
	if len(c.Reference) < 4 || c.Reference[:3] != "ST-" {
		t.Fatalf("unexpected reference %q", c.Reference)
	}

	// terminal: edits rejected, advance/back no-ops
	if _, err := svc.SetField(ctx, sess.ID, reservation.FieldEmail, "b@x.sn"); !errors.Is(err, reservation.ErrTerminal) {
		t.Fatalf("expected ErrTerminal, got %v", err)
	}
	if _, moved, _ := svc.Retreat(ctx, sess.ID); moved {
		t.Fatalf("retreat from confirmation must be a no-op")
	}

	// the stored session reflects the confirmation
	reread, err := svc.Get(ctx, sess.ID)
	if err != nil || reread.State.Confirmation == nil || reread.State.Confirmation.Reference != c.Reference {
		t.Fatalf("reread: %+v err=%v", reread, err)
	}
}

func TestReservation_StartDefaultsAndMissingOffer(t *testing.T) {
	svc, _ := newReservations(t)
	ctx := context.Background()

	def, err := svc.Start(ctx, "", "")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if def.State.OfferType != domain.OfferHotel || def.State.OfferID != "1" || def.State.Offer == nil {
		t.Fatalf("unexpected defaults: %+v", def.State)
	}

	miss, err := svc.Start(ctx, "forfait", "999")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if miss.State.Offer != nil {
		t.Fatalf("expected nil offer, got %+v", miss.State.Offer)
	}
	if _, err := svc.SetField(ctx, miss.ID, reservation.FieldRoomType, "suite"); !errors.Is(err, reservation.ErrFieldNotApplicable) {
		t.Fatalf("expected ErrFieldNotApplicable, got %v", err)
	}
}

func TestReservation_UnknownSession(t *testing.T) {
	svc, _ := newReservations(t)
	ctx := context.Background()

	for _, id := range []string{"nope", "3f1c2b8e-6a4d-4c9e-9b1a-0d2e5f7a8b9c"} {
		if _, err := svc.Get(ctx, id); !errors.Is(err, domain.ErrSessionNotFound) {
			t.Fatalf("%s: expected ErrSessionNotFound, got %v", id, err)
		}
		if _, _, err := svc.Advance(ctx, id); !errors.Is(err, domain.ErrSessionNotFound) {
			t.Fatalf("%s: expected ErrSessionNotFound, got %v", id, err)
		}
	}
}

func TestReservation_Discard(t *testing.T) {
	svc, _ := newReservations(t)
	ctx := context.Background()

	sess, _ := svc.Start(ctx, "activite", "4")
	if err := svc.Discard(ctx, sess.ID); err != nil {
		t.Fatalf("discard: %v", err)
	}
	if _, err := svc.Get(ctx, sess.ID); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected session gone, got %v", err)
	}
	if err := svc.Discard(ctx, sess.ID); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("second discard: expected ErrSessionNotFound, got %v", err)
	}
}

func TestReservation_ConcurrentEditsAreSerialized(t *testing.T) {
	svc, _ := newReservations(t)
	ctx := context.Background()
	sess, _ := svc.Start(ctx, "hotel", "2")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.SetField(ctx, sess.ID, reservation.FieldFirstName, "Awa")
			_, _ = svc.SetField(ctx, sess.ID, reservation.FieldStartDate, "2025-04-01")
		}()
	}
	wg.Wait()

	got, err := svc.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.State.Draft.FirstName != "Awa" || got.State.Draft.StartDate != "2025-04-01" {
		t.Fatalf("lost update: %+v", got.State.Draft)
	}
}

func TestSessionView_MasksCardData(t *testing.T) {
	svc, _ := newReservations(t)
	ctx := context.Background()
	sess, _ := svc.Start(ctx, "hotel", "1")
	_, _ = svc.SetField(ctx, sess.ID, reservation.FieldCardNumber, "4242 4242 4242 4242")
	sess, _ = svc.SetField(ctx, sess.ID, reservation.FieldCardCvv, "123")

	v := app.ToSessionView(sess)
	if v.Draft == nil {
		t.Fatalf("expected draft in view")
	}
	if v.Draft.CardNumber != "•••• 4242" || v.Draft.CardCvv != "***" {
		t.Fatalf("card data not masked: %+v", v.Draft)
	}
	if v.StepName != "stay" || v.CanAdvance || v.CanRetreat {
		t.Fatalf("unexpected view flags: %+v", v)
	}
}

// ---- seeding ----

type fakeFeed struct {
	cat        domain.Catalog
	missingAct bool
	err        error
}

func (f *fakeFeed) GetHotels(ctx context.Context) ([]domain.Hotel, error) {
	return f.cat.Hotels, f.err
}
func (f *fakeFeed) GetActivities(ctx context.Context) ([]domain.Activity, error) {
	if f.missingAct {
		return nil, domain.ErrNotFound
	}
	return f.cat.Activities, nil
}
func (f *fakeFeed) GetPackages(ctx context.Context) ([]domain.Package, error) {
	return f.cat.Packages, nil
}
func (f *fakeFeed) GetTestimonials(ctx context.Context) ([]domain.Testimonial, error) {
	return f.cat.Testimonials, nil
}

func TestSeedService_FetchAndSeed(t *testing.T) {
	feed := &fakeFeed{cat: content.Static(), missingAct: true}
	repo := &fakeRepo{}
	svc := app.NewSeedService(feed, repo, 2)

	c, err := svc.Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(c.Activities) != 0 || len(c.Hotels) != 6 {
		t.Fatalf("unexpected fetched catalog: %d hotels, %d activities", len(c.Hotels), len(c.Activities))
	}

	stats, err := svc.Seed(context.Background(), content.Static())
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if stats.Hotels != 6 || stats.Activities != 6 || stats.Packages != 4 || stats.Testimonials != 4 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if repo.upserts["hotel"] != 6 {
		t.Fatalf("expected 6 hotel upserts, got %d", repo.upserts["hotel"])
	}
}

func TestSeedService_ReportsItemFailure(t *testing.T) {
	repo := &fakeRepo{failID: 3}
	svc := app.NewSeedService(nil, repo, 1)

	stats, err := svc.Seed(context.Background(), content.Static())
	if err == nil {
		t.Fatalf("expected error for failing hotel")
	}
	if stats.Hotels != 5 {
		t.Fatalf("other hotels should still be written, got %d", stats.Hotels)
	}
	if _, err := svc.Fetch(context.Background()); err == nil {
		t.Fatalf("expected error without feed")
	}
}

func TestSeedService_FeedError(t *testing.T) {
	svc := app.NewSeedService(&fakeFeed{err: errors.New("remote 503")}, &fakeRepo{}, 1)
	if _, err := svc.Fetch(context.Background()); err == nil {
		t.Fatalf("expected fetch error")
	}
}

func TestReservation_CardDataNotStored(t *testing.T) {
	svc, cache := newReservations(t)
	ctx := context.Background()
	sess, _ := svc.Start(ctx, "hotel", "1")

	if _, err := svc.SetField(ctx, sess.ID, reservation.FieldCardNumber, "4242 4242 4242 1234"); err != nil {
		t.Fatalf("set card: %v", err)
	}
	got, err := svc.SetField(ctx, sess.ID, reservation.FieldCardCvv, "987")
	if err != nil {
		t.Fatalf("set cvv: %v", err)
	}
	if got.State.Draft.CardNumber != "•••• 1234" || got.State.Draft.CardCvv != "***" {
		t.Fatalf("unexpected draft card fields: %+v", got.State.Draft)
	}

	raw := string(cache.store["reservation:"+sess.ID])
	if strings.Contains(raw, "4242") || strings.Contains(raw, "987") {
		t.Fatalf("card data stored in plaintext: %s", raw)
	}

	// re-masking what is stored keeps the last four digits
	again, _ := svc.SetField(ctx, sess.ID, reservation.FieldCardName, "AWA NDIAYE")
	if again.State.Draft.CardNumber != "•••• 1234" {
		t.Fatalf("mask not stable: %q", again.State.Draft.CardNumber)
	}
}
