// internal/adapters/http_server/handlers.go
package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"saly_tourisme/internal/app"
	"saly_tourisme/internal/catalog"
	"saly_tourisme/internal/domain"
	"saly_tourisme/internal/reservation"
)

type Handlers struct {
	Catalog      *app.CatalogService
	Reservations *app.ReservationService
	Contact      *app.ContactService
}

type problem struct {
	Type   string            `json:"type"`
	Title  string            `json:"title"`
	Status int               `json:"status"`
	Detail string            `json:"detail,omitempty"`
	Errors map[string]string `json:"errors,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Route("/v1", func(r chi.Router) {
		r.Get("/hotels", h.listHotels)
		r.Get("/hotels/{id}", h.getHotel)
		r.Get("/activities", h.listActivities)
		r.Get("/activities/{id}", h.getActivity)
		r.Get("/packages", h.listPackages)
		r.Get("/packages/{id}", h.getPackage)
		r.Get("/featured", h.featured)
		r.Get("/testimonials", h.testimonials)
		r.Get("/facets", h.facets)
		r.Get("/search", h.search)

		r.Route("/reservations", func(r chi.Router) {
			r.Post("/", h.startReservation)
			r.Get("/{sid}", h.getReservation)
			r.Put("/{sid}/fields/{field}", h.setReservationField)
			r.Post("/{sid}/advance", h.advanceReservation)
			r.Post("/{sid}/back", h.retreatReservation)
			r.Delete("/{sid}", h.discardReservation)
		})

		r.With(RateLimit(s.opts.ContactRPS, 3)).Post("/contact", h.submitContact)
	})
}

/********** response helpers **********/

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	writeProblemBody(w, problem{Type: "about:blank", Title: title, Status: status, Detail: detail})
}

func writeProblemBody(w http.ResponseWriter, p problem) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(p.Status)
	if err := json.NewEncoder(w).Encode(p); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeError maps service errors onto problem responses.
func writeError(w http.ResponseWriter, err error) {
	var verr *app.ValidationError
	switch {
	case errors.As(err, &verr):
		writeProblemBody(w, problem{Type: "about:blank", Title: "Validation Failed", Status: http.StatusUnprocessableEntity, Errors: verr.Fields})
	case errors.Is(err, domain.ErrSessionNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", "reservation session not found or expired")
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, reservation.ErrTerminal):
		writeProblem(w, http.StatusConflict, "Conflict", err.Error())
	case errors.Is(err, reservation.ErrUnknownField),
		errors.Is(err, reservation.ErrInvalidValue),
		errors.Is(err, reservation.ErrFieldNotApplicable):
		writeProblem(w, http.StatusUnprocessableEntity, "Invalid Field", err.Error())
	default:
		log.Error().Err(err).Msg("request failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		// Log and return an empty ETag and nil body; callers answer 500.
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// writeCached serves catalog reads with a weak ETag and honors If-None-Match.
func writeCached(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if body == nil {
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}
	// If client already has this version, short-circuit.
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag) // include ETag on 304
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Str("path", r.URL.Path).Msg("failed to write body")
	}
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a number")
		return 0, false
	}
	return id, true
}

/********** catalog **********/

func queryInt(q map[string][]string, key string) (int64, bool, error) {
	vs := q[key]
	if len(vs) == 0 || strings.TrimSpace(vs[0]) == "" {
		return 0, false, nil
	}
	n, err := strconv.ParseInt(strings.TrimSpace(vs[0]), 10, 64)
	if err != nil || n < 0 {
		return 0, false, errors.New(key + " must be a non-negative integer")
	}
	return n, true, nil
}

// parseHotelFilter reads ?type&minStars&budget&minPrice&maxPrice.
func parseHotelFilter(r *http.Request) (catalog.HotelFilter, error) {
	q := r.URL.Query()
	f := catalog.HotelFilter{Type: q.Get("type")}

	stars, ok, err := queryInt(q, "minStars")
	if err != nil {
		return f, err
	}
	if ok {
		if stars > 5 {
			return f, errors.New("minStars must be between 0 and 5")
		}
		f.MinStars = int(stars)
	}

	b, ok, err := queryInt(q, "budget")
	if err != nil {
		return f, err
	}
	if ok {
		if int(b) >= len(catalog.Budgets) {
			return f, errors.New("budget must be a bucket index from /v1/facets")
		}
		f.Budget = catalog.BudgetAt(int(b))
	}

	lo, _, err := queryInt(q, "minPrice")
	if err != nil {
		return f, err
	}
	hi, _, err := queryInt(q, "maxPrice")
	if err != nil {
		return f, err
	}
	if hi > 0 && lo > hi {
		return f, errors.New("minPrice must not exceed maxPrice")
	}
	f.Price = catalog.PriceRange{Min: lo, Max: hi}
	return f, nil
}

func (h *Handlers) listHotels(w http.ResponseWriter, r *http.Request) {
	f, err := parseHotelFilter(r)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Filter", err.Error())
		return
	}
	writeCached(w, r, h.Catalog.ListHotels(f))
}

func (h *Handlers) getHotel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	d, err := h.Catalog.Hotel(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCached(w, r, d)
}

func (h *Handlers) listActivities(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	writeCached(w, r, h.Catalog.ListActivities(catalog.ActivityFilter{
		Category:   q.Get("category"),
		Difficulty: q.Get("difficulty"),
	}))
}

func (h *Handlers) getActivity(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	d, err := h.Catalog.Activity(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCached(w, r, d)
}

func (h *Handlers) listPackages(w http.ResponseWriter, r *http.Request) {
	writeCached(w, r, h.Catalog.ListPackages(catalog.PackageFilter{Type: r.URL.Query().Get("type")}))
}

func (h *Handlers) getPackage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	d, err := h.Catalog.Package(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCached(w, r, d)
}

func (h *Handlers) featured(w http.ResponseWriter, r *http.Request) {
	writeCached(w, r, h.Catalog.Featured())
}

func (h *Handlers) testimonials(w http.ResponseWriter, r *http.Request) {
	writeCached(w, r, h.Catalog.Testimonials())
}

func (h *Handlers) facets(w http.ResponseWriter, r *http.Request) {
	writeCached(w, r, h.Catalog.Facets())
}

func (h *Handlers) search(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"target": h.Catalog.SearchTarget(r.URL.Query().Get("kind"))})
}

/********** reservations **********/

type startRequest struct {
	OfferType string `json:"offerType"`
	OfferID   string `json:"offerId"`
}

type fieldRequest struct {
	Value string `json:"value"`
}

// decodeBody accepts an empty body as the zero value.
func decodeBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, 64<<10))
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (h *Handlers) startReservation(w http.ResponseWriter, r *http.Request) {
	var req startRequest
	if err := decodeBody(r, &req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid JSON", err.Error())
		return
	}
	// navigation parameters may also come as ?type=&id=
	if req.OfferType == "" {
		req.OfferType = r.URL.Query().Get("type")
	}
	if req.OfferID == "" {
		req.OfferID = r.URL.Query().Get("id")
	}
	sess, err := h.Reservations.Start(r.Context(), req.OfferType, req.OfferID)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Location", "/v1/reservations/"+sess.ID)
	writeJSON(w, http.StatusCreated, app.ToSessionView(sess))
}

func (h *Handlers) getReservation(w http.ResponseWriter, r *http.Request) {
	sess, err := h.Reservations.Get(r.Context(), chi.URLParam(r, "sid"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, app.ToSessionView(sess))
}

func (h *Handlers) setReservationField(w http.ResponseWriter, r *http.Request) {
	var req fieldRequest
	if err := decodeBody(r, &req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid JSON", err.Error())
		return
	}
	f := reservation.Field(chi.URLParam(r, "field"))
	sess, err := h.Reservations.SetField(r.Context(), chi.URLParam(r, "sid"), f, req.Value)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, app.ToSessionView(sess))
}

type advanceResponse struct {
	app.SessionView
	Advanced bool `json:"advanced"`
}

type retreatResponse struct {
	app.SessionView
	Retreated bool `json:"retreated"`
}

func (h *Handlers) advanceReservation(w http.ResponseWriter, r *http.Request) {
	sess, moved, err := h.Reservations.Advance(r.Context(), chi.URLParam(r, "sid"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, advanceResponse{SessionView: app.ToSessionView(sess), Advanced: moved})
}

func (h *Handlers) retreatReservation(w http.ResponseWriter, r *http.Request) {
	sess, moved, err := h.Reservations.Retreat(r.Context(), chi.URLParam(r, "sid"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, retreatResponse{SessionView: app.ToSessionView(sess), Retreated: moved})
}

func (h *Handlers) discardReservation(w http.ResponseWriter, r *http.Request) {
	if err := h.Reservations.Discard(r.Context(), chi.URLParam(r, "sid")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

/********** contact **********/

func (h *Handlers) submitContact(w http.ResponseWriter, r *http.Request) {
	var msg app.ContactMessage
	if err := json.NewDecoder(io.LimitReader(r.Body, 64<<10)).Decode(&msg); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid JSON", err.Error())
		return
	}
	ack, err := h.Contact.Submit(r.Context(), msg)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, ack)
}
