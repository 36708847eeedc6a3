package httpserver_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	httpserver "saly_tourisme/internal/adapters/http_server"
	"saly_tourisme/internal/adapters/memory"
	"saly_tourisme/internal/adapters/observability"
	"saly_tourisme/internal/app"
	"saly_tourisme/internal/content"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	cat := app.NewCatalogService(content.Static())
	s := httpserver.New(httpserver.Options{ContactRPS: 1})
	s.Mount("/metrics", observability.MetricsHandler(observability.InitRegistry()))
	s.MountHandlers(&httpserver.Handlers{
		Catalog:      cat,
		Reservations: app.NewReservationService(cat, memory.New(), 30*time.Minute),
		Contact:      app.NewContactService(),
	})
	ts := httptest.NewServer(s.Mux())
	t.Cleanup(ts.Close)
	return ts
}

func do(t *testing.T, method, url, body string, hdr ...string) *http.Response {
	t.Helper()
	var rd *bytes.Reader
	if body != "" {
		rd = bytes.NewReader([]byte(body))
	} else {
		rd = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, url, rd)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(hdr); i += 2 {
		req.Header.Set(hdr[i], hdr[i+1])
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode(t *testing.T, resp *http.Response, dst any) {
	t.Helper()
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		t.Fatalf("decode: %v", err)
	}
}

type listing struct {
	Items []struct {
		ID int64 `json:"id"`
	} `json:"items"`
	Total    int  `json:"total"`
	Filtered bool `json:"filtered"`
}

func TestHotels_FilterAndETag(t *testing.T) {
	ts := newTestServer(t)

	resp := do(t, "GET", ts.URL+"/v1/hotels?budget=2", "")
	if resp.StatusCode != 200 {
		t.Fatalf("status %d", resp.StatusCode)
	}
	var l listing
	decode(t, resp, &l)
	if len(l.Items) != 2 || l.Items[0].ID != 1 || l.Items[1].ID != 5 || !l.Filtered || l.Total != 6 {
		t.Fatalf("unexpected listing: %+v", l)
	}

	etag := resp.Header.Get("ETag")
	if !strings.HasPrefix(etag, `W/"`) {
		t.Fatalf("expected weak etag, got %q", etag)
	}
	again := do(t, "GET", ts.URL+"/v1/hotels?budget=2", "", "If-None-Match", etag)
	if again.StatusCode != http.StatusNotModified {
		t.Fatalf("expected 304, got %d", again.StatusCode)
	}
}

func TestHotels_BadQuery(t *testing.T) {
	ts := newTestServer(t)
	for _, q := range []string{"minStars=x", "minStars=9", "budget=7", "minPrice=100&maxPrice=10"} {
		resp := do(t, "GET", ts.URL+"/v1/hotels?"+q, "")
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", q, resp.StatusCode)
		}
		if ct := resp.Header.Get("Content-Type"); ct != "application/problem+json" {
			t.Fatalf("%s: expected problem+json, got %q", q, ct)
		}
	}
}

func TestCatalog_DetailAndLists(t *testing.T) {
	ts := newTestServer(t)

	resp := do(t, "GET", ts.URL+"/v1/activities/1", "")
	if resp.StatusCode != 200 {
		t.Fatalf("status %d", resp.StatusCode)
	}
	var d struct {
		Activity struct {
			ID       int64  `json:"id"`
			Category string `json:"category"`
		} `json:"activity"`
		Related []struct {
			ID       int64  `json:"id"`
			Category string `json:"category"`
		} `json:"related"`
	}
	decode(t, resp, &d)
	for _, r := range d.Related {
		if r.ID == d.Activity.ID || r.Category != d.Activity.Category {
			t.Fatalf("bad related item %+v for %+v", r, d.Activity)
		}
	}

	if resp := do(t, "GET", ts.URL+"/v1/packages/42", ""); resp.StatusCode != 404 {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	if resp := do(t, "GET", ts.URL+"/v1/hotels/abc", ""); resp.StatusCode != 400 {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	var pk listing
	decode(t, do(t, "GET", ts.URL+"/v1/packages?type=luxe", ""), &pk)
	if len(pk.Items) != 1 || pk.Items[0].ID != 4 {
		t.Fatalf("unexpected packages: %+v", pk)
	}

	var search map[string]string
	decode(t, do(t, "GET", ts.URL+"/v1/search?kind=Forfait", ""), &search)
	if search["target"] != "/forfaits" {
		t.Fatalf("unexpected search target %v", search)
	}

	for _, p := range []string{"/v1/featured", "/v1/testimonials", "/v1/facets", "/healthz"} {
		if resp := do(t, "GET", ts.URL+p, ""); resp.StatusCode != 200 {
			t.Fatalf("%s: status %d", p, resp.StatusCode)
		}
	}
}

type sessionView struct {
	ID         string `json:"id"`
	Step       int    `json:"step"`
	StepName   string `json:"stepName"`
	CanAdvance bool   `json:"canAdvance"`
	Advanced   bool   `json:"advanced"`
	Offer      *struct {
		Name  string `json:"name"`
		Price int64  `json:"price"`
	} `json:"offer"`
	Confirmation *struct {
		Reference    string `json:"reference"`
		OfferName    string `json:"offerName"`
		Price        *int64 `json:"price"`
		PaymentLabel string `json:"paymentLabel"`
	} `json:"confirmation"`
}

func TestReservation_Lifecycle(t *testing.T) {
	ts := newTestServer(t)

	resp := do(t, "POST", ts.URL+"/v1/reservations", `{"offerType":"hotel","offerId":"1"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	var v sessionView
	decode(t, resp, &v)
	if v.ID == "" || v.Step != 1 || v.CanAdvance || v.Offer == nil || v.Offer.Name != "Hôtel Les Filaos" {
		t.Fatalf("unexpected start view: %+v", v)
	}
	base := ts.URL + "/v1/reservations/" + v.ID

	// guard blocks: 200 with advanced=false
	var blocked sessionView
	decode(t, do(t, "POST", base+"/advance", ""), &blocked)
	if blocked.Advanced || blocked.Step != 1 {
		t.Fatalf("expected blocked advance, got %+v", blocked)
	}

	if resp := do(t, "PUT", base+"/fields/startDate", `{"value":"10/03/2025"}`); resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for bad date, got %d", resp.StatusCode)
	}
	if resp := do(t, "PUT", base+"/fields/shoeSize", `{"value":"42"}`); resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for unknown field, got %d", resp.StatusCode)
	}
	if resp := do(t, "PUT", base+"/fields/startDate", `{"value":`); resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad JSON, got %d", resp.StatusCode)
	}

	set := func(field, value string) {
		t.Helper()
		body, _ := json.Marshal(map[string]string{"value": value})
		if resp := do(t, "PUT", base+"/fields/"+field, string(body)); resp.StatusCode != 200 {
			t.Fatalf("set %s: status %d", field, resp.StatusCode)
		}
	}
	advance := func(wantStep int) sessionView {
		t.Helper()
		var out sessionView
		decode(t, do(t, "POST", base+"/advance", ""), &out)
		if !out.Advanced || out.Step != wantStep {
			t.Fatalf("expected advance to %d, got %+v", wantStep, out)
		}
		return out
	}

	set("startDate", "2025-03-10")
	advance(2)
	set("firstName", "Awa")
	set("lastName", "Ndiaye")
	set("email", "a@x.sn")
	advance(3)
	done := advance(4)

	if done.Confirmation == nil || done.Confirmation.OfferName != "Hôtel Les Filaos" ||
		done.Confirmation.Price == nil || *done.Confirmation.Price != 85000 ||
		done.Confirmation.PaymentLabel != "Carte bancaire" ||
		!strings.HasPrefix(done.Confirmation.Reference, "ST-") {
		t.Fatalf("unexpected confirmation: %+v", done.Confirmation)
	}

	if resp := do(t, "PUT", base+"/fields/email", `{"value":"b@x.sn"}`); resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 after confirmation, got %d", resp.StatusCode)
	}

	if resp := do(t, "DELETE", base, ""); resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.StatusCode)
	}
	if resp := do(t, "GET", base, ""); resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 after discard, got %d", resp.StatusCode)
	}
}

func TestReservation_StartDefaultsWithoutBody(t *testing.T) {
	ts := newTestServer(t)
	resp := do(t, "POST", ts.URL+"/v1/reservations", "")
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	var v sessionView
	decode(t, resp, &v)
	if v.Offer == nil || v.Offer.Price != 85000 {
		t.Fatalf("expected default hotel #1, got %+v", v.Offer)
	}
}

func TestContact_ValidationAndRateLimit(t *testing.T) {
	ts := newTestServer(t)

	resp := do(t, "POST", ts.URL+"/v1/contact", `{"name":"Awa","email":"nope","type":"Sur-mesure","rgpd":true}`)
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.StatusCode)
	}
	var p struct {
		Errors map[string]string `json:"errors"`
	}
	decode(t, resp, &p)
	if _, ok := p.Errors["email"]; !ok {
		t.Fatalf("expected email error, got %v", p.Errors)
	}

	ok := `{"name":"Awa","email":"awa@example.sn","type":"Sur-mesure","rgpd":true}`
	if resp := do(t, "POST", ts.URL+"/v1/contact", ok); resp.StatusCode != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", resp.StatusCode)
	}

	// burst of 3 already partly used; keep posting until the limiter trips
	limited := false
	for i := 0; i < 10; i++ {
		if resp := do(t, "POST", ts.URL+"/v1/contact", ok); resp.StatusCode == http.StatusTooManyRequests {
			limited = true
			break
		}
	}
	if !limited {
		t.Fatalf("expected 429 from contact rate limit")
	}
}

func TestContact_RateLimitIgnoresForwardedFor(t *testing.T) {
	ts := newTestServer(t)
	ok := `{"name":"Awa","email":"awa@example.sn","type":"Sur-mesure","rgpd":true}`

	accepted := 0
	for i := 0; i < 20; i++ {
		resp := do(t, "POST", ts.URL+"/v1/contact", ok, "X-Forwarded-For", "10.0.0."+strconv.Itoa(i))
		switch resp.StatusCode {
		case http.StatusAccepted:
			accepted++
		case http.StatusTooManyRequests:
		default:
			t.Fatalf("unexpected status %d", resp.StatusCode)
		}
	}
	if accepted >= 20 {
		t.Fatalf("rotating X-Forwarded-For bypassed the limit: %d accepted", accepted)
	}
}

func TestMetrics_UnmatchedRoutesShareOneLabel(t *testing.T) {
	ts := newTestServer(t)
	if resp := do(t, "GET", ts.URL+"/wp-admin/setup.php", ""); resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}

	resp := do(t, "GET", ts.URL+"/metrics", "")
	body, _ := io.ReadAll(resp.Body)
	out := string(body)
	if strings.Contains(out, "wp-admin") {
		t.Fatalf("raw path leaked into metric labels")
	}
	if !strings.Contains(out, `route="unmatched"`) {
		t.Fatalf("expected unmatched route label in metrics")
	}
}
