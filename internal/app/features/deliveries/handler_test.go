package deliveries_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/foodfindapp/foodfind/internal/app/features/deliveries"
	"github.com/foodfindapp/foodfind/internal/app/lifecycle"
	"github.com/foodfindapp/foodfind/internal/app/system/ratelimit"
	"github.com/foodfindapp/foodfind/internal/domain/models"
	"github.com/foodfindapp/foodfind/internal/testutil"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type fixture struct {
	router    chi.Router
	donations *testutil.MemDonations
	coord     *lifecycle.Coordinator
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	donStore := testutil.NewMemDonations()
	delStore := testutil.NewMemDeliveries()
	coord := lifecycle.New(donStore, delStore, zap.NewNop())
	h := deliveries.NewHandler(coord, delStore, zap.NewNop())
	r := chi.NewRouter()
	r.Mount("/deliveries", deliveries.Routes(h, ratelimit.New(1000, time.Minute)))
	return &fixture{router: r, donations: donStore, coord: coord}
}

// seedDonation plants a post the requests can reference.
func (f *fixture) seedDonation(t *testing.T) models.DonationPost {
	t.Helper()
	post := models.DonationPost{
		ID:          "don-1",
		Name:        "Maya",
		Contact:     "555-0100",
		Location:    "Riverside Shelter",
		Email:       "maya@example.com",
		PostTitle:   "Apple Bread",
		Description: "Two fresh loaves",
		Status:      models.DefaultStatus,
		ExpiresAt:   time.Now().Add(24 * time.Hour),
		CreatedAt:   time.Now(),
	}
	if err := f.donations.Insert(t.Context(), post); err != nil {
		t.Fatalf("seed donation: %v", err)
	}
	return post
}

func (f *fixture) createRequest(t *testing.T) models.DeliveryRequest {
	t.Helper()
	rec := testutil.NewRecorder()
	f.router.ServeHTTP(rec, testutil.NewJSONRequest(t, http.MethodPost, "/deliveries", map[string]any{
		"donation_id":        "don-1",
		"recipient_name":     "Ravi",
		"recipient_contact":  "555-0200",
		"recipient_location": "North Hall",
	}))
	rec.AssertStatus(t, http.StatusCreated)
	var req models.DeliveryRequest
	rec.DecodeJSON(t, &req)
	return req
}

func TestServeCreate_RevealsOTPOnce(t *testing.T) {
	f := newFixture(t)
	f.seedDonation(t)

	req := f.createRequest(t)
	if len(req.OTP) != 6 {
		t.Fatalf("creation response OTP = %q, want 6 digits", req.OTP)
	}
	if req.Status != models.RequestPending {
		t.Errorf("status = %q, want pending", req.Status)
	}
	if req.DonorName != "Maya" || req.FoodTitle != "Apple Bread" {
		t.Errorf("donor snapshot not copied: %+v", req)
	}

	// Every later read must redact the code.
	rec := testutil.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/deliveries", nil))
	rec.AssertStatus(t, http.StatusOK)
	rec.AssertNotContains(t, req.OTP)
}

func TestServeCreate_MissingRecipient(t *testing.T) {
	f := newFixture(t)
	f.seedDonation(t)

	rec := testutil.NewRecorder()
	f.router.ServeHTTP(rec, testutil.NewJSONRequest(t, http.MethodPost, "/deliveries", map[string]any{
		"donation_id":    "don-1",
		"recipient_name": "Ravi",
	}))

	rec.AssertStatus(t, http.StatusUnprocessableEntity)
	rec.AssertContains(t, `"recipientContact"`)
	rec.AssertContains(t, `"recipientLocation"`)
}

func TestServeCreate_DonationGone(t *testing.T) {
	f := newFixture(t)

	rec := testutil.NewRecorder()
	f.router.ServeHTTP(rec, testutil.NewJSONRequest(t, http.MethodPost, "/deliveries", map[string]any{
		"donation_id":        "nope",
		"recipient_name":     "Ravi",
		"recipient_contact":  "555-0200",
		"recipient_location": "North Hall",
	}))

	rec.AssertStatus(t, http.StatusNotFound)
}

func TestServeList_SearchMatchesAnyTerm(t *testing.T) {
	f := newFixture(t)
	f.seedDonation(t)
	f.createRequest(t)

	// One term matches, the other does not; the request still shows.
	rec := testutil.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/deliveries?q=riverside+zzz", nil))

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Apple Bread")
}

func TestServeAccept(t *testing.T) {
	f := newFixture(t)
	f.seedDonation(t)
	req := f.createRequest(t)

	rec := testutil.NewRecorder()
	f.router.ServeHTTP(rec, testutil.NewJSONRequest(t, http.MethodPost, "/deliveries/"+req.ID+"/accept",
		map[string]any{"volunteer_name": "Kim", "volunteer_contact": "555-0300"}))

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, `"status":"accepted"`)
	rec.AssertContains(t, "Kim")
	rec.AssertNotContains(t, req.OTP)
}

func TestServeAccept_MissingVolunteer(t *testing.T) {
	f := newFixture(t)
	f.seedDonation(t)
	req := f.createRequest(t)

	rec := testutil.NewRecorder()
	f.router.ServeHTTP(rec, testutil.NewJSONRequest(t, http.MethodPost, "/deliveries/"+req.ID+"/accept",
		map[string]any{"volunteer_name": "Kim"}))

	rec.AssertStatus(t, http.StatusUnprocessableEntity)
	rec.AssertContains(t, `"volunteerContact"`)
}

func TestServeFinish_OTPGate(t *testing.T) {
	f := newFixture(t)
	f.seedDonation(t)
	req := f.createRequest(t)

	rec := testutil.NewRecorder()
	f.router.ServeHTTP(rec, testutil.NewJSONRequest(t, http.MethodPost, "/deliveries/"+req.ID+"/finish",
		map[string]any{"otp": "000000"}))
	rec.AssertStatus(t, http.StatusForbidden)

	rec = testutil.NewRecorder()
	f.router.ServeHTTP(rec, testutil.NewJSONRequest(t, http.MethodPost, "/deliveries/"+req.ID+"/finish",
		map[string]any{"otp": req.OTP}))
	rec.AssertStatus(t, http.StatusNoContent)

	// Finished means gone.
	rec = testutil.NewRecorder()
	f.router.ServeHTTP(rec, testutil.NewJSONRequest(t, http.MethodPost, "/deliveries/"+req.ID+"/finish",
		map[string]any{"otp": req.OTP}))
	rec.AssertStatus(t, http.StatusNotFound)
}

func TestServeDismiss_RevertsToPending(t *testing.T) {
	f := newFixture(t)
	f.seedDonation(t)
	req := f.createRequest(t)

	rec := testutil.NewRecorder()
	f.router.ServeHTTP(rec, testutil.NewJSONRequest(t, http.MethodPost, "/deliveries/"+req.ID+"/accept",
		map[string]any{"volunteer_name": "Kim", "volunteer_contact": "555-0300"}))
	rec.AssertStatus(t, http.StatusOK)

	rec = testutil.NewRecorder()
	f.router.ServeHTTP(rec, testutil.NewJSONRequest(t, http.MethodPost, "/deliveries/"+req.ID+"/dismiss",
		map[string]any{"otp": "000000"}))
	rec.AssertStatus(t, http.StatusForbidden)

	rec = testutil.NewRecorder()
	f.router.ServeHTTP(rec, testutil.NewJSONRequest(t, http.MethodPost, "/deliveries/"+req.ID+"/dismiss",
		map[string]any{"otp": req.OTP}))
	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, `"status":"pending"`)
	rec.AssertNotContains(t, "Kim")
}

func TestServeStream_RedactsOTP(t *testing.T) {
	f := newFixture(t)
	f.seedDonation(t)
	req := f.createRequest(t)

	rec := testutil.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/deliveries/stream", nil))

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "data: ")
	rec.AssertContains(t, "Apple Bread")
	rec.AssertNotContains(t, req.OTP)
}
