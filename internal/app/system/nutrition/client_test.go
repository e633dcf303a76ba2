package nutrition

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func TestAnalyze_PassesReportThrough(t *testing.T) {
	const report = `{"name":"Apple Bread","quality":"looks fresh","shelfLife":"2 days"}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}
		var body struct {
			ImageRef string `json:"image_ref"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if body.ImageRef != "data:image/jpeg;base64,abc" {
			t.Errorf("image_ref = %q", body.ImageRef)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(report))
	}))
	defer srv.Close()

	c := New(srv.URL, "test-key", srv.Client(), zap.NewNop())

	got, err := c.Analyze(context.Background(), "data:image/jpeg;base64,abc")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if string(got) != report {
		t.Errorf("report altered in transit: %s", got)
	}
}

func TestAnalyze_ServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := New(srv.URL, "", srv.Client(), zap.NewNop())

	if _, err := c.Analyze(context.Background(), "ref"); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}

func TestAnalyze_InvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := New(srv.URL, "", srv.Client(), zap.NewNop())

	if _, err := c.Analyze(context.Background(), "ref"); err == nil {
		t.Fatal("expected error for invalid JSON body")
	}
}

func TestEnabled(t *testing.T) {
	if New("", "", nil, zap.NewNop()).Enabled() {
		t.Error("client with no endpoint reports enabled")
	}
	if !New("https://example.com/analyze", "", nil, zap.NewNop()).Enabled() {
		t.Error("client with endpoint reports disabled")
	}
}
