package submit

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/goliatone/go-candidateform/pkg/model"
)

func samplePayload() model.Payload {
	return model.Payload{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "1234567890",
		Password: "Passw0rd!",
		Lang:     "nl",
		About:    "Twelve years of building forms that people actually enjoy filling in.",
	}
}

func TestSubmit_PostsJSON(t *testing.T) {
	var (
		gotMethod      string
		gotContentType string
		gotBody        map[string]string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		data, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(data, &gotBody)
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := New(WithEndpoint(server.URL), WithHTTPClient(server.Client()))
	if err := client.Submit(context.Background(), samplePayload()); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if gotMethod != http.MethodPost {
		t.Fatalf("expected POST, got %s", gotMethod)
	}
	if gotContentType != "application/json" {
		t.Fatalf("expected application/json, got %q", gotContentType)
	}
	want := map[string]string{
		"name":     "Jane Doe",
		"email":    "jane@example.com",
		"phone":    "1234567890",
		"password": "Passw0rd!",
		"lang":     "nl",
		"about":    "Twelve years of building forms that people actually enjoy filling in.",
	}
	if diff := cmp.Diff(want, gotBody); diff != "" {
		t.Fatalf("body mismatch (-want +got):\n%s", diff)
	}
}

func TestSubmit_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"message":"nope"}`, http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	client := New(WithEndpoint(server.URL), WithHTTPClient(server.Client()))
	err := client.Submit(context.Background(), samplePayload())
	if !errors.Is(err, ErrStatus) {
		t.Fatalf("expected ErrStatus, got %v", err)
	}
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected StatusError with 422, got %#v", err)
	}
}

func TestSubmit_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	client := New(WithEndpoint(url))
	err := client.Submit(context.Background(), samplePayload())
	if err == nil {
		t.Fatalf("expected transport error")
	}
	if errors.Is(err, ErrStatus) {
		t.Fatalf("transport failure must not match ErrStatus: %v", err)
	}
}

func TestSubmit_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	client := New(WithEndpoint(server.URL), WithHTTPClient(server.Client()), WithTimeout(20*time.Millisecond))
	err := client.Submit(context.Background(), samplePayload())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestSubmit_DefaultEndpoint(t *testing.T) {
	if got := New().Endpoint(); got != model.DefaultEndpoint {
		t.Fatalf("expected default endpoint, got %q", got)
	}
	if got := New(WithEndpoint("  ")).Endpoint(); got != model.DefaultEndpoint {
		t.Fatalf("blank endpoint should keep default, got %q", got)
	}
}

func TestSubmit_Metrics(t *testing.T) {
	var status atomic.Int32
	status.Store(http.StatusOK)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(int(status.Load()))
	}))
	defer server.Close()

	reg := prometheus.NewRegistry()
	client := New(WithEndpoint(server.URL), WithHTTPClient(server.Client()), WithRegisterer(reg))

	if err := client.Submit(context.Background(), samplePayload()); err != nil {
		t.Fatalf("submit: %v", err)
	}
	status.Store(http.StatusInternalServerError)
	_ = client.Submit(context.Background(), samplePayload())

	// a second client on the same registry shares the collectors
	again := New(WithEndpoint(server.URL), WithHTTPClient(server.Client()), WithRegisterer(reg))
	_ = again.Submit(context.Background(), samplePayload())

	if got := testutil.ToFloat64(client.metrics.submissions.WithLabelValues(OutcomeSuccess)); got != 1 {
		t.Fatalf("expected 1 success, got %v", got)
	}
	if got := testutil.ToFloat64(client.metrics.submissions.WithLabelValues(OutcomeRejected)); got != 2 {
		t.Fatalf("expected 2 rejected, got %v", got)
	}
}
