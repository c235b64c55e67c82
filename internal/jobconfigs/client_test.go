package jobconfigs

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestHTTPInvokerPostsConfigID(t *testing.T) {
	var gotAuth, gotConfig string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		gotConfig = body["configId"]
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"message":"queued","jobsFetched":12,"jobsCreated":3}`))
	}))
	defer srv.Close()

	inv := NewHTTPInvoker(srv.URL, "key", 5*time.Second)
	resp, err := inv.InvokeSync(context.Background(), "cfg-1")
	if err != nil {
		t.Fatalf("InvokeSync: %v", err)
	}
	if gotAuth != "Bearer key" {
		t.Fatalf("expected bearer auth, got %q", gotAuth)
	}
	if gotConfig != "cfg-1" {
		t.Fatalf("expected configId in body, got %q", gotConfig)
	}
	if resp.JobsFetched != 12 || resp.JobsCreated != 3 || resp.Message != "queued" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestHTTPInvokerFailures(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"non 2xx", http.StatusBadGateway, "upstream down", "502"},
		{"reported failure", http.StatusOK, `{"success":false,"message":"actor crashed"}`, "actor crashed"},
		{"bad json", http.StatusOK, `not json`, "decode"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			_, err := NewHTTPInvoker(srv.URL, "", time.Second).InvokeSync(context.Background(), "cfg")
			if err == nil || !strings.Contains(err.Error(), tc.wantMsg) {
				t.Fatalf("expected error containing %q, got %v", tc.wantMsg, err)
			}
		})
	}
}

func TestHTTPInvokerNotConfigured(t *testing.T) {
	_, err := NewHTTPInvoker("", "", time.Second).InvokeSync(context.Background(), "cfg")
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func newPlatformServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/v2/users/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer good" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"data":{"id":"u1","username":"scraper-bot"}}`))
	})
	mux.HandleFunc("/v2/acts/", func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.EscapedPath(), "bebity~linkedin-jobs-scraper") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"data":{"id":"a1","name":"linkedin-jobs-scraper","username":"bebity","title":"LinkedIn Jobs"}}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestPlatformTestConnection(t *testing.T) {
	srv := newPlatformServer(t)
	client := NewHTTPPlatformClient(srv.URL+"/", "good")

	if res := client.TestConnection(context.Background(), ""); !res.Success || res.Message != "Connected as scraper-bot" {
		t.Fatalf("expected success with default token, got %+v", res)
	}
	res := client.TestConnection(context.Background(), "bad")
	if res.Success || !strings.Contains(res.Message, "401") {
		t.Fatalf("expected failure for bad token, got %+v", res)
	}

	empty := NewHTTPPlatformClient(srv.URL, "")
	if res := empty.TestConnection(context.Background(), ""); res.Success || res.Message != "No API token configured" {
		t.Fatalf("expected missing token message, got %+v", res)
	}
}

func TestPlatformActorInfo(t *testing.T) {
	srv := newPlatformServer(t)
	client := NewHTTPPlatformClient(srv.URL, "good")

	info, err := client.ActorInfo(context.Background(), "bebity~linkedin-jobs-scraper")
	if err != nil {
		t.Fatalf("ActorInfo: %v", err)
	}
	if info.Name != "linkedin-jobs-scraper" || info.Username != "bebity" {
		t.Fatalf("unexpected actor: %+v", info)
	}

	if _, err := client.ActorInfo(context.Background(), "nobody~missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := client.ActorInfo(context.Background(), "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
