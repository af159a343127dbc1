package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetchDecodesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if got := q.Get("q"); got != "Atlanta" {
			t.Errorf("expected q=Atlanta, got %q", got)
		}
		if got := q.Get("appid"); got != "test-key" {
			t.Errorf("expected appid=test-key, got %q", got)
		}
		if got := q.Get("units"); got != "imperial" {
			t.Errorf("expected units=imperial, got %q", got)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"main":{"temp":72.0,"feels_like":70.0,"humidity":40},"weather":[{"description":"clear sky"}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), "test-key")
	c.baseURL = srv.URL

	doc, err := c.Fetch(context.Background(), "Atlanta")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fields, err := doc.Extract()
	if err != nil {
		t.Fatalf("unexpected extract error: %v", err)
	}
	if fields.Description != "clear sky" {
		t.Errorf("expected description %q, got %q", "clear sky", fields.Description)
	}
}

func TestFetchErrorStatuses(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusNotFound, http.StatusInternalServerError} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		c := NewClient(srv.Client(), "test-key")
		c.baseURL = srv.URL

		doc, err := c.Fetch(context.Background(), "Atlanta")
		if err == nil {
			t.Errorf("status %d: expected error, got none", status)
		}
		if doc != nil {
			t.Errorf("status %d: expected nil reading, got %v", status, doc)
		}
		srv.Close()
	}
}

func TestFetchTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := NewClient(http.DefaultClient, "test-key")
	c.baseURL = srv.URL

	doc, err := c.Fetch(context.Background(), "Atlanta")
	if err == nil {
		t.Fatal("expected transport error, got none")
	}
	if doc != nil {
		t.Errorf("expected nil reading, got %v", doc)
	}
}
