// Package connector provides Okta connector tests
package connector

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestOkta_Sync(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "SSWS okta-token" {
			t.Errorf("Authorization = %s, want SSWS okta-token", auth)
		}
		switch r.URL.Path {
		case "/api/v1/users":
			w.Write([]byte(`[{"id": "u1", "status": "ACTIVE"}, {"id": "u2", "status": "SUSPENDED"}]`))
		case "/api/v1/groups":
			w.Write([]byte(`[{"id": "g1", "profile": {"name": "Everyone"}}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()
	withStubbedNetwork(t, srv)

	conn := &Okta{}
	result := conn.Sync(context.Background(), Config{
		BaseURL:  "https://example.okta.com",
		APIToken: "okta-token",
	})

	if len(result.Errors) != 0 {
		t.Fatalf("Sync() errors = %v", result.Errors)
	}
	if len(result.Collections["users"]) != 2 {
		t.Errorf("users = %d records, want 2", len(result.Collections["users"]))
	}
	if len(result.Collections["groups"]) != 1 {
		t.Errorf("groups = %d records, want 1", len(result.Collections["groups"]))
	}
}

func TestOkta_SyncDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Object instead of the expected top-level array.
		w.Write([]byte(`{"errorCode": "E0000011"}`))
	}))
	defer srv.Close()
	withStubbedNetwork(t, srv)

	conn := &Okta{}
	result := conn.Sync(context.Background(), Config{
		BaseURL:  "https://example.okta.com",
		APIToken: "okta-token",
	})

	if len(result.Errors) != 2 {
		t.Fatalf("Errors = %v, want decode errors for both collections", result.Errors)
	}
	for _, e := range result.Errors {
		if !strings.Contains(e, "decoding") {
			t.Errorf("error %q does not mention decoding", e)
		}
	}
}
