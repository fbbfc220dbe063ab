// Package connector provides registry tests
package connector

import (
	"context"
	"reflect"
	"testing"
)

type fakeConnector struct {
	name string
}

func (f *fakeConnector) Name() string { return f.name }
func (f *fakeConnector) TestConnection(ctx context.Context, cfg Config) *TestResult {
	return &TestResult{Success: true}
}
func (f *fakeConnector) Sync(ctx context.Context, cfg Config) *SyncResult {
	return NewSyncResult()
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	r.Register(&fakeConnector{name: "beta"})
	r.Register(&fakeConnector{name: "alpha"})

	if _, ok := r.Get("alpha"); !ok {
		t.Error("Get(alpha) not found")
	}
	if _, ok := r.Get("missing"); ok {
		t.Error("Get(missing) unexpectedly found")
	}

	if got := r.List(); !reflect.DeepEqual(got, []string{"alpha", "beta"}) {
		t.Errorf("List() = %v, want [alpha beta]", got)
	}
}

func TestRegistry_MustGetPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustGet did not panic for unknown connector")
		}
	}()
	NewRegistry().MustGet("missing")
}

func TestDefaultRegistry_BuiltinConnectors(t *testing.T) {
	want := []string{"jamf", "okta", "snipeit", "vaultwarden"}
	if got := List(); !reflect.DeepEqual(got, want) {
		t.Errorf("List() = %v, want %v", got, want)
	}
}
