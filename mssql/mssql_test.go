package mssql

import (
	"testing"

	"github.com/zoobzio/exprql/internal/render"
)

func TestNew(t *testing.T) {
	d := New()
	if d == nil {
		t.Fatal("New() returned nil")
	}
	if d.Name() != "mssql" {
		t.Errorf("Name() = %q, want %q", d.Name(), "mssql")
	}
}

func TestPlaceholder(t *testing.T) {
	d := New()
	for n, want := range map[int]string{1: "@p1", 2: "@p2", 10: "@p10"} {
		if got := d.Placeholder(n); got != want {
			t.Errorf("Placeholder(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestCapabilities(t *testing.T) {
	caps := New().Capabilities()

	tests := []struct {
		feature render.Feature
		want    bool
	}{
		{render.FeatureReturning, false},
		{render.FeatureDefaultValues, true},
		{render.FeatureDistinctFrom, true},
		{render.FeatureUpsert, false},
	}

	for _, tt := range tests {
		if got := caps.Supports(tt.feature); got != tt.want {
			t.Errorf("Supports(%q) = %v, want %v", tt.feature, got, tt.want)
		}
	}
}
