package catalog

import (
	"strings"
	"testing"
)

func TestGetFeatureByID(t *testing.T) {
	t.Run("known id", func(t *testing.T) {
		f := GetFeatureByID("auth-email-password")
		if f == nil {
			t.Fatalf("expected feature, got nil")
		}
		if f.Price != 400 || f.TimelineDays != 3 || f.CategoryID != "auth" {
			t.Fatalf("unexpected feature: %+v", f)
		}
	})

	t.Run("unknown id returns nil", func(t *testing.T) {
		if f := GetFeatureByID("no-such-feature"); f != nil {
			t.Fatalf("expected nil, got %+v", f)
		}
	})

	t.Run("empty id returns nil", func(t *testing.T) {
		if f := GetFeatureByID(""); f != nil {
			t.Fatalf("expected nil, got %+v", f)
		}
	})
}

func TestCatalogIntegrity(t *testing.T) {
	t.Run("unique feature ids", func(t *testing.T) {
		seen := map[string]bool{}
		for _, f := range Features() {
			if seen[f.ID] {
				t.Fatalf("duplicate feature id %q", f.ID)
			}
			seen[f.ID] = true
		}
	})

	t.Run("every feature has a known category", func(t *testing.T) {
		for _, f := range Features() {
			if CategoryByID(f.CategoryID) == nil {
				t.Fatalf("feature %q references unknown category %q", f.ID, f.CategoryID)
			}
		}
	})

	t.Run("prices and timelines are positive", func(t *testing.T) {
		for _, f := range Features() {
			if f.Price <= 0 || f.TimelineDays <= 0 {
				t.Fatalf("feature %q has non-positive price/timeline: %+v", f.ID, f)
			}
		}
	})
}

func TestFeaturesByCategory(t *testing.T) {
	auth := FeaturesByCategory("auth")
	if len(auth) == 0 {
		t.Fatalf("expected auth features")
	}
	for _, f := range auth {
		if f.CategoryID != "auth" {
			t.Fatalf("unexpected category on %q: %s", f.ID, f.CategoryID)
		}
	}

	if got := FeaturesByCategory("nope"); got != nil {
		t.Fatalf("expected nil for unknown category, got %d entries", len(got))
	}
}

func TestBuildCompressedCatalog(t *testing.T) {
	s := BuildCompressedCatalog()
	lines := strings.Split(s, "\n")
	if len(lines) != len(Features()) {
		t.Fatalf("expected %d lines, got %d", len(Features()), len(lines))
	}
	if lines[0] != "auth-email-password|auth" {
		t.Fatalf("unexpected first line: %q", lines[0])
	}
	for _, line := range lines {
		if strings.Count(line, "|") != 1 {
			t.Fatalf("malformed line: %q", line)
		}
	}
}
