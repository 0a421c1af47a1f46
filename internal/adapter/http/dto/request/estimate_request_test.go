package request

import (
	"reflect"
	"testing"
)

func TestEstimateRequest_ResolveFeatureIDs(t *testing.T) {
	r := EstimateRequest{
		SelectedFeatures: []string{" auth-email-password ", "", "   ", "push-notifications"},
	}
	got := r.ResolveFeatureIDs()
	want := []string{"auth-email-password", "push-notifications"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestRecalculateRequest_ResolveFeatureIDs(t *testing.T) {
	r := RecalculateRequest{SelectedFeatures: []string{"a", " b "}}
	got := r.ResolveFeatureIDs()
	want := []string{"a", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	empty := RecalculateRequest{}
	if got := empty.ResolveFeatureIDs(); len(got) != 0 {
		t.Fatalf("expected empty, got %v", got)
	}
}
