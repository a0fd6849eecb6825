package geo

import (
	"math"
	"testing"
)

func TestHaversineKm_ZeroDistance(t *testing.T) {
	d := HaversineKm(12.97, 77.59, 12.97, 77.59)
	if d < 0 || d > 1e-9 {
		t.Fatalf("distance to same point expected ~0, got %v", d)
	}
}

func TestHaversineKm_Symmetric(t *testing.T) {
	ab := HaversineKm(12.9716, 77.5946, 13.0827, 80.2707)
	ba := HaversineKm(13.0827, 80.2707, 12.9716, 77.5946)
	if math.Abs(ab-ba) > 1e-9 {
		t.Fatalf("expected symmetric distance, got %v and %v", ab, ba)
	}
}

func TestHaversineKm_KnownDistance(t *testing.T) {
	// Bangalore to Chennai is roughly 290 km as the crow flies.
	d := HaversineKm(12.9716, 77.5946, 13.0827, 80.2707)
	if d < 280 || d > 300 {
		t.Fatalf("Bangalore-Chennai distance out of range: %v km", d)
	}
}
