package pricetier

import (
	"testing"
	"time"
)

func TestComputeExpiry(t *testing.T) {
	paidOn := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		amount int64
		want   time.Time
	}{
		{"daily tier", 500, paidOn.Add(24 * time.Hour)},
		{"monthly tier", 11000, paidOn.Add(30 * 24 * time.Hour)},
		{"quarterly tier", 25000, paidOn.Add(90 * 24 * time.Hour)},
		{"unmatched amount falls back to shortest tier", 999, paidOn.Add(24 * time.Hour)},
		{"zero amount falls back to shortest tier", 0, paidOn.Add(24 * time.Hour)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Default.ComputeExpiry(tc.amount, paidOn)
			if !got.Equal(tc.want) {
				t.Fatalf("expected expiry %s, got %s", tc.want, got)
			}
		})
	}
}

func TestResolveService(t *testing.T) {
	if svc := Default.Resolve(11000).Service; svc != "monthly" {
		t.Fatalf("expected monthly, got %s", svc)
	}
	if svc := Default.Resolve(120).Service; svc != "daily" {
		t.Fatalf("expected fallback daily, got %s", svc)
	}
}

func TestFallbackPicksShortestDuration(t *testing.T) {
	table := Table{
		{Amount: 1000, Duration: 7 * 24 * time.Hour, Service: "weekly"},
		{Amount: 200, Duration: time.Hour, Service: "hourly"},
	}
	tier := table.Resolve(555)
	if tier.Service != "hourly" {
		t.Fatalf("expected hourly fallback, got %s", tier.Service)
	}
}
