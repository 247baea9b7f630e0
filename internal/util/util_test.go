package util

import (
	"testing"
	"time"
)

func TestFormatTimeAgo(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		at       time.Time
		expected string
	}{
		{name: "same instant", at: now, expected: "Just now"},
		{name: "under one minute", at: now.Add(-59 * time.Second), expected: "Just now"},
		{name: "in the future", at: now.Add(time.Hour), expected: "Just now"},
		{name: "minutes", at: now.Add(-5 * time.Minute), expected: "5m ago"},
		{name: "just under an hour", at: now.Add(-59*time.Minute - 59*time.Second), expected: "59m ago"},
		{name: "hours", at: now.Add(-3 * time.Hour), expected: "3h ago"},
		{name: "just under a day", at: now.Add(-23*time.Hour - 59*time.Minute), expected: "23h ago"},
		{name: "days", at: now.Add(-50 * time.Hour), expected: "2d ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatTimeAgo(tt.at, now); got != tt.expected {
				t.Fatalf("FormatTimeAgo(%s) = %s, want %s", tt.at, got, tt.expected)
			}
		})
	}
}

func TestFormatBadge(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		count    int
		limit    int
		expected string
	}{
		{name: "zero is hidden", count: 0, limit: 99, expected: ""},
		{name: "single", count: 1, limit: 99, expected: "1"},
		{name: "at the limit", count: 99, limit: 99, expected: "99"},
		{name: "over the limit", count: 100, limit: 99, expected: "99+"},
		{name: "no limit", count: 1000, limit: 0, expected: "1000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatBadge(tt.count, tt.limit); got != tt.expected {
				t.Fatalf("FormatBadge(%d, %d) = %s, want %s", tt.count, tt.limit, got, tt.expected)
			}
		})
	}
}
