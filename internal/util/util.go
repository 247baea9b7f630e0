package util

import (
	"strconv"
	"time"
)

// FormatTimeAgo renders how long ago t was, relative to now
// (e.g., "Just now", "5m ago", "3h ago", "2d ago").
func FormatTimeAgo(t, now time.Time) string {
	diff := now.Sub(t)

	minutes := int(diff / time.Minute)
	hours := int(diff / time.Hour)
	days := hours / 24

	if minutes < 1 {
		return "Just now"
	}

	if minutes < 60 {
		return strconv.Itoa(minutes) + "m ago"
	}

	if hours < 24 {
		return strconv.Itoa(hours) + "h ago"
	}

	return strconv.Itoa(days) + "d ago"
}

// FormatBadge renders an unread counter. Zero renders empty and counts above
// limit render as "<limit>+".
func FormatBadge(count, limit int) string {
	if count <= 0 {
		return ""
	}

	if limit > 0 && count > limit {
		return strconv.Itoa(limit) + "+"
	}

	return strconv.Itoa(count)
}
