package helpers

import (
	"time"

	"github.com/dustin/go-humanize"
)

func DetermineSavedAt(createdAt time.Time) string {
	if createdAt.IsZero() {
		return "-"
	}
	return humanize.Time(createdAt)
}

func DetermineUpdatedAt(updatedAt *time.Time) string {
	if updatedAt == nil || updatedAt.IsZero() {
		return "-"
	}
	return humanize.Time(*updatedAt)
}

func DetermineVersion(version string) string {
	if version == "" {
		return "-"
	}
	return version
}
