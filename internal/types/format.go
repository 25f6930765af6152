package types

import "fmt"

// FormatSize renders a byte count in human-readable form (e.g. "1.2 MB").
func FormatSize(size int64) string {
	if size == 0 {
		return "0 B"
	}
	value := float64(size)
	for _, unit := range []string{"B", "KB", "MB", "GB"} {
		if value < 1024.0 {
			return fmt.Sprintf("%.1f %s", value, unit)
		}
		value /= 1024.0
	}
	return fmt.Sprintf("%.1f TB", value)
}

// ShortDigest truncates a hex digest for display.
func ShortDigest(digest string) string {
	if len(digest) <= 8 {
		return digest
	}
	return digest[:8]
}
