package model

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseDuration converts a "M:SS" duration into seconds.
func ParseDuration(d string) (int, error) {
	mins, secs, ok := strings.Cut(d, ":")
	if !ok {
		return 0, fmt.Errorf("invalid duration %q: missing ':'", d)
	}
	m, err := strconv.Atoi(mins)
	if err != nil || m < 0 {
		return 0, fmt.Errorf("invalid duration %q: bad minutes", d)
	}
	if len(secs) != 2 {
		return 0, fmt.Errorf("invalid duration %q: seconds must have two digits", d)
	}
	s, err := strconv.Atoi(secs)
	if err != nil || s < 0 || s > 59 {
		return 0, fmt.Errorf("invalid duration %q: bad seconds", d)
	}
	return m*60 + s, nil
}

// FormatDuration renders seconds as "M:SS". Minutes are never padded
// and an hour shows up as 60 minutes.
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// TotalDuration sums the durations of songs in seconds.
func TotalDuration(songs []Song) (int, error) {
	total := 0
	for _, s := range songs {
		secs, err := ParseDuration(s.Duration)
		if err != nil {
			return 0, fmt.Errorf("song %d: %w", s.ID, err)
		}
		total += secs
	}
	return total, nil
}
