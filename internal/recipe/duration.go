package recipe

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var isoDurationRe = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// FormatDuration turns an ISO-8601 duration ("PT2H30M") into a short
// human-readable form ("2h 30m"). Strings that do not parse are returned
// unchanged so a free-text time from extraction still displays.
func FormatDuration(duration string) string {
	if duration == "" {
		return ""
	}

	m := isoDurationRe.FindStringSubmatch(duration)
	if m == nil {
		return duration
	}

	hours := atoiOrZero(m[1])
	minutes := atoiOrZero(m[2])
	seconds := atoiOrZero(m[3])

	var parts []string
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if seconds > 0 && hours == 0 && minutes == 0 {
		parts = append(parts, fmt.Sprintf("%ds", seconds))
	}
	if len(parts) == 0 {
		return "0m"
	}
	return strings.Join(parts, " ")
}

func atoiOrZero(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
