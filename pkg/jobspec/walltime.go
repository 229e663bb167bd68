package jobspec

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseWallTime parses a Slurm wall-time limit. Accepted forms are the ones
// sbatch accepts for --time: "minutes", "minutes:seconds",
// "hours:minutes:seconds", "days-hours", "days-hours:minutes" and
// "days-hours:minutes:seconds".
func ParseWallTime(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("empty wall time")
	}

	var days int64
	before, after, hasDays := strings.Cut(value, "-")
	if hasDays {
		parsed, err := strconv.ParseInt(before, 10, 64)
		if err != nil || parsed < 0 {
			return 0, fmt.Errorf("invalid wall time %q", value)
		}
		days = parsed
		value = after
	}

	parts := strings.Split(value, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("invalid wall time %q", value)
	}

	numbers := make([]int64, 0, 3)
	for _, part := range parts {
		parsed, err := strconv.ParseInt(part, 10, 64)
		if err != nil || parsed < 0 {
			return 0, fmt.Errorf("invalid wall time %q", value)
		}
		numbers = append(numbers, parsed)
	}

	var duration time.Duration
	if hasDays {
		// with a day component, even "0-", the leading number is hours
		switch len(numbers) {
		case 1:
			duration = time.Duration(numbers[0]) * time.Hour
		case 2:
			duration = time.Duration(numbers[0])*time.Hour + time.Duration(numbers[1])*time.Minute
		case 3:
			duration = time.Duration(numbers[0])*time.Hour + time.Duration(numbers[1])*time.Minute + time.Duration(numbers[2])*time.Second
		}
		return time.Duration(days)*24*time.Hour + duration, nil
	}

	switch len(numbers) {
	case 1:
		// a bare number is minutes
		duration = time.Duration(numbers[0]) * time.Minute
	case 2:
		duration = time.Duration(numbers[0])*time.Minute + time.Duration(numbers[1])*time.Second
	case 3:
		duration = time.Duration(numbers[0])*time.Hour + time.Duration(numbers[1])*time.Minute + time.Duration(numbers[2])*time.Second
	}

	return duration, nil
}

// FormatWallTime renders a duration in the canonical sbatch form,
// "hours:minutes:seconds" or "days-hours:minutes:seconds" once the limit
// reaches a full day.
func FormatWallTime(d time.Duration) string {
	total := int64(d / time.Second)
	seconds := total % 60
	minutes := (total / 60) % 60
	hours := total / 3600

	if hours >= 24 {
		days := hours / 24
		hours = hours % 24
		return fmt.Sprintf("%d-%02d:%02d:%02d", days, hours, minutes, seconds)
	}

	return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
}
