package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var clock12Pattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*([APap][Mm])$`)

// To24Hour converts a 12-hour display string such as "5:30 PM" into the
// 24-hour "HH:MM" storage format. The input must match H:MM AM|PM with
// an hour between 1 and 12; anything else is an error the caller must
// surface as a validation failure instead of booking a wrong time.
func To24Hour(s string) (string, error) {
	m := clock12Pattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return "", fmt.Errorf("invalid 12-hour time %q", s)
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour < 1 || hour > 12 || minute > 59 {
		return "", fmt.Errorf("invalid 12-hour time %q", s)
	}

	period := strings.ToUpper(m[3])
	if period == "PM" && hour != 12 {
		hour += 12
	} else if period == "AM" && hour == 12 {
		hour = 0
	}

	return fmt.Sprintf("%02d:%s", hour, m[2]), nil
}

// To12Hour converts a stored "HH:MM" value back into the 12-hour form
// used on confirmation pages, e.g. "17:30" -> "5:30 PM".
func To12Hour(s string) (string, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid 24-hour time %q", s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return "", fmt.Errorf("invalid 24-hour time %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return "", fmt.Errorf("invalid 24-hour time %q", s)
	}

	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}

	return fmt.Sprintf("%d:%02d %s", display, minute, period), nil
}
