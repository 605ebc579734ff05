// Package duration parses the durations found in configuration files.
package duration

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Day and Week extend the units understood by time.ParseDuration.
const (
	Day  = 24 * time.Hour
	Week = 7 * Day
)

var (
	units   = map[string]time.Duration{"d": Day, "w": Week}
	pattern = regexp.MustCompile(`(\d+)([dw])`)
)

// Parse accepts time.ParseDuration syntax plus day and week units, alone
// or combined ("2w", "1d12h"). An empty string or "0" is zero, meaning the
// setting is disabled.
func Parse(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "0" {
		return 0, nil
	}

	var total time.Duration
	for _, m := range pattern.FindAllStringSubmatch(s, -1) {
		n, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid duration value %q in %q", m[1], s)
		}
		total += time.Duration(n) * units[m[2]]
	}

	if rest := pattern.ReplaceAllString(s, ""); rest != "" {
		d, err := time.ParseDuration(rest)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q (supported units: ms, s, m, h, d, w)", s)
		}
		total += d
	}
	if total < 0 {
		return 0, fmt.Errorf("invalid duration %q: negative", s)
	}
	return total, nil
}

// Format renders d the way Parse reads it, using days for whole days.
func Format(d time.Duration) string {
	if d == 0 {
		return "0s"
	}
	if d >= Day && d%Day == 0 {
		return strconv.FormatInt(int64(d/Day), 10) + "d"
	}
	return d.String()
}
