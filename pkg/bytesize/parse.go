// Package bytesize parses sizes such as "4.7GB" as listed by the model
// library.
package bytesize

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Binary multipliers. The library lists sizes with decimal-looking suffixes
// that are 1024-based.
const (
	KB int64 = 1 << (10 * (iota + 1))
	MB
	GB
	TB
)

var suffixes = []struct {
	unit string
	mult int64
}{
	{"TB", TB}, {"GB", GB}, {"MB", MB}, {"KB", KB},
	{"T", TB}, {"G", GB}, {"M", MB}, {"K", KB},
	{"B", 1},
}

// Parse reads a size with an optional unit (B, K/KB, M/MB, G/GB, T/TB,
// case-insensitive). A bare number is a byte count.
func Parse(s string) (int64, error) {
	raw := s
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return 0, fmt.Errorf("empty size string")
	}

	mult := int64(1)
	for _, sfx := range suffixes {
		if strings.HasSuffix(s, sfx.unit) {
			s = strings.TrimSpace(strings.TrimSuffix(s, sfx.unit))
			mult = sfx.mult
			break
		}
	}
	if s == "" {
		return 0, fmt.Errorf("invalid size %q: missing numeric value", raw)
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("invalid size %q", raw)
	}
	if value < 0 {
		return 0, fmt.Errorf("invalid size %q: negative value not allowed", raw)
	}

	result := value * float64(mult)
	if result >= math.MaxInt64 {
		return 0, fmt.Errorf("size %q is too large", raw)
	}
	return int64(result), nil
}
