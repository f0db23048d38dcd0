package benchmark

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseSizes parses a comma-separated size list such as "1,2,4,8".
func ParseSizes(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	sizes := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("benchmark: invalid size %q: %w", p, err)
		}
		if v <= 0 {
			return nil, fmt.Errorf("benchmark: sizes must be positive, got %d", v)
		}
		if len(sizes) > 0 && v <= sizes[len(sizes)-1] {
			return nil, fmt.Errorf("benchmark: sizes must be strictly increasing, got %d after %d", v, sizes[len(sizes)-1])
		}
		sizes = append(sizes, v)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("benchmark: empty size list")
	}
	return sizes, nil
}

// SizesUpTo returns the doubling axis 1, 2, 4, ... capped at max.
func SizesUpTo(max int) []int {
	var sizes []int
	for n := 1; n <= max; n <<= 1 {
		sizes = append(sizes, n)
	}
	return sizes
}

// FormatSizes renders a size list in ParseSizes format.
func FormatSizes(sizes []int) string {
	parts := make([]string, len(sizes))
	for i, s := range sizes {
		parts[i] = strconv.Itoa(s)
	}
	return strings.Join(parts, ",")
}
