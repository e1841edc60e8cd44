package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// parseSize parses a poster size argument like "20x30" or "24.5x36" into
// width and height in inches.
func parseSize(s string) (width, height float64, err error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "x")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid size %q: use WIDTHxHEIGHT, like 20x30 or 24.5x36", s)
	}

	width, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid size %q: width %q is not a number", s, parts[0])
	}
	height, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid size %q: height %q is not a number", s, parts[1])
	}
	return width, height, nil
}
