package entries

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var ErrInvalidPlates = errors.New("invalid plates, expected e.g. 45x2,25,2.5x1")

// PlateSizes are the standard plates in lbs, heaviest first.
var PlateSizes = []float64{45, 35, 25, 10, 5, 2.5}

// TotalWeight is the bar plus every plate loaded on both sides.
// plates maps a plate size to the number of plates on one side.
func TotalWeight(bar float64, plates map[float64]int) float64 {
	total := ClampBarWeight(bar)
	for size, count := range plates {
		total += size * float64(count) * 2
	}
	return total
}

// ParsePlates reads a per-side plate list like "45x2,25,2.5x1".
// A size without a count means one plate.
func ParsePlates(s string) (map[float64]int, error) {
	plates := make(map[float64]int)
	s = strings.TrimSpace(s)
	if s == "" {
		return plates, nil
	}

	for _, part := range strings.Split(s, ",") {
		sizeStr, countStr, hasCount := strings.Cut(strings.TrimSpace(part), "x")
		size, err := strconv.ParseFloat(sizeStr, 64)
		if err != nil || !isPlateSize(size) {
			return nil, fmt.Errorf("%w: plate %q", ErrInvalidPlates, part)
		}
		count := 1
		if hasCount {
			count, err = strconv.Atoi(countStr)
			if err != nil || count < 0 {
				return nil, fmt.Errorf("%w: count %q", ErrInvalidPlates, part)
			}
		}
		plates[size] += count
	}

	return plates, nil
}

func isPlateSize(size float64) bool {
	for _, p := range PlateSizes {
		if p == size {
			return true
		}
	}
	return false
}

// plain decimal only, no sign, exponent or hex
var bodyWeightFormat = regexp.MustCompile(`^\d+\.?\d*$`)

// ParseBodyWeight parses user input of a body weight and checks its range.
func ParseBodyWeight(raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if !bodyWeightFormat.MatchString(raw) {
		return nil, fmt.Errorf("%w: %q is not a plain number", ErrBodyWeightOutOfRange, raw)
	}
	bw, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(bw, 0) {
		return nil, fmt.Errorf("%w: %q", ErrBodyWeightOutOfRange, raw)
	}
	if err := ValidateBodyWeight(&bw); err != nil {
		return nil, err
	}
	return &bw, nil
}
