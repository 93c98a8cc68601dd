package geo

import (
	"math"
	"strconv"
	"strings"
)

// ParseCoordinate converts a human-readable coordinate string such as
// "54.5 N" or "2.3° W" into signed decimal degrees. South and west are
// negative. Malformed input yields 0 rather than an error; the catalogs are
// hand-maintained and a bad coordinate should never take the app down.
func ParseCoordinate(coord string) float64 {
	cleaned := strings.TrimSpace(strings.ReplaceAll(coord, "°", ""))
	fields := strings.Fields(cleaned)
	if len(fields) == 0 {
		return 0
	}

	value, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0
	}
	value = math.Abs(value)

	if len(fields) > 1 {
		switch strings.ToUpper(fields[len(fields)-1]) {
		case "S", "W":
			value = -value
		}
	}
	return value
}
