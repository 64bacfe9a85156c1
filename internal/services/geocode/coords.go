package geocode

import "strconv"

// parseCoords converts the provider's string coordinates; malformed entries
// are dropped rather than failing the whole result set.
func parseCoords(latStr, lonStr string) (float64, float64, bool) {
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return 0, 0, false
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return 0, 0, false
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return 0, 0, false
	}
	return lat, lon, true
}
