package fallback

import (
	"encoding/json"
	"time"

	"astropredict/internal/domain/models"
	"astropredict/pkg/util"
)

var zodiacSigns = []string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// sunSignRange maps a tropical zodiac sign to its date range. Ranges are
// checked as (month, day) pairs; Capricorn wraps the year boundary.
type sunSignRange struct {
	sign                                   string
	startMonth, startDay, endMonth, endDay int
}

var sunSignTable = []sunSignRange{
	{"Aries", 3, 21, 4, 19},
	{"Taurus", 4, 20, 5, 20},
	{"Gemini", 5, 21, 6, 20},
	{"Cancer", 6, 21, 7, 22},
	{"Leo", 7, 23, 8, 22},
	{"Virgo", 8, 23, 9, 22},
	{"Libra", 9, 23, 10, 22},
	{"Scorpio", 10, 23, 11, 21},
	{"Sagittarius", 11, 22, 12, 21},
	{"Capricorn", 12, 22, 1, 19},
	{"Aquarius", 1, 20, 2, 18},
	{"Pisces", 2, 19, 3, 20},
}

// ChartCalculator computes an offline birth chart approximation.
type ChartCalculator struct {
	rng util.Rand
}

// NewChartCalculator creates the offline chart approximator.
func NewChartCalculator(rng util.Rand) *ChartCalculator {
	return &ChartCalculator{rng: rng}
}

// Approximate derives a minimal chart from the birth date alone: sun sign
// from the fixed date-range table, moon sign uniform random, and a single
// first-house entry.
func (c *ChartCalculator) Approximate(birthDate time.Time) *models.ChartData {
	sun := SunSign(birthDate)
	moon := zodiacSigns[c.rng.Intn(len(zodiacSigns))]

	houses, _ := json.Marshal(map[string]string{"1": sun})

	return &models.ChartData{
		SunSign:   sun,
		MoonSign:  moon,
		Ascendant: sun,
		Houses:    houses,
	}
}

// SunSign looks up the tropical sun sign for a date. Each sign spans the tail
// of one month and the head of the next, so a (month, day) pair matches
// exactly one entry; the same check covers Capricorn's year-boundary wrap.
func SunSign(t time.Time) string {
	month := int(t.Month())
	day := t.Day()
	for _, r := range sunSignTable {
		if (month == r.startMonth && day >= r.startDay) ||
			(month == r.endMonth && day <= r.endDay) {
			return r.sign
		}
	}
	// unreachable with a complete table
	return zodiacSigns[0]
}
