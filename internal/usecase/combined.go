package usecase

import (
	"time"

	"astropredict/internal/domain/models"
)

// maxFavorableWindows caps the favorable periods in a combined prediction.
const maxFavorableWindows = 3

// recommendationPools holds the canned recommendation texts per category.
// Unknown categories fall back to the career pool.
var recommendationPools = map[string][]string{
	models.CategoryCareer: {
		"Focus on visible, high-impact projects this quarter.",
		"Strengthen one professional relationship each week.",
		"Invest time in a skill your current role does not demand yet.",
		"Document your wins; a review conversation is coming.",
	},
	models.CategoryFinance: {
		"Automate savings before discretionary spending.",
		"Review recurring subscriptions and cut the unused ones.",
		"Keep new financial commitments small until the period stabilizes.",
		"Build toward three months of expenses in reserve.",
	},
	models.CategoryHealth: {
		"Protect a consistent sleep window, even on weekends.",
		"Add two short walks to your workday.",
		"Schedule the checkup you have been postponing.",
		"Trade one late work hour for an earlier evening.",
	},
	models.CategoryRelationship: {
		"Plan one undistracted conversation this week.",
		"Express appreciation before raising a concern.",
		"Revisit a shared activity you both used to enjoy.",
		"Give space where tension is rising; timing matters.",
	},
}

// categorySummaries holds the canned summary line per category.
var categorySummaries = map[string]string{
	models.CategoryCareer:       "Professional momentum builds steadily through this period.",
	models.CategoryFinance:      "Financial conditions favor consolidation over expansion.",
	models.CategoryHealth:       "Energy levels respond well to routine during this period.",
	models.CategoryRelationship: "Connections deepen when given consistent attention.",
}

// categoryInsights holds the three canned insight lines per category.
var categoryInsights = map[string][]string{
	models.CategoryCareer: {
		"Collaboration opens more doors than solo effort right now.",
		"A decision you deferred resurfaces mid-period.",
		"Recognition arrives later than the work that earns it.",
	},
	models.CategoryFinance: {
		"Small consistent contributions outperform one-off moves.",
		"An unexpected expense is likely in the first half of the period.",
		"Income patterns from recent months continue their trend.",
	},
	models.CategoryHealth: {
		"Sleep quality drives more of your energy than exercise volume.",
		"Stress accumulates quietly; watch the second month.",
		"Routine beats intensity for sustainable gains.",
	},
	models.CategoryRelationship: {
		"Listening changes more outcomes than explaining.",
		"Old patterns surface under stress; name them early.",
		"Shared plans strengthen the bond more than gifts.",
	},
}

// buildCombined assembles the locally generated forecast payload: a random
// recommendation from the category pool, canned summary and insights, up to
// min(months,3) favorable windows one month apart, and a single caution
// window 30 days out.
func (p *Predictor) buildCombined(category string, months int, now time.Time) models.CombinedPrediction {
	pool, ok := recommendationPools[category]
	if !ok {
		pool = recommendationPools[models.CategoryCareer]
	}
	summary, ok := categorySummaries[category]
	if !ok {
		summary = categorySummaries[models.CategoryCareer]
	}
	insights, ok := categoryInsights[category]
	if !ok {
		insights = categoryInsights[models.CategoryCareer]
	}

	favorableCount := months
	if favorableCount > maxFavorableWindows {
		favorableCount = maxFavorableWindows
	}
	favorable := make([]models.PeriodWindow, 0, favorableCount)
	for i := 0; i < favorableCount; i++ {
		start := now.AddDate(0, i, 0)
		days := 7 + p.rng.Intn(8) // 1-2 weeks
		favorable = append(favorable, models.PeriodWindow{
			Start: start,
			End:   start.AddDate(0, 0, days),
			Note:  "favorable window",
		})
	}

	cautionStart := now.AddDate(0, 0, 30)
	cautionDays := 3 + p.rng.Intn(3)
	caution := []models.PeriodWindow{{
		Start: cautionStart,
		End:   cautionStart.AddDate(0, 0, cautionDays),
		Note:  "proceed with extra care",
	}}

	return models.CombinedPrediction{
		Recommendation:   pool[p.rng.Intn(len(pool))],
		Summary:          summary,
		Insights:         insights,
		FavorablePeriods: favorable,
		CautionPeriods:   caution,
	}
}
