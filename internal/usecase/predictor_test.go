package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"astropredict/internal/domain/models"
	domrepo "astropredict/internal/domain/repository"
	domsvc "astropredict/internal/domain/service"
	"astropredict/pkg/util"

	"github.com/google/uuid"
)

type fakePredictionStore struct {
	created *models.Prediction
	rows    []models.Prediction
	fbErr   error
}

func (f *fakePredictionStore) Create(_ context.Context, p *models.Prediction) error {
	f.created = p
	return nil
}

func (f *fakePredictionStore) GetByID(_ context.Context, userID, id uuid.UUID) (*models.Prediction, error) {
	for i := range f.rows {
		if f.rows[i].ID == id && f.rows[i].UserID == userID {
			return &f.rows[i], nil
		}
	}
	return nil, domrepo.ErrNotFound
}

func (f *fakePredictionStore) ListByUser(_ context.Context, userID uuid.UUID, category string, limit int) ([]models.Prediction, error) {
	return f.rows, nil
}

func (f *fakePredictionStore) AttachFeedback(_ context.Context, userID, id uuid.UUID, feedback string) error {
	return f.fbErr
}

type fakeChartStore struct {
	chart *models.BirthChart
}

func (f *fakeChartStore) GetByUser(_ context.Context, _ uuid.UUID) (*models.BirthChart, error) {
	if f.chart == nil {
		return nil, domrepo.ErrNotFound
	}
	return f.chart, nil
}

func (f *fakeChartStore) Upsert(_ context.Context, chart *models.BirthChart) error {
	f.chart = chart
	return nil
}

type fakeMetricStore struct {
	rows []models.UserMetric
}

func (f *fakeMetricStore) ListRecent(_ context.Context, _ uuid.UUID, metricType string, limit int) ([]models.UserMetric, error) {
	if metricType == "" {
		return f.rows, nil
	}
	out := make([]models.UserMetric, 0, len(f.rows))
	for _, m := range f.rows {
		if m.MetricType == metricType {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMetricStore) Append(_ context.Context, m *models.UserMetric) error {
	f.rows = append([]models.UserMetric{*m}, f.rows...)
	return nil
}

type fakeAstrology struct {
	raw json.RawMessage
	err error
}

func (f *fakeAstrology) Predict(_ context.Context, _ domsvc.BirthInput, _, _ string) (json.RawMessage, error) {
	return f.raw, f.err
}

func (f *fakeAstrology) CalculateChart(_ context.Context, _ domsvc.BirthInput) (*models.ChartData, error) {
	return nil, errors.New("not implemented")
}

type fakeIncome struct {
	forecast *models.IncomeForecast
	err      error
}

func (f *fakeIncome) ForecastIncome(_ context.Context, _ []float64, _ int) (*models.IncomeForecast, error) {
	return f.forecast, f.err
}

type fakeStress struct {
	result *models.StressResult
	err    error
}

func (f *fakeStress) AnalyzeStress(_ context.Context, _ domsvc.StressInput) (*models.StressResult, error) {
	return f.result, f.err
}

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestPredictor(charts *fakeChartStore, metrics *fakeMetricStore, astro *fakeAstrology, income *fakeIncome, stress *fakeStress) (*Predictor, *fakePredictionStore) {
	store := &fakePredictionStore{}
	p := NewPredictor(store, charts, metrics, astro, income, stress, util.NewLockedRand(1), nil, nil)
	p.WithClock(func() time.Time { return testNow })
	return p, store
}

func someChart() *models.BirthChart {
	return &models.BirthChart{
		UserID:    uuid.New(),
		BirthDate: "1990-04-02",
		BirthTime: "06:30:00",
	}
}

func incomeRows() []models.UserMetric {
	return []models.UserMetric{
		{MetricType: models.MetricIncome, Value: 52000},
		{MetricType: models.MetricIncome, Value: 50000},
	}
}

func TestGenerateHybrid(t *testing.T) {
	p, store := newTestPredictor(
		&fakeChartStore{chart: someChart()},
		&fakeMetricStore{rows: incomeRows()},
		&fakeAstrology{raw: json.RawMessage(`{"sign":"aries"}`)},
		&fakeIncome{forecast: &models.IncomeForecast{Model: "arima", Trend: "up"}},
		&fakeStress{},
	)

	got, err := p.Generate(context.Background(), uuid.New(), models.CategoryFinance, "6_months")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if got.PredictionType != models.TypeHybrid {
		t.Fatalf("expected hybrid, got %s", got.PredictionType)
	}
	if got.AstrologyConfidence != 0.75 || got.BehaviorConfidence != 0.80 {
		t.Fatalf("unexpected source confidences %v %v", got.AstrologyConfidence, got.BehaviorConfidence)
	}
	if got.OverallConfidence != 0.775 {
		t.Fatalf("expected average 0.775, got %v", got.OverallConfidence)
	}
	if store.created == nil {
		t.Fatalf("expected record persisted")
	}
	if !got.ExpiresAt.Equal(got.PeriodEnd) {
		t.Fatalf("expires_at should equal period_end")
	}
	if !got.PeriodEnd.Equal(testNow.AddDate(0, 6, 0)) {
		t.Fatalf("unexpected period end %v", got.PeriodEnd)
	}
}

func TestGenerateAstrologyOnly(t *testing.T) {
	p, _ := newTestPredictor(
		&fakeChartStore{chart: someChart()},
		&fakeMetricStore{},
		&fakeAstrology{raw: json.RawMessage(`{}`)},
		&fakeIncome{err: errors.New("down")},
		&fakeStress{err: errors.New("down")},
	)

	got, err := p.Generate(context.Background(), uuid.New(), models.CategoryCareer, "3_months")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if got.PredictionType != models.TypeAstrology {
		t.Fatalf("expected astrology, got %s", got.PredictionType)
	}
	if got.OverallConfidence != 0.75 {
		t.Fatalf("expected 0.75, got %v", got.OverallConfidence)
	}
	if got.BehaviorPrediction != nil {
		t.Fatalf("behavior sub-prediction should be absent")
	}
}

func TestGenerateBehaviorOnly(t *testing.T) {
	p, _ := newTestPredictor(
		&fakeChartStore{},
		&fakeMetricStore{rows: incomeRows()},
		&fakeAstrology{err: errors.New("unused")},
		&fakeIncome{forecast: &models.IncomeForecast{Model: "moving_average"}},
		&fakeStress{},
	)

	got, err := p.Generate(context.Background(), uuid.New(), models.CategoryFinance, "6_months")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if got.PredictionType != models.TypeBehavior {
		t.Fatalf("expected behavior, got %s", got.PredictionType)
	}
	if got.OverallConfidence != 0.80 {
		t.Fatalf("expected 0.80, got %v", got.OverallConfidence)
	}
}

func TestGenerateNoSources(t *testing.T) {
	p, store := newTestPredictor(
		&fakeChartStore{},
		&fakeMetricStore{},
		&fakeAstrology{err: errors.New("unused")},
		&fakeIncome{err: errors.New("unused")},
		&fakeStress{err: errors.New("unused")},
	)

	got, err := p.Generate(context.Background(), uuid.New(), models.CategoryCareer, "6_months")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if got.PredictionType != models.TypeNone {
		t.Fatalf("expected none, got %s", got.PredictionType)
	}
	if got.OverallConfidence != 0.65 {
		t.Fatalf("expected default 0.65, got %v", got.OverallConfidence)
	}
	if got.AstrologyPrediction != nil || got.BehaviorPrediction != nil {
		t.Fatalf("both sub-predictions should be absent")
	}
	if store.created == nil {
		t.Fatalf("record should persist even with no sources")
	}
}

func TestGenerateSwallowsAstrologyFailure(t *testing.T) {
	p, _ := newTestPredictor(
		&fakeChartStore{chart: someChart()},
		&fakeMetricStore{rows: incomeRows()},
		&fakeAstrology{err: errors.New("timeout")},
		&fakeIncome{forecast: &models.IncomeForecast{}},
		&fakeStress{},
	)

	got, err := p.Generate(context.Background(), uuid.New(), models.CategoryFinance, "6_months")
	if err != nil {
		t.Fatalf("ml failure must not surface: %v", err)
	}
	if got.PredictionType != models.TypeBehavior {
		t.Fatalf("expected behavior after astrology failure, got %s", got.PredictionType)
	}
}

func TestGenerateRelationshipHasNoBehaviorSource(t *testing.T) {
	p, _ := newTestPredictor(
		&fakeChartStore{chart: someChart()},
		&fakeMetricStore{rows: incomeRows()},
		&fakeAstrology{raw: json.RawMessage(`{}`)},
		&fakeIncome{forecast: &models.IncomeForecast{}},
		&fakeStress{result: &models.StressResult{}},
	)

	got, err := p.Generate(context.Background(), uuid.New(), models.CategoryRelationship, "6_months")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if got.PredictionType != models.TypeAstrology {
		t.Fatalf("relationship should have no behavior source, got %s", got.PredictionType)
	}
}

func TestGenerateWindowCounts(t *testing.T) {
	cases := []struct {
		timeframe string
		favorable int
		months    int
	}{
		{"1_month", 1, 1},
		{"3_months", 3, 3},
		{"6_months", 3, 6},
		{"1_year", 3, 12},
		{"bogus", 3, 6},
	}
	for _, tc := range cases {
		p, store := newTestPredictor(
			&fakeChartStore{},
			&fakeMetricStore{},
			&fakeAstrology{},
			&fakeIncome{},
			&fakeStress{},
		)
		if _, err := p.Generate(context.Background(), uuid.New(), models.CategoryCareer, tc.timeframe); err != nil {
			t.Fatalf("%s: generate: %v", tc.timeframe, err)
		}

		var combined models.CombinedPrediction
		if err := json.Unmarshal(store.created.CombinedPrediction, &combined); err != nil {
			t.Fatalf("%s: unmarshal combined: %v", tc.timeframe, err)
		}
		if len(combined.FavorablePeriods) != tc.favorable {
			t.Fatalf("%s: expected %d favorable windows, got %d", tc.timeframe, tc.favorable, len(combined.FavorablePeriods))
		}
		if len(combined.CautionPeriods) != 1 {
			t.Fatalf("%s: expected exactly one caution window, got %d", tc.timeframe, len(combined.CautionPeriods))
		}

		caution := combined.CautionPeriods[0]
		if !caution.Start.Equal(testNow.AddDate(0, 0, 30)) {
			t.Fatalf("%s: caution window should start 30 days out, got %v", tc.timeframe, caution.Start)
		}
		days := int(caution.End.Sub(caution.Start).Hours() / 24)
		if days < 3 || days > 5 {
			t.Fatalf("%s: caution window should last 3-5 days, got %d", tc.timeframe, days)
		}

		for i, w := range combined.FavorablePeriods {
			if !w.Start.Equal(testNow.AddDate(0, i, 0)) {
				t.Fatalf("%s: favorable window %d should start at month offset %d, got %v", tc.timeframe, i, i, w.Start)
			}
			length := int(w.End.Sub(w.Start).Hours() / 24)
			if length < 7 || length > 14 {
				t.Fatalf("%s: favorable window should last 1-2 weeks, got %d days", tc.timeframe, length)
			}
		}
		if !store.created.PeriodEnd.Equal(testNow.AddDate(0, tc.months, 0)) {
			t.Fatalf("%s: unexpected period end %v", tc.timeframe, store.created.PeriodEnd)
		}
	}
}

func TestGenerateUnknownCategoryUsesCareerPool(t *testing.T) {
	p, store := newTestPredictor(
		&fakeChartStore{},
		&fakeMetricStore{},
		&fakeAstrology{},
		&fakeIncome{},
		&fakeStress{},
	)
	if _, err := p.Generate(context.Background(), uuid.New(), "travel", "6_months"); err != nil {
		t.Fatalf("generate: %v", err)
	}

	var combined models.CombinedPrediction
	if err := json.Unmarshal(store.created.CombinedPrediction, &combined); err != nil {
		t.Fatalf("unmarshal combined: %v", err)
	}
	found := false
	for _, r := range recommendationPools[models.CategoryCareer] {
		if r == combined.Recommendation {
			found = true
		}
	}
	if !found {
		t.Fatalf("recommendation %q not drawn from the career pool", combined.Recommendation)
	}
}

func TestGenerateDeterministicWithSeededRand(t *testing.T) {
	run := func() json.RawMessage {
		p, store := newTestPredictor(
			&fakeChartStore{},
			&fakeMetricStore{},
			&fakeAstrology{},
			&fakeIncome{},
			&fakeStress{},
		)
		if _, err := p.Generate(context.Background(), uuid.New(), models.CategoryHealth, "6_months"); err != nil {
			t.Fatalf("generate: %v", err)
		}
		return store.created.CombinedPrediction
	}
	if string(run()) != string(run()) {
		t.Fatalf("same seed should produce the same combined prediction")
	}
}

func TestAttachFeedbackNotOwned(t *testing.T) {
	store := &fakePredictionStore{fbErr: domrepo.ErrNotFound}
	p := NewPredictor(store, &fakeChartStore{}, &fakeMetricStore{}, &fakeAstrology{}, &fakeIncome{}, &fakeStress{}, util.NewLockedRand(1), nil, nil)

	err := p.AttachFeedback(context.Background(), uuid.New(), uuid.New(), models.FeedbackAccurate)
	if !errors.Is(err, domrepo.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestIncomeHistoryOldestFirst(t *testing.T) {
	rows := []models.UserMetric{
		{MetricType: models.MetricIncome, Value: 300}, // newest
		{MetricType: models.MetricMood, Value: 7},
		{MetricType: models.MetricIncome, Value: 200},
		{MetricType: models.MetricIncome, Value: 100}, // oldest
	}
	got := incomeHistory(rows)
	want := []float64{100, 200, 300}
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entry %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestStressInputFromMetricsTakesNewest(t *testing.T) {
	rows := []models.UserMetric{
		{MetricType: models.MetricWork, Value: 10}, // newest work
		{MetricType: models.MetricWork, Value: 12},
		{MetricType: models.MetricSleep, Value: 6},
	}
	in := stressInputFromMetrics(rows)
	if in.WorkHours != 10 {
		t.Fatalf("expected newest work value 10, got %v", in.WorkHours)
	}
	if in.SleepHours != 6 {
		t.Fatalf("expected sleep 6, got %v", in.SleepHours)
	}
	if in.MoodScore != 5 || in.StressScore != 5 {
		t.Fatalf("missing metrics should default to neutral values")
	}
}
