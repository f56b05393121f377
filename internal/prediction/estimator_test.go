// AngelaMos | 2026
// estimator_test.go

package prediction

import (
	"testing"
	"time"
)

func floatPtr(v float64) *float64 { return &v }

func favorableInputs() EstimateInputs {
	return EstimateInputs{
		CropName:            "rice",
		AreaHectares:        2.0,
		SowingDate:          time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
		TempCelsius:         floatPtr(26),
		HumidityPercent:     floatPtr(65),
		RainfallMM:          floatPtr(400),
		SoilMoisturePercent: floatPtr(50),
		IrrigationTotalMM:   200,
		FertilizerAppliedKg: 80,
		PestDiseasePressure: PressureLow,
	}
}

func TestBaselineEstimator(t *testing.T) {
	estimator := NewBaselineEstimator()

	t.Run("is deterministic", func(t *testing.T) {
		first := estimator.Estimate(favorableInputs())
		second := estimator.Estimate(favorableInputs())
		if first != second {
			t.Errorf("estimates differ: %+v vs %+v", first, second)
		}
	})

	t.Run("favorable conditions beat the baseline", func(t *testing.T) {
		est := estimator.Estimate(favorableInputs())

		// rice baseline 4.0 t/ha with the fertilizer bonus applied
		if est.YieldPerHectare <= 4.0 {
			t.Errorf("yield = %v, want above baseline", est.YieldPerHectare)
		}
		if est.QualityGrade != "A" {
			t.Errorf("grade = %q, want A", est.QualityGrade)
		}
		if est.TotalYield != round3(est.YieldPerHectare*2.0) {
			t.Errorf("total = %v, per ha = %v", est.TotalYield, est.YieldPerHectare)
		}
	})

	t.Run("high pest pressure drags yield and confidence down", func(t *testing.T) {
		clean := estimator.Estimate(favorableInputs())

		stressed := favorableInputs()
		stressed.PestDiseasePressure = PressureHigh
		est := estimator.Estimate(stressed)

		if est.YieldPerHectare >= clean.YieldPerHectare {
			t.Errorf("yield = %v, want below %v", est.YieldPerHectare, clean.YieldPerHectare)
		}
		if est.ConfidenceScore >= clean.ConfidenceScore {
			t.Errorf("confidence = %v, want below %v", est.ConfidenceScore, clean.ConfidenceScore)
		}
	})

	t.Run("water starvation penalizes yield", func(t *testing.T) {
		dry := favorableInputs()
		dry.RainfallMM = floatPtr(20)
		dry.IrrigationTotalMM = 10

		est := estimator.Estimate(dry)
		clean := estimator.Estimate(favorableInputs())
		if est.YieldPerHectare >= clean.YieldPerHectare {
			t.Errorf("yield = %v, want below %v", est.YieldPerHectare, clean.YieldPerHectare)
		}
	})

	t.Run("missing observations cost confidence, not yield", func(t *testing.T) {
		sparse := favorableInputs()
		sparse.TempCelsius = nil
		sparse.HumidityPercent = nil
		sparse.SoilMoisturePercent = nil

		est := estimator.Estimate(sparse)
		clean := estimator.Estimate(favorableInputs())

		if est.YieldPerHectare != clean.YieldPerHectare {
			t.Errorf("yield = %v, want %v", est.YieldPerHectare, clean.YieldPerHectare)
		}
		if est.ConfidenceScore >= clean.ConfidenceScore {
			t.Errorf("confidence = %v, want below %v", est.ConfidenceScore, clean.ConfidenceScore)
		}
	})

	t.Run("confidence never drops below the floor", func(t *testing.T) {
		worst := EstimateInputs{
			CropName:            "rice",
			AreaHectares:        1,
			SowingDate:          time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
			PestDiseasePressure: PressureHigh,
		}

		est := estimator.Estimate(worst)
		if est.ConfidenceScore < 0.3 {
			t.Errorf("confidence = %v, want >= 0.3", est.ConfidenceScore)
		}
	})

	t.Run("unknown crops fall back to the default baseline", func(t *testing.T) {
		exotic := favorableInputs()
		exotic.CropName = "dragonfruit"

		est := estimator.Estimate(exotic)
		if est.YieldPerHectare <= 0 {
			t.Errorf("yield = %v, want positive", est.YieldPerHectare)
		}

		wantHarvest := exotic.SowingDate.AddDate(0, 0, defaultSeasonDays)
		if !est.PredictedHarvestDate.Equal(wantHarvest) {
			t.Errorf("harvest = %v, want %v", est.PredictedHarvestDate, wantHarvest)
		}
	})

	t.Run("harvest date follows the crop season", func(t *testing.T) {
		est := estimator.Estimate(favorableInputs())

		wantHarvest := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 120)
		if !est.PredictedHarvestDate.Equal(wantHarvest) {
			t.Errorf("harvest = %v, want %v", est.PredictedHarvestDate, wantHarvest)
		}
	})
}

func TestGradeFor(t *testing.T) {
	tests := []struct {
		factor float64
		want   string
	}{
		{1.1, "A"},
		{1.0, "A"},
		{0.9, "B"},
		{0.8, "B"},
		{0.7, "C"},
		{0.6, "C"},
		{0.5, "D"},
	}

	for _, tt := range tests {
		if got := gradeFor(tt.factor); got != tt.want {
			t.Errorf("gradeFor(%v) = %q, want %q", tt.factor, got, tt.want)
		}
	}
}

func TestAccuracyScore(t *testing.T) {
	t.Run("perfect prediction scores one", func(t *testing.T) {
		if got := AccuracyScore(8.0, floatPtr(8.0)); got != 1.0 {
			t.Errorf("score = %v, want 1", got)
		}
	})

	t.Run("symmetric in over and under prediction", func(t *testing.T) {
		over := AccuracyScore(8.0, floatPtr(10.0))
		under := AccuracyScore(10.0, floatPtr(8.0))
		if over != under {
			t.Errorf("over = %v, under = %v", over, under)
		}
		if over != 0.8 {
			t.Errorf("score = %v, want 0.8", over)
		}
	})

	t.Run("nil or non-positive inputs score zero", func(t *testing.T) {
		if got := AccuracyScore(8.0, nil); got != 0 {
			t.Errorf("nil predicted scored %v", got)
		}
		if got := AccuracyScore(8.0, floatPtr(0)); got != 0 {
			t.Errorf("zero predicted scored %v", got)
		}
		if got := AccuracyScore(0, floatPtr(8.0)); got != 0 {
			t.Errorf("zero actual scored %v", got)
		}
	})

	t.Run("stays within the unit interval", func(t *testing.T) {
		extremes := []struct{ actual, predicted float64 }{
			{0.001, 1000},
			{1000, 0.001},
			{1, 1},
		}
		for _, e := range extremes {
			got := AccuracyScore(e.actual, floatPtr(e.predicted))
			if got < 0 || got > 1 {
				t.Errorf("AccuracyScore(%v, %v) = %v outside [0,1]",
					e.actual, e.predicted, got)
			}
		}
	})
}
