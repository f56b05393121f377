// AngelaMos | 2026
// estimator.go

package prediction

import (
	"strings"
	"time"
)

type EstimateInputs struct {
	CropName            string
	AreaHectares        float64
	SowingDate          time.Time
	DaysAfterSowing     int
	CurrentStage        string
	TempCelsius         *float64
	HumidityPercent     *float64
	RainfallMM          *float64
	SoilMoisturePercent *float64
	IrrigationTotalMM   float64
	FertilizerAppliedKg float64
	PestDiseasePressure string
}

type Estimate struct {
	YieldPerHectare      float64
	TotalYield           float64
	QualityGrade         string
	PredictedHarvestDate time.Time
	ConfidenceScore      float64
	ModelVersion         string
}

// Estimator produces a yield estimate from observed crop conditions. A
// trained model can implement this behind the same interface; the
// default is a deterministic agronomic heuristic.
type Estimator interface {
	Estimate(inputs EstimateInputs) Estimate
}

type baselineEstimator struct{}

func NewBaselineEstimator() Estimator {
	return baselineEstimator{}
}

// cropBaselines holds reference yields in tonnes per hectare and a
// typical season length in days.
var cropBaselines = map[string]struct {
	yieldPerHa float64
	seasonDays int
}{
	"rice":      {4.0, 120},
	"wheat":     {3.5, 140},
	"maize":     {5.5, 110},
	"cotton":    {2.0, 160},
	"sugarcane": {70.0, 330},
	"soybean":   {2.5, 100},
	"potato":    {22.0, 90},
}

const defaultBaseline = 3.0
const defaultSeasonDays = 120

func (baselineEstimator) Estimate(inputs EstimateInputs) Estimate {
	baseline, seasonDays := lookupBaseline(inputs.CropName)

	factor := 1.0
	confidence := 0.9

	factor *= rangeFactor(inputs.TempCelsius, 18, 32, &confidence)
	factor *= rangeFactor(inputs.HumidityPercent, 40, 80, &confidence)
	factor *= rangeFactor(inputs.SoilMoisturePercent, 30, 70, &confidence)

	// Adequate water over the season, from rain or irrigation.
	water := inputs.IrrigationTotalMM
	if inputs.RainfallMM != nil {
		water += *inputs.RainfallMM
	}
	switch {
	case water < 100:
		factor *= 0.75
		confidence -= 0.05
	case water > 1500:
		factor *= 0.9
	}

	if inputs.FertilizerAppliedKg > 0 {
		factor *= 1.05
	}

	switch inputs.PestDiseasePressure {
	case PressureMedium:
		factor *= 0.85
		confidence -= 0.05
	case PressureHigh:
		factor *= 0.6
		confidence -= 0.15
	}

	if confidence < 0.3 {
		confidence = 0.3
	}

	yieldPerHa := baseline * factor

	return Estimate{
		YieldPerHectare:      round3(yieldPerHa),
		TotalYield:           round3(yieldPerHa * inputs.AreaHectares),
		QualityGrade:         gradeFor(factor),
		PredictedHarvestDate: inputs.SowingDate.AddDate(0, 0, seasonDays),
		ConfidenceScore:      round4(confidence),
		ModelVersion:         "1.0",
	}
}

func lookupBaseline(cropName string) (float64, int) {
	if b, ok := cropBaselines[strings.ToLower(strings.TrimSpace(cropName))]; ok {
		return b.yieldPerHa, b.seasonDays
	}
	return defaultBaseline, defaultSeasonDays
}

// rangeFactor penalizes conditions outside the favorable band. A
// missing observation costs confidence but not yield.
func rangeFactor(value *float64, low, high float64, confidence *float64) float64 {
	if value == nil {
		*confidence -= 0.1
		return 1.0
	}
	if *value < low || *value > high {
		return 0.85
	}
	return 1.0
}

func gradeFor(factor float64) string {
	switch {
	case factor >= 1.0:
		return "A"
	case factor >= 0.8:
		return "B"
	case factor >= 0.6:
		return "C"
	default:
		return "D"
	}
}

func round3(v float64) float64 {
	return float64(int64(v*1000+0.5)) / 1000
}

func round4(v float64) float64 {
	return float64(int64(v*10000+0.5)) / 10000
}
