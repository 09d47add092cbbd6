package dataset

import (
	"math"
	"strings"
	"testing"
	"time"

	"carbon-credits/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAsOf = time.Date(2025, 7, 20, 14, 33, 12, 0, time.UTC)

func generateDefault(t *testing.T) *Result {
	t.Helper()
	res, err := Generate(Params{Seed: model.DefaultSeed, AsOf: testAsOf})
	require.NoError(t, err)
	return res
}

func TestGenerate_RecordCount(t *testing.T) {
	res := generateDefault(t)

	assert.Len(t, res.Records, (model.WindowDays+1)*len(model.Companies))
	assert.Equal(t, 910, len(res.Records))
	assert.Equal(t, "2025-04-21", res.Start.Format(model.DateLayout))
	assert.Equal(t, "2025-07-20", res.End.Format(model.DateLayout))
	assert.Equal(t, model.DefaultSeed, res.Seed)
}

func TestGenerate_IterationOrder(t *testing.T) {
	res := generateDefault(t)
	n := len(model.Companies)

	for i, r := range res.Records {
		assert.Equal(t, model.Companies[i%n], r.Company, "record %d", i)
		if i > 0 && i%n == 0 {
			assert.Less(t, res.Records[i-1].Date, r.Date, "dates must ascend at record %d", i)
		}
		if i%n != 0 {
			assert.Equal(t, res.Records[i-1].Date, r.Date, "one date per company block at record %d", i)
		}
	}
}

func TestGenerate_DomainBounds(t *testing.T) {
	res := generateDefault(t)

	for i, r := range res.Records {
		assert.GreaterOrEqual(t, r.CarbonCreditPriceUSD, 50.0, "record %d price", i)

		assert.GreaterOrEqual(t, r.AIComputeIntensity, 0.3, "record %d", i)
		assert.LessOrEqual(t, r.AIComputeIntensity, 1.0, "record %d", i)
		assert.GreaterOrEqual(t, r.CoolingEfficiencyPUE, 1.2, "record %d", i)
		assert.LessOrEqual(t, r.CoolingEfficiencyPUE, 2.5, "record %d", i)
		assert.GreaterOrEqual(t, r.RenewableEnergyPct, 40.0, "record %d", i)
		assert.LessOrEqual(t, r.RenewableEnergyPct, 95.0, "record %d", i)

		assert.GreaterOrEqual(t, r.CarbonCreditsNeeded, 0.0, "record %d", i)
		assert.GreaterOrEqual(t, r.CarbonCreditsGenerated, 0.0, "record %d", i)
		if r.CarbonCreditsGenerated > 0 {
			assert.Greater(t, r.RenewableEnergyPct, 80.0, "record %d", i)
		}

		assert.GreaterOrEqual(t, r.TraditionalSettlementDays, 14, "record %d", i)
		assert.LessOrEqual(t, r.TraditionalSettlementDays, 30, "record %d", i)
		assert.GreaterOrEqual(t, r.SmartContractSettlementMinutes, 5, "record %d", i)
		assert.LessOrEqual(t, r.SmartContractSettlementMinutes, 29, "record %d", i)

		assert.GreaterOrEqual(t, r.ComplianceScorePct, 85.0, "record %d", i)
		assert.LessOrEqual(t, r.ComplianceScorePct, 98.0, "record %d", i)
		assert.GreaterOrEqual(t, r.AuditTrailCompletenessPct, 75.0, "record %d", i)
		assert.LessOrEqual(t, r.AuditTrailCompletenessPct, 95.0, "record %d", i)
		assert.GreaterOrEqual(t, r.RegulatoryReportingTimeHours, 8.0, "record %d", i)
		assert.LessOrEqual(t, r.RegulatoryReportingTimeHours, 24.0, "record %d", i)

		assert.GreaterOrEqual(t, r.ManualProcessingHours, 4.0, "record %d", i)
		assert.LessOrEqual(t, r.ManualProcessingHours, 12.0, "record %d", i)
		assert.GreaterOrEqual(t, r.AutomatedProcessingMinutes, 2.0, "record %d", i)
		assert.LessOrEqual(t, r.AutomatedProcessingMinutes, 8.0, "record %d", i)

		assert.GreaterOrEqual(t, r.AIModelTrainingCarbonKgCO2, 10.0, "record %d", i)
		assert.LessOrEqual(t, r.AIModelTrainingCarbonKgCO2, 200.0, "record %d", i)
		assert.GreaterOrEqual(t, r.InferenceCarbonFootprintGCO2, 0.1, "record %d", i)
		assert.LessOrEqual(t, r.InferenceCarbonFootprintGCO2, 5.0, "record %d", i)
	}
}

func TestGenerate_DerivedIdentities(t *testing.T) {
	res := generateDefault(t)

	// Each column is rounded on its own, so identities hold to within one cent.
	const cent = 0.01 + 1e-9
	for i, r := range res.Records {
		assert.InDelta(t, r.TotalTraditionalCostUSD-r.TotalProgrammableCostUSD, r.TotalSavingsUSD, cent, "record %d savings", i)
		assert.InDelta(t, r.TraditionalPaymentCostUSD-r.ProgrammablePaymentCostUSD, r.PaymentCostSavingsUSD, cent, "record %d payment savings", i)

		if r.IsInternational {
			assert.InDelta(t, r.TransactionVolumeUSD*model.ForexFeePct, r.ForexFeeUSD, cent, "record %d forex", i)
		} else {
			assert.Zero(t, r.ForexFeeUSD, "record %d forex", i)
		}
	}
}

func TestDerive(t *testing.T) {
	base := samples{
		priceShock:        5,
		computeIntensity:  0.5,
		pue:               2,
		renewable:         0.5,
		baseEmissions:     100,
		settlementDays:    20,
		settlementMinutes: 10,
		compliance:        90,
		audit:             80,
		reportingHours:    10,
		manualHours:       4,
		automatedMinutes:  6,
		trainingIntensity: 100,
		inference:         1,
	}

	tests := []struct {
		name   string
		mutate func(*samples)
		check  func(*testing.T, model.Record)
	}{
		{
			name:   "domestic",
			mutate: func(*samples) {},
			check: func(t *testing.T, r model.Record) {
				// 100 * 0.5 * 2 * 0.5 = 50 tons at $90.
				assert.Equal(t, 90.0, r.CarbonCreditPriceUSD)
				assert.Equal(t, 50.0, r.CarbonCreditsNeeded)
				assert.Equal(t, 4500.0, r.TransactionVolumeUSD)
				assert.Equal(t, 112.5, r.TraditionalPaymentCostUSD)
				assert.Equal(t, 22.5, r.ProgrammablePaymentCostUSD)
				assert.Equal(t, 0.0, r.ForexFeeUSD)
				assert.Equal(t, 412.5, r.TotalTraditionalCostUSD)
				assert.Equal(t, 30.0, r.TotalProgrammableCostUSD)
				assert.Equal(t, 382.5, r.TotalSavingsUSD)
				assert.Equal(t, 1275.0, r.ROIPercentage)
				assert.Equal(t, 25.0, r.DataCenterEfficiencyScore)
			},
		},
		{
			name:   "international adds forex",
			mutate: func(x *samples) { x.international = true },
			check: func(t *testing.T, r model.Record) {
				assert.Equal(t, 67.5, r.ForexFeeUSD)
				assert.Equal(t, 480.0, r.TotalTraditionalCostUSD)
			},
		},
		{
			name:   "price floor",
			mutate: func(x *samples) { x.priceShock = -60 },
			check: func(t *testing.T, r model.Record) {
				assert.Equal(t, model.MinCarbonCreditPriceUSD, r.CarbonCreditPriceUSD)
			},
		},
		{
			name: "zero programmable cost gives zero roi",
			mutate: func(x *samples) {
				x.baseEmissions = 0
				x.automatedMinutes = 0
			},
			check: func(t *testing.T, r model.Record) {
				assert.Zero(t, r.CarbonCreditsNeeded)
				assert.Zero(t, r.TotalProgrammableCostUSD)
				assert.Zero(t, r.ROIPercentage)
				assert.False(t, math.IsNaN(r.ROIPercentage))
				assert.False(t, math.IsInf(r.ROIPercentage, 0))
				assert.Equal(t, 300.0, r.TotalSavingsUSD)
			},
		},
		{
			name: "high renewable with positive net emissions generates no credits",
			mutate: func(x *samples) {
				x.renewable = 0.9
			},
			check: func(t *testing.T, r model.Record) {
				assert.Zero(t, r.CarbonCreditsGenerated)
				assert.Equal(t, 90.0, r.RenewableEnergyPct)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := base
			tt.mutate(&x)
			r := derive("2025-07-20", "Google Cloud Texas", x)
			assert.Equal(t, "2025-07-20", r.Date)
			assert.Equal(t, "Google Cloud Texas", r.Company)
			tt.check(t, r)
		})
	}
}

func TestGenerator_RunIsRepeatable(t *testing.T) {
	g := New(model.DefaultSeed)
	g.Record(testAsOf, "Google Cloud Texas")

	first, err := g.Run(testAsOf, nil)
	require.NoError(t, err)
	second, err := g.Run(testAsOf, nil)
	require.NoError(t, err)

	assert.Equal(t, first.Records, second.Records)
	assert.Equal(t, generateDefault(t).Records, first.Records)
}

func TestGenerate_Deterministic(t *testing.T) {
	a := generateDefault(t)
	// Same day, different instant.
	b, err := Generate(Params{Seed: model.DefaultSeed, AsOf: testAsOf.Add(-3 * time.Hour)})
	require.NoError(t, err)

	assert.Equal(t, a.Records, b.Records)
}

func TestGenerate_SeedChangesOutput(t *testing.T) {
	a := generateDefault(t)
	b, err := Generate(Params{Seed: model.DefaultSeed + 1, AsOf: testAsOf})
	require.NoError(t, err)

	assert.NotEqual(t, a.Records[0], b.Records[0])
}

func TestGenerate_SingleCompany(t *testing.T) {
	res, err := Generate(Params{
		Seed:      model.DefaultSeed,
		AsOf:      testAsOf,
		Companies: []string{"Google Cloud Texas"},
	})
	require.NoError(t, err)
	require.Len(t, res.Records, model.WindowDays+1)

	r := res.Records[len(res.Records)-1]
	assert.Equal(t, "Google Cloud Texas", r.Company)
	assert.Equal(t, "2025-07-20", r.Date)
	_, err = time.Parse(model.DateLayout, r.Date)
	assert.NoError(t, err)
	assert.Len(t, r.Values(), len(model.Columns))
	assert.Len(t, model.Columns, 29)
}

func TestGenerate_RequiresAsOf(t *testing.T) {
	_, err := Generate(Params{Seed: model.DefaultSeed})
	assert.Error(t, err)
}

func TestGenerate_DoesNotMutateCatalog(t *testing.T) {
	before := model.CompanyCatalog()
	generateDefault(t)
	assert.Equal(t, before, model.Companies)
}

func TestRecord_SmartContractBranchUnreachable(t *testing.T) {
	for _, d := range Window(testAsOf) {
		assert.False(t, strings.Contains(d.Format(model.DateLayout), smartContractMarker))
	}
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name      string
		asOf      time.Time
		wantFirst string
		wantLast  string
	}{
		{
			name:      "mid year",
			asOf:      testAsOf,
			wantFirst: "2025-04-21",
			wantLast:  "2025-07-20",
		},
		{
			name:      "crosses year boundary",
			asOf:      time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
			wantFirst: "2025-10-17",
			wantLast:  "2026-01-15",
		},
		{
			name:      "leap february",
			asOf:      time.Date(2024, 3, 31, 23, 59, 0, 0, time.UTC),
			wantFirst: "2024-01-01",
			wantLast:  "2024-03-31",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dates := Window(tt.asOf)
			require.Len(t, dates, model.WindowDays+1)
			assert.Equal(t, tt.wantFirst, dates[0].Format(model.DateLayout))
			assert.Equal(t, tt.wantLast, dates[len(dates)-1].Format(model.DateLayout))
		})
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		x        float64
		places   int
		expected float64
	}{
		{85.126, 2, 85.13},
		{85.124, 2, 85.12},
		{0.33333, 3, 0.333},
		{-1.25, 1, -1.3},
		{42, 1, 42},
	}

	for _, tt := range tests {
		assert.True(t, math.Abs(round(tt.x, tt.places)-tt.expected) < 1e-9, "round(%v, %d)", tt.x, tt.places)
	}
}
