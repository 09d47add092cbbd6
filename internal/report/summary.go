package report

import (
	"carbon-credits/internal/model"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// AnnualizationFactor extrapolates the quarter-long window to a year.
const AnnualizationFactor = 4

// Summary is the dataset-level aggregate printed after generation.
type Summary struct {
	Records   int    `json:"records"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Companies int    `json:"companies"`

	MeanTransactionVolumeUSD float64 `json:"mean_transaction_volume_usd"`
	AnnualSavingsUSD         float64 `json:"annual_savings_usd"`
	MeanROIPercentage        float64 `json:"mean_roi_percentage"`

	MeanSettlementDays    float64 `json:"mean_settlement_days"`
	MeanSettlementMinutes float64 `json:"mean_settlement_minutes"`
	// TimeSavedHours is the mean traditional settlement time minus the mean
	// smart-contract settlement time, in hours.
	TimeSavedHours        float64 `json:"time_saved_hours"`

	MeanRenewablePct    float64 `json:"mean_renewable_pct"`
	MeanEfficiencyScore float64 `json:"mean_efficiency_score"`
}

// Summarize aggregates records. An empty slice gives a zero Summary.
func Summarize(records []model.Record) Summary {
	s := Summary{}
	if len(records) == 0 {
		return s
	}
	s.Records = len(records)

	n := len(records)
	volume := make([]float64, 0, n)
	savings := make([]float64, 0, n)
	roi := make([]float64, 0, n)
	days := make([]float64, 0, n)
	minutes := make([]float64, 0, n)
	renewable := make([]float64, 0, n)
	efficiency := make([]float64, 0, n)
	companies := map[string]struct{}{}

	s.StartDate = records[0].Date
	s.EndDate = records[0].Date
	for _, r := range records {
		if r.Date < s.StartDate {
			s.StartDate = r.Date
		}
		if r.Date > s.EndDate {
			s.EndDate = r.Date
		}
		companies[r.Company] = struct{}{}

		volume = append(volume, r.TransactionVolumeUSD)
		savings = append(savings, r.TotalSavingsUSD)
		roi = append(roi, r.ROIPercentage)
		days = append(days, float64(r.TraditionalSettlementDays))
		minutes = append(minutes, float64(r.SmartContractSettlementMinutes))
		renewable = append(renewable, r.RenewableEnergyPct)
		efficiency = append(efficiency, r.DataCenterEfficiencyScore)
	}
	s.Companies = len(companies)

	s.MeanTransactionVolumeUSD = stat.Mean(volume, nil)
	s.AnnualSavingsUSD = floats.Sum(savings) * AnnualizationFactor
	s.MeanROIPercentage = stat.Mean(roi, nil)

	s.MeanSettlementDays = stat.Mean(days, nil)
	s.MeanSettlementMinutes = stat.Mean(minutes, nil)
	s.TimeSavedHours = (s.MeanSettlementDays*24*60 - s.MeanSettlementMinutes) / 60

	s.MeanRenewablePct = stat.Mean(renewable, nil)
	s.MeanEfficiencyScore = stat.Mean(efficiency, nil)
	return s
}
