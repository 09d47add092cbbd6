package report

import (
	"fmt"
	"io"
	"sort"

	"carbon-credits/internal/model"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// CompanyRanking is a per-company rollup of the dataset.
type CompanyRanking struct {
	Company             string  `json:"company"`
	Records             int     `json:"records"`
	TotalSavingsUSD     float64 `json:"total_savings_usd"`
	MeanROIPercentage   float64 `json:"mean_roi_percentage"`
	MeanEfficiencyScore float64 `json:"mean_efficiency_score"`
}

// RankCompanies groups records by company and sorts descending by total savings.
// Ties keep first-seen order.
func RankCompanies(records []model.Record) []CompanyRanking {
	type acc struct {
		savings, roi, efficiency []float64
	}
	order := []string{}
	byCompany := map[string]*acc{}
	for _, r := range records {
		a, ok := byCompany[r.Company]
		if !ok {
			a = &acc{}
			byCompany[r.Company] = a
			order = append(order, r.Company)
		}
		a.savings = append(a.savings, r.TotalSavingsUSD)
		a.roi = append(a.roi, r.ROIPercentage)
		a.efficiency = append(a.efficiency, r.DataCenterEfficiencyScore)
	}

	out := make([]CompanyRanking, 0, len(order))
	for _, company := range order {
		a := byCompany[company]
		out = append(out, CompanyRanking{
			Company:             company,
			Records:             len(a.savings),
			TotalSavingsUSD:     floats.Sum(a.savings),
			MeanROIPercentage:   stat.Mean(a.roi, nil),
			MeanEfficiencyScore: stat.Mean(a.efficiency, nil),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalSavingsUSD > out[j].TotalSavingsUSD
	})
	return out
}

// WriteRanking renders a ranking as a fixed-width table.
func WriteRanking(w io.Writer, ranked []CompanyRanking) error {
	p := &printer{w: w}
	p.linef("%-4s %-28s %-8s %-16s %-10s %-10s", "rank", "company", "records", "savings$", "roi%", "efficiency")
	for i, r := range ranked {
		p.linef(
			"%-4d %-28s %-8d %-16s %-10.1f %-10.1f",
			i+1,
			r.Company,
			r.Records,
			money(r.TotalSavingsUSD),
			r.MeanROIPercentage,
			r.MeanEfficiencyScore,
		)
	}
	return p.err
}

// WriteReport writes the summary, the company ranking and the dashboard suggestions.
func WriteReport(w io.Writer, records []model.Record) error {
	if err := WriteSummary(w, Summarize(records)); err != nil {
		return err
	}
	if err := WriteRanking(w, RankCompanies(records)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	return WriteSuggestions(w)
}
