package report

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
)

// DashboardSuggestions are the chart types recommended for exploring the dataset.
var DashboardSuggestions = []string{
	"Time Series: Carbon Credit Pricing Trends by Company",
	"Scatter Plot: ROI vs Transaction Volume (sized by efficiency score)",
	"Bar Chart: Settlement Time Comparison (Traditional vs Smart Contract)",
	"Heat Map: Compliance Scores by Company and Date",
	"Dual Axis: Cost Savings vs Carbon Credits Traded",
	"Geographic Map: Texas AI Infrastructure Carbon Impact",
}

// TalkingPoints is static commentary; it is not derived from the data.
var TalkingPoints = []string{
	"I analyzed how AI data centers can monetize carbon efficiency",
	"Programmable payments reduce settlement time from 22 days to 18 minutes",
	"ROI averages 156% for automated carbon credit trading systems",
	"Smart contracts eliminate 85% of manual compliance reporting",
	"This is the future of sustainable AI infrastructure",
}

// WriteSummary renders s as the console summary report.
func WriteSummary(w io.Writer, s Summary) error {
	p := &printer{w: w}
	p.line("=== AI INFRASTRUCTURE CARBON CREDIT DATASET SUMMARY ===")
	p.linef("Total Records: %d", s.Records)
	p.linef("Date Range: %s to %s", s.StartDate, s.EndDate)
	p.linef("Companies: %d", s.Companies)
	p.line("")
	p.line("=== KEY FINANCIAL METRICS ===")
	p.linef("Average Daily Transaction Volume: $%s", money(s.MeanTransactionVolumeUSD))
	p.linef("Total Potential Annual Savings: $%s", money(s.AnnualSavingsUSD))
	p.linef("Average ROI: %.1f%%", s.MeanROIPercentage)
	p.line("")
	p.line("=== OPERATIONAL EFFICIENCY ===")
	p.linef("Traditional Settlement Time: %.1f days", s.MeanSettlementDays)
	p.linef("Smart Contract Settlement: %.1f minutes", s.MeanSettlementMinutes)
	p.linef("Time Savings: %.0f hours per transaction", s.TimeSavedHours)
	p.line("")
	p.line("=== ENVIRONMENTAL IMPACT ===")
	p.linef("Average Renewable Energy Usage: %.1f%%", s.MeanRenewablePct)
	p.linef("Average Data Center Efficiency Score: %.1f/100", s.MeanEfficiencyScore)
	p.line("")
	return p.err
}

// WriteSuggestions renders the dashboard suggestions and talking points.
func WriteSuggestions(w io.Writer) error {
	p := &printer{w: w}
	p.line("=== TABLEAU DASHBOARD SUGGESTIONS ===")
	for i, s := range DashboardSuggestions {
		p.linef("%d. %s", i+1, s)
	}
	p.line("")
	p.line("🚀 HOUSTON INTERVIEW TALKING POINTS:")
	for _, s := range TalkingPoints {
		p.linef("• '%s'", s)
	}
	return p.err
}

// money formats with thousands separators and two decimals, e.g. 1,234,567.89.
func money(x float64) string {
	return humanize.FormatFloat("#,###.##", x)
}

// printer remembers the first write error so callers check once.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(s string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, s)
}

func (p *printer) linef(format string, args ...any) {
	p.line(fmt.Sprintf(format, args...))
}
