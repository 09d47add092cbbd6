package dataset

import (
	"errors"
	"math"
	"strings"
	"time"

	"carbon-credits/internal/model"

	"github.com/rs/zerolog/log"
)

// smartContractMarker is searched for in the date text when choosing the
// audit/reporting ranges. A calendar date never contains it.
const smartContractMarker = "smart_contract"

// Params fully determines a dataset.
type Params struct {
	Seed uint64
	// AsOf anchors the window end. Required.
	AsOf time.Time
	// Companies defaults to model.Companies when empty.
	Companies []string
}

// Result is the materialized dataset plus the window it covers.
type Result struct {
	Records []model.Record
	Start   time.Time
	End     time.Time
	Seed    uint64
}

// Generator owns the random stream for one dataset. Run reseeds it; Record
// continues from wherever the stream currently is.
type Generator struct {
	seed uint64
	src  *Source
}

func New(seed uint64) *Generator {
	return &Generator{seed: seed, src: NewSource(seed)}
}

// Generate builds a fresh Generator for p.Seed and runs it.
// The output is a pure function of (Seed, AsOf day, Companies).
func Generate(p Params) (*Result, error) {
	return New(p.Seed).Run(p.AsOf, p.Companies)
}

// Run produces one record per (date, company) pair, dates ascending and
// companies in catalog order within each date.
func (g *Generator) Run(asOf time.Time, companies []string) (*Result, error) {
	if asOf.IsZero() {
		return nil, errors.New("as-of time is required")
	}
	if len(companies) == 0 {
		companies = model.Companies
	}
	// Every run starts from the seed, so repeated runs reproduce the dataset.
	g.src = NewSource(g.seed)

	dates := Window(asOf)
	records := make([]model.Record, 0, len(dates)*len(companies))
	for _, d := range dates {
		for _, company := range companies {
			records = append(records, g.Record(d, company))
		}
	}

	log.Debug().
		Str("start", dates[0].Format(model.DateLayout)).
		Str("end", dates[len(dates)-1].Format(model.DateLayout)).
		Int("companies", len(companies)).
		Int("records", len(records)).
		Msg("dataset generated")

	return &Result{
		Records: records,
		Start:   dates[0],
		End:     dates[len(dates)-1],
		Seed:    g.seed,
	}, nil
}

// samples holds every random draw behind one record, in draw order.
type samples struct {
	priceShock        float64
	computeIntensity  float64
	pue               float64
	renewable         float64 // fraction 0..1
	baseEmissions     float64 // before intensity and PUE scaling
	settlementDays    int
	settlementMinutes int
	international     bool
	compliance        float64
	audit             float64
	reportingHours    float64
	manualHours       float64
	automatedMinutes  float64
	trainingIntensity float64 // kg CO2/model
	inference         float64 // g CO2/inference
}

// Record draws and derives a single observation. Draw order is fixed; changing it
// changes every record after this one.
func (g *Generator) Record(date time.Time, company string) model.Record {
	dateText := date.Format(model.DateLayout)
	return derive(dateText, company, g.draw(dateText))
}

func (g *Generator) draw(dateText string) samples {
	s := g.src
	var x samples

	x.priceShock = s.Normal(0, model.PriceVolatilitySigma)

	x.computeIntensity = s.Uniform(0.3, 1.0) // GPU utilization factor
	x.pue = s.Uniform(1.2, 2.5)
	x.renewable = s.Uniform(0.4, 0.95)
	x.baseEmissions = s.Uniform(50, 500)

	x.settlementDays = s.IntRange(14, 31)
	x.settlementMinutes = s.IntRange(5, 30)
	x.international = s.CoinFlip()

	x.compliance = s.Uniform(85, 98)
	if strings.Contains(dateText, smartContractMarker) {
		x.audit = 100
		x.reportingHours = s.Uniform(0.5, 2)
	} else {
		x.audit = s.Uniform(75, 95)
		x.reportingHours = s.Uniform(8, 24)
	}

	x.manualHours = s.Uniform(4, 12)
	x.automatedMinutes = s.Uniform(2, 8)

	x.trainingIntensity = s.Uniform(10, 200)
	x.inference = s.Uniform(0.1, 5)
	return x
}

// derive computes the record columns from its draws. It consumes no randomness.
func derive(dateText, company string, x samples) model.Record {
	// Carbon credit pricing ($/ton CO2)
	price := math.Max(model.MinCarbonCreditPriceUSD, model.BaseCarbonCreditPriceUSD+x.priceShock)

	// Emissions (tons CO2/day)
	netEmissions := x.baseEmissions * x.computeIntensity * x.pue * (1 - x.renewable)
	creditsNeeded := math.Max(0, netEmissions)
	creditsGenerated := 0.0
	if x.renewable > model.RenewableCreditThreshold {
		creditsGenerated = math.Max(0, -netEmissions)
	}

	// Settlement
	volume := creditsNeeded * price
	traditionalCost := volume * model.TraditionalPaymentFeePct
	programmableCost := volume * model.ProgrammablePaymentFeePct
	paymentSavings := traditionalCost - programmableCost

	forexRate := 0.0
	if x.international {
		forexRate = model.ForexFeePct
	}
	forexFee := volume * forexRate
	traditionalTotal := traditionalCost + forexFee

	// Labor
	manualLabor := x.manualHours * model.HourlyLaborCostUSD
	totalTraditional := traditionalTotal + manualLabor
	totalProgrammable := programmableCost + x.automatedMinutes/60*model.HourlyLaborCostUSD

	totalSavings := totalTraditional - totalProgrammable
	roi := 0.0
	if totalProgrammable > 0 {
		roi = totalSavings / totalProgrammable * 100
	}

	efficiency := (1 / x.pue) * x.renewable * 100

	return model.Record{
		Date:    dateText,
		Company: company,

		CarbonCreditPriceUSD: round(price, 2),

		AIComputeIntensity:   round(x.computeIntensity, 3),
		CoolingEfficiencyPUE: round(x.pue, 2),
		RenewableEnergyPct:   round(x.renewable*100, 1),

		DailyEmissionsTonsCO2:  round(netEmissions, 2),
		CarbonCreditsNeeded:    round(creditsNeeded, 2),
		CarbonCreditsGenerated: round(creditsGenerated, 2),

		TransactionVolumeUSD:           round(volume, 2),
		TraditionalSettlementDays:      x.settlementDays,
		SmartContractSettlementMinutes: x.settlementMinutes,

		TraditionalPaymentCostUSD:  round(traditionalCost, 2),
		ProgrammablePaymentCostUSD: round(programmableCost, 2),
		PaymentCostSavingsUSD:      round(paymentSavings, 2),

		IsInternational: x.international,
		ForexFeeUSD:     round(forexFee, 2),

		TotalTraditionalCostUSD:  round(totalTraditional, 2),
		TotalProgrammableCostUSD: round(totalProgrammable, 2),
		TotalSavingsUSD:          round(totalSavings, 2),
		ROIPercentage:            round(roi, 1),

		ComplianceScorePct:           round(x.compliance, 1),
		AuditTrailCompletenessPct:    round(x.audit, 1),
		RegulatoryReportingTimeHours: round(x.reportingHours, 2),

		ManualProcessingHours:      round(x.manualHours, 2),
		AutomatedProcessingMinutes: round(x.automatedMinutes, 2),

		AIModelTrainingCarbonKgCO2:   round(x.trainingIntensity, 1),
		InferenceCarbonFootprintGCO2: round(x.inference, 3),
		DataCenterEfficiencyScore:    round(efficiency, 1),
	}
}

// round rounds half away from zero to the given number of decimals.
func round(x float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(x*p) / p
}
