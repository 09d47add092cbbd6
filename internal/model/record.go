package model

// Record is one (date, company) observation of the dataset.
// Values are stored already rounded to their column precision; see Columns.
//
// Units:
// - prices and costs: USD
// - emissions and credits: tons CO2
// - percentages: 0..100
// - PUE: ratio >= 1
type Record struct {
	Date    string // YYYY-MM-DD
	Company string

	CarbonCreditPriceUSD float64

	AIComputeIntensity   float64
	CoolingEfficiencyPUE float64
	RenewableEnergyPct   float64

	DailyEmissionsTonsCO2  float64
	CarbonCreditsNeeded    float64
	CarbonCreditsGenerated float64

	TransactionVolumeUSD           float64
	TraditionalSettlementDays      int
	SmartContractSettlementMinutes int

	TraditionalPaymentCostUSD  float64
	ProgrammablePaymentCostUSD float64
	PaymentCostSavingsUSD      float64

	IsInternational bool
	ForexFeeUSD     float64

	TotalTraditionalCostUSD  float64
	TotalProgrammableCostUSD float64
	TotalSavingsUSD          float64
	ROIPercentage            float64

	ComplianceScorePct           float64
	AuditTrailCompletenessPct    float64
	RegulatoryReportingTimeHours float64

	ManualProcessingHours      float64
	AutomatedProcessingMinutes float64

	AIModelTrainingCarbonKgCO2   float64
	InferenceCarbonFootprintGCO2 float64
	DataCenterEfficiencyScore    float64
}

// Column names in output order. Keep these stable; they are the CSV header.
const (
	ColDate                        = "Date"
	ColCompany                     = "Company"
	ColCarbonCreditPrice           = "Carbon_Credit_Price_USD_per_ton"
	ColAIComputeIntensity          = "AI_Compute_Intensity"
	ColCoolingEfficiencyPUE        = "Cooling_Efficiency_PUE"
	ColRenewableEnergyPct          = "Renewable_Energy_Percentage"
	ColDailyEmissions              = "Daily_Emissions_Tons_CO2"
	ColCarbonCreditsNeeded         = "Carbon_Credits_Needed"
	ColCarbonCreditsGenerated      = "Carbon_Credits_Generated"
	ColTransactionVolume           = "Transaction_Volume_USD"
	ColTraditionalSettlementDays   = "Traditional_Settlement_Days"
	ColSmartContractSettlementMins = "Smart_Contract_Settlement_Minutes"
	ColTraditionalPaymentCost      = "Traditional_Payment_Cost_USD"
	ColProgrammablePaymentCost     = "Programmable_Payment_Cost_USD"
	ColPaymentCostSavings          = "Payment_Cost_Savings_USD"
	ColIsInternational             = "Is_International_Transaction"
	ColForexFee                    = "Forex_Fee_USD"
	ColTotalTraditionalCost        = "Total_Traditional_Cost_USD"
	ColTotalProgrammableCost       = "Total_Programmable_Cost_USD"
	ColTotalSavings                = "Total_Savings_USD"
	ColROIPercentage               = "ROI_Percentage"
	ColComplianceScore             = "Compliance_Score_Percentage"
	ColAuditTrailCompleteness      = "Audit_Trail_Completeness_Percentage"
	ColRegulatoryReportingTime     = "Regulatory_Reporting_Time_Hours"
	ColManualProcessingHours       = "Manual_Processing_Hours"
	ColAutomatedProcessingMinutes  = "Automated_Processing_Minutes"
	ColAIModelTrainingCarbon       = "AI_Model_Training_Carbon_Intensity_kg_CO2"
	ColInferenceCarbonFootprint    = "Inference_Carbon_Footprint_g_CO2"
	ColDataCenterEfficiencyScore   = "Data_Center_Efficiency_Score"
)

// ColumnKind tells exporters how to render a value.
type ColumnKind int

const (
	KindString ColumnKind = iota
	KindFloat
	KindInt
	KindBool
)

// Column describes one output column. Precision only applies to KindFloat.
type Column struct {
	Name      string
	Kind      ColumnKind
	Precision int
}

// Columns is the fixed output schema, in order.
var Columns = []Column{
	{ColDate, KindString, 0},
	{ColCompany, KindString, 0},
	{ColCarbonCreditPrice, KindFloat, 2},
	{ColAIComputeIntensity, KindFloat, 3},
	{ColCoolingEfficiencyPUE, KindFloat, 2},
	{ColRenewableEnergyPct, KindFloat, 1},
	{ColDailyEmissions, KindFloat, 2},
	{ColCarbonCreditsNeeded, KindFloat, 2},
	{ColCarbonCreditsGenerated, KindFloat, 2},
	{ColTransactionVolume, KindFloat, 2},
	{ColTraditionalSettlementDays, KindInt, 0},
	{ColSmartContractSettlementMins, KindInt, 0},
	{ColTraditionalPaymentCost, KindFloat, 2},
	{ColProgrammablePaymentCost, KindFloat, 2},
	{ColPaymentCostSavings, KindFloat, 2},
	{ColIsInternational, KindBool, 0},
	{ColForexFee, KindFloat, 2},
	{ColTotalTraditionalCost, KindFloat, 2},
	{ColTotalProgrammableCost, KindFloat, 2},
	{ColTotalSavings, KindFloat, 2},
	{ColROIPercentage, KindFloat, 1},
	{ColComplianceScore, KindFloat, 1},
	{ColAuditTrailCompleteness, KindFloat, 1},
	{ColRegulatoryReportingTime, KindFloat, 2},
	{ColManualProcessingHours, KindFloat, 2},
	{ColAutomatedProcessingMinutes, KindFloat, 2},
	{ColAIModelTrainingCarbon, KindFloat, 1},
	{ColInferenceCarbonFootprint, KindFloat, 3},
	{ColDataCenterEfficiencyScore, KindFloat, 1},
}

// ColumnNames returns the header row.
func ColumnNames() []string {
	out := make([]string, len(Columns))
	for i, c := range Columns {
		out[i] = c.Name
	}
	return out
}

// Values returns the record's fields in Columns order.
// Element types are string, float64, int or bool matching each column's Kind.
func (r Record) Values() []any {
	return []any{
		r.Date,
		r.Company,
		r.CarbonCreditPriceUSD,
		r.AIComputeIntensity,
		r.CoolingEfficiencyPUE,
		r.RenewableEnergyPct,
		r.DailyEmissionsTonsCO2,
		r.CarbonCreditsNeeded,
		r.CarbonCreditsGenerated,
		r.TransactionVolumeUSD,
		r.TraditionalSettlementDays,
		r.SmartContractSettlementMinutes,
		r.TraditionalPaymentCostUSD,
		r.ProgrammablePaymentCostUSD,
		r.PaymentCostSavingsUSD,
		r.IsInternational,
		r.ForexFeeUSD,
		r.TotalTraditionalCostUSD,
		r.TotalProgrammableCostUSD,
		r.TotalSavingsUSD,
		r.ROIPercentage,
		r.ComplianceScorePct,
		r.AuditTrailCompletenessPct,
		r.RegulatoryReportingTimeHours,
		r.ManualProcessingHours,
		r.AutomatedProcessingMinutes,
		r.AIModelTrainingCarbonKgCO2,
		r.InferenceCarbonFootprintGCO2,
		r.DataCenterEfficiencyScore,
	}
}

// Fields returns pointers to the record's fields in Columns order, for decoders.
func (r *Record) Fields() []any {
	return []any{
		&r.Date,
		&r.Company,
		&r.CarbonCreditPriceUSD,
		&r.AIComputeIntensity,
		&r.CoolingEfficiencyPUE,
		&r.RenewableEnergyPct,
		&r.DailyEmissionsTonsCO2,
		&r.CarbonCreditsNeeded,
		&r.CarbonCreditsGenerated,
		&r.TransactionVolumeUSD,
		&r.TraditionalSettlementDays,
		&r.SmartContractSettlementMinutes,
		&r.TraditionalPaymentCostUSD,
		&r.ProgrammablePaymentCostUSD,
		&r.PaymentCostSavingsUSD,
		&r.IsInternational,
		&r.ForexFeeUSD,
		&r.TotalTraditionalCostUSD,
		&r.TotalProgrammableCostUSD,
		&r.TotalSavingsUSD,
		&r.ROIPercentage,
		&r.ComplianceScorePct,
		&r.AuditTrailCompletenessPct,
		&r.RegulatoryReportingTimeHours,
		&r.ManualProcessingHours,
		&r.AutomatedProcessingMinutes,
		&r.AIModelTrainingCarbonKgCO2,
		&r.InferenceCarbonFootprintGCO2,
		&r.DataCenterEfficiencyScore,
	}
}
