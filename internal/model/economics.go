package model

// Fixed economic constants of the simulation.
// Fees are fractions of transaction volume.
const (
	BaseCarbonCreditPriceUSD = 85.0
	PriceVolatilitySigma     = 8.0
	MinCarbonCreditPriceUSD  = 50.0

	TraditionalPaymentFeePct  = 0.025
	ProgrammablePaymentFeePct = 0.005
	ForexFeePct               = 0.015

	HourlyLaborCostUSD = 75.0

	// Renewable share above which a site may generate credits instead of consuming them.
	RenewableCreditThreshold = 0.8
)

// DefaultSeed reproduces the reference dataset.
const DefaultSeed uint64 = 42

// WindowDays is how far back from the as-of date the dataset reaches.
// Both endpoints are included, so a window has WindowDays+1 dates.
const WindowDays = 90

// DateLayout is the ISO-8601 calendar-day format used for Record.Date.
const DateLayout = "2006-01-02"
