// Package assumptions holds the validated business inputs a budget
// projection is computed from: services, staff, fixed expenses, and the
// tax, payroll, and distribution parameters of the clinic.
package assumptions

// MonthsPerYear is the projection horizon; every monthly vector in a
// snapshot carries exactly one value per calendar month.
const MonthsPerYear = 12

// MonthlyCounts is a per-month quantity vector, index 0 = January.
type MonthlyCounts [MonthsPerYear]float64

// Total sums the twelve monthly values.
func (m MonthlyCounts) Total() float64 {
	var total float64
	for _, v := range m {
		total += v
	}
	return total
}

// Service is a billable treatment type offered by the clinic.
type Service struct {
	Name string `validate:"required"`
	// Prices maps fiscal year to the unit price charged per session.
	// A missing year prices the service at zero for that projection.
	Prices      map[int]float64
	DurationMin int `validate:"gt=0"`
	// UsesRoom marks services delivered on-site; home visits do not
	// consume room capacity.
	UsesRoom bool
	// AreaM2 is the treatment area assigned to this service, used by the
	// area cost driver. Only meaningful for room-using services.
	AreaM2 float64 `validate:"gte=0"`
}

// PriceFor returns the unit price for the given fiscal year, zero when
// no price is registered.
func (s Service) PriceFor(year int) float64 {
	return s.Prices[year]
}

// DurationHours converts the session duration to hours.
func (s Service) DurationHours() float64 {
	return float64(s.DurationMin) / 60
}

// WeeklySchedule is the contracted hours per weekday.
type WeeklySchedule struct {
	Monday    float64 `validate:"gte=0"`
	Tuesday   float64 `validate:"gte=0"`
	Wednesday float64 `validate:"gte=0"`
	Thursday  float64 `validate:"gte=0"`
	Friday    float64 `validate:"gte=0"`
	Saturday  float64 `validate:"gte=0"`
}

// WeekTotal returns the scheduled hours per week.
func (w WeeklySchedule) WeekTotal() float64 {
	return w.Monday + w.Tuesday + w.Wednesday + w.Thursday + w.Friday + w.Saturday
}

// MonthTotal returns the scheduled hours per month, four weeks per month.
func (w WeeklySchedule) MonthTotal() float64 {
	return w.WeekTotal() * 4
}

// CompensationModel selects how a contractor is paid.
type CompensationModel string

const (
	// CompRevenueShare pays a percentage of the contractor's own revenue,
	// the percentage given by seniority level or a custom override.
	CompRevenueShare CompensationModel = "REVENUE_SHARE"
	// CompFixedPerSession pays a flat fee per session delivered.
	CompFixedPerSession CompensationModel = "FIXED_PER_SESSION"
	// CompMixed pays the revenue share plus the per-session fee.
	CompMixed CompensationModel = "MIXED"
)

// Contractor is a self-employed therapist paid per production. Contractors
// do not enter the Factor R payroll base.
type Contractor struct {
	Name     string `validate:"required"`
	Role     string
	Level    int `validate:"gte=0,lte=4"`
	Active   bool
	Model    CompensationModel `validate:"omitempty,oneof=REVENUE_SHARE FIXED_PER_SESSION MIXED"`
	Schedule WeeklySchedule
	// Sessions holds the planned session counts per service per month.
	Sessions map[string]MonthlyCounts
	// SessionFee is the per-session fee per service for the fixed and
	// mixed compensation models.
	SessionFee map[string]float64
	// CustomShare overrides the level-based revenue share when positive.
	CustomShare float64 `validate:"gte=0,lte=1"`
}

// CLTEmployee is a formally employed staff member whose salary attracts
// statutory charges.
type CLTEmployee struct {
	Name       string `validate:"required"`
	Role       string
	BaseSalary float64 `validate:"gte=0"`
	// HireMonth is the first month (1-12) the employee is on payroll.
	HireMonth int `validate:"gte=0,lte=12"`
	Active    bool
}

// Partner is an equity holder drawing pro-labore and dividends.
type Partner struct {
	Name      string  `validate:"required"`
	Ownership float64 `validate:"gte=0,lte=1"`
	Capital   float64 `validate:"gte=0"`
	ProLabore float64 `validate:"gte=0"`
	Active    bool
}

// FixedExpense is a recurring operating expense. Category ties the expense
// to a cost pool for activity-based allocation.
type FixedExpense struct {
	Name     string  `validate:"required"`
	Category string  `validate:"required"`
	Monthly  float64 `validate:"gte=0"`
	Active   bool
}

// Operational holds capacity and variable-cost parameters.
type Operational struct {
	DailyHours    float64 `validate:"gte=0"`
	BusinessDays  int     `validate:"gte=0,lte=31"`
	Rooms         int     `validate:"gte=0"`
	CardFeeRate   float64 `validate:"gte=0,lte=1"`
	MaterialsRate float64 `validate:"gte=0,lte=1"`
	// Seasonality optionally scales session counts per month. Nil means
	// a flat factor of one.
	Seasonality *MonthlyCounts
}

// PayrollParams holds the statutory and contractual payroll rates.
type PayrollParams struct {
	EmployerINSSRate        float64 `validate:"gte=0,lte=1"`
	FGTSRate                float64 `validate:"gte=0,lte=1"`
	VacationProvisionRate   float64 `validate:"gte=0,lte=1"`
	ThirteenthProvisionRate float64 `validate:"gte=0,lte=1"`
	ProLaboreINSSRate       float64 `validate:"gte=0,lte=1"`
	// LevelShares maps contractor seniority level to the revenue-share
	// percentage paid on own production.
	LevelShares map[int]float64
}

// TaxBracket is one progressive band of a Simples Nacional annex table:
// up to Ceiling of trailing revenue, the nominal rate and fixed deduction
// apply.
type TaxBracket struct {
	Ceiling   float64 `validate:"gt=0"`
	Rate      float64 `validate:"gte=0,lte=1"`
	Deduction float64 `validate:"gte=0"`
}

// TaxParams configures the simplified tax regime.
type TaxParams struct {
	AnnexIII []TaxBracket `validate:"required,dive"`
	AnnexV   []TaxBracket `validate:"required,dive"`
	// FactorRThreshold is the payroll ratio at or above which Annex III
	// applies instead of Annex V.
	FactorRThreshold float64 `validate:"gte=0,lte=1"`
	// PriorYearRevenue and PriorYearPayroll supply trailing history for
	// the 12-month windows. When nil the engine annualises the partial
	// current year instead.
	PriorYearRevenue *MonthlyCounts
	PriorYearPayroll *MonthlyCounts
}

// ProfitAllocation splits a positive monthly net result. The remainder
// after the three percentages stays as retained earnings; the sum must
// not exceed one.
type ProfitAllocation struct {
	LegalReservePct      float64 `validate:"gte=0,lte=1"`
	InvestmentReservePct float64 `validate:"gte=0,lte=1"`
	DividendPct          float64 `validate:"gte=0,lte=1"`
}

// Sum is the allocated fraction of net result.
func (p ProfitAllocation) Sum() float64 {
	return p.LegalReservePct + p.InvestmentReservePct + p.DividendPct
}

// DividendPolicy controls accrual and payment of distributions.
type DividendPolicy struct {
	Allocation ProfitAllocation
	// PeriodMonths is the accrual period length (1, 2, 3, 4, 6, or 12).
	PeriodMonths int `validate:"omitempty,oneof=1 2 3 4 6 12"`
	// PaymentLagMonths is the number of months after period close the
	// accumulated dividend is paid out.
	PaymentLagMonths int `validate:"gte=0,lte=12"`
	Distribute       bool
}

// FinanceParams holds cash-basis parameters.
type FinanceParams struct {
	InitialCash float64
	// OpeningTaxPayable is the tax accrued in December of the prior year,
	// due in January of the projected year.
	OpeningTaxPayable float64 `validate:"gte=0"`
	// TaxPaymentLagMonths is the delay between accrual and payment of
	// the monthly tax document. Nil defaults to the statutory one month;
	// an explicit zero pays in the month of accrual.
	TaxPaymentLagMonths *int `validate:"omitempty,gte=0,lte=3"`
	// NonOperational is an optional monthly net of non-operational items
	// applied between EBITDA and net result.
	NonOperational *MonthlyCounts
}

// DriverWeights blends the three cost drivers for one cost pool. The
// weights of a configured pool must sum to one.
type DriverWeights struct {
	Area     float64 `validate:"gte=0,lte=1"`
	Sessions float64 `validate:"gte=0,lte=1"`
	Revenue  float64 `validate:"gte=0,lte=1"`
}

// Sum returns the combined driver weight.
func (d DriverWeights) Sum() float64 {
	return d.Area + d.Sessions + d.Revenue
}

// TDABCParams maps each expense category to its driver blend. Every
// category referenced by an active fixed expense must be configured;
// there is no implicit default driver.
type TDABCParams struct {
	Pools map[string]DriverWeights
}
