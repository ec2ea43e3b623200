package pph

import (
	"math"

	"github.com/noah-isme/backend-hitung/internal/tarif"
)

// Status identifies the PTKP exemption category on a tax return.
type Status string

const (
	StatusTK0 Status = "TK/0"
	StatusTK1 Status = "TK/1"
	StatusTK2 Status = "TK/2"
	StatusTK3 Status = "TK/3"
	StatusK0  Status = "K/0"
	StatusK1  Status = "K/1"
	StatusK2  Status = "K/2"
	StatusK3  Status = "K/3"
)

// Input carries the monthly salary components and filing flags. Currency
// values are rupiah; negative amounts are clamped to zero.
type Input struct {
	BaseSalary     float64
	FixedAllowance float64
	AnnualBonus    float64
	Status         Status
	HasNPWP        bool
	WithPension    bool
}

// Result is the full annualised breakdown plus the monthly take-home figures.
type Result struct {
	GrossMonthly        float64 `json:"gross_monthly"`
	GrossAnnual         float64 `json:"gross_annual"`
	OccupationalCost    float64 `json:"occupational_cost"`
	PensionContribution float64 `json:"pension_contribution"`
	NetAnnual           float64 `json:"net_annual"`
	Exemption           float64 `json:"exemption"`
	TaxableIncome       float64 `json:"taxable_income"`
	AnnualTax           float64 `json:"annual_tax"`
	MonthlyTax          float64 `json:"monthly_tax"`
	TakeHomePay         float64 `json:"take_home_pay"`
	TopBracketPct       float64 `json:"top_bracket_pct"`
}

// Compute evaluates PPh21 withholding under the schedule currently in force.
func Compute(in Input) Result {
	return ComputeWith(in, tarif.Tarif2022)
}

// ComputeWith evaluates PPh21 withholding against an explicit rule table.
// Pure and total: every input yields a result.
func ComputeWith(in Input, s tarif.Schedule) Result {
	base := clamp(in.BaseSalary)
	allowance := clamp(in.FixedAllowance)
	bonus := clamp(in.AnnualBonus)

	grossMonthly := base + allowance
	grossAnnual := grossMonthly*12 + bonus

	occupational := math.Min(grossAnnual*s.OccupationalCost.Rate, s.OccupationalCost.AnnualCap)
	var pension float64
	if in.WithPension {
		pension = base * s.Pension.Rate * 12
	}

	netAnnual := grossAnnual - occupational - pension
	exemption := s.Exemption(string(in.Status))

	taxable := netAnnual - exemption
	if taxable < 0 {
		taxable = 0
	}
	if s.RoundingUnit > 0 {
		// Statutory rounding: PKP is truncated to the nearest thousand.
		taxable = math.Floor(taxable/s.RoundingUnit) * s.RoundingUnit
	}

	annualTax, topRate := Progressive(taxable, s.Brackets)
	if !in.HasNPWP {
		// The surcharge applies once to the summed tax, not per bracket.
		annualTax *= s.NonNPWPSurcharge
	}

	monthlyTax := annualTax / 12
	takeHome := grossMonthly - monthlyTax
	if in.WithPension {
		takeHome -= base * s.Pension.Rate
	}

	return Result{
		GrossMonthly:        grossMonthly,
		GrossAnnual:         grossAnnual,
		OccupationalCost:    occupational,
		PensionContribution: pension,
		NetAnnual:           netAnnual,
		Exemption:           exemption,
		TaxableIncome:       taxable,
		AnnualTax:           annualTax,
		MonthlyTax:          monthlyTax,
		TakeHomePay:         takeHome,
		TopBracketPct:       topRate * 100,
	}
}

// Progressive walks the marginal brackets in order, each consuming only its
// own slice of the remaining taxable income. The second return value is the
// rate of the highest bracket that received a nonzero slice (0 when taxable
// is 0, signalling income below the exemption threshold).
func Progressive(taxable float64, brackets []tarif.Bracket) (tax, topRate float64) {
	remaining := taxable
	var lower float64
	for _, b := range brackets {
		if remaining <= 0 {
			break
		}
		width := remaining
		if b.UpTo > 0 {
			width = b.UpTo - lower
			if width > remaining {
				width = remaining
			}
			lower = b.UpTo
		}
		tax += width * b.Rate
		remaining -= width
		if width > 0 {
			topRate = b.Rate
		}
	}
	return tax, topRate
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
