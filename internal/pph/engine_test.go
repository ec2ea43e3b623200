package pph

import (
	"math"
	"testing"

	"github.com/noah-isme/backend-hitung/internal/tarif"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestProgressiveBracketBoundary(t *testing.T) {
	tax, top := Progressive(60_000_000, tarif.Tarif2022.Brackets)
	if !almostEqual(tax, 3_000_000) {
		t.Fatalf("60M should stay entirely in the 5%% bracket: got %v", tax)
	}
	if top != 0.05 {
		t.Fatalf("expected top rate 0.05, got %v", top)
	}

	// One rupiah over the boundary: only that rupiah is taxed at 15%.
	tax, top = Progressive(60_000_001, tarif.Tarif2022.Brackets)
	if !almostEqual(tax, 3_000_000.15) {
		t.Fatalf("expected 3000000.15, got %v", tax)
	}
	if top != 0.15 {
		t.Fatalf("expected top rate 0.15, got %v", top)
	}
}

func TestProgressiveTopSlice(t *testing.T) {
	// 6B reaches the open-ended 35% slice:
	// 3M + 28.5M + 62.5M + 1350M + 0.35*(6B-5B).
	tax, top := Progressive(6_000_000_000, tarif.Tarif2022.Brackets)
	want := 3_000_000.0 + 28_500_000 + 62_500_000 + 1_350_000_000 + 350_000_000
	if !almostEqual(tax, want) {
		t.Fatalf("expected %v, got %v", want, tax)
	}
	if top != 0.35 {
		t.Fatalf("expected top rate 0.35, got %v", top)
	}
}

func TestComputeBelowExemption(t *testing.T) {
	res := Compute(Input{BaseSalary: 4_500_000, Status: StatusTK0, HasNPWP: true})
	if res.TaxableIncome != 0 {
		t.Fatalf("expected zero PKP, got %v", res.TaxableIncome)
	}
	if res.AnnualTax != 0 || res.MonthlyTax != 0 {
		t.Fatalf("expected zero tax, got annual %v monthly %v", res.AnnualTax, res.MonthlyTax)
	}
	if res.TopBracketPct != 0 {
		t.Fatalf("below exemption must signal top bracket 0, got %v", res.TopBracketPct)
	}
	if res.TakeHomePay != res.GrossMonthly {
		t.Fatalf("take home should equal gross when no tax applies")
	}
}

func TestComputeStatutoryRounding(t *testing.T) {
	res := Compute(Input{BaseSalary: 10_000_100, Status: StatusTK0, HasNPWP: true})
	// gross 120,001,200; occupational cost capped at 6M; net 114,001,200;
	// PKP 60,001,200 truncates to 60,001,000.
	if res.OccupationalCost != 6_000_000 {
		t.Fatalf("expected capped occupational cost, got %v", res.OccupationalCost)
	}
	if res.TaxableIncome != 60_001_000 {
		t.Fatalf("expected PKP 60001000, got %v", res.TaxableIncome)
	}
	if !almostEqual(res.AnnualTax, 3_000_150) {
		t.Fatalf("expected annual tax 3000150, got %v", res.AnnualTax)
	}
	if res.TopBracketPct != 15 {
		t.Fatalf("expected top bracket 15, got %v", res.TopBracketPct)
	}
}

func TestComputeNonNPWPSurchargeAppliedOnce(t *testing.T) {
	inputs := []Input{
		{BaseSalary: 10_000_000, Status: StatusTK0},
		{BaseSalary: 45_000_000, FixedAllowance: 5_000_000, AnnualBonus: 100_000_000, Status: StatusK2},
	}
	for _, in := range inputs {
		with := in
		with.HasNPWP = true
		without := in
		without.HasNPWP = false
		a := Compute(with)
		b := Compute(without)
		if a.AnnualTax <= 0 {
			t.Fatalf("fixture must produce nonzero tax, got %v", a.AnnualTax)
		}
		if !almostEqual(b.AnnualTax, a.AnnualTax*1.2) {
			t.Fatalf("surcharge must be 20%% of the summed tax: %v vs %v", b.AnnualTax, a.AnnualTax*1.2)
		}
		if b.TopBracketPct != a.TopBracketPct {
			t.Fatalf("surcharge must not shift brackets")
		}
	}
}

func TestComputePensionContribution(t *testing.T) {
	res := Compute(Input{BaseSalary: 10_000_000, Status: StatusTK0, HasNPWP: true, WithPension: true})
	if res.PensionContribution != 3_600_000 {
		t.Fatalf("expected annual pension 3600000, got %v", res.PensionContribution)
	}
	noPension := Compute(Input{BaseSalary: 10_000_000, Status: StatusTK0, HasNPWP: true})
	// Take-home drops by the monthly contribution plus the (smaller) tax delta.
	if res.TakeHomePay >= noPension.TakeHomePay {
		t.Fatalf("pension must reduce take-home: %v vs %v", res.TakeHomePay, noPension.TakeHomePay)
	}
	if res.NetAnnual >= noPension.NetAnnual {
		t.Fatalf("pension must reduce net annual income")
	}
}

func TestComputeUnknownStatusFallsBack(t *testing.T) {
	known := Compute(Input{BaseSalary: 10_000_000, Status: StatusTK0, HasNPWP: true})
	unknown := Compute(Input{BaseSalary: 10_000_000, Status: Status("X/9"), HasNPWP: true})
	if known.AnnualTax != unknown.AnnualTax {
		t.Fatalf("unknown status must default to TK/0: %v vs %v", unknown.AnnualTax, known.AnnualTax)
	}
}

func TestComputeClampsNegativeInputs(t *testing.T) {
	res := Compute(Input{BaseSalary: -1, FixedAllowance: -2, AnnualBonus: -3, Status: StatusTK0, HasNPWP: true})
	if res.GrossAnnual != 0 || res.AnnualTax != 0 {
		t.Fatalf("negative inputs must clamp to zero, got %+v", res)
	}
}

func TestComputeWithSyntheticSchedule(t *testing.T) {
	s := tarif.Schedule{
		Year:             2099,
		NonNPWPSurcharge: 1.2,
		Brackets:         []tarif.Bracket{{UpTo: 100, Rate: 0.1}, {UpTo: 0, Rate: 0.5}},
		PTKP:             map[string]float64{"TK/0": 0},
	}
	// No rounding unit: the walk sees the raw amount.
	res := ComputeWith(Input{AnnualBonus: 150, Status: StatusTK0, HasNPWP: true}, s)
	if !almostEqual(res.AnnualTax, 100*0.1+50*0.5) {
		t.Fatalf("expected 35, got %v", res.AnnualTax)
	}
	if res.TopBracketPct != 50 {
		t.Fatalf("expected top bracket 50, got %v", res.TopBracketPct)
	}
}
