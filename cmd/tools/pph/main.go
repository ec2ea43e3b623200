package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/noah-isme/backend-hitung/internal/format"
	"github.com/noah-isme/backend-hitung/internal/pph"
)

func main() {
	var (
		salary    = flag.Float64("salary", 0, "monthly base salary in rupiah")
		allowance = flag.Float64("allowance", 0, "monthly fixed allowance in rupiah")
		bonus     = flag.Float64("bonus", 0, "annual bonus in rupiah")
		status    = flag.String("status", "TK/0", "PTKP status, e.g. TK/0 or K/2")
		npwp      = flag.Bool("npwp", true, "taxpayer holds an NPWP")
		pension   = flag.Bool("pension", false, "include the pension contribution deduction")
	)
	flag.Parse()

	if *salary < 0 || *allowance < 0 || *bonus < 0 {
		log.Fatal("amounts must not be negative")
	}

	res := pph.Compute(pph.Input{
		BaseSalary:     *salary,
		FixedAllowance: *allowance,
		AnnualBonus:    *bonus,
		Status:         pph.Status(*status),
		HasNPWP:        *npwp,
		WithPension:    *pension,
	})

	rp := format.Rupiah
	fmt.Printf("Bruto bulanan     : %s\n", rp.Currency(res.GrossMonthly))
	fmt.Printf("Bruto setahun     : %s\n", rp.Currency(res.GrossAnnual))
	fmt.Printf("Biaya jabatan     : %s\n", rp.Currency(res.OccupationalCost))
	fmt.Printf("Iuran pensiun     : %s\n", rp.Currency(res.PensionContribution))
	fmt.Printf("Neto setahun      : %s\n", rp.Currency(res.NetAnnual))
	fmt.Printf("PTKP              : %s\n", rp.Currency(res.Exemption))
	fmt.Printf("PKP               : %s\n", rp.Currency(res.TaxableIncome))
	fmt.Printf("PPh 21 setahun    : %s\n", rp.Currency(res.AnnualTax))
	fmt.Printf("PPh 21 sebulan    : %s\n", rp.Currency(res.MonthlyTax))
	fmt.Printf("Take home pay     : %s\n", rp.Currency(res.TakeHomePay))
	fmt.Printf("Tarif tertinggi   : %.0f%%\n", res.TopBracketPct)
}
