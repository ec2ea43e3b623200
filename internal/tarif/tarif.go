// Package tarif holds the versioned tax rule tables. Each revision of the law
// is a separate embedded YAML document so a rate change is a data diff, not a
// code change.
package tarif

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed tarif_2022.yaml
var tarif2022YAML []byte

// Bracket is one marginal slice of the progressive schedule. UpTo is the
// cumulative upper bound of the slice; zero marks the open-ended top slice.
type Bracket struct {
	UpTo float64 `yaml:"up_to"`
	Rate float64 `yaml:"rate"`
}

// OccupationalCost describes the biaya jabatan deduction.
type OccupationalCost struct {
	Rate      float64 `yaml:"rate"`
	AnnualCap float64 `yaml:"annual_cap"`
}

// Pension describes the employee pension contribution rate.
type Pension struct {
	Rate float64 `yaml:"rate"`
}

// Schedule is a complete rule table for one tax year.
type Schedule struct {
	Year             int                `yaml:"year"`
	RoundingUnit     float64            `yaml:"rounding_unit"`
	NonNPWPSurcharge float64            `yaml:"non_npwp_surcharge"`
	OccupationalCost OccupationalCost   `yaml:"occupational_cost"`
	Pension          Pension            `yaml:"pension"`
	Brackets         []Bracket          `yaml:"brackets"`
	PTKP             map[string]float64 `yaml:"ptkp"`
}

// Exemption returns the annual PTKP amount for the status string. Unknown
// statuses fall back to TK/0, matching the filing default.
func (s Schedule) Exemption(status string) float64 {
	if v, ok := s.PTKP[status]; ok {
		return v
	}
	return s.PTKP["TK/0"]
}

// Validate checks structural soundness of a schedule: at least one bracket,
// ascending bounds, and exactly one open-ended top slice.
func (s Schedule) Validate() error {
	if len(s.Brackets) == 0 {
		return fmt.Errorf("tarif %d: no brackets", s.Year)
	}
	var prev float64
	for i, b := range s.Brackets {
		open := b.UpTo == 0
		if open && i != len(s.Brackets)-1 {
			return fmt.Errorf("tarif %d: open-ended bracket %d is not last", s.Year, i)
		}
		if !open && b.UpTo <= prev {
			return fmt.Errorf("tarif %d: bracket %d bound %v not ascending", s.Year, i, b.UpTo)
		}
		if b.Rate < 0 || b.Rate >= 1 {
			return fmt.Errorf("tarif %d: bracket %d rate %v out of range", s.Year, i, b.Rate)
		}
		prev = b.UpTo
	}
	if len(s.PTKP) == 0 {
		return fmt.Errorf("tarif %d: no PTKP entries", s.Year)
	}
	return nil
}

// Tarif2022 is the schedule in force since tax year 2022.
var Tarif2022 = mustParse(tarif2022YAML)

func mustParse(raw []byte) Schedule {
	var s Schedule
	if err := yaml.Unmarshal(raw, &s); err != nil {
		panic(fmt.Errorf("parse tarif table: %w", err))
	}
	if err := s.Validate(); err != nil {
		panic(err)
	}
	return s
}
