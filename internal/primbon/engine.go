// Package primbon derives the traditional calendar attributes of a birth
// date: exact age, weton (7-day week name plus 5-day pasaran), neptu score,
// shio, western zodiac, and generation label.
package primbon

import (
	"errors"
	"time"
)

// ErrInvalidRange is returned when the birth date is after the reference date.
var ErrInvalidRange = errors.New("birth date after reference date")

// Input holds the two dates the derivation runs on. The reference date is
// always explicit; callers that want "today" must pass it in, which keeps the
// engine free of any clock dependency.
type Input struct {
	BirthDate     time.Time
	ReferenceDate time.Time
}

// Weton is the compound 35-day cycle label of the birth date.
type Weton struct {
	Day     string `json:"day"`
	Pasaran string `json:"pasaran"`
	Neptu   int    `json:"neptu"`
}

// Result is the full derivation.
type Result struct {
	Years                 int    `json:"years"`
	Months                int    `json:"months"`
	Days                  int    `json:"days"`
	TotalDays             int    `json:"total_days"`
	NextAnniversaryMonths int    `json:"next_anniversary_months"`
	NextAnniversaryDays   int    `json:"next_anniversary_days"`
	Zodiac                string `json:"zodiac"`
	Weton                 Weton  `json:"weton"`
	Shio                  string `json:"shio"`
	Generation            string `json:"generation"`
}

// Compute derives the calendar attributes. It fails only when the birth date
// is in the future relative to the reference date.
func Compute(in Input) (Result, error) {
	birth := midnightUTC(in.BirthDate)
	ref := midnightUTC(in.ReferenceDate)
	if birth.After(ref) {
		return Result{}, ErrInvalidRange
	}

	years, months, days := ageBreakdown(birth, ref)
	annivMonths, annivDays := nextAnniversary(birth, ref)

	wd := int(birth.Weekday())
	pi := pasaranIndex(birth)

	return Result{
		Years:                 years,
		Months:                months,
		Days:                  days,
		TotalDays:             dayCount(birth, ref),
		NextAnniversaryMonths: annivMonths,
		NextAnniversaryDays:   annivDays,
		Zodiac:                zodiacFor(birth.Month(), birth.Day()),
		Weton: Weton{
			Day:     dayNames[wd],
			Pasaran: pasaranNames[pi],
			Neptu:   dayNeptu[wd] + pasaranNeptu[pi],
		},
		Shio:       shioNames[birth.Year()%12],
		Generation: generationFor(birth.Year()),
	}, nil
}

// ageBreakdown computes the exact calendar difference with borrow logic: a
// negative day remainder borrows the real length of the previous month.
func ageBreakdown(birth, ref time.Time) (years, months, days int) {
	years = ref.Year() - birth.Year()
	months = int(ref.Month()) - int(birth.Month())
	days = ref.Day() - birth.Day()
	if days < 0 {
		months--
		days += daysInMonth(ref.Year(), ref.Month()-1)
	}
	if months < 0 {
		years--
		months += 12
	}
	return years, months, days
}

// nextAnniversary finds the next occurrence of the birth month/day at or
// after the reference date and expresses the gap in 30-day months. The 30-day
// approximation is intentional and matches the established behaviour.
func nextAnniversary(birth, ref time.Time) (months, days int) {
	next := time.Date(ref.Year(), birth.Month(), birth.Day(), 0, 0, 0, 0, time.UTC)
	if next.Before(ref) {
		next = time.Date(ref.Year()+1, birth.Month(), birth.Day(), 0, 0, 0, 0, time.UTC)
	}
	gap := dayCount(ref, next)
	return gap / 30, gap % 30
}

// pasaranIndex counts days from the epoch anchor (1 Jan 1900 = Pahing, index
// 1) around the 5-day cycle, normalised for dates before the anchor.
func pasaranIndex(d time.Time) int {
	return ((dayCount(pasaranEpoch, d)+1)%5 + 5) % 5
}

func generationFor(year int) string {
	for _, g := range generations {
		if year >= g.FromYear {
			return g.Label
		}
	}
	return generations[len(generations)-1].Label
}

func midnightUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysInMonth(year int, month time.Month) int {
	// Day 0 of the following month normalises to the last day of month.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// dayCount is the signed number of whole days from a to b, both at midnight
// UTC.
func dayCount(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}
