package primbon

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWetonEpochAnchor(t *testing.T) {
	// 1 Jan 1900 is the calibration point of the whole pasaran cycle.
	res, err := Compute(Input{BirthDate: date(1900, time.January, 1), ReferenceDate: date(1900, time.January, 1)})
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if res.Weton.Day != "Senin" {
		t.Fatalf("expected Senin, got %s", res.Weton.Day)
	}
	if res.Weton.Pasaran != "Pahing" {
		t.Fatalf("expected Pahing, got %s", res.Weton.Pasaran)
	}
	if res.Weton.Neptu != 4+9 {
		t.Fatalf("expected neptu 13, got %d", res.Weton.Neptu)
	}
}

func TestWetonKnownDate(t *testing.T) {
	res, err := Compute(Input{BirthDate: date(2000, time.January, 1), ReferenceDate: date(2000, time.January, 1)})
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if res.Weton.Day != "Sabtu" || res.Weton.Pasaran != "Legi" {
		t.Fatalf("1 Jan 2000 is Sabtu Legi, got %s %s", res.Weton.Day, res.Weton.Pasaran)
	}
	if res.Weton.Neptu != 9+5 {
		t.Fatalf("expected neptu 14, got %d", res.Weton.Neptu)
	}
}

func TestAgeBorrowAcrossLeapDay(t *testing.T) {
	res, err := Compute(Input{BirthDate: date(2000, time.February, 29), ReferenceDate: date(2024, time.March, 1)})
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	// The borrow must use February 2024's real length (29), not 30 or 31.
	if res.Years != 24 || res.Months != 0 || res.Days != 1 {
		t.Fatalf("expected 24y 0m 1d, got %dy %dm %dd", res.Years, res.Months, res.Days)
	}
}

func TestAgeExactAnniversary(t *testing.T) {
	res, err := Compute(Input{BirthDate: date(1990, time.May, 10), ReferenceDate: date(2024, time.May, 10)})
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if res.Years != 34 || res.Months != 0 || res.Days != 0 {
		t.Fatalf("expected 34y 0m 0d, got %dy %dm %dd", res.Years, res.Months, res.Days)
	}
	if res.NextAnniversaryMonths != 0 || res.NextAnniversaryDays != 0 {
		t.Fatalf("anniversary today should count as zero away")
	}
}

func TestNextAnniversaryWrapsYear(t *testing.T) {
	res, err := Compute(Input{BirthDate: date(1990, time.January, 1), ReferenceDate: date(2024, time.December, 31)})
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if res.NextAnniversaryMonths != 0 || res.NextAnniversaryDays != 1 {
		t.Fatalf("expected 0m 1d, got %dm %dd", res.NextAnniversaryMonths, res.NextAnniversaryDays)
	}
}

func TestTotalDays(t *testing.T) {
	res, err := Compute(Input{BirthDate: date(2000, time.January, 1), ReferenceDate: date(2000, time.January, 31)})
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if res.TotalDays != 30 {
		t.Fatalf("expected 30 days, got %d", res.TotalDays)
	}
}

func TestInvalidRange(t *testing.T) {
	_, err := Compute(Input{BirthDate: date(2025, time.January, 1), ReferenceDate: date(2024, time.January, 1)})
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestZodiacBuckets(t *testing.T) {
	cases := []struct {
		m    time.Month
		d    int
		sign string
	}{
		{time.January, 19, "Capricorn"},
		{time.January, 20, "Aquarius"},
		{time.February, 29, "Pisces"},
		{time.June, 20, "Gemini"},
		{time.June, 21, "Cancer"},
		{time.November, 22, "Sagittarius"},
		{time.December, 21, "Sagittarius"},
		{time.December, 22, "Capricorn"},
	}
	for _, c := range cases {
		if got := zodiacFor(c.m, c.d); got != c.sign {
			t.Fatalf("%v %d: expected %s, got %s", c.m, c.d, c.sign, got)
		}
	}
}

func TestShioByYearMod12(t *testing.T) {
	cases := map[int]string{
		2000: "Naga",
		2008: "Tikus",
		1999: "Kelinci",
		2022: "Macan",
	}
	for year, want := range cases {
		res, err := Compute(Input{BirthDate: date(year, time.June, 1), ReferenceDate: date(2024, time.January, 1)})
		if err != nil {
			t.Fatalf("compute: %v", err)
		}
		if res.Shio != want {
			t.Fatalf("year %d: expected %s, got %s", year, want, res.Shio)
		}
	}
}

func TestGenerationBuckets(t *testing.T) {
	cases := map[int]string{
		1950: "Baby Boomer",
		1964: "Baby Boomer",
		1965: "Gen X",
		1981: "Milenial",
		1996: "Milenial",
		1997: "Gen Z",
		2013: "Gen Alpha",
	}
	for year, want := range cases {
		if got := generationFor(year); got != want {
			t.Fatalf("year %d: expected %s, got %s", year, want, got)
		}
	}
}

func TestComputeIsDeterministic(t *testing.T) {
	in := Input{BirthDate: date(1995, time.August, 17), ReferenceDate: date(2024, time.February, 29)}
	a, err := Compute(in)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	b, err := Compute(in)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if a != b {
		t.Fatalf("identical inputs must produce identical results: %+v vs %+v", a, b)
	}
}
