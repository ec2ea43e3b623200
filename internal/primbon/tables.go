package primbon

import "time"

// 7-day week names, indexed by time.Weekday (Sunday = 0).
var dayNames = [7]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}

// Neptu weights for the 7-day week, same indexing as dayNames.
var dayNeptu = [7]int{5, 4, 3, 7, 8, 6, 9}

// 5-day pasaran market cycle. pasaranEpoch (1 Jan 1900) is defined as index 1,
// Pahing; the whole cycle is calibrated from that anchor.
var pasaranNames = [5]string{"Legi", "Pahing", "Pon", "Wage", "Kliwon"}

// Neptu weights for the pasaran cycle, same indexing as pasaranNames.
var pasaranNeptu = [5]int{5, 9, 7, 4, 8}

var pasaranEpoch = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// Shio animals indexed by Gregorian year mod 12 (index 0 lines up with 2004,
// the Monkey year). The boundary is 1 January, not the lunar new year; people
// born in January may fall under the previous lunar year's animal. Kept as
// documented behaviour.
var shioNames = [12]string{
	"Monyet", "Ayam", "Anjing", "Babi", "Tikus", "Kerbau",
	"Macan", "Kelinci", "Naga", "Ular", "Kuda", "Kambing",
}

// Generation buckets, inclusive lower bounds, checked in descending order.
var generations = []struct {
	FromYear int
	Label    string
}{
	{2013, "Gen Alpha"},
	{1997, "Gen Z"},
	{1981, "Milenial"},
	{1965, "Gen X"},
	{0, "Baby Boomer"},
}

func zodiacFor(m time.Month, d int) string {
	switch {
	case m == time.January && d <= 19 || m == time.December && d >= 22:
		return "Capricorn"
	case m == time.January || m == time.February && d <= 18:
		return "Aquarius"
	case m == time.February || m == time.March && d <= 20:
		return "Pisces"
	case m == time.March || m == time.April && d <= 19:
		return "Aries"
	case m == time.April || m == time.May && d <= 20:
		return "Taurus"
	case m == time.May || m == time.June && d <= 20:
		return "Gemini"
	case m == time.June || m == time.July && d <= 22:
		return "Cancer"
	case m == time.July || m == time.August && d <= 22:
		return "Leo"
	case m == time.August || m == time.September && d <= 22:
		return "Virgo"
	case m == time.September || m == time.October && d <= 22:
		return "Libra"
	case m == time.October || m == time.November && d <= 21:
		return "Scorpio"
	default:
		return "Sagittarius"
	}
}
