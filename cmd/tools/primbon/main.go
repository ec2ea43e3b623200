package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/noah-isme/backend-hitung/internal/primbon"
)

const dateLayout = "2006-01-02"

func main() {
	var (
		birth = flag.String("birth", "", "birth date as YYYY-MM-DD (required)")
		ref   = flag.String("ref", "", "reference date as YYYY-MM-DD; defaults to today")
	)
	flag.Parse()

	if *birth == "" {
		log.Fatal("-birth is required")
	}
	birthDate, err := time.ParseInLocation(dateLayout, *birth, time.UTC)
	if err != nil {
		log.Fatalf("parse birth date: %v", err)
	}
	refDate := time.Now()
	if *ref != "" {
		refDate, err = time.ParseInLocation(dateLayout, *ref, time.UTC)
		if err != nil {
			log.Fatalf("parse reference date: %v", err)
		}
	}

	res, err := primbon.Compute(primbon.Input{BirthDate: birthDate, ReferenceDate: refDate})
	if err != nil {
		log.Fatalf("derive: %v", err)
	}

	fmt.Printf("Usia          : %d tahun %d bulan %d hari\n", res.Years, res.Months, res.Days)
	fmt.Printf("Total hari    : %d\n", res.TotalDays)
	fmt.Printf("Ulang tahun   : %d bulan %d hari lagi\n", res.NextAnniversaryMonths, res.NextAnniversaryDays)
	fmt.Printf("Weton         : %s %s (neptu %d)\n", res.Weton.Day, res.Weton.Pasaran, res.Weton.Neptu)
	fmt.Printf("Zodiak        : %s\n", res.Zodiac)
	fmt.Printf("Shio          : %s\n", res.Shio)
	fmt.Printf("Generasi      : %s\n", res.Generation)
}
