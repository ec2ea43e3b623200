// Package format renders monetary amounts for display surfaces such as the
// CLI tools. Engines keep raw float64 values; formatting happens at the edge.
package format

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Options selects the locale and currency symbol used for rendering.
type Options struct {
	Locale         string
	Symbol         string
	FractionDigits int
}

// Rupiah renders amounts the way Indonesian storefronts print them:
// dot-grouped thousands and no fraction digits.
var Rupiah = Options{Locale: "id", Symbol: "Rp", FractionDigits: 0}

// Currency formats amount according to the options. An unknown locale falls
// back to Indonesian.
func (o Options) Currency(amount float64) string {
	tag, err := language.Parse(o.Locale)
	if err != nil {
		tag = language.Indonesian
	}
	p := message.NewPrinter(tag)
	return o.Symbol + p.Sprint(number.Decimal(amount,
		number.MinFractionDigits(o.FractionDigits),
		number.MaxFractionDigits(o.FractionDigits),
	))
}
