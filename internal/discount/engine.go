package discount

// Mode selects which pricing scheme the quote uses.
type Mode string

const (
	// ModePercent applies the tiered percentage discounts followed by tax.
	ModePercent Mode = "percent"
	// ModeBuyXGetY prices a bundle in which the "get" items are free.
	ModeBuyXGetY Mode = "buy_x_get_y"
)

// Input carries the raw quote parameters. Percentages are expressed on a
// 0..100 scale; quantities only apply to the bundle mode.
type Input struct {
	Mode              Mode
	BasePrice         float64
	FirstDiscountPct  float64
	SecondDiscountPct float64
	TaxPct            float64
	BuyQty            int
	GetQty            int
}

// Result is the computed quote. Values are raw numbers; formatting happens at
// the presentation boundary.
type Result struct {
	FinalPrice           float64 `json:"final_price"`
	TotalSaved           float64 `json:"total_saved"`
	EffectiveDiscountPct float64 `json:"effective_discount_pct"`
	TaxAmount            float64 `json:"tax_amount"`
	UnitPrice            float64 `json:"unit_price"`
	ItemCount            int     `json:"item_count"`
}

// Compute evaluates the quote. It is total: degenerate inputs (zero price,
// zero quantities) produce a zero-valued result instead of an error.
func Compute(in Input) Result {
	if in.Mode == ModeBuyXGetY {
		return computeBundle(in)
	}
	return computePercent(in)
}

// computePercent applies discounts sequentially, then tax on the discounted
// price. A 50%+20% combo is therefore 60% effective, not 70%.
func computePercent(in Input) Result {
	base := nonNegative(in.BasePrice)
	afterFirst := base * (1 - in.FirstDiscountPct/100)
	afterSecond := afterFirst * (1 - in.SecondDiscountPct/100)
	tax := afterSecond * in.TaxPct / 100

	res := Result{
		FinalPrice: afterSecond + tax,
		// Tax is an added cost, not a discount offset.
		TotalSaved: base - afterSecond,
		TaxAmount:  tax,
		ItemCount:  1,
	}
	if base > 0 {
		res.EffectiveDiscountPct = (base - afterSecond) / base * 100
	}
	return res
}

func computeBundle(in Input) Result {
	base := nonNegative(in.BasePrice)
	buy := nonNegativeInt(in.BuyQty)
	get := nonNegativeInt(in.GetQty)
	total := buy + get
	if total == 0 || base == 0 {
		return Result{}
	}

	paid := base * float64(buy)
	normal := base * float64(total)
	saved := normal - paid
	// No tax in bundle mode; the promo price is final.
	return Result{
		FinalPrice:           paid,
		TotalSaved:           saved,
		EffectiveDiscountPct: saved / normal * 100,
		UnitPrice:            paid / float64(total),
		ItemCount:            total,
	}
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func nonNegativeInt(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
