package discount

import (
	"encoding/json"
	"net/http"
	"time"

	validator "github.com/go-playground/validator/v10"

	"github.com/noah-isme/backend-hitung/internal/cache"
	"github.com/noah-isme/backend-hitung/internal/common"
	"github.com/noah-isme/backend-hitung/internal/obs"
)

// QuoteRequest is the transport shape of Input with validation tags.
type QuoteRequest struct {
	Mode              string  `json:"mode" validate:"omitempty,oneof=percent buy_x_get_y"`
	BasePrice         float64 `json:"base_price" validate:"gte=0"`
	FirstDiscountPct  float64 `json:"first_discount_pct" validate:"gte=0,lte=100"`
	SecondDiscountPct float64 `json:"second_discount_pct" validate:"gte=0,lte=100"`
	TaxPct            float64 `json:"tax_pct" validate:"gte=0,lte=100"`
	BuyQty            int     `json:"buy_qty" validate:"gte=0"`
	GetQty            int     `json:"get_qty" validate:"gte=0"`
}

// Handler serves the discount quote endpoint.
type Handler struct {
	Validate *validator.Validate
	Cache    *cache.Result
	Metrics  *obs.CalcMetrics
}

// Quote handles POST /api/v1/calc/discount.
func (h *Handler) Quote(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_JSON", "malformed request body", nil)
		return
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(req); err != nil {
			common.JSONError(w, http.StatusUnprocessableEntity, "VALIDATION", "invalid request", common.ValidationDetails(err))
			return
		}
	}

	var key string
	if h.Cache != nil {
		payload, _ := json.Marshal(req)
		key = h.Cache.Key("discount", payload)
		var cached Result
		if ok, err := h.Cache.Get(r.Context(), key, &cached); err == nil && ok {
			h.Metrics.CacheHit("discount")
			common.Data(w, http.StatusOK, cached)
			return
		}
	}

	mode := ModePercent
	if req.Mode != "" {
		mode = Mode(req.Mode)
	}
	start := time.Now()
	res := Compute(Input{
		Mode:              mode,
		BasePrice:         req.BasePrice,
		FirstDiscountPct:  req.FirstDiscountPct,
		SecondDiscountPct: req.SecondDiscountPct,
		TaxPct:            req.TaxPct,
		BuyQty:            req.BuyQty,
		GetQty:            req.GetQty,
	})
	h.Metrics.Observe("discount", time.Since(start))

	_ = h.Cache.Set(r.Context(), key, res)
	common.Data(w, http.StatusOK, res)
}
