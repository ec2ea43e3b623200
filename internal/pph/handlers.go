package pph

import (
	"encoding/json"
	"net/http"
	"time"

	validator "github.com/go-playground/validator/v10"

	"github.com/noah-isme/backend-hitung/internal/cache"
	"github.com/noah-isme/backend-hitung/internal/common"
	"github.com/noah-isme/backend-hitung/internal/obs"
)

// EstimateRequest is the transport shape of Input with validation tags.
// Status is optional and defaults to TK/0.
type EstimateRequest struct {
	BaseSalary     float64 `json:"base_salary" validate:"gte=0"`
	FixedAllowance float64 `json:"fixed_allowance" validate:"gte=0"`
	AnnualBonus    float64 `json:"annual_bonus" validate:"gte=0"`
	Status         string  `json:"status" validate:"omitempty,oneof=TK/0 TK/1 TK/2 TK/3 K/0 K/1 K/2 K/3"`
	HasNPWP        bool    `json:"has_npwp"`
	WithPension    bool    `json:"with_pension"`
}

// Handler serves the PPh 21 estimate endpoint.
type Handler struct {
	Validate *validator.Validate
	Cache    *cache.Result
	Metrics  *obs.CalcMetrics
}

// Estimate handles POST /api/v1/calc/pph21.
func (h *Handler) Estimate(w http.ResponseWriter, r *http.Request) {
	var req EstimateRequest
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
		key = h.Cache.Key("pph21", payload)
		var cached Result
		if ok, err := h.Cache.Get(r.Context(), key, &cached); err == nil && ok {
			h.Metrics.CacheHit("pph21")
			common.Data(w, http.StatusOK, cached)
			return
		}
	}

	start := time.Now()
	res := Compute(Input{
		BaseSalary:     req.BaseSalary,
		FixedAllowance: req.FixedAllowance,
		AnnualBonus:    req.AnnualBonus,
		Status:         Status(req.Status),
		HasNPWP:        req.HasNPWP,
		WithPension:    req.WithPension,
	})
	h.Metrics.Observe("pph21", time.Since(start))

	_ = h.Cache.Set(r.Context(), key, res)
	common.Data(w, http.StatusOK, res)
}
