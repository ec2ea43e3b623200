package primbon

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	validator "github.com/go-playground/validator/v10"

	"github.com/noah-isme/backend-hitung/internal/cache"
	"github.com/noah-isme/backend-hitung/internal/common"
	"github.com/noah-isme/backend-hitung/internal/obs"
)

const dateLayout = "2006-01-02"

// DeriveRequest carries the birth date and an optional reference date, both
// as calendar dates. A missing reference date means "now".
type DeriveRequest struct {
	BirthDate     string `json:"birth_date" validate:"required,datetime=2006-01-02"`
	ReferenceDate string `json:"reference_date" validate:"omitempty,datetime=2006-01-02"`
}

// Handler serves the primbon derivation endpoint.
type Handler struct {
	Validate *validator.Validate
	Cache    *cache.Result
	Metrics  *obs.CalcMetrics

	// Now is overridable for tests. Defaults to time.Now.
	Now func() time.Time
}

// Derive handles POST /api/v1/calc/primbon.
func (h *Handler) Derive(w http.ResponseWriter, r *http.Request) {
	var req DeriveRequest
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

	birth, _ := time.ParseInLocation(dateLayout, req.BirthDate, time.UTC)

	// Requests without an explicit reference date depend on the clock, so
	// they bypass the cache.
	var key string
	ref := time.Now()
	if h.Now != nil {
		ref = h.Now()
	}
	if req.ReferenceDate != "" {
		ref, _ = time.ParseInLocation(dateLayout, req.ReferenceDate, time.UTC)
		if h.Cache != nil {
			payload, _ := json.Marshal(req)
			key = h.Cache.Key("primbon", payload)
			var cached Result
			if ok, err := h.Cache.Get(r.Context(), key, &cached); err == nil && ok {
				h.Metrics.CacheHit("primbon")
				common.Data(w, http.StatusOK, cached)
				return
			}
		}
	}

	start := time.Now()
	res, err := Compute(Input{BirthDate: birth, ReferenceDate: ref})
	if err != nil {
		if errors.Is(err, ErrInvalidRange) {
			common.JSONError(w, http.StatusUnprocessableEntity, "INVALID_DATE_RANGE", "birth date is after the reference date", nil)
			return
		}
		common.WriteError(w, err)
		return
	}
	h.Metrics.Observe("primbon", time.Since(start))

	_ = h.Cache.Set(r.Context(), key, res)
	common.Data(w, http.StatusOK, res)
}
