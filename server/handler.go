// Package server is the HTTP boundary of the simulation engine: it decodes a
// parameter set, invokes the pure engine and encodes plain numeric results.
// Formatting beyond 2-decimal rounding is left to clients.
package server

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/homequant/buyrent/cache"
	"github.com/homequant/buyrent/marketdata"
	"github.com/homequant/buyrent/money"
	"github.com/homequant/buyrent/sim"
	"github.com/homequant/buyrent/sim/montecarlo"
	"github.com/homequant/buyrent/sim/sweep"
	"github.com/homequant/buyrent/tax"
)

// Handler serves the simulation API.
type Handler struct {
	feed  marketdata.AssumptionFeed
	cache cache.Cache
	log   *zap.Logger
}

func NewHandler(feed marketdata.AssumptionFeed, c cache.Cache, logger *zap.Logger) *Handler {
	return &Handler{feed: feed, cache: c, log: logger}
}

// Routes mounts the API. Pass a nil limiter to disable rate limiting (tests).
func (h *Handler) Routes(limiter *RateLimiter) http.Handler {
	r := chi.NewRouter()
	r.Use(requestLogger(h.log))
	if limiter != nil {
		r.Use(RateLimitMiddleware(limiter))
	}
	r.Post("/simulate/scenarios", h.Scenarios)
	r.Post("/simulate/growth-sweep", h.GrowthSweep)
	r.Post("/simulate/tenure-sweep", h.TenureSweep)
	r.Post("/simulate/montecarlo", h.MonteCarlo)
	r.Post("/loan/emi", h.EMI)
	return r
}

// SimulationRequest carries the full parameter set. An optional preset name
// overlays market assumptions from the configured feed before evaluation.
type SimulationRequest struct {
	Preset string `json:"preset,omitempty"`

	Price          float64 `json:"price"`
	DownPaymentPct float64 `json:"down_payment_pct"`
	LoanRatePct    float64 `json:"loan_rate_pct"`
	TenureYears    int     `json:"tenure_years"`

	MonthlyRent   float64 `json:"monthly_rent"`
	RentGrowthPct float64 `json:"rent_growth_pct"`

	HouseGrowthPct  float64 `json:"house_growth_pct"`
	DiscountRatePct float64 `json:"discount_rate_pct"`

	HoldingYears int  `json:"holding_years"`
	Lifetime     bool `json:"lifetime"`

	BuyCommissionPct  float64 `json:"buy_commission_pct"`
	SellCommissionPct float64 `json:"sell_commission_pct"`
	MonthlyCosts      float64 `json:"monthly_costs"`

	TaxEnabled bool `json:"tax_enabled"`
}

func (h *Handler) params(req SimulationRequest) (sim.Params, error) {
	p := sim.Params{
		Price:          req.Price,
		DownPaymentPct: req.DownPaymentPct,
		LoanRatePct:    req.LoanRatePct,
		TenureYears:    req.TenureYears,

		Rent0:         req.MonthlyRent,
		RentGrowthPct: req.RentGrowthPct,

		HouseGrowthPct:  req.HouseGrowthPct,
		DiscountRatePct: req.DiscountRatePct,

		HoldingYears: req.HoldingYears,
		Lifetime:     req.Lifetime,

		BuyCommissionPct:  req.BuyCommissionPct,
		SellCommissionPct: req.SellCommissionPct,
		MonthlyCosts:      req.MonthlyCosts,

		TaxEnabled: req.TaxEnabled,
		Tax:        tax.DefaultRegime(),
	}
	if req.Preset != "" {
		a, ok := h.feed.Lookup(req.Preset)
		if !ok {
			return sim.Params{}, fmt.Errorf("params: unknown preset %q: %w", req.Preset, sim.ErrInvalidParameter)
		}
		p = marketdata.Apply(p, a)
	}
	if err := p.Validate(); err != nil {
		return sim.Params{}, err
	}
	return p, nil
}

type scenarioRow struct {
	Scenario string  `json:"scenario"`
	NPVBuy   float64 `json:"npv_buy"`
	NPVRent  float64 `json:"npv_rent"`
	Delta    float64 `json:"delta"`
}

type scenariosResponse struct {
	Rows       []scenarioRow `json:"rows"`
	TaxBenefit float64       `json:"tax_benefit"`
}

// Scenarios evaluates the Base/Boom/Crash table. Identical requests are
// served from the cache without re-running the engine.
func (h *Handler) Scenarios(w http.ResponseWriter, r *http.Request) {
	var req SimulationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	p, err := h.params(req)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	key := requestKey("scenarios", req)
	if payload, ok := h.cache.Get(r.Context(), key); ok {
		writeRawJSON(w, payload)
		return
	}

	table, err := sweep.ScenarioTable(p, sweep.DefaultScenarios(p))
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	benefit, err := sim.TaxBenefit(p)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	resp := scenariosResponse{TaxBenefit: money.Round2(benefit)}
	for _, row := range table {
		resp.Rows = append(resp.Rows, scenarioRow{
			Scenario: row.Label,
			NPVBuy:   money.Round2(row.NPVBuy),
			NPVRent:  money.Round2(row.NPVRent),
			Delta:    money.Round2(row.Delta),
		})
	}

	payload, err := json.Marshal(resp)
	if err != nil {
		http.Error(w, "encoding failed", http.StatusInternalServerError)
		return
	}
	if err := h.cache.Set(r.Context(), key, string(payload)); err != nil {
		h.log.Warn("scenario cache write failed", zap.Error(err))
	}
	writeRawJSON(w, string(payload))
}

type sweepPoint struct {
	X     float64 `json:"x"`
	Delta float64 `json:"delta"`
}

type sweepResponse struct {
	Points []sweepPoint `json:"points"`
	// BreakEven is omitted entirely when no sign change occurs in range.
	BreakEven *float64 `json:"break_even,omitempty"`
}

type growthSweepRequest struct {
	SimulationRequest
	LowPct  *float64 `json:"low_pct"`
	HighPct *float64 `json:"high_pct"`
	Steps   *int     `json:"steps"`
}

// GrowthSweep evaluates the delta across a house-growth grid.
func (h *Handler) GrowthSweep(w http.ResponseWriter, r *http.Request) {
	var req growthSweepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	p, err := h.params(req.SimulationRequest)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	low := orDefault(req.LowPct, sweep.DefaultGrowthLowPct)
	high := orDefault(req.HighPct, sweep.DefaultGrowthHighPct)
	steps := orDefaultInt(req.Steps, sweep.DefaultGrowthSteps)

	res, err := sweep.GrowthSweep(p, low, high, steps)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	writeJSON(w, sweepToResponse(res))
}

type tenureSweepRequest struct {
	SimulationRequest
	MinYears *int `json:"min_years"`
	MaxYears *int `json:"max_years"`
}

// TenureSweep evaluates the delta across integer holding horizons.
func (h *Handler) TenureSweep(w http.ResponseWriter, r *http.Request) {
	var req tenureSweepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	p, err := h.params(req.SimulationRequest)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	minYears := orDefaultInt(req.MinYears, sweep.DefaultTenureMinYears)
	maxYears := orDefaultInt(req.MaxYears, sweep.DefaultTenureMaxYears)

	res, err := sweep.TenureSweep(p, minYears, maxYears)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	writeJSON(w, sweepToResponse(res))
}

type monteCarloRequest struct {
	SimulationRequest
	Trials          *int     `json:"trials"`
	Correlation     *float64 `json:"correlation"`
	HouseGrowthMean *float64 `json:"house_growth_mean"`
	RentGrowthMean  *float64 `json:"rent_growth_mean"`
	// Seed makes the run reproducible; omitted means a time-based seed.
	Seed *int64 `json:"seed"`
}

type monteCarloResponse struct {
	Trials         int       `json:"trials"`
	WinProbability float64   `json:"win_probability"`
	Deltas         []float64 `json:"deltas"`
}

// MonteCarlo runs the correlated-growth simulation.
func (h *Handler) MonteCarlo(w http.ResponseWriter, r *http.Request) {
	var req monteCarloRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	p, err := h.params(req.SimulationRequest)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	trials := orDefaultInt(req.Trials, montecarlo.DefaultTrials)
	corr := orDefault(req.Correlation, montecarlo.DefaultCorrelation)
	houseMean := orDefault(req.HouseGrowthMean, p.HouseGrowthPct)
	rentMean := orDefault(req.RentGrowthMean, p.RentGrowthPct)

	seed := time.Now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}

	sampler, err := montecarlo.NewGaussianSampler(houseMean, rentMean, corr, rand.NewSource(seed))
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	res, err := montecarlo.Run(p, sampler, trials)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	resp := monteCarloResponse{
		Trials:         trials,
		WinProbability: res.WinProbability,
		Deltas:         make([]float64, len(res.Deltas)),
	}
	for i, d := range res.Deltas {
		resp.Deltas[i] = money.Round2(d)
	}
	writeJSON(w, resp)
}

type emiResponse struct {
	LoanAmount     float64 `json:"loan_amount"`
	EMI            float64 `json:"emi"`
	Year1Interest  float64 `json:"year1_interest"`
	Year1Principal float64 `json:"year1_principal"`
}

// EMI returns the loan metrics the simulator surfaces alongside the NPVs.
func (h *Handler) EMI(w http.ResponseWriter, r *http.Request) {
	var req SimulationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	p, err := h.params(req)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	st := p.Loan()
	interest, principal := st.YearTotals(1)
	writeJSON(w, emiResponse{
		LoanAmount:     money.Round2(st.Amount),
		EMI:            money.Round2(st.EMI),
		Year1Interest:  money.Round2(interest),
		Year1Principal: money.Round2(principal),
	})
}

func sweepToResponse(res sweep.Result) sweepResponse {
	out := sweepResponse{Points: make([]sweepPoint, len(res.Points))}
	for i, pt := range res.Points {
		out.Points[i] = sweepPoint{X: pt.X, Delta: money.Round2(pt.Delta)}
	}
	if res.HasBreakEven {
		be := res.BreakEven
		out.BreakEven = &be
	}
	return out
}

func statusFor(err error) int {
	if errors.Is(err, sim.ErrInvalidParameter) || errors.Is(err, montecarlo.ErrDegenerateCorrelation) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeRawJSON(w http.ResponseWriter, payload string) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(payload))
}

// requestKey hashes the endpoint and the full request body so any parameter
// change misses the cache.
func requestKey(endpoint string, req any) string {
	raw, _ := json.Marshal(req)
	sum := sha256.Sum256(append([]byte(endpoint+"|"), raw...))
	return "buyrent:" + hex.EncodeToString(sum[:])
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Duration("elapsed", time.Since(start)),
			)
		})
	}
}

func orDefault(v *float64, def float64) float64 {
	if v != nil {
		return *v
	}
	return def
}

func orDefaultInt(v *int, def int) int {
	if v != nil {
		return *v
	}
	return def
}
