package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greenwatt/core/calc"
	"greenwatt/core/market"
	"greenwatt/core/preset"
	"greenwatt/internal/collector"
	"greenwatt/internal/config"
	"greenwatt/internal/recorder"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	registry, err := preset.Load("")
	require.NoError(t, err)

	store := market.NewStore(&market.Snapshot{
		Current: market.Prices{SMP: 184.2, REC: 72800, Carbon: 12000},
		History: []market.PriceTick{{Date: "2026-08-30", SMP: 184.2, REC: 72800}},
	}, map[string]market.LocationScore{
		"jeju": {Region: "jeju", SolarScore: 90, TotalScore: 80, Grade: "A"},
	})

	return NewServer("test", registry, store, recorder.NewNoop(), collector.New(config.PortalConfig{}))
}

func postEstimate(t *testing.T, server *Server, req EstimateRequest) (*httptest.ResponseRecorder, *EstimateResponse) {
	t.Helper()

	body, err := json.Marshal(req)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/estimate", bytes.NewReader(body)))

	var resp EstimateResponse
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec, &resp
}

func TestEstimateBillMode(t *testing.T) {
	server := newTestServer(t)

	rec, resp := postEstimate(t, server, EstimateRequest{Mode: ModeBill, BillKRW: 50000})
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, resp.UsageKWh)
	assert.InDelta(t, 200+26000.0/214, *resp.UsageKWh, 1e-6)
	assert.InDelta(t, *resp.UsageKWh*0.4781, resp.Carbon.CO2Kg, 1e-6)
	assert.Nil(t, resp.Generation)
}

func TestEstimateCapacityMode(t *testing.T) {
	server := newTestServer(t)

	rec, resp := postEstimate(t, server, EstimateRequest{Mode: ModeCapacity, CapacityKW: 100})
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, resp.Generation)
	assert.InDelta(t, 360.0, resp.Generation.DailyKWh, 1e-6)
	assert.InDelta(t, 10800.0, resp.Generation.MonthlyKWh, 1e-6)

	require.NotNil(t, resp.Revenue)
	// snapshot REC 72800/MWh converted to 72.8/kWh: unit = 184.2 + 72.8*1.2
	assert.InDelta(t, 271.56, resp.Revenue.UnitPriceWonPerKWh, 1e-6)
	assert.Len(t, resp.Projection, 10)
	assert.Equal(t, 1, resp.Projection[0].PeriodIndex)
}

func TestEstimateScoredRegion(t *testing.T) {
	server := newTestServer(t)

	rec, resp := postEstimate(t, server, EstimateRequest{Mode: ModeCapacity, CapacityKW: 10, Region: "jeju"})
	require.Equal(t, http.StatusOK, rec.Code)
	// score 90 -> 3.9 daily hours
	assert.InDelta(t, 3.9, resp.Generation.DailyHours, 1e-6)

	rec, _ = postEstimate(t, server, EstimateRequest{Mode: ModeCapacity, CapacityKW: 10, Region: "atlantis"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEstimateInvestmentMode(t *testing.T) {
	server := newTestServer(t)

	rec, resp := postEstimate(t, server, EstimateRequest{Mode: ModeInvestment, InvestmentKRW: 150_000_000})
	require.Equal(t, http.StatusOK, rec.Code)
	// 150M KRW at 1.5M/kW sizes a 100 kW installation
	assert.InDelta(t, 100.0, resp.Generation.CapacityKW, 1e-6)
	assert.InDelta(t, 150_000_000, resp.Revenue.InvestmentKRW.InexactFloat64(), 1)

	rec, _ = postEstimate(t, server, EstimateRequest{Mode: ModeInvestment})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEstimateUndefinedResult(t *testing.T) {
	server := newTestServer(t)

	rec, _ := postEstimate(t, server, EstimateRequest{
		Mode:       ModeCapacity,
		CapacityKW: 100,
		Prices:     &calc.MarketPrices{},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestEstimateRejectsUnknownMode(t *testing.T) {
	server := newTestServer(t)

	rec, _ := postEstimate(t, server, EstimateRequest{Mode: "horoscope"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMarketPricesRoute(t *testing.T) {
	server := newTestServer(t)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/market/prices", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp PricesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.InDelta(t, 184.2, resp.Current.SMP, 1e-9)
	assert.Len(t, resp.History, 1)
}

func TestProxyRoutesServeFallbacks(t *testing.T) {
	server := newTestServer(t)

	for _, path := range []string{"/energy/status", "/news", "/policies", "/health", "/version"} {
		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestScoreRoute(t *testing.T) {
	server := newTestServer(t)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/scores/jeju", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ScoreResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "A", resp.Score.Grade)
}
