package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/profit-pilot-api/internal/domain"
)

func TestGetProductMetrics(t *testing.T) {
	deps := newTestRouter(t)
	deps.store.EXPECT().Get("1").Return(domain.SeedProducts()[0], true)

	rec := deps.do(t, http.MethodGet, "/v1/products/1/metrics", "")

	require.Equal(t, http.StatusOK, rec.Code)
	view := decode[domain.ProductMetricsResponse](t, rec)
	assert.Equal(t, "1", view.ProductID)
	assert.Equal(t, 12, view.Metrics.TotalSalesCount)
	assert.Equal(t, 47988.0, view.Metrics.TotalRevenue)
	assert.Equal(t, 6700.0, view.Metrics.TotalExpenses)
	assert.Equal(t, 41288.0, view.Metrics.NetProfit)
	assert.Equal(t, 616.24, view.Metrics.TotalROI)
	assert.Len(t, view.Breakdown, 3)
	require.Len(t, view.Series, 3)
	assert.Equal(t, 699.8, view.Series[0].ROI)
	assert.Equal(t, 605.71, view.Series[1].ROI)
}

func TestGetProductMetrics_ProdutoDesconhecido(t *testing.T) {
	deps := newTestRouter(t)
	deps.store.EXPECT().Get("x").Return(nil, false)

	rec := deps.do(t, http.MethodGet, "/v1/products/x/metrics", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetPortfolioMetrics(t *testing.T) {
	deps := newTestRouter(t)
	deps.store.EXPECT().Snapshot().Return(domain.SeedProducts())

	rec := deps.do(t, http.MethodGet, "/v1/metrics/portfolio", "")

	require.Equal(t, http.StatusOK, rec.Code)
	view := decode[domain.PortfolioMetricsResponse](t, rec)
	assert.Equal(t, 2, view.Metrics.ProductCount)
	assert.Equal(t, 119979.0, view.Metrics.GrossRevenue)
	assert.Equal(t, 22200.0, view.Metrics.TotalExpenses)
	assert.Equal(t, 97779.0, view.Metrics.NetProfit)
	assert.Equal(t, 81.5, view.Metrics.ProfitMargin)
	assert.Equal(t, 440.45, view.Metrics.ROI)
	assert.Len(t, view.Products, 2)
	assert.Len(t, view.CategorySplit, 2)
}
