package handler

import (
	"github.com/vfg2006/profit-pilot-api/internal/domain"
	"github.com/vfg2006/profit-pilot-api/pkg/utils"
)

// As métricas saem do motor sem arredondamento; aqui elas ganham duas casas
// decimais antes de virar JSON. As funções alteram a visão recebida, que é
// sempre recém-projetada.

func roundEntry(m *domain.EntryMetrics) {
	m.Revenue = utils.RoundWithTwoDecimalPlace(m.Revenue)
	m.TotalExpense = utils.RoundWithTwoDecimalPlace(m.TotalExpense)
	m.Profit = utils.RoundWithTwoDecimalPlace(m.Profit)
	m.ROI = utils.RoundWithTwoDecimalPlace(m.ROI)
}

func roundSeries(series []domain.SeriesPoint) []domain.SeriesPoint {
	for i := range series {
		roundEntry(&series[i].EntryMetrics)
	}
	return series
}

func roundProductView(view *domain.ProductMetricsResponse) *domain.ProductMetricsResponse {
	m := &view.Metrics
	m.TotalRevenue = utils.RoundWithTwoDecimalPlace(m.TotalRevenue)
	m.TotalAdSpend = utils.RoundWithTwoDecimalPlace(m.TotalAdSpend)
	m.TotalMiscExpenses = utils.RoundWithTwoDecimalPlace(m.TotalMiscExpenses)
	m.TotalExpenses = utils.RoundWithTwoDecimalPlace(m.TotalExpenses)
	m.NetProfit = utils.RoundWithTwoDecimalPlace(m.NetProfit)
	m.TotalROI = utils.RoundWithTwoDecimalPlace(m.TotalROI)

	for i := range view.Breakdown {
		view.Breakdown[i].Value = utils.RoundWithTwoDecimalPlace(view.Breakdown[i].Value)
	}
	roundSeries(view.Series)

	return view
}

func roundPortfolioView(view *domain.PortfolioMetricsResponse) *domain.PortfolioMetricsResponse {
	m := &view.Metrics
	m.GrossRevenue = utils.RoundWithTwoDecimalPlace(m.GrossRevenue)
	m.TotalAdSpend = utils.RoundWithTwoDecimalPlace(m.TotalAdSpend)
	m.TotalMiscExpenses = utils.RoundWithTwoDecimalPlace(m.TotalMiscExpenses)
	m.TotalExpenses = utils.RoundWithTwoDecimalPlace(m.TotalExpenses)
	m.NetProfit = utils.RoundWithTwoDecimalPlace(m.NetProfit)
	m.ProfitMargin = utils.RoundWithTwoDecimalPlace(m.ProfitMargin)
	m.ROI = utils.RoundWithTwoDecimalPlace(m.ROI)

	for i := range view.Products {
		view.Products[i].NetProfit = utils.RoundWithTwoDecimalPlace(view.Products[i].NetProfit)
		view.Products[i].TotalRevenue = utils.RoundWithTwoDecimalPlace(view.Products[i].TotalRevenue)
	}
	for i := range view.CategorySplit {
		view.CategorySplit[i].NetProfit = utils.RoundWithTwoDecimalPlace(view.CategorySplit[i].NetProfit)
		view.CategorySplit[i].TotalRevenue = utils.RoundWithTwoDecimalPlace(view.CategorySplit[i].TotalRevenue)
	}

	return view
}
