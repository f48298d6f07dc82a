// Package projecting organiza as métricas no formato consumido pelos gráficos e tabelas
package projecting

import (
	"math"
	"sort"

	"github.com/vfg2006/profit-pilot-api/internal/domain"
	"github.com/vfg2006/profit-pilot-api/internal/usecases/aggregating"
)

// ChronologicalSeries ordena os logs por data (ordenação estável) e anexa as métricas de cada dia
func ChronologicalSeries(p *domain.Product) []domain.SeriesPoint {
	if p == nil {
		return []domain.SeriesPoint{}
	}

	logs := make([]*domain.DailyLog, 0, len(p.Logs))
	for _, log := range p.Logs {
		if log != nil {
			logs = append(logs, log)
		}
	}

	sort.SliceStable(logs, func(i, j int) bool {
		return logs[i].Date.Before(logs[j].Date.Time)
	})

	series := make([]domain.SeriesPoint, 0, len(logs))
	for _, log := range logs {
		series = append(series, domain.SeriesPoint{
			DailyLog:     *log,
			EntryMetrics: aggregating.Entry(log, p.Price),
		})
	}

	return series
}

// ExpenseBreakdown separa o faturamento do produto em anúncios, despesas e lucro.
// O lucro é limitado a zero apenas aqui, para não desenhar fatia negativa.
func ExpenseBreakdown(p *domain.Product) []domain.BreakdownSlice {
	metrics := aggregating.Product(p)

	return []domain.BreakdownSlice{
		{Name: domain.BreakdownAdSpend, Value: metrics.TotalAdSpend},
		{Name: domain.BreakdownMiscExpenses, Value: metrics.TotalMiscExpenses},
		{Name: domain.BreakdownNetProfit, Value: math.Max(0, metrics.NetProfit)},
	}
}

// PortfolioBreakdown gera uma linha por produto, na ordem do catálogo
func PortfolioBreakdown(products []*domain.Product) []domain.ProductBreakdownRow {
	rows := make([]domain.ProductBreakdownRow, 0, len(products))
	for _, p := range products {
		if p == nil {
			continue
		}
		metrics := aggregating.Product(p)
		rows = append(rows, domain.ProductBreakdownRow{
			ID:           p.ID,
			Name:         p.Name,
			Category:     p.Category,
			NetProfit:    metrics.NetProfit,
			TotalRevenue: metrics.TotalRevenue,
			SalesCount:   metrics.TotalSalesCount,
		})
	}
	return rows
}

// CategorySplit agrupa receita e lucro por categoria, omitindo categorias sem produtos
func CategorySplit(products []*domain.Product) []domain.CategoryRow {
	byCategory := make(map[domain.ProductCategory]*domain.CategoryRow)

	for _, p := range products {
		if p == nil {
			continue
		}
		row, ok := byCategory[p.Category]
		if !ok {
			row = &domain.CategoryRow{Category: p.Category}
			byCategory[p.Category] = row
		}

		metrics := aggregating.Product(p)
		row.ProductCount++
		row.TotalRevenue += metrics.TotalRevenue
		row.NetProfit += metrics.NetProfit
	}

	rows := make([]domain.CategoryRow, 0, len(byCategory))
	for _, category := range domain.ProductCategories {
		if row, ok := byCategory[category]; ok {
			rows = append(rows, *row)
		}
	}
	return rows
}

// ProductView junta métricas, breakdown e série de um produto
func ProductView(p *domain.Product) *domain.ProductMetricsResponse {
	if p == nil {
		return nil
	}

	return &domain.ProductMetricsResponse{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Metrics:   aggregating.Product(p),
		Breakdown: ExpenseBreakdown(p),
		Series:    ChronologicalSeries(p),
	}
}

// PortfolioView junta as métricas do portfólio com as visões por produto e categoria
func PortfolioView(products []*domain.Product) *domain.PortfolioMetricsResponse {
	return &domain.PortfolioMetricsResponse{
		Metrics:       aggregating.Portfolio(products),
		Products:      PortfolioBreakdown(products),
		CategorySplit: CategorySplit(products),
	}
}
