// Package aggregating calcula as métricas financeiras derivadas dos logs diários.
//
// Todas as funções são puras: recebem o estado atual e nunca o modificam.
// Nada é armazenado, tudo é recalculado a cada leitura.
package aggregating

import "github.com/vfg2006/profit-pilot-api/internal/domain"

// Entry calcula receita, despesa, lucro e ROI de um log usando o preço do produto
func Entry(log *domain.DailyLog, price float64) domain.EntryMetrics {
	if log == nil {
		return domain.EntryMetrics{}
	}

	revenue := float64(log.SalesCount) * price
	totalExpense := log.AdSpend + log.MiscExpenses
	profit := revenue - totalExpense

	return domain.EntryMetrics{
		Revenue:      revenue,
		TotalExpense: totalExpense,
		Profit:       profit,
		ROI:          percentOf(profit, totalExpense),
	}
}

// Product soma os logs de um produto. Um produto sem logs resulta em zeros.
func Product(p *domain.Product) domain.ProductMetrics {
	if p == nil {
		return domain.ProductMetrics{}
	}

	var metrics domain.ProductMetrics
	for _, log := range p.Logs {
		if log == nil {
			continue
		}
		metrics.TotalSalesCount += log.SalesCount
		metrics.TotalAdSpend += log.AdSpend
		metrics.TotalMiscExpenses += log.MiscExpenses
	}

	// o preço é o mesmo para todo o histórico, então multiplicar o total equivale a somar por log
	metrics.TotalRevenue = float64(metrics.TotalSalesCount) * p.Price
	metrics.TotalExpenses = metrics.TotalAdSpend + metrics.TotalMiscExpenses
	metrics.NetProfit = metrics.TotalRevenue - metrics.TotalExpenses
	metrics.TotalROI = percentOf(metrics.NetProfit, metrics.TotalExpenses)

	return metrics
}

// Portfolio agrega os totais de todos os produtos
func Portfolio(products []*domain.Product) domain.PortfolioMetrics {
	var metrics domain.PortfolioMetrics

	for _, p := range products {
		if p == nil {
			continue
		}
		pm := Product(p)

		metrics.ProductCount++
		metrics.TotalSalesCount += pm.TotalSalesCount
		metrics.GrossRevenue += pm.TotalRevenue
		metrics.TotalAdSpend += pm.TotalAdSpend
		metrics.TotalMiscExpenses += pm.TotalMiscExpenses
		metrics.TotalExpenses += pm.TotalExpenses
	}

	metrics.NetProfit = metrics.GrossRevenue - metrics.TotalExpenses
	metrics.ProfitMargin = percentOf(metrics.NetProfit, metrics.GrossRevenue)
	metrics.ROI = percentOf(metrics.NetProfit, metrics.TotalExpenses)

	return metrics
}

// percentOf retorna value/base em porcentagem, ou 0 quando a base não é positiva
func percentOf(value, base float64) float64 {
	if base > 0 {
		return (value / base) * 100
	}
	return 0
}
