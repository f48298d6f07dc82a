package projecting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/profit-pilot-api/internal/domain"
	"github.com/vfg2006/profit-pilot-api/internal/usecases/aggregating"
)

func TestChronologicalSeries_OrdenaPorData(t *testing.T) {
	p := &domain.Product{
		Price: 100,
		Logs: []*domain.DailyLog{
			{ID: "c", Date: domain.NewDate(2023, time.October, 27), SalesCount: 5},
			{ID: "a", Date: domain.NewDate(2023, time.October, 25), SalesCount: 4},
			{ID: "b", Date: domain.NewDate(2023, time.October, 26), SalesCount: 3},
		},
	}

	series := ChronologicalSeries(p)

	require.Len(t, series, 3)
	assert.Equal(t, "2023-10-25", series[0].Date.String())
	assert.Equal(t, "2023-10-26", series[1].Date.String())
	assert.Equal(t, "2023-10-27", series[2].Date.String())

	// os logs originais não são reordenados
	assert.Equal(t, "c", p.Logs[0].ID)
}

func TestChronologicalSeries_MesmaDataMantemOrdemDeInsercao(t *testing.T) {
	day := domain.NewDate(2024, time.January, 10)
	p := &domain.Product{
		Price: 10,
		Logs: []*domain.DailyLog{
			{ID: "primeiro", Date: day},
			{ID: "antes", Date: domain.NewDate(2024, time.January, 9)},
			{ID: "segundo", Date: day},
			{ID: "terceiro", Date: day},
		},
	}

	series := ChronologicalSeries(p)

	ids := make([]string, 0, len(series))
	for _, point := range series {
		ids = append(ids, point.ID)
	}
	assert.Equal(t, []string{"antes", "primeiro", "segundo", "terceiro"}, ids)
}

func TestChronologicalSeries_IncluiMetricasPorDia(t *testing.T) {
	p := domain.SeedProducts()[0]

	series := ChronologicalSeries(p)

	require.Len(t, series, 3)
	assert.Equal(t, 11997.0, series[1].Revenue)
	assert.Equal(t, 10297.0, series[1].Profit)
	assert.Equal(t, aggregating.Entry(p.Logs[1], p.Price), series[1].EntryMetrics)
}

func TestChronologicalSeries_ProdutoNulo(t *testing.T) {
	assert.Empty(t, ChronologicalSeries(nil))
}

func TestExpenseBreakdown(t *testing.T) {
	t.Run("Lucro positivo", func(t *testing.T) {
		slices := ExpenseBreakdown(domain.SeedProducts()[0])

		assert.Equal(t, []domain.BreakdownSlice{
			{Name: domain.BreakdownAdSpend, Value: 6500},
			{Name: domain.BreakdownMiscExpenses, Value: 200},
			{Name: domain.BreakdownNetProfit, Value: 41288},
		}, slices)
	})

	t.Run("Lucro negativo é limitado a zero apenas no breakdown", func(t *testing.T) {
		p := &domain.Product{
			Price: 10,
			Logs:  []*domain.DailyLog{{ID: "x", SalesCount: 1, AdSpend: 300, MiscExpenses: 50}},
		}

		slices := ExpenseBreakdown(p)

		assert.Equal(t, 0.0, slices[2].Value)
		assert.Equal(t, -340.0, aggregating.Product(p).NetProfit)
	})
}

func TestPortfolioBreakdown(t *testing.T) {
	rows := PortfolioBreakdown(domain.SeedProducts())

	require.Len(t, rows, 2)
	assert.Equal(t, domain.ProductBreakdownRow{
		ID:           "1",
		Name:         "UI Kit Pro",
		Category:     domain.ProductCategoryAsset,
		NetProfit:    41288,
		TotalRevenue: 47988,
		SalesCount:   12,
	}, rows[0])
	assert.Equal(t, "SaaS Starter Kit", rows[1].Name)
	assert.Equal(t, 9, rows[1].SalesCount)
}

func TestCategorySplit(t *testing.T) {
	products := domain.SeedProducts()
	products = append(products, &domain.Product{ID: "3", Name: "Outro SaaS", Category: domain.ProductCategorySaaS, Price: 10,
		Logs: []*domain.DailyLog{{ID: "z", SalesCount: 1}}})

	rows := CategorySplit(products)

	require.Len(t, rows, 2)
	assert.Equal(t, domain.ProductCategorySaaS, rows[0].Category)
	assert.Equal(t, 2, rows[0].ProductCount)
	assert.Equal(t, 71991.0+10.0, rows[0].TotalRevenue)
	assert.Equal(t, domain.ProductCategoryAsset, rows[1].Category)
	assert.Equal(t, 41288.0, rows[1].NetProfit)
}

func TestPortfolioView(t *testing.T) {
	products := domain.SeedProducts()

	view := PortfolioView(products)

	assert.Equal(t, aggregating.Portfolio(products), view.Metrics)
	assert.Len(t, view.Products, 2)
	assert.Len(t, view.CategorySplit, 2)
	assert.Nil(t, ProductView(nil))
}
