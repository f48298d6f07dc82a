package domain

// EntryMetrics são as métricas derivadas de um único log diário
type EntryMetrics struct {
	Revenue      float64 `json:"revenue"`
	TotalExpense float64 `json:"totalExpense"`
	Profit       float64 `json:"profit"`
	ROI          float64 `json:"roi"`
}

// ProductMetrics são os totais de um produto sobre todos os seus logs
type ProductMetrics struct {
	TotalSalesCount   int     `json:"totalSalesCount"`
	TotalRevenue      float64 `json:"totalRevenue"`
	TotalAdSpend      float64 `json:"totalAdSpend"`
	TotalMiscExpenses float64 `json:"totalMiscExpenses"`
	TotalExpenses     float64 `json:"totalExpenses"`
	NetProfit         float64 `json:"netProfit"`
	TotalROI          float64 `json:"totalRoi"`
}

// PortfolioMetrics são os totais de todos os produtos
type PortfolioMetrics struct {
	ProductCount      int     `json:"productCount"`
	TotalSalesCount   int     `json:"totalSalesCount"`
	GrossRevenue      float64 `json:"grossRevenue"`
	TotalAdSpend      float64 `json:"totalAdSpend"`
	TotalMiscExpenses float64 `json:"totalMiscExpenses"`
	TotalExpenses     float64 `json:"totalExpenses"`
	NetProfit         float64 `json:"netProfit"`
	ProfitMargin      float64 `json:"profitMargin"`
	ROI               float64 `json:"roi"`
}

// SeriesPoint é um ponto da série temporal de um produto
type SeriesPoint struct {
	DailyLog
	EntryMetrics
}

const (
	BreakdownAdSpend      = "Ad Spend"
	BreakdownMiscExpenses = "Misc Expenses"
	BreakdownNetProfit    = "Net Profit"
)

type BreakdownSlice struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type ProductBreakdownRow struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Category     ProductCategory `json:"category"`
	NetProfit    float64         `json:"netProfit"`
	TotalRevenue float64         `json:"totalRevenue"`
	SalesCount   int             `json:"salesCount"`
}

type CategoryRow struct {
	Category     ProductCategory `json:"category"`
	ProductCount int             `json:"productCount"`
	TotalRevenue float64         `json:"totalRevenue"`
	NetProfit    float64         `json:"netProfit"`
}

type ProductMetricsResponse struct {
	ProductID string           `json:"productId"`
	Name      string           `json:"name"`
	Price     float64          `json:"price"`
	Metrics   ProductMetrics   `json:"metrics"`
	Breakdown []BreakdownSlice `json:"breakdown"`
	Series    []SeriesPoint    `json:"series"`
}

type PortfolioMetricsResponse struct {
	Metrics       PortfolioMetrics      `json:"metrics"`
	Products      []ProductBreakdownRow `json:"products"`
	CategorySplit []CategoryRow         `json:"categorySplit"`
}
