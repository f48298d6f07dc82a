package domain

type DailyLog struct {
	ID           string  `json:"id"`
	Date         Date    `json:"date"`
	SalesCount   int     `json:"salesCount"`
	AdSpend      float64 `json:"adSpend"`
	MiscExpenses float64 `json:"miscExpenses"`
}
