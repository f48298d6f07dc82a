package domain

import "time"

// SeedProducts retorna o conjunto inicial usado quando não há dados persistidos
func SeedProducts() []*Product {
	return []*Product{
		{
			ID:       "1",
			Name:     "UI Kit Pro",
			Category: ProductCategoryAsset,
			Price:    3999,
			Logs: []*DailyLog{
				{ID: "l1", Date: NewDate(2023, time.October, 25), SalesCount: 4, AdSpend: 2000},
				{ID: "l2", Date: NewDate(2023, time.October, 26), SalesCount: 3, AdSpend: 1500, MiscExpenses: 200},
				{ID: "l3", Date: NewDate(2023, time.October, 27), SalesCount: 5, AdSpend: 3000},
			},
		},
		{
			ID:       "2",
			Name:     "SaaS Starter Kit",
			Category: ProductCategorySaaS,
			Price:    7999,
			Logs: []*DailyLog{
				{ID: "l4", Date: NewDate(2023, time.October, 25), SalesCount: 3, AdSpend: 5000},
				{ID: "l5", Date: NewDate(2023, time.October, 26), SalesCount: 2, AdSpend: 4500},
				{ID: "l6", Date: NewDate(2023, time.October, 27), SalesCount: 4, AdSpend: 6000},
			},
		},
	}
}
