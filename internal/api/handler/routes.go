package handler

import (
	"net/http"

	"github.com/vfg2006/profit-pilot-api/internal/api/handler/router"
	"github.com/vfg2006/profit-pilot-api/internal/usecases/cataloging"
	"github.com/vfg2006/profit-pilot-api/internal/usecases/insighting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Products(store cataloging.ProductStore) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/products",
			Method:  http.MethodGet,
			Handler: ListProducts(store),
		},
		{
			Path:    "/v1/products",
			Method:  http.MethodPost,
			Handler: CreateProduct(store),
		},
		{
			Path:    "/v1/products/:id",
			Method:  http.MethodGet,
			Handler: GetProduct(store),
		},
		{
			Path:    "/v1/products/:id",
			Method:  http.MethodPut,
			Handler: UpdateProduct(store),
		},
		{
			Path:    "/v1/products/:id",
			Method:  http.MethodDelete,
			Handler: DeleteProduct(store),
		},
	}
}

func DailyLogs(store cataloging.ProductStore) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/products/:id/logs",
			Method:  http.MethodGet,
			Handler: ListDailyLogs(store),
		},
		{
			Path:    "/v1/products/:id/logs",
			Method:  http.MethodPost,
			Handler: AddDailyLog(store),
		},
		{
			Path:    "/v1/products/:id/logs/:log_id",
			Method:  http.MethodPut,
			Handler: UpdateDailyLog(store),
		},
		{
			Path:    "/v1/products/:id/logs/:log_id",
			Method:  http.MethodDelete,
			Handler: DeleteDailyLog(store),
		},
	}
}

func Metrics(store cataloging.ProductStore) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/products/:id/metrics",
			Method:  http.MethodGet,
			Handler: GetProductMetrics(store),
		},
		{
			Path:    "/v1/metrics/portfolio",
			Method:  http.MethodGet,
			Handler: GetPortfolioMetrics(store),
		},
	}
}

func Insights(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/insights",
			Method:  http.MethodGet,
			Handler: GetInsights(service),
		},
	}
}

func Reports(store cataloging.ProductStore, currency string) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/portfolio",
			Method:  http.MethodGet,
			Handler: GetPortfolioReport(store, currency),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
