package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/profit-pilot-api/internal/domain"
	"github.com/vfg2006/profit-pilot-api/internal/usecases/cataloging"
	"go.uber.org/mock/gomock"
)

func TestListDailyLogs_OrdemCronologica(t *testing.T) {
	deps := newTestRouter(t)
	deps.store.EXPECT().Get("p").Return(&domain.Product{
		ID:    "p",
		Price: 100,
		Logs: []*domain.DailyLog{
			{ID: "c", Date: domain.NewDate(2023, time.October, 27), SalesCount: 1},
			{ID: "a", Date: domain.NewDate(2023, time.October, 25), SalesCount: 2, AdSpend: 50},
			{ID: "b", Date: domain.NewDate(2023, time.October, 26)},
		},
	}, true)

	rec := deps.do(t, http.MethodGet, "/v1/products/p/logs", "")

	require.Equal(t, http.StatusOK, rec.Code)
	series := decode[[]map[string]any](t, rec)
	require.Len(t, series, 3)
	assert.Equal(t, "2023-10-25", series[0]["date"])
	assert.Equal(t, "2023-10-26", series[1]["date"])
	assert.Equal(t, "2023-10-27", series[2]["date"])
	assert.Equal(t, 200.0, series[0]["revenue"])
	assert.Equal(t, 300.0, series[0]["roi"])
}

func TestListDailyLogs_DuasCasasDecimais(t *testing.T) {
	deps := newTestRouter(t)
	deps.store.EXPECT().Get("p").Return(&domain.Product{
		ID:    "p",
		Price: 10,
		Logs: []*domain.DailyLog{
			{ID: "a", Date: domain.NewDate(2023, time.October, 25), SalesCount: 1, AdSpend: 3},
		},
	}, true)

	rec := deps.do(t, http.MethodGet, "/v1/products/p/logs", "")

	require.Equal(t, http.StatusOK, rec.Code)
	series := decode[[]map[string]any](t, rec)
	require.Len(t, series, 1)
	assert.Equal(t, 233.33, series[0]["roi"])
}

func TestListDailyLogs_ProdutoDesconhecido(t *testing.T) {
	deps := newTestRouter(t)
	deps.store.EXPECT().Get("x").Return(nil, false)

	rec := deps.do(t, http.MethodGet, "/v1/products/x/logs", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddDailyLog(t *testing.T) {
	t.Run("Valores não numéricos são repassados como texto", func(t *testing.T) {
		deps := newTestRouter(t)
		deps.store.EXPECT().
			AddLog("1", cataloging.LogInput{Date: "2023-10-28", SalesCount: "3", AdSpend: "abc", MiscExpenses: "10.5"}).
			Return(&domain.DailyLog{ID: "n", Date: domain.NewDate(2023, time.October, 28), SalesCount: 3, MiscExpenses: 10.5}, true)

		rec := deps.do(t, http.MethodPost, "/v1/products/1/logs", `{"date":"2023-10-28","salesCount":3,"adSpend":"abc","miscExpenses":"10.5"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"id":"n","date":"2023-10-28","salesCount":3,"adSpend":0,"miscExpenses":10.5}`, rec.Body.String())
	})

	t.Run("Produto desconhecido", func(t *testing.T) {
		deps := newTestRouter(t)
		deps.store.EXPECT().AddLog("x", gomock.Any()).Return(nil, false)

		rec := deps.do(t, http.MethodPost, "/v1/products/x/logs", `{"salesCount":"1"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"created":false}`, rec.Body.String())
	})
}

func TestUpdateDailyLog(t *testing.T) {
	deps := newTestRouter(t)
	deps.store.EXPECT().
		UpdateLog("1", "l2", cataloging.LogInput{SalesCount: "10"}).
		Return(&domain.DailyLog{ID: "l2", Date: domain.NewDate(2023, time.October, 26), SalesCount: 10}, true)
	deps.store.EXPECT().UpdateLog("1", "zz", gomock.Any()).Return(nil, false)

	rec := deps.do(t, http.MethodPut, "/v1/products/1/logs/l2", `{"salesCount":"10"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "l2", decode[domain.DailyLog](t, rec).ID)

	rec = deps.do(t, http.MethodPut, "/v1/products/1/logs/zz", `{"salesCount":"10"}`)
	assert.JSONEq(t, `{"updated":false}`, rec.Body.String())

	rec = deps.do(t, http.MethodPut, "/v1/products/1/logs/l2", `[`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteDailyLog(t *testing.T) {
	deps := newTestRouter(t)
	deps.store.EXPECT().DeleteLog("1", "l2").Return(true)

	rec := deps.do(t, http.MethodDelete, "/v1/products/1/logs/l2", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"deleted":true}`, rec.Body.String())
}
